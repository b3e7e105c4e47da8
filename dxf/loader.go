package dxf

import (
	"fmt"
	"io"
	"os"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"github.com/sirupsen/logrus"

	"github.com/iwtcode/fanucPost/models"
)

// Options задает параметры резки, которые DXF-документ не содержит.
type Options struct {
	Name  string  // имя программы (номер для заголовка O)
	Feed  float64 // рабочая подача
	Power float64 // мощность луча, 0 — не выводить S
	Mode  models.JetMode
}

// Contour — цепочка точек одного непрерывного реза.
type Contour []models.Point

// LoadFile читает DXF-файл и строит программу раскроя.
func LoadFile(path string, opts Options, log logrus.FieldLogger) (*models.Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DXF file: %w", err)
	}
	defer file.Close()
	return Load(file, opts, log)
}

// Load разбирает DXF-документ и строит программу раскроя: по одному
// контуру на линию, полилинию, дугу или окружность. Дуги и сегменты с
// выпуклостью разворачиваются в точки с допуском хорды. Геометрия
// проецируется на плоскость стола, координата Z отбрасывается.
func Load(r io.Reader, opts Options, log logrus.FieldLogger) (*models.Program, error) {
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DXF document: %w", err)
	}

	var contours []Contour
	addContour := func(c Contour) {
		if len(c) >= 2 {
			contours = append(contours, c)
		}
	}
	for _, entity := range doc.Entities.Entities {
		switch e := entity.(type) {
		case *entities.Line:
			addContour(Contour{fromPoint(e.Start), fromPoint(e.End)})
		case *entities.Polyline:
			contour := make(Contour, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				contour = append(contour, fromPoint(v.Location))
			}
			addContour(contour)
		case *entities.LWPolyline:
			addContour(lwPolylineContour(e))
		case *entities.Arc:
			addContour(arcEntityContour(e))
		case *entities.Circle:
			addContour(circleContour(fromPoint(e.Center), e.Radius))
		default:
			log.Warnf("skipping unsupported DXF entity %T", entity)
		}
	}

	if len(contours) == 0 {
		return nil, fmt.Errorf("DXF document contains no usable contours")
	}
	log.Infof("loaded %d contours from DXF document", len(contours))
	return Build(contours, opts), nil
}

// Build собирает программу из готовых контуров: подвод к началу
// контура, включение луча, рез по точкам, выключение луча.
func Build(contours []Contour, opts Options) *models.Program {
	mode := opts.Mode
	if mode == "" {
		mode = models.JetThrough
	}
	name := opts.Name
	if name == "" {
		name = "1"
	}

	var moves []models.Move
	for _, contour := range contours {
		moves = append(moves, models.Rapid{To: contour[0]})
		moves = append(moves, models.Command{Kind: models.CommandPowerOn})
		for _, p := range contour[1:] {
			moves = append(moves, models.Linear{To: p, Feed: opts.Feed})
		}
		moves = append(moves, models.Command{Kind: models.CommandPowerOff})
	}

	section := models.Section{
		Tool:            models.Tool{Type: models.ToolLaserCutter},
		JetMode:         mode,
		Power:           opts.Power,
		InitialPosition: contours[0][0],
		WorkPlane:       models.IdentityWorkPlane(),
		Moves:           moves,
	}

	return &models.Program{
		Name:     name,
		Unit:     models.UnitMM,
		Sections: []models.Section{section},
	}
}

func fromPoint(p core.Point) models.Point {
	return models.Point{X: p.X, Y: p.Y}
}
