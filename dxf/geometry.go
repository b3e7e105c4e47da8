package dxf

import (
	"math"

	"github.com/rpaloschi/dxf-go/entities"

	"github.com/iwtcode/fanucPost/models"
)

// Допуск хорды при разбиении дуг DXF на точки контура.
const arcChordTolerance = 0.01

// arcEntityContour строит контур дуги ARC: углы заданы в градусах,
// обход — против часовой стрелки.
func arcEntityContour(e *entities.Arc) Contour {
	if e.Radius <= 0 {
		return nil
	}
	a0 := e.StartAngle * math.Pi / 180
	a1 := e.EndAngle * math.Pi / 180
	for a1 <= a0 {
		a1 += 2 * math.Pi
	}

	center := fromPoint(e.Center)
	start := models.Point{
		X: center.X + e.Radius*math.Cos(a0),
		Y: center.Y + e.Radius*math.Sin(a0),
	}
	return append(Contour{start}, sampleSweep(center, e.Radius, a0, a1-a0)...)
}

// circleContour строит замкнутый контур окружности CIRCLE.
func circleContour(center models.Point, radius float64) Contour {
	if radius <= 0 {
		return nil
	}
	start := models.Point{X: center.X + radius, Y: center.Y}
	return append(Contour{start}, sampleSweep(center, radius, 0, 2*math.Pi)...)
}

// lwPolylineContour строит контур LWPOLYLINE. Сегменты с выпуклостью
// (bulge) разворачиваются в точки дуги; замкнутая полилиния получает
// сегмент возврата к первой вершине.
func lwPolylineContour(e *entities.LWPolyline) Contour {
	pts := e.Points
	if len(pts) < 2 {
		return nil
	}

	contour := Contour{fromPoint(pts[0].Point)}
	segments := len(pts) - 1
	if e.Closed {
		segments = len(pts)
	}
	for i := 0; i < segments; i++ {
		cur := pts[i]
		next := pts[(i+1)%len(pts)]
		start := fromPoint(cur.Point)
		end := fromPoint(next.Point)
		if cur.Bulge == 0 {
			contour = append(contour, end)
			continue
		}
		contour = append(contour, bulgeArc(start, end, cur.Bulge)...)
	}
	return contour
}

// bulgeArc разворачивает сегмент полилинии с выпуклостью в точки дуги.
// bulge = tan(θ/4), знак задает направление: положительный — против
// часовой стрелки. Возвращаются точки после начальной, последняя —
// точный конец сегмента.
func bulgeArc(start, end models.Point, bulge float64) []models.Point {
	theta := 4 * math.Atan(bulge)
	chord := math.Hypot(end.X-start.X, end.Y-start.Y)
	if chord < 1e-12 || theta == 0 {
		return []models.Point{end}
	}

	radius := chord / (2 * math.Abs(math.Sin(theta/2)))
	// Центр лежит на серединном перпендикуляре хорды; знак theta
	// выбирает сторону.
	h := (chord / 2) / math.Tan(theta/2)
	mx := (start.X + end.X) / 2
	my := (start.Y + end.Y) / 2
	px := -(end.Y - start.Y) / chord
	py := (end.X - start.X) / chord
	center := models.Point{X: mx + h*px, Y: my + h*py}

	a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	points := sampleSweep(center, radius, a0, theta)
	points[len(points)-1] = end
	return points
}

// sampleSweep возвращает точки дуги после начальной, включая конечную,
// с шагом, удерживающим ошибку хорды в пределах допуска.
func sampleSweep(center models.Point, radius, a0, sweep float64) []models.Point {
	tol := arcChordTolerance
	if tol >= radius {
		tol = radius / 2
	}
	maxStep := 2 * math.Acos(1-tol/radius)
	n := int(math.Ceil(math.Abs(sweep) / maxStep))
	if n < 1 {
		n = 1
	}

	points := make([]models.Point, 0, n)
	for i := 1; i <= n; i++ {
		ang := a0 + sweep*float64(i)/float64(n)
		points = append(points, models.Point{
			X: center.X + radius*math.Cos(ang),
			Y: center.Y + radius*math.Sin(ang),
		})
	}
	return points
}
