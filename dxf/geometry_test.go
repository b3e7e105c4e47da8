package dxf

import (
	"math"
	"testing"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/entities"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/fanucPost/models"
)

func TestArcEntityContour(t *testing.T) {
	arc := &entities.Arc{
		Center:     core.Point{X: 0, Y: 0},
		Radius:     5,
		StartAngle: 0,
		EndAngle:   90,
	}

	contour := arcEntityContour(arc)
	require.GreaterOrEqual(t, len(contour), 2)
	require.InDelta(t, 5.0, contour[0].X, 1e-9, "Дуга начинается на начальном угле")
	require.InDelta(t, 0.0, contour[0].Y, 1e-9)

	last := contour[len(contour)-1]
	require.InDelta(t, 0.0, last.X, 1e-9, "Дуга заканчивается на конечном угле")
	require.InDelta(t, 5.0, last.Y, 1e-9)

	for _, p := range contour {
		require.InDelta(t, 5.0, math.Hypot(p.X, p.Y), 1e-9, "Точки лежат на окружности")
	}
}

func TestArcEntityContourCrossingZeroAngle(t *testing.T) {
	arc := &entities.Arc{
		Center:     core.Point{X: 0, Y: 0},
		Radius:     2,
		StartAngle: 270,
		EndAngle:   90, // дуга через нулевой угол
	}

	contour := arcEntityContour(arc)
	last := contour[len(contour)-1]
	require.InDelta(t, 0.0, last.X, 1e-9)
	require.InDelta(t, 2.0, last.Y, 1e-9)
}

func TestCircleContourIsClosed(t *testing.T) {
	contour := circleContour(models.Point{X: 10, Y: 10}, 5)

	require.Greater(t, len(contour), 8, "Окружность дает много сегментов")
	first := contour[0]
	last := contour[len(contour)-1]
	require.InDelta(t, first.X, last.X, 1e-9, "Контур окружности замкнут")
	require.InDelta(t, first.Y, last.Y, 1e-9)

	for _, p := range contour {
		require.InDelta(t, 5.0, math.Hypot(p.X-10, p.Y-10), 1e-9)
	}
}

func TestLWPolylineContourStraightSegments(t *testing.T) {
	pl := &entities.LWPolyline{
		Points: entities.LWPolyLinePointSlice{
			{Point: core.Point{X: 0, Y: 0}},
			{Point: core.Point{X: 10, Y: 0}},
			{Point: core.Point{X: 10, Y: 10}},
		},
	}

	contour := lwPolylineContour(pl)
	require.Equal(t, Contour{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, contour)
}

func TestLWPolylineContourClosedReturnsToStart(t *testing.T) {
	pl := &entities.LWPolyline{
		Closed: true,
		Points: entities.LWPolyLinePointSlice{
			{Point: core.Point{X: 0, Y: 0}},
			{Point: core.Point{X: 10, Y: 0}},
			{Point: core.Point{X: 10, Y: 10}},
		},
	}

	contour := lwPolylineContour(pl)
	require.Equal(t, models.Point{X: 0, Y: 0}, contour[len(contour)-1],
		"Замкнутая полилиния возвращается в первую вершину")
}

func TestBulgeArcSemicircle(t *testing.T) {
	// bulge = 1 — полуокружность против часовой стрелки.
	points := bulgeArc(models.Point{X: 0, Y: 0}, models.Point{X: 10, Y: 0}, 1)

	require.Equal(t, models.Point{X: 10, Y: 0}, points[len(points)-1],
		"Последняя точка — точный конец сегмента")
	require.Greater(t, len(points), 4)

	for _, p := range points {
		require.InDelta(t, 5.0, math.Hypot(p.X-5, p.Y), 1e-9, "Точки лежат на полуокружности")
	}
	mid := points[len(points)/2]
	require.Less(t, mid.Y, 0.0, "Положительная выпуклость идет против часовой стрелки")
}

func TestLWPolylineContourWithBulge(t *testing.T) {
	pl := &entities.LWPolyline{
		Points: entities.LWPolyLinePointSlice{
			{Point: core.Point{X: 0, Y: 0}, Bulge: 1},
			{Point: core.Point{X: 10, Y: 0}},
		},
	}

	contour := lwPolylineContour(pl)
	require.Greater(t, len(contour), 3, "Сегмент с выпуклостью разворачивается в дугу")
	require.Equal(t, models.Point{X: 0, Y: 0}, contour[0])
	require.Equal(t, models.Point{X: 10, Y: 0}, contour[len(contour)-1])
}
