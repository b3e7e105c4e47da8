package fanuc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iwtcode/fanucPost/models"
)

func TestLinearizeArcEndsExactly(t *testing.T) {
	start := models.Point{X: 10}
	arc := models.Arc{
		End:    models.Point{Y: 10},
		Center: models.Point{},
		Plane:  models.PlaneXY,
	}

	points := linearizeArc(start, arc, 0.01)
	require.NotEmpty(t, points)
	require.Equal(t, arc.End, points[len(points)-1], "Последняя точка — точный конец дуги")
}

func TestLinearizeArcStaysOnRadius(t *testing.T) {
	start := models.Point{X: 5}
	arc := models.Arc{
		End:    models.Point{X: -5},
		Center: models.Point{},
		Plane:  models.PlaneXY,
	}

	for _, p := range linearizeArc(start, arc, 0.001) {
		r := math.Hypot(p.X, p.Y)
		require.InDelta(t, 5.0, r, 1e-9, "Промежуточные точки лежат на окружности")
	}
}

func TestLinearizeTighterToleranceGivesMoreSegments(t *testing.T) {
	start := models.Point{X: 5}
	arc := models.Arc{End: models.Point{Y: 5}, Center: models.Point{}, Plane: models.PlaneXY}

	coarse := linearizeArc(start, arc, 0.1)
	fine := linearizeArc(start, arc, 0.001)
	require.Greater(t, len(fine), len(coarse))
}

func TestLinearizeFullCircle(t *testing.T) {
	start := models.Point{X: 5}
	arc := models.Arc{
		End:       models.Point{X: 5},
		Center:    models.Point{},
		Clockwise: true,
		Plane:     models.PlaneXY,
	}

	points := linearizeArc(start, arc, 0.01)
	require.Greater(t, len(points), 8, "Полная окружность дает много сегментов")
	require.Equal(t, arc.End, points[len(points)-1])
}

func TestLinearizeHelicalInterpolatesNormalAxis(t *testing.T) {
	start := models.Point{X: 5}
	arc := models.Arc{
		End:    models.Point{X: 5, Z: 10},
		Center: models.Point{},
		Plane:  models.PlaneXY,
	}

	points := linearizeArc(start, arc, 0.01)
	last := 0.0
	for _, p := range points {
		require.GreaterOrEqual(t, p.Z, last, "Z растет монотонно вдоль витка")
		last = p.Z
	}
	require.InDelta(t, 10.0, points[len(points)-1].Z, 1e-9)
}

func TestPlaneCoordsRoundTrip(t *testing.T) {
	p := models.Point{X: 1, Y: 2, Z: 3}
	for _, plane := range []models.Plane{models.PlaneXY, models.PlaneZX, models.PlaneYZ} {
		u, v, w := planeCoords(p, plane)
		require.Equal(t, p, pointFromPlane(u, v, w, plane))
	}
}
