package fanuc

import (
	"math"

	"github.com/iwtcode/fanucPost/models"
)

const fullCircleEps = 1e-6

// isFullCircle сообщает, совпадает ли конец дуги с ее началом в
// плоскости интерполяции.
func isFullCircle(start models.Point, a models.Arc) bool {
	u0, v0, _ := planeCoords(start, a.Plane)
	u1, v1, _ := planeCoords(a.End, a.Plane)
	return math.Abs(u1-u0) < fullCircleEps && math.Abs(v1-v0) < fullCircleEps
}

// isHelical сообщает, смещается ли дуга вдоль оси, перпендикулярной
// плоскости интерполяции.
func isHelical(start models.Point, a models.Arc) bool {
	_, _, w0 := planeCoords(start, a.Plane)
	_, _, w1 := planeCoords(a.End, a.Plane)
	return math.Abs(w1-w0) > fullCircleEps
}

/// planeCoords проецирует точку на координаты плоскости интерполяции:
// (u, v) — в плоскости, w — вдоль нормали.
func planeCoords(p models.Point, plane models.Plane) (u, v, w float64) {
	switch plane {
	case models.PlaneZX:
		return p.Z, p.X, p.Y
	case models.PlaneYZ:
		return p.Y, p.Z, p.X
	default:
		return p.X, p.Y, p.Z
	}
}

// pointFromPlane восстанавливает точку из координат плоскости.
func pointFromPlane(u, v, w float64, plane models.Plane) models.Point {
	switch plane {
	case models.PlaneZX:
		return models.Point{X: v, Y: w, Z: u}
	case models.PlaneYZ:
		return models.Point{X: w, Y: u, Z: v}
	default:
		return models.Point{X: u, Y: v, Z: w}
	}
}

// linearizeArc разбивает дугу на последовательность коротких отрезков
// с заданным допуском хорды. Возвращаемый срез заканчивается точной
// конечной точкой дуги. Используется для всех дуг, которые стойка не
// может выразить круговой интерполяцией.
func linearizeArc(start models.Point, a models.Arc, tol float64) []models.Point {
	u0, v0, w0 := planeCoords(start, a.Plane)
	u1, v1, w1 := planeCoords(a.End, a.Plane)
	cu, cv, _ := planeCoords(a.Center, a.Plane)

	radius := math.Hypot(u0-cu, v0-cv)
	if radius < fullCircleEps {
		return []models.Point{a.End}
	}

	a0 := math.Atan2(v0-cv, u0-cu)
	a1 := math.Atan2(v1-cv, u1-cu)

	sweep := a1 - a0
	if a.Clockwise {
		if sweep >= -fullCircleEps {
			sweep -= 2 * math.Pi
		}
	} else {
		if sweep <= fullCircleEps {
			sweep += 2 * math.Pi
		}
	}
	if isFullCircle(start, a) {
		sweep = 2 * math.Pi
		if a.Clockwise {
			sweep = -sweep
		}
	}

	if tol <= 0 {
		tol = 0.01
	}
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
		t := float64(i) / float64(n)
		if i == n {
			points = append(points, a.End)
			break
		}
		ang := a0 + sweep*t
		u := cu + radius*math.Cos(ang)
		v := cv + radius*math.Sin(ang)
		w := w0 + (w1-w0)*t
		points = append(points, pointFromPlane(u, v, w, a.Plane))
	}
	return points
}
