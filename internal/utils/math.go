// internal/utils/math.go
package utils

import (
	"math"

	"go-base-defense/internal/component"
)

// AABBOverlap проверяет пересечение двух прямоугольников, заданных центрами
// и половинными размерами.
func AABBOverlap(centerA, halfA, centerB, halfB component.Vec2) bool {
	return math.Abs(centerA.X-centerB.X) <= halfA.X+halfB.X &&
		math.Abs(centerA.Y-centerB.Y) <= halfA.Y+halfB.Y
}

// FacingRotation — поворот спрайта, нарисованного «носом вверх», по направлению движения.
func FacingRotation(direction component.Vec2) float64 {
	return direction.Angle() + math.Pi/2
}

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
