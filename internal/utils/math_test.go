package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-base-defense/internal/component"
)

func TestAABBOverlap(t *testing.T) {
	half := component.Vec2{X: 10, Y: 10}
	origin := component.Vec2{}

	assert.True(t, AABBOverlap(origin, half, component.Vec2{X: 5, Y: 5}, half))
	assert.True(t, AABBOverlap(origin, half, component.Vec2{X: 20, Y: 0}, half), "touching edges overlap")
	assert.False(t, AABBOverlap(origin, half, component.Vec2{X: 20.01, Y: 0}, half))
	assert.False(t, AABBOverlap(origin, half, component.Vec2{X: 0, Y: -25}, half))
}

func TestFacingRotation(t *testing.T) {
	assert.InDelta(t, 0, FacingRotation(component.Vec2{X: 0, Y: -1}), 1e-12)
	assert.InDelta(t, math.Pi/2, FacingRotation(component.Vec2{X: 1, Y: 0}), 1e-12)
	assert.InDelta(t, math.Pi, FacingRotation(component.Vec2{X: 0, Y: 1}), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 16.0, Clamp(3, 16, 100))
	assert.Equal(t, 100.0, Clamp(300, 16, 100))
	assert.Equal(t, 42.0, Clamp(42, 16, 100))
}

func TestPickCumulative(t *testing.T) {
	weights := []float64{0.5, 0.3, 0.2}
	assert.Equal(t, 0, PickCumulative(weights, 0))
	assert.Equal(t, 1, PickCumulative(weights, 0.5))
	assert.Equal(t, 2, PickCumulative(weights, 0.85))
	assert.Equal(t, 2, PickCumulative([]float64{0.1, 0.1, 0.1}, 0.99), "fallback to the last index")
}

func TestPRNGService(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.Equal(t, int64(7), a.Seed())
	assert.True(t, a.Chance(1))
	assert.False(t, a.Chance(0))
	assert.Equal(t, -1, a.ChooseWeighted(nil))

	r := a.Range(2, 3)
	assert.GreaterOrEqual(t, r, 2.0)
	assert.LessOrEqual(t, r, 3.0)
}
