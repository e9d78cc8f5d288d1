package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-5)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-5)
}

func TestLerpAngleTakesShortestPath(t *testing.T) {
	// от 170° к -170° ближе через ±180°, а не через 0
	from := float32(170 * math.Pi / 180)
	to := float32(-170 * math.Pi / 180)
	mid := LerpAngle(from, to, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(float64(mid)), 1e-4)
}

func TestStepToward(t *testing.T) {
	x, y, arrived := StepToward(0, 0, 10, 0, 4)
	assert.False(t, arrived)
	assert.InDelta(t, 4.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)

	x, y, arrived = StepToward(0, 0, 3, 4, 5)
	assert.True(t, arrived)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}
