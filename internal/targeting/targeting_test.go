package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-path-defense/internal/types"
)

// enemies на оси X на расстояниях 50, 120 и 200 от башни в начале координат
func linedUp(healths ...int) []Candidate {
	distances := []float64{50, 120, 200}
	out := make([]Candidate, len(healths))
	for i, h := range healths {
		out[i] = Candidate{ID: types.EntityID(i + 1), X: distances[i], Health: h}
	}
	return out
}

func TestNearestPicksClosestInRange(t *testing.T) {
	candidates := linedUp(100, 100, 100)

	id, ok := Nearest(0, 0, 150, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(1), id)

	_, ok = Nearest(0, 0, 40, candidates)
	assert.False(t, ok)
}

func TestNearestRangeIsInclusive(t *testing.T) {
	candidates := []Candidate{{ID: 7, X: 30, Y: 40}}
	id, ok := Nearest(0, 0, 50, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(7), id)
}

func TestNearestTieGoesToFirst(t *testing.T) {
	candidates := []Candidate{
		{ID: 4, X: 0, Y: 10},
		{ID: 2, X: 10, Y: 0},
		{ID: 9, X: -10, Y: 0},
	}
	id, ok := Nearest(0, 0, 100, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(4), id)
}

func TestNearestEmpty(t *testing.T) {
	_, ok := Nearest(0, 0, 100, nil)
	assert.False(t, ok)
}

func TestHighestHealthPicksStrongest(t *testing.T) {
	candidates := []Candidate{
		{ID: 1, X: 10, Health: 30},
		{ID: 2, X: 20, Health: 80},
		{ID: 3, X: 30, Health: 10},
	}
	id, ok := HighestHealth(0, 0, 300, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(2), id)
}

func TestHighestHealthIgnoresOutOfRange(t *testing.T) {
	candidates := linedUp(30, 10, 500)
	id, ok := HighestHealth(0, 0, 150, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(1), id)

	_, ok = HighestHealth(0, 0, 10, candidates)
	assert.False(t, ok)
}

func TestHighestHealthTieGoesToFirst(t *testing.T) {
	candidates := []Candidate{
		{ID: 5, X: 10, Health: 60},
		{ID: 3, X: 20, Health: 60},
	}
	id, ok := HighestHealth(0, 0, 100, candidates)
	require.True(t, ok)
	assert.Equal(t, types.EntityID(5), id)
}

func TestForMode(t *testing.T) {
	p, err := ForMode(ModeNearest)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = ForMode(ModeHighestHealth)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = ForMode(ModeNone)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = ForMode("random")
	assert.Error(t, err)
}
