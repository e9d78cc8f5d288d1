package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAfford(t *testing.T) {
	e := New(100, 20)
	assert.True(t, e.CanAfford(99))
	assert.True(t, e.CanAfford(100))
	assert.False(t, e.CanAfford(101))
}

func TestSpendNeverGoesNegative(t *testing.T) {
	e := New(150, 20)

	require.NoError(t, e.Spend(100))
	assert.Equal(t, 50, e.Money())

	err := e.Spend(51)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50, e.Money())

	require.NoError(t, e.Spend(50))
	assert.Equal(t, 0, e.Money())

	assert.ErrorIs(t, e.Spend(1), ErrInsufficientFunds)
	assert.Equal(t, 0, e.Money())
}

func TestSpendRejectsNegativeAmount(t *testing.T) {
	e := New(10, 1)
	assert.ErrorIs(t, e.Spend(-5), ErrInvalidAmount)
	assert.Equal(t, 10, e.Money())
}

func TestCanAffordMatchesSpend(t *testing.T) {
	e := New(37, 1)
	for _, amount := range []int{0, 1, 36, 37, 38, 1000} {
		ok := e.CanAfford(amount)
		snapshot := New(e.Money(), 1)
		err := snapshot.Spend(amount)
		assert.Equal(t, ok, err == nil, "amount %d", amount)
	}
}

func TestCredit(t *testing.T) {
	e := New(0, 1)
	e.Credit(25)
	e.Credit(-10)
	e.Credit(0)
	assert.Equal(t, 25, e.Money())
}

func TestLoseLife(t *testing.T) {
	e := New(0, 2)
	assert.False(t, e.LoseLife())
	assert.Equal(t, 1, e.Lives())
	assert.True(t, e.LoseLife())
	assert.Equal(t, 0, e.Lives())

	// дальше нуля не уходит
	assert.True(t, e.LoseLife())
	assert.Equal(t, 0, e.Lives())
	assert.True(t, e.IsGameOver())
}

func TestNewClampsNegativeInput(t *testing.T) {
	e := New(-5, -1)
	assert.Equal(t, 0, e.Money())
	assert.Equal(t, 0, e.Lives())
	assert.True(t, e.IsGameOver())
}
