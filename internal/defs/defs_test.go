package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-path-defense/internal/targeting"
)

func basic() TowerDefinition {
	return TowerDefinition{Kind: TowerBasic, Cost: 100, Range: 150, Damage: 20, DamagePerLevel: 5,
		FireIntervalMs: 1000, Targeting: targeting.ModeNearest}
}

func TestNewLibraryLookups(t *testing.T) {
	lib, err := NewLibrary(
		[]TowerDefinition{basic()},
		[]EnemyDefinition{{ID: "grunt", Health: 100, Speed: 50}},
	)
	require.NoError(t, err)

	def, ok := lib.Tower(TowerBasic)
	require.True(t, ok)
	assert.Equal(t, 100, def.Cost)

	_, ok = lib.Tower(TowerSniper)
	assert.False(t, ok)

	enemy, ok := lib.Enemy("grunt")
	require.True(t, ok)
	assert.Equal(t, 100, enemy.Health)
}

func TestNewLibraryRejectsBadDefinitions(t *testing.T) {
	_, err := NewLibrary([]TowerDefinition{basic(), basic()}, nil)
	assert.Error(t, err)

	bad := basic()
	bad.Targeting = "closest"
	_, err = NewLibrary([]TowerDefinition{bad}, nil)
	assert.Error(t, err)

	bad = basic()
	bad.FireIntervalMs = 0
	_, err = NewLibrary([]TowerDefinition{bad}, nil)
	assert.Error(t, err)

	_, err = NewLibrary(nil, []EnemyDefinition{{ID: "ghost", Health: 0}})
	assert.Error(t, err)

	// ни урона, ни дохода
	dud := basic()
	dud.Damage = 0
	_, err = NewLibrary([]TowerDefinition{dud}, nil)
	assert.Error(t, err)
}

func TestValidateWaves(t *testing.T) {
	lib, err := NewLibrary(nil, []EnemyDefinition{{ID: "grunt", Health: 100, Speed: 50}})
	require.NoError(t, err)

	assert.NoError(t, lib.ValidateWaves([]WaveDefinition{
		{Entries: []WaveEntry{{EnemyID: "grunt", Weight: 1}}, Count: 3, SpawnIntervalMs: 100},
	}))

	err = lib.ValidateWaves([]WaveDefinition{
		{Entries: []WaveEntry{{EnemyID: "grunt", Weight: 1}}, Count: 1},
		{Entries: []WaveEntry{{EnemyID: "ghost", Weight: 1}}, Count: 1},
	})
	assert.ErrorIs(t, err, ErrUnknownEnemyType)
	assert.Contains(t, err.Error(), "wave 2")

	assert.Error(t, lib.ValidateWaves([]WaveDefinition{
		{Entries: []WaveEntry{{EnemyID: "grunt", Weight: 0}}, Count: 1},
	}))
	assert.Error(t, lib.ValidateWaves([]WaveDefinition{{Count: 1}}))
}

func TestDamageAndIncomeScaleWithLevel(t *testing.T) {
	def := basic()
	assert.Equal(t, 20, def.DamageAt(1))
	assert.Equal(t, 30, def.DamageAt(3))
	assert.Equal(t, 0, def.IncomeAt(2))

	money := TowerDefinition{Kind: TowerMoney, Generation: &GenerationStats{Amount: 10, AmountPerLevel: 5, IntervalMs: 1000}}
	assert.False(t, money.IsAttacker())
	assert.Equal(t, 10, money.IncomeAt(1))
	assert.Equal(t, 20, money.IncomeAt(3))
}

func TestWaveForRepeatsTail(t *testing.T) {
	waves := []WaveDefinition{{Count: 1}, {Count: 2}, {Count: 3}, {Count: 4}}

	w, ok := WaveFor(waves, 2, 2)
	require.True(t, ok)
	assert.Equal(t, 2, w.Count)

	// 5 -> 3, 6 -> 4, 7 -> 3
	for number, want := range map[int]int{5: 3, 6: 4, 7: 3} {
		w, ok = WaveFor(waves, number, 2)
		require.True(t, ok)
		assert.Equal(t, want, w.Count, "wave %d", number)
	}

	_, ok = WaveFor(nil, 1, 2)
	assert.False(t, ok)
}
