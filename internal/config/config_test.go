package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/targeting"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.StartingMoney)
	assert.Equal(t, 20, cfg.Lives)
	assert.Equal(t, 0.75, cfg.SellPercentage)
	assert.Len(t, cfg.Path, 8)

	_, err := defs.NewLibrary(cfg.Towers, cfg.Enemies)
	require.NoError(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := `
starting_money: 900
lives: 3
path:
  - {x: 0, y: 0}
  - {x: 100, y: 0}
towers:
  - kind: basic
    cost: 50
    range: 120
    damage: 15
    fire_interval_ms: 500
    targeting: nearest
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.StartingMoney)
	assert.Equal(t, 3, cfg.Lives)
	assert.Equal(t, []Point{{0, 0}, {100, 0}}, cfg.Path)
	require.Len(t, cfg.Towers, 1)
	assert.Equal(t, defs.TowerBasic, cfg.Towers[0].Kind)
	assert.Equal(t, targeting.ModeNearest, cfg.Towers[0].Targeting)
	assert.Equal(t, 500.0, cfg.Towers[0].FireIntervalMs)
	// не указанное в файле остаётся по умолчанию
	assert.Equal(t, 0.75, cfg.SellPercentage)
}

func TestLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("TD_CONFIG", "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().StartingMoney, cfg.StartingMoney)

	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lives: 7\n"), 0o644))
	t.Setenv("TD_CONFIG", path)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Lives)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sell_percentage: 1.5\nlives: 0\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "example.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.StartingMoney)
	assert.Len(t, cfg.Path, 4)
	require.Len(t, cfg.Towers, 3)
	assert.Equal(t, 5, cfg.Towers[2].Generation.AmountPerLevel)
	assert.Equal(t, uint8(180), cfg.Towers[0].Visuals.Color.B)
	assert.Equal(t, int64(42), cfg.Seed)

	_, err = defs.NewLibrary(cfg.Towers, cfg.Enemies)
	require.NoError(t, err)
}
