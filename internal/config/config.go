package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/targeting"
)

// Host window and HUD constants. The simulation core never reads them.
const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	GridSize     = 64
	GridCols     = ScreenWidth / GridSize
	GridRows     = ScreenHeight / GridSize

	MaxDeltaMs = 60.0

	ProjectileRadius = 4.0
	TowerRadius      = 18.0
	PathWidth        = 24.0
	HUDMarginX       = 12
	HUDLineHeight    = 16
	ButtonSize       = 14.0
	MessageTimeout   = 2 * time.Second
)

var (
	BackgroundColor  = color.RGBA{230, 230, 230, 255}
	GridColor        = color.RGBA{215, 215, 215, 255}
	PathColor        = color.RGBA{180, 160, 120, 255}
	ProjectileColor  = color.RGBA{40, 40, 40, 255}
	DamageFlashColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{70, 130, 180, 60}
	TextColor        = color.RGBA{20, 20, 30, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	SpeedMultipliers = []float64{1, 2, 4}
)

// Point is a waypoint of the enemy path.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config is the full set of constants injected into a simulation once.
type Config struct {
	StartingMoney   int     `yaml:"starting_money"`
	Lives           int     `yaml:"lives"`
	SellPercentage  float64 `yaml:"sell_percentage"`
	UpgradeCostBase int     `yaml:"upgrade_cost_base"`
	MinTowerSpacing float64 `yaml:"min_tower_spacing"`

	Path            []Point `yaml:"path"`
	WaypointEpsilon float64 `yaml:"waypoint_epsilon"`

	ProjectileSpeed float64 `yaml:"projectile_speed"` // pixels per second
	HitRadius       float64 `yaml:"hit_radius"`
	FlashDurationMs float64 `yaml:"flash_duration_ms"`

	Towers  []defs.TowerDefinition `yaml:"towers"`
	Enemies []defs.EnemyDefinition `yaml:"enemies"`

	Waves        []defs.WaveDefinition `yaml:"waves"`
	RepeatWaves  int                   `yaml:"repeat_waves"`
	AutoNextWave bool                  `yaml:"auto_next_wave"`
	Seed         int64                 `yaml:"seed"`
}

// Default returns the stock game: an eight-waypoint path, three tower kinds and a short wave table.
func Default() *Config {
	return &Config{
		StartingMoney:   500,
		Lives:           20,
		SellPercentage:  0.75,
		UpgradeCostBase: 100,
		MinTowerSpacing: GridSize / 2,
		Path: []Point{
			{50, 400}, {300, 400}, {300, 200}, {600, 200},
			{600, 600}, {900, 600}, {900, 300}, {1150, 300},
		},
		WaypointEpsilon: 0.5,
		ProjectileSpeed: 400,
		HitRadius:       10,
		FlashDurationMs: 120,
		Towers: []defs.TowerDefinition{
			{
				Kind: defs.TowerBasic, Name: "Basic", Cost: 100,
				Range: 150, Damage: 20, DamagePerLevel: 10, FireIntervalMs: 1000,
				Targeting: targeting.ModeNearest,
				Visuals: defs.Visuals{
					Color: color.RGBA{70, 130, 180, 255}, RadiusFactor: 1,
					Sprite: "towers/basic_tower.png", Sound: "sounds/shoot.wav",
				},
			},
			{
				Kind: defs.TowerSniper, Name: "Sniper", Cost: 200,
				Range: 300, Damage: 40, DamagePerLevel: 20, FireIntervalMs: 2000,
				Targeting: targeting.ModeHighestHealth,
				Visuals: defs.Visuals{
					Color: color.RGBA{220, 60, 60, 255}, RadiusFactor: 1,
					Sprite: "towers/sniper_tower.png", Sound: "sounds/shoot.wav",
				},
			},
			{
				Kind: defs.TowerMoney, Name: "Money", Cost: 150,
				Generation: &defs.GenerationStats{Amount: 10, AmountPerLevel: 5, IntervalMs: 1000},
				Visuals: defs.Visuals{
					Color: color.RGBA{255, 215, 0, 255}, RadiusFactor: 1,
					Sprite: "towers/money_tower.png",
				},
			},
		},
		Enemies: []defs.EnemyDefinition{
			{ID: "basic", Name: "Basic", Health: 100, Speed: 60, Reward: 5,
				Visuals: defs.Visuals{Color: color.RGBA{0, 0, 0, 255}, RadiusFactor: 0.5, Sprite: "enemies/basic_enemy.png"}},
			{ID: "fast", Name: "Fast", Health: 60, Speed: 110, Reward: 5,
				Visuals: defs.Visuals{Color: color.RGBA{120, 40, 160, 255}, RadiusFactor: 0.4, Sprite: "enemies/basic_enemy.png"}},
			{ID: "tough", Name: "Tough", Health: 300, Speed: 40, Reward: 15,
				Visuals: defs.Visuals{Color: color.RGBA{90, 60, 30, 255}, RadiusFactor: 0.65, Sprite: "enemies/basic_enemy.png"}},
		},
		Waves: []defs.WaveDefinition{
			{Entries: []defs.WaveEntry{{EnemyID: "basic", Weight: 1}}, Count: 5, SpawnIntervalMs: 1000},
			{Entries: []defs.WaveEntry{{EnemyID: "basic", Weight: 1}}, Count: 8, SpawnIntervalMs: 800},
			{Entries: []defs.WaveEntry{{EnemyID: "basic", Weight: 2}, {EnemyID: "fast", Weight: 1}}, Count: 10, SpawnIntervalMs: 700},
			{Entries: []defs.WaveEntry{{EnemyID: "tough", Weight: 1}}, Count: 5, SpawnIntervalMs: 1200},
			{Entries: []defs.WaveEntry{{EnemyID: "basic", Weight: 2}, {EnemyID: "fast", Weight: 2}, {EnemyID: "tough", Weight: 1}}, Count: 15, SpawnIntervalMs: 500},
		},
		RepeatWaves: 2,
	}
}

// Load reads a YAML config on top of the defaults.
// If path == "", it falls back to the TD_CONFIG environment variable, then to Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("TD_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a simulation relies on. Definitions are checked by defs.NewLibrary.
func (c *Config) Validate() error {
	var errs []error
	if c.StartingMoney < 0 {
		errs = append(errs, errors.New("starting_money must be non-negative"))
	}
	if c.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if c.SellPercentage < 0 || c.SellPercentage > 1 {
		errs = append(errs, errors.New("sell_percentage must be within [0, 1]"))
	}
	if c.UpgradeCostBase <= 0 {
		errs = append(errs, errors.New("upgrade_cost_base must be positive"))
	}
	if len(c.Path) < 2 {
		errs = append(errs, errors.New("path needs at least two waypoints"))
	}
	if c.ProjectileSpeed <= 0 {
		errs = append(errs, errors.New("projectile_speed must be positive"))
	}
	if c.HitRadius < 0 || c.WaypointEpsilon < 0 {
		errs = append(errs, errors.New("hit_radius and waypoint_epsilon must be non-negative"))
	}
	for i, w := range c.Waves {
		if w.Count < 0 || w.SpawnIntervalMs < 0 || len(w.Entries) == 0 {
			errs = append(errs, fmt.Errorf("wave %d: needs entries and non-negative count and interval", i+1))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
