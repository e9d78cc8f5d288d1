// internal/defs/towers.go
package defs

import "go-path-defense/internal/targeting"

// TowerKind defines the variant of a tower.
type TowerKind string

const (
	TowerBasic  TowerKind = "basic"
	TowerSniper TowerKind = "sniper"
	TowerMoney  TowerKind = "money"
)

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	Kind           TowerKind        `yaml:"kind"`
	Name           string           `yaml:"name"`
	Cost           int              `yaml:"cost"`
	Range          float64          `yaml:"range"`
	Damage         int              `yaml:"damage"`
	DamagePerLevel int              `yaml:"damage_per_level"`
	FireIntervalMs float64          `yaml:"fire_interval_ms"`
	Targeting      targeting.Mode   `yaml:"targeting"`
	Generation     *GenerationStats `yaml:"generation,omitempty"`
	Visuals        Visuals          `yaml:"visuals"`
}

// GenerationStats describes passive income of a money tower.
type GenerationStats struct {
	Amount         int     `yaml:"amount"`
	AmountPerLevel int     `yaml:"amount_per_level"`
	IntervalMs     float64 `yaml:"interval_ms"`
}

// IsAttacker reports whether towers of this definition shoot at enemies.
func (d TowerDefinition) IsAttacker() bool {
	return d.Targeting != targeting.ModeNone && d.Damage > 0
}

// DamageAt returns the damage of a tower of this kind at the given level.
func (d TowerDefinition) DamageAt(level int) int {
	if level < 1 {
		level = 1
	}
	return d.Damage + (level-1)*d.DamagePerLevel
}

// IncomeAt returns the generated amount per interval at the given level.
func (d TowerDefinition) IncomeAt(level int) int {
	if d.Generation == nil {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return d.Generation.Amount + (level-1)*d.Generation.AmountPerLevel
}
