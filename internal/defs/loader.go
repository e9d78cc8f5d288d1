// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"

	"go-path-defense/internal/targeting"
)

// ErrUnknownEnemyType is returned for references to an undefined enemy.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// Library indexes tower and enemy definitions for lookups during the game.
type Library struct {
	towers  map[TowerKind]TowerDefinition
	enemies map[string]EnemyDefinition
}

// NewLibrary validates the definitions and builds the lookup tables.
func NewLibrary(towers []TowerDefinition, enemies []EnemyDefinition) (*Library, error) {
	lib := &Library{
		towers:  make(map[TowerKind]TowerDefinition, len(towers)),
		enemies: make(map[string]EnemyDefinition, len(enemies)),
	}

	for _, def := range towers {
		if _, dup := lib.towers[def.Kind]; dup {
			return nil, fmt.Errorf("duplicate tower definition %q", def.Kind)
		}
		if err := validateTower(def); err != nil {
			return nil, err
		}
		lib.towers[def.Kind] = def
	}

	for _, def := range enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy definition without id")
		}
		if _, dup := lib.enemies[def.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy definition %q", def.ID)
		}
		if def.Health <= 0 || def.Speed < 0 {
			return nil, fmt.Errorf("enemy %q: health must be positive and speed non-negative", def.ID)
		}
		lib.enemies[def.ID] = def
	}

	return lib, nil
}

func validateTower(def TowerDefinition) error {
	if def.Kind == "" {
		return fmt.Errorf("tower definition without kind")
	}
	if def.Cost < 0 {
		return fmt.Errorf("tower %q: negative cost", def.Kind)
	}
	if _, err := targeting.ForMode(def.Targeting); err != nil {
		return fmt.Errorf("tower %q: %w", def.Kind, err)
	}
	if def.IsAttacker() && (def.Range <= 0 || def.FireIntervalMs <= 0) {
		return fmt.Errorf("tower %q: attackers need positive range and fire interval", def.Kind)
	}
	if def.Generation != nil && def.Generation.IntervalMs <= 0 {
		return fmt.Errorf("tower %q: generation interval must be positive", def.Kind)
	}
	if !def.IsAttacker() && def.Generation == nil {
		return fmt.Errorf("tower %q: neither attacks nor generates money", def.Kind)
	}
	return nil
}

// ValidateWaves checks that every wave entry names a known enemy and that
// each wave has a positive total weight to choose from.
func (l *Library) ValidateWaves(waves []WaveDefinition) error {
	for i, w := range waves {
		total := 0
		for _, entry := range w.Entries {
			if _, ok := l.enemies[entry.EnemyID]; !ok {
				return fmt.Errorf("wave %d: %w: %q", i+1, ErrUnknownEnemyType, entry.EnemyID)
			}
			if entry.Weight < 0 {
				return fmt.Errorf("wave %d: negative weight for %q", i+1, entry.EnemyID)
			}
			total += entry.Weight
		}
		if total <= 0 {
			return fmt.Errorf("wave %d: total weight must be positive", i+1)
		}
	}
	return nil
}

func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := l.towers[kind]
	return def, ok
}

func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.enemies[id]
	return def, ok
}
