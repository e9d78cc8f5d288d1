// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Health  int     `yaml:"health"`
	Speed   float64 `yaml:"speed"` // pixels per second
	Reward  int     `yaml:"reward"`
	Visuals Visuals `yaml:"visuals"`
}
