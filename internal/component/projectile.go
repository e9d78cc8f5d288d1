// internal/component/projectile.go
package component

import "go-path-defense/internal/types"

// Projectile представляет летящий снаряд.
// Цель хранится по ID: если враг исчез, снаряд летит в LastKnown и промахивается.
type Projectile struct {
	SourceID  types.EntityID
	TargetID  types.EntityID
	LastKnown Position
	Speed     float64 // пикселей в секунду
	Damage    int
	Resolved  bool // урон уже нанесён
}
