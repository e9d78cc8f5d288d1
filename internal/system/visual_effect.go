// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update обновляет таймеры вспышек урона.
func (s *VisualEffectSystem) Update(deltaMs float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaMs
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}
}
