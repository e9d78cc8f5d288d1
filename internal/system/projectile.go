// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	hitRadius       float64
	flashDuration   float64
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, hitRadius, flashDuration float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		hitRadius:       hitRadius,
		flashDuration:   flashDuration,
	}
}

// Update двигает снаряды. Пока цель в реестре, снаряд наводится на её текущую
// позицию, иначе летит в последнюю известную точку и там промахивается.
func (s *ProjectileSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			s.ecs.RemoveEntity(id)
			continue
		}

		if _, alive := s.ecs.Enemies[proj.TargetID]; alive {
			if targetPos, ok := s.ecs.Positions[proj.TargetID]; ok {
				proj.LastKnown = *targetPos
			}
		}

		tx, ty := proj.LastKnown.X, proj.LastKnown.Y
		if utils.Distance(pos.X, pos.Y, tx, ty) > s.hitRadius {
			var arrived bool
			pos.X, pos.Y, arrived = utils.StepToward(pos.X, pos.Y, tx, ty, proj.Speed*dt)
			if !arrived && utils.Distance(pos.X, pos.Y, tx, ty) > s.hitRadius {
				continue
			}
		}

		s.Resolve(id)
		s.ecs.RemoveEntity(id)
	}
}

// Resolve применяет урон снаряда не более одного раза. Возвращает true,
// если урон был нанесён именно этим вызовом. Если цели уже нет, это промах.
func (s *ProjectileSystem) Resolve(id types.EntityID) bool {
	proj, ok := s.ecs.Projectiles[id]
	if !ok || proj.Resolved {
		return false
	}
	proj.Resolved = true

	if _, exists := s.ecs.Enemies[proj.TargetID]; !exists {
		s.eventDispatcher.Emit(event.ProjectileMissed, event.HitData{ProjectileID: id, TowerID: proj.SourceID, TargetID: proj.TargetID})
		return false
	}

	remaining, applied := ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
	if !applied {
		s.eventDispatcher.Emit(event.ProjectileMissed, event.HitData{ProjectileID: id, TowerID: proj.SourceID, TargetID: proj.TargetID})
		return false
	}

	if s.flashDuration > 0 {
		s.ecs.DamageFlashes[proj.TargetID] = &component.DamageFlash{Timer: s.flashDuration}
	}
	s.eventDispatcher.Emit(event.ProjectileHit, event.HitData{
		ProjectileID: id,
		TowerID:      proj.SourceID,
		TargetID:     proj.TargetID,
		Damage:       proj.Damage,
		Remaining:    remaining,
	})
	return true
}
