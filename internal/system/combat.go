package system

import (
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/targeting"
	"go-path-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	library         *defs.Library
	projectileSpeed float64
	policies        map[defs.TowerKind]targeting.Policy
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, library *defs.Library, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		library:         library,
		projectileSpeed: projectileSpeed,
		policies:        make(map[defs.TowerKind]targeting.Policy),
	}
}

// Update: перезарядка -> выбор цели -> выстрел. Вызывается после движения
// врагов, поэтому башни видят позиции этого кадра.
func (s *CombatSystem) Update(deltaMs float64) {
	candidates := s.candidates()

	for _, id := range s.ecs.TowerIDs() {
		combat, hasCombat := s.ecs.Combats[id]
		if !hasCombat {
			continue
		}
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]

		combat.Elapsed += deltaMs
		if !combat.Ready() {
			continue
		}
		// Готовая башня без цели ждёт, не накапливая лишнего времени
		combat.Elapsed = combat.FireInterval

		policy := s.policyFor(tower.Kind)
		if policy == nil {
			continue
		}
		targetID, found := policy(pos.X, pos.Y, combat.Range, candidates)
		if !found {
			continue
		}

		projID := s.createProjectile(id, targetID, combat.Damage)
		combat.Elapsed = 0
		s.aimTurret(id, targetID)

		s.eventDispatcher.Emit(event.TowerFired, event.FireData{
			TowerID:      id,
			Kind:         tower.Kind,
			TargetID:     targetID,
			ProjectileID: projID,
		})
	}
}

// candidates собирает живых врагов в порядке появления.
func (s *CombatSystem) candidates() []targeting.Candidate {
	ids := s.ecs.EnemyIDs()
	out := make([]targeting.Candidate, 0, len(ids))
	for _, id := range ids {
		if !s.ecs.IsAlive(id) {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		out = append(out, targeting.Candidate{ID: id, X: pos.X, Y: pos.Y, Health: s.ecs.Healths[id].Value})
	}
	return out
}

func (s *CombatSystem) policyFor(kind defs.TowerKind) targeting.Policy {
	if policy, ok := s.policies[kind]; ok {
		return policy
	}
	def, ok := s.library.Tower(kind)
	if !ok {
		logging.Warn("CombatSystem: could not find tower definition for kind %s", kind)
		s.policies[kind] = nil
		return nil
	}
	policy, err := targeting.ForMode(def.Targeting)
	if err != nil {
		logging.Warn("CombatSystem: tower %s: %v", kind, err)
	}
	s.policies[kind] = policy
	return policy
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, damage int) types.EntityID {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]
	enemyPos := s.ecs.Positions[enemyID]

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		SourceID:  towerID,
		TargetID:  enemyID,
		LastKnown: *enemyPos,
		Speed:     s.projectileSpeed,
		Damage:    damage,
	}
	return projID
}

func (s *CombatSystem) aimTurret(towerID, enemyID types.EntityID) {
	turret, ok := s.ecs.Turrets[towerID]
	if !ok {
		return
	}
	from := s.ecs.Positions[towerID]
	to := s.ecs.Positions[enemyID]
	turret.Angle = float32(math.Atan2(to.Y-from.Y, to.X-from.X))
	turret.TargetID = enemyID
}
