// internal/system/movement.go
package system

import (
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// MovementSystem двигает врагов по пути и снимает жизни за дошедших до конца.
type MovementSystem struct {
	ecs             *entity.ECS
	economy         *economy.Economy
	eventDispatcher *event.Dispatcher
	epsilon         float64
}

func NewMovementSystem(ecs *entity.ECS, econ *economy.Economy, eventDispatcher *event.Dispatcher, epsilon float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, economy: econ, eventDispatcher: eventDispatcher, epsilon: epsilon}
}

func (s *MovementSystem) Update(deltaMs float64) {
	dt := deltaMs / 1000
	for _, id := range s.ecs.EnemyIDs() {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		remaining := vel.Speed * dt
		for !path.Finished() {
			target := path.Waypoints[path.CurrentIndex]
			dist := utils.Distance(pos.X, pos.Y, target.X, target.Y)

			if dist <= remaining || dist <= s.epsilon {
				// Точка достигнута, остаток хода переносим на следующий отрезок
				pos.X, pos.Y = target.X, target.Y
				path.CurrentIndex++
				remaining = max(remaining-dist, 0)
				continue
			}

			pos.X, pos.Y, _ = utils.StepToward(pos.X, pos.Y, target.X, target.Y, remaining)
			break
		}

		if path.Finished() {
			s.escape(id)
		}
	}
}

// escape убирает дошедшего до конца врага и снимает одну жизнь.
// Проверка конца игры выполняется в конце тика.
func (s *MovementSystem) escape(id types.EntityID) {
	enemy := s.ecs.Enemies[id]
	s.ecs.RemoveEntity(id)

	s.eventDispatcher.Emit(event.EnemyEscaped, event.EnemyData{EnemyID: id, DefID: enemy.DefID})
	s.economy.LoseLife()
	s.eventDispatcher.Emit(event.LifeLost, event.LivesData{Lives: s.economy.Lives()})
}
