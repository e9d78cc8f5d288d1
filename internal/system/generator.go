package system

import (
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// GeneratorSystem начисляет пассивный доход денежных башен.
// Таймер генератора не связан с выбором целей: такие башни никогда не стреляют.
type GeneratorSystem struct {
	ecs             *entity.ECS
	economy         *economy.Economy
	eventDispatcher *event.Dispatcher
}

func NewGeneratorSystem(ecs *entity.ECS, econ *economy.Economy, eventDispatcher *event.Dispatcher) *GeneratorSystem {
	return &GeneratorSystem{ecs: ecs, economy: econ, eventDispatcher: eventDispatcher}
}

func (s *GeneratorSystem) Update(deltaMs float64) {
	for _, id := range s.ecs.GeneratorIDs() {
		gen := s.ecs.Generators[id]
		gen.Elapsed += deltaMs
		if gen.Elapsed < gen.Interval {
			continue
		}
		gen.Elapsed = 0

		tower := s.ecs.Towers[id]
		data := event.TowerData{TowerID: id, Amount: gen.Amount}
		if tower != nil {
			data.Kind, data.Level = tower.Kind, tower.Level
		}
		s.eventDispatcher.Emit(event.MoneyGenerated, data)
		CreditMoney(s.economy, s.eventDispatcher, gen.Amount, event.MoneyGenerated)
	}
}
