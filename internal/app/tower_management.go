// internal/app/tower_management.go
package app

import (
	"fmt"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/logging"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"
)

// PlaceTower builds a tower of the given kind at pos and debits its cost.
// On any error nothing changes.
func (s *Simulation) PlaceTower(kind defs.TowerKind, pos component.Position) (types.EntityID, error) {
	if s.gameOverSent {
		return 0, ErrGameOver
	}
	def, ok := s.library.Tower(kind)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTowerType, kind)
	}
	if s.isOccupied(pos) {
		return 0, ErrPositionOccupied
	}
	if err := s.economy.Spend(def.Cost); err != nil {
		logging.Debug("place %s rejected: need %d, have %d", kind, def.Cost, s.economy.Money())
		return 0, err
	}

	id := s.createTowerEntity(def, pos)

	s.EventDispatcher.Emit(event.TowerPlaced, event.TowerData{TowerID: id, Kind: kind, Level: 1, Amount: def.Cost})
	s.emitMoney(-def.Cost, event.TowerPlaced)
	logging.Info("tower %d (%s) placed at (%.0f, %.0f)", id, kind, pos.X, pos.Y)
	return id, nil
}

// UpgradeCost returns the price of the next upgrade of a tower.
func (s *Simulation) UpgradeCost(id types.EntityID) (int, error) {
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return 0, ErrInvalidHandle
	}
	return s.upgradeCost(tower.Level), nil
}

// UpgradeTower raises the tower level by one and debits the upgrade cost.
func (s *Simulation) UpgradeTower(id types.EntityID) error {
	if s.gameOverSent {
		return ErrGameOver
	}
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return ErrInvalidHandle
	}
	cost := s.upgradeCost(tower.Level)
	if err := s.economy.Spend(cost); err != nil {
		logging.Debug("upgrade of tower %d rejected: need %d, have %d", id, cost, s.economy.Money())
		return err
	}

	tower.Level++
	tower.Invested += cost

	def, _ := s.library.Tower(tower.Kind)
	if combat, ok := s.ECS.Combats[id]; ok {
		combat.Damage = def.DamageAt(tower.Level)
	}
	if gen, ok := s.ECS.Generators[id]; ok {
		gen.Amount = def.IncomeAt(tower.Level)
	}

	s.EventDispatcher.Emit(event.TowerUpgraded, event.TowerData{TowerID: id, Kind: tower.Kind, Level: tower.Level, Amount: cost})
	s.emitMoney(-cost, event.TowerUpgraded)
	logging.Info("tower %d upgraded to level %d for %d", id, tower.Level, cost)
	return nil
}

// SellTower removes the tower and refunds SellPercentage of everything
// invested in it, rounded down. Projectiles already in flight keep flying.
func (s *Simulation) SellTower(id types.EntityID) (int, error) {
	if s.gameOverSent {
		return 0, ErrGameOver
	}
	tower, ok := s.ECS.Towers[id]
	if !ok {
		return 0, ErrInvalidHandle
	}

	refund := SellRefund(tower.Invested, s.cfg.SellPercentage)
	s.ECS.RemoveEntity(id)
	s.economy.Credit(refund)

	s.EventDispatcher.Emit(event.TowerSold, event.TowerData{TowerID: id, Kind: tower.Kind, Level: tower.Level, Amount: refund})
	s.emitMoney(refund, event.TowerSold)
	logging.Info("tower %d sold for %d (invested %d)", id, refund, tower.Invested)
	return refund, nil
}

// SellRefund is floor(invested × percentage). The small bias keeps products
// like 300 × 0.7 from landing one unit short.
func SellRefund(invested int, percentage float64) int {
	return int(math.Floor(float64(invested)*percentage + 1e-9))
}

// TowerAt finds the tower whose centre is within radius of (x, y).
func (s *Simulation) TowerAt(x, y, radius float64) (types.EntityID, bool) {
	for _, id := range s.ECS.TowerIDs() {
		pos := s.ECS.Positions[id]
		if utils.Distance(pos.X, pos.Y, x, y) <= radius {
			return id, true
		}
	}
	return 0, false
}

func (s *Simulation) upgradeCost(level int) int {
	return s.cfg.UpgradeCostBase * level
}

func (s *Simulation) isOccupied(pos component.Position) bool {
	_, found := s.TowerAt(pos.X, pos.Y, s.cfg.MinTowerSpacing)
	return found
}

func (s *Simulation) createTowerEntity(def defs.TowerDefinition, pos component.Position) types.EntityID {
	id := s.ECS.NewEntity()
	s.ECS.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	s.ECS.Towers[id] = &component.Tower{
		Kind:     def.Kind,
		Level:    1,
		Invested: def.Cost,
	}

	switch {
	case def.IsAttacker():
		// Башня заряжена сразу после постройки
		s.ECS.Combats[id] = &component.Combat{
			Range:        def.Range,
			Damage:       def.DamageAt(1),
			FireInterval: def.FireIntervalMs,
			Elapsed:      def.FireIntervalMs,
		}
		s.ECS.Turrets[id] = &component.TurretComponent{}
	case def.Generation != nil:
		s.ECS.Generators[id] = &component.Generator{
			Amount:   def.IncomeAt(1),
			Interval: def.Generation.IntervalMs,
		}
	}

	s.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.TowerRadius * def.Visuals.RadiusFactor),
		HasStroke: true,
		Sprite:    def.Visuals.Sprite,
	}
	return id
}

func (s *Simulation) emitMoney(delta int, reason event.EventType) {
	s.EventDispatcher.Emit(event.MoneyChanged, event.MoneyData{Delta: delta, Balance: s.economy.Money(), Reason: reason})
}
