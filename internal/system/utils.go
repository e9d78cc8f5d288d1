// internal/system/utils.go
package system

import (
	"go-path-defense/internal/economy"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/types"
)

// ApplyDamage наносит урон сущности. Здоровье может временно уйти в минус:
// урон за тик накапливается, а ограничение нулём и удаление выполняются
// один раз в конце тика.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (remaining int, ok bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}
	health.Value -= damage
	return max(health.Value, 0), true
}

// CreditMoney начисляет деньги и сообщает об изменении баланса.
func CreditMoney(econ *economy.Economy, d *event.Dispatcher, amount int, reason event.EventType) {
	if amount <= 0 {
		return
	}
	econ.Credit(amount)
	d.Emit(event.MoneyChanged, event.MoneyData{Delta: amount, Balance: econ.Money(), Reason: reason})
}
