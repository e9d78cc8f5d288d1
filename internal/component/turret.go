// internal/component/turret.go
package component

import "go-path-defense/internal/types"

// TurretComponent хранит направление "головы" башни.
type TurretComponent struct {
	// Angle - угол к последней цели в радианах.
	Angle float32
	// TargetID - ID последней цели.
	TargetID types.EntityID
}
