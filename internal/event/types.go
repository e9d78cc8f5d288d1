package event

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

const (
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"
	EnemyEscaped     EventType = "EnemyEscaped" // Враг дошёл до конца пути
	TowerPlaced      EventType = "TowerPlaced"
	TowerUpgraded    EventType = "TowerUpgraded"
	TowerSold        EventType = "TowerSold"
	TowerFired       EventType = "TowerFired"
	ProjectileHit    EventType = "ProjectileHit"
	ProjectileMissed EventType = "ProjectileMissed" // Цель исчезла до попадания
	LifeLost         EventType = "LifeLost"
	MoneyChanged     EventType = "MoneyChanged"
	MoneyGenerated   EventType = "MoneyGenerated"
	WaveStarted      EventType = "WaveStarted"
	WaveEnded        EventType = "WaveEnded"
	GameOver         EventType = "GameOver"
)

type EnemyData struct {
	EnemyID types.EntityID
	DefID   string
	Reward  int
}

type TowerData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	Level   int
	Amount  int // стоимость, возврат при продаже или сгенерированная сумма
}

type FireData struct {
	TowerID      types.EntityID
	Kind         defs.TowerKind
	TargetID     types.EntityID
	ProjectileID types.EntityID
}

type HitData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID // башня, выпустившая снаряд (может быть уже продана)
	TargetID     types.EntityID
	Damage       int
	Remaining    int // здоровье цели после попадания
}

type MoneyData struct {
	Delta   int
	Balance int
	Reason  EventType
}

type LivesData struct {
	Lives int
}

type WaveData struct {
	Number int
	Count  int
}

type GameOverData struct {
	SessionID string
	Wave      int
	Time      float64
}
