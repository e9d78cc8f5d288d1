// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

type ECS struct {
	GameTime      float64 // мс игрового времени, растёт только в Tick
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Renderables   map[types.EntityID]*component.Renderable
	Towers        map[types.EntityID]*component.Tower
	Combats       map[types.EntityID]*component.Combat
	Generators    map[types.EntityID]*component.Generator
	Turrets       map[types.EntityID]*component.TurretComponent
	Projectiles   map[types.EntityID]*component.Projectile
	Enemies       map[types.EntityID]*component.Enemy
	DamageFlashes map[types.EntityID]*component.DamageFlash
	Wave          *component.Wave
	Phase         component.GamePhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Towers:        make(map[types.EntityID]*component.Tower),
		Combats:       make(map[types.EntityID]*component.Combat),
		Generators:    make(map[types.EntityID]*component.Generator),
		Turrets:       make(map[types.EntityID]*component.TurretComponent),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Phase:         component.BuildPhase,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Generators, id)
	delete(ecs.Turrets, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}

// IsAlive сообщает, что враг ещё в реестре и у него есть здоровье.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	_, isEnemy := ecs.Enemies[id]
	health, hasHealth := ecs.Healths[id]
	return isEnemy && hasHealth && health.Value > 0
}

// Обход map в Go случаен, а выбор цели и порядок обновления должны быть
// детерминированы, поэтому системы перебирают сущности по возрастанию ID
// (то есть в порядке создания).

func (ecs *ECS) EnemyIDs() []types.EntityID      { return sortedKeys(ecs.Enemies) }
func (ecs *ECS) TowerIDs() []types.EntityID      { return sortedKeys(ecs.Towers) }
func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedKeys(ecs.Projectiles) }
func (ecs *ECS) GeneratorIDs() []types.EntityID  { return sortedKeys(ecs.Generators) }

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
