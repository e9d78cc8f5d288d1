package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

func TestNewEntityIsMonotonic(t *testing.T) {
	ecs := NewECS()
	a, b, c := ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()
	assert.Equal(t, []types.EntityID{1, 2, 3}, []types.EntityID{a, b, c})
}

func TestEnemyIDsAreOrdered(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 20; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
	}
	delete(ecs.Enemies, 5)

	ids := ecs.EnemyIDs()
	assert.Len(t, ids, 19)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestRemoveEntityAndIsAlive(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{}
	ecs.Healths[id] = &component.Health{Value: 10, Max: 10}
	ecs.Positions[id] = &component.Position{}
	assert.True(t, ecs.IsAlive(id))

	ecs.Healths[id].Value = 0
	assert.False(t, ecs.IsAlive(id))

	ecs.RemoveEntity(id)
	assert.Empty(t, ecs.Enemies)
	assert.Empty(t, ecs.Positions)
	assert.False(t, ecs.IsAlive(id))
}
