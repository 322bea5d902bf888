package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-base-defense/internal/component"
	"go-base-defense/internal/types"
)

func TestECS_HandlesAreGenerationChecked(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	ecs.Enemies[a] = &component.Enemy{Health: 10}
	require.True(t, ecs.Alive(a))
	assert.False(t, ecs.Alive(types.NoEntity))

	ecs.DestroyEntity(a)
	assert.False(t, ecs.Alive(a))
	assert.NotContains(t, ecs.Enemies, a)

	b := ecs.NewEntity()
	assert.Equal(t, a.Index(), b.Index(), "slot is reused")
	assert.NotEqual(t, a, b)
	assert.False(t, ecs.Alive(a), "stale handle stays dead")

	ecs.Enemies[b] = &component.Enemy{Health: 20}
	ecs.DestroyEntity(a)
	assert.True(t, ecs.Alive(b), "destroying a stale handle is a no-op")
	_, ok := ecs.Enemies[a]
	assert.False(t, ok)
}

func TestECS_ClearResetsSession(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		id := ecs.NewEntity()
		ecs.Transforms[id] = &component.Transform{}
	}
	ecs.BaseID = ecs.NewEntity()
	ecs.Bases[ecs.BaseID] = &component.Base{}
	ecs.Transforms[ecs.BaseID] = &component.Transform{}
	ecs.GameTime = 12
	ecs.Over = true
	old := ecs.BaseID

	ecs.Clear()
	assert.Empty(t, ecs.Transforms)
	assert.Empty(t, ecs.Bases)
	assert.Zero(t, ecs.GameTime)
	assert.False(t, ecs.Over)
	assert.False(t, ecs.Alive(old))
	_, _, ok := ecs.Base()
	assert.False(t, ok)

	ids := map[types.EntityID]bool{}
	for i := 0; i < 6; i++ {
		id := ecs.NewEntity()
		assert.False(t, ids[id])
		ids[id] = true
	}
	assert.Equal(t, 6, ecs.Count())
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{
		types.NewEntityID(3, 1): 0,
		types.NewEntityID(1, 2): 0,
		types.NewEntityID(2, 1): 0,
	}
	ids := SortedIDs(m)
	require.Len(t, ids, 3)
	assert.Equal(t, uint32(1), ids[0].Index())
	assert.Equal(t, uint32(2), ids[1].Index())
	assert.Equal(t, uint32(3), ids[2].Index())
}
