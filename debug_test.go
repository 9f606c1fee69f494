package colstore_test

import (
	"testing"

	"github.com/colstore/colstore"
	"github.com/colstore/colstore/assert"
	"github.com/colstore/colstore/codec"
	"github.com/colstore/colstore/types"
)

func TestDebugStateListsLiveEntities(t *testing.T) {
	world := colstore.NewWorld()
	e1 := world.Create()
	colstore.SetComponent(world, e1, Health{Value: 10})
	e2 := world.Create()
	colstore.SetComponent(world, e2, Health{Value: 20})
	colstore.SetComponent(world, e2, Speed{Value: 100})

	state, err := world.DebugState()
	assert.NilError(t, err)
	assert.Equal(t, len(state), 2)

	assert.Equal(t, state[0].Entity, e1)
	assert.Equal(t, len(state[0].Components), 1)
	assert.Equal(t, len(state[1].Components), 2)

	h, err := codec.Decode[Health](state[1].Components["colstore_test.Health"])
	assert.NilError(t, err)
	assert.Equal(t, h, Health{Value: 20})

	s, err := codec.Decode[Speed](state[1].Components["colstore_test.Speed"])
	assert.NilError(t, err)
	assert.Equal(t, s, Speed{Value: 100})
}

func TestDebugStateOmitsDestroyedEntities(t *testing.T) {
	world := colstore.NewWorld()
	e1 := world.Create()
	e2 := world.Create()
	colstore.SetComponent(world, e1, Health{Value: 1})
	colstore.SetComponent(world, e2, Health{Value: 2})
	assert.NilError(t, world.Destroy(e1))

	state, err := world.DebugState()
	assert.NilError(t, err)
	got := make([]types.Entity, 0, len(state))
	for _, elem := range state {
		got = append(got, elem.Entity)
	}
	assert.DeepEqual(t, got, []types.Entity{e2})
}

func TestDebugStateOnEmptyWorld(t *testing.T) {
	world := colstore.NewWorld()
	state, err := world.DebugState()
	assert.NilError(t, err)
	assert.Equal(t, len(state), 0)
}
