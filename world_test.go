package colstore_test

import (
	"testing"

	"github.com/colstore/colstore"
	"github.com/colstore/colstore/assert"
	"github.com/colstore/colstore/types"
)

type Health struct {
	Value int
}

type Speed struct {
	Value int
}

type Name struct {
	Value string
}

func TestWorldStartsEmpty(t *testing.T) {
	world := colstore.NewWorld()
	assert.Equal(t, world.EntityCount(), 0)
	assert.Equal(t, world.ColumnCount(), 0)
}

func TestCreateAssignsSequentialSlots(t *testing.T) {
	world := colstore.NewWorld()
	e1 := world.Create()
	e2 := world.Create()
	e3 := world.Create()
	assert.Equal(t, e1, types.Entity{Index: 0, Generation: 0})
	assert.Equal(t, e2, types.Entity{Index: 1, Generation: 0})
	assert.Equal(t, e3, types.Entity{Index: 2, Generation: 0})
	assert.Equal(t, world.EntityCount(), 3)
	assert.True(t, world.Valid(e1))
	assert.True(t, world.Valid(e2))
	assert.True(t, world.Valid(e3))
}

func TestWorldExampleScenario(t *testing.T) {
	world := colstore.NewWorld()

	e1 := world.Create()
	colstore.SetComponent(world, e1, Health{Value: 10})

	e2 := world.Create()
	colstore.SetComponent(world, e2, Health{Value: 20})
	colstore.SetComponent(world, e2, Speed{Value: 100})

	assert.Equal(t, world.ColumnCount(), 2)

	h1, ok := colstore.GetComponent[Health](world, e1)
	assert.True(t, ok)
	assert.Equal(t, h1.Value(), Health{Value: 10})
	h1.Release()

	h2, ok := colstore.GetComponent[Health](world, e2)
	assert.True(t, ok)
	assert.Equal(t, h2.Value(), Health{Value: 20})
	h2.Release()

	s2, ok := colstore.GetComponentMut[Speed](world, e2)
	assert.True(t, ok)
	s2.Set(Speed{Value: 1000})
	s2.Release()

	s2Again, ok := colstore.GetComponent[Speed](world, e2)
	assert.True(t, ok)
	assert.Equal(t, s2Again.Value(), Speed{Value: 1000})
	s2Again.Release()

	_, ok = colstore.GetComponent[Speed](world, e1)
	assert.False(t, ok)
}

func TestDestroyInvalidatesHandle(t *testing.T) {
	world := colstore.NewWorld()
	e := world.Create()
	colstore.SetComponent(world, e, Health{Value: 5})

	assert.NilError(t, world.Destroy(e))
	assert.False(t, world.Valid(e))
	_, ok := colstore.GetComponent[Health](world, e)
	assert.False(t, ok)
}

func TestDestroyStaleHandleReturnsError(t *testing.T) {
	world := colstore.NewWorld()
	e := world.Create()
	assert.NilError(t, world.Destroy(e))
	assert.ErrorIs(t, world.Destroy(e), colstore.ErrEntityDoesNotExist)
}

func TestDestroyUnknownHandleReturnsError(t *testing.T) {
	world := colstore.NewWorld()
	err := world.Destroy(types.Entity{Index: 42, Generation: 0})
	assert.ErrorIs(t, err, colstore.ErrEntityDoesNotExist)
}

func TestDestroyedSlotIsReusedWithBumpedGeneration(t *testing.T) {
	world := colstore.NewWorld()
	old := world.Create()
	colstore.SetComponent(world, old, Health{Value: 9})
	assert.NilError(t, world.Destroy(old))

	reused := world.Create()
	assert.Equal(t, reused.Index, old.Index)
	assert.Equal(t, reused.Generation, old.Generation+1)
	// Reuse recycles the slot, it does not allocate a new one.
	assert.Equal(t, world.EntityCount(), 1)

	// The destroy path cleared the slot in every column.
	_, ok := colstore.GetComponent[Health](world, reused)
	assert.False(t, ok)
}

func TestWithInitialCapacity(t *testing.T) {
	world := colstore.NewWorld(colstore.WithInitialCapacity(64))
	assert.Equal(t, world.EntityCount(), 0)
	e := world.Create()
	assert.True(t, world.Valid(e))
}
