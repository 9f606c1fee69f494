package types_test

import (
	"testing"

	"github.com/colstore/colstore/assert"
	"github.com/colstore/colstore/types"
)

func TestEntityEquality(t *testing.T) {
	a := types.Entity{Index: 1, Generation: 2}
	b := types.Entity{Index: 1, Generation: 2}
	assert.Equal(t, a, b)

	// Same slot, different generation: different entities.
	c := types.Entity{Index: 1, Generation: 3}
	assert.Assert(t, a != c)

	d := types.Entity{Index: 2, Generation: 2}
	assert.Assert(t, a != d)
}

func TestEntityString(t *testing.T) {
	assert.Equal(t, types.Entity{Index: 3, Generation: 1}.String(), "3.v1")
	assert.Equal(t, types.Entity{}.String(), "0.v0")
}
