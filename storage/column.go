package storage

import (
	"reflect"
	"sync"

	"github.com/rotisserie/eris"
)

// AnyColumn is the type-erased face of a Column. It carries the operations a
// World needs to keep every column in lock-step with its slot table without
// knowing the element type.
type AnyColumn interface {
	// ExtendOneSlot appends one empty slot to the column.
	ExtendOneSlot()
	// Clear empties the slot at index.
	Clear(index int)
	// Len returns the number of slots in the column.
	Len() int
	// ElementType returns the runtime type of the column's payloads.
	ElementType() reflect.Type
	// SlotValue returns a type-erased copy of the payload at index, or false
	// for an empty slot. Used by the debug and logging paths.
	SlotValue(index int) (any, bool)
}

// Column is dense storage for one component type: one slot per entity slot
// in the owning World, each slot either empty or holding a value of T.
//
// Payload access goes through scoped accessors (Borrow, BorrowMut) guarding
// an interior read/write lock checked at runtime: any number of shared
// readers, or exactly one writer. The lock never blocks. All call sites are
// sequential, so contention can only mean an accessor was held across a call
// that re-entered the column, and that misuse panics instead of deadlocking.
type Column[T any] struct {
	mu       sync.RWMutex
	values   []T
	occupied []bool
}

var _ AnyColumn = (*Column[int])(nil)

// NewColumn creates a column with initialSize empty slots.
func NewColumn[T any](initialSize int) *Column[T] {
	return &Column[T]{
		values:   make([]T, initialSize),
		occupied: make([]bool, initialSize),
	}
}

func (c *Column[T]) Len() int { return len(c.values) }

func (c *Column[T]) ElementType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ExtendOneSlot appends one empty slot so the column stays length-synced
// with the owning World's slot table.
func (c *Column[T]) ExtendOneSlot() {
	c.lock()
	defer c.mu.Unlock()
	var zero T
	c.values = append(c.values, zero)
	c.occupied = append(c.occupied, false)
}

// Set overwrites the slot at index with value, marking it occupied. An index
// outside the column means the owning World broke its length invariant, so
// it panics rather than growing the column.
func (c *Column[T]) Set(index int, value T) {
	c.lock()
	defer c.mu.Unlock()
	if err := c.boundsCheck(index); err != nil {
		panic(err)
	}
	c.values[index] = value
	c.occupied[index] = true
}

// Clear empties the slot at index, dropping any payload it held.
func (c *Column[T]) Clear(index int) {
	c.lock()
	defer c.mu.Unlock()
	if err := c.boundsCheck(index); err != nil {
		panic(err)
	}
	var zero T
	c.values[index] = zero
	c.occupied[index] = false
}

// Borrow returns a shared scoped accessor over the slot at index, or false
// for an empty slot. The accessor holds the column's read lock until
// Release; release it before any call that can mutate this column.
func (c *Column[T]) Borrow(index int) (*Ref[T], bool) {
	if !c.mu.TryRLock() {
		panic(eris.Errorf("storage: %s column is exclusively borrowed", c.ElementType()))
	}
	if err := c.boundsCheck(index); err != nil {
		c.mu.RUnlock()
		panic(err)
	}
	if !c.occupied[index] {
		c.mu.RUnlock()
		return nil, false
	}
	return &Ref[T]{col: c, index: index}, true
}

// BorrowMut returns an exclusive scoped accessor over the slot at index, or
// false for an empty slot. It is mutually exclusive with every other
// outstanding accessor on this column.
func (c *Column[T]) BorrowMut(index int) (*MutRef[T], bool) {
	c.lock()
	if err := c.boundsCheck(index); err != nil {
		c.mu.Unlock()
		panic(err)
	}
	if !c.occupied[index] {
		c.mu.Unlock()
		return nil, false
	}
	return &MutRef[T]{col: c, index: index}, true
}

// SlotValue implements AnyColumn. It takes the shared lock for the duration
// of the copy, so it is subject to the same borrow discipline as Borrow.
func (c *Column[T]) SlotValue(index int) (any, bool) {
	ref, ok := c.Borrow(index)
	if !ok {
		return nil, false
	}
	defer ref.Release()
	return ref.Value(), true
}

func (c *Column[T]) lock() {
	if !c.mu.TryLock() {
		panic(eris.Errorf("storage: %s column is already borrowed", c.ElementType()))
	}
}

func (c *Column[T]) boundsCheck(index int) error {
	if index < 0 || index >= len(c.values) {
		return eris.Errorf("storage: index %d out of range for %s column of length %d",
			index, c.ElementType(), len(c.values))
	}
	return nil
}
