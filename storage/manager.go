package storage

import (
	"reflect"

	"github.com/rotisserie/eris"
)

// Manager owns a World's column collection: at most one column per concrete
// component type, keyed by the element's runtime type. Columns are created
// lazily on first attach and live for the life of the Manager.
//
// The Manager is not safe for concurrent use; like the World that owns it,
// it expects a single logical owner. Locking lives inside each Column.
type Manager struct {
	columns map[reflect.Type]AnyColumn
	order   []reflect.Type // registration order, for deterministic fan-out
}

// NewManager creates an empty column collection.
func NewManager() *Manager {
	return &Manager{
		columns: make(map[reflect.Type]AnyColumn, 16),
	}
}

// register adds a column under its element type. Registering a second
// column for a type already present is an invariant violation and panics;
// EnsureColumnOf is the only caller and guards against it, so a duplicate
// here means type routing is broken.
func (m *Manager) register(col AnyColumn) {
	t := col.ElementType()
	if _, dup := m.columns[t]; dup {
		panic(eris.Errorf("storage: column for %s registered twice", t))
	}
	m.columns[t] = col
	m.order = append(m.order, t)
}

// Count returns the number of registered columns.
func (m *Manager) Count() int { return len(m.order) }

// Types returns the element types of all registered columns in registration
// order.
func (m *Manager) Types() []reflect.Type {
	out := make([]reflect.Type, len(m.order))
	copy(out, m.order)
	return out
}

// ExtendAll appends one empty slot to every registered column. The World
// calls this whenever it allocates a fresh slot, keeping every column the
// same length as the slot table.
func (m *Manager) ExtendAll() {
	for _, t := range m.order {
		m.columns[t].ExtendOneSlot()
	}
}

// ClearAll empties the slot at index in every registered column. This is the
// destroy path: the recycled slot must read as empty for its next occupant.
func (m *Manager) ClearAll(index int) {
	for _, t := range m.order {
		m.columns[t].Clear(index)
	}
}

// SlotValue returns a type-erased copy of the payload the column for t holds
// at index, or false when no such column exists or the slot is empty.
func (m *Manager) SlotValue(t reflect.Type, index int) (any, bool) {
	col, ok := m.columns[t]
	if !ok {
		return nil, false
	}
	return col.SlotValue(index)
}

// ColumnOf returns the registered column holding T payloads. Lookup is by
// runtime type identity, so the match is exact: attaching a T never routes
// to a column of some other type.
func ColumnOf[T any](m *Manager) (*Column[T], bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	col, ok := m.columns[t]
	if !ok {
		return nil, false
	}
	return col.(*Column[T]), true
}

// EnsureColumnOf returns the column for T, creating and registering one with
// size empty slots when none exists yet.
func EnsureColumnOf[T any](m *Manager, size int) *Column[T] {
	if col, ok := ColumnOf[T](m); ok {
		return col
	}
	col := NewColumn[T](size)
	m.register(col)
	return col
}
