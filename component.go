package colstore

import (
	"github.com/rotisserie/eris"

	"github.com/colstore/colstore/log"
	"github.com/colstore/colstore/storage"
	"github.com/colstore/colstore/types"
)

// SetComponent attaches a component value of type T to e, creating the
// column for T on first use, sized to the current slot count. Attaching to
// an entity that already has a T overwrites it.
//
// The handle is deliberately not validated against the slot table: any
// index inside the allocated range is written, even from a stale handle, so
// a write through an old generation lands in the slot's current occupant.
// Reads are the strict side; see GetComponent. An index outside the
// allocated range is an invariant violation and panics.
func SetComponent[T any](w *World, e types.Entity, value T) {
	if int(e.Index) >= len(w.slots) {
		w.logAndPanic(eris.Errorf(
			"set component: entity %s out of range (%d slots allocated)", e, len(w.slots)))
	}
	col := ensureColumn[T](w)
	col.Set(int(e.Index), value)
	log.ComponentSet(&w.logger, e, col.ElementType(), value)
}

// GetComponent returns a shared scoped accessor over e's component of type
// T. It reports false when the handle is stale or unknown, when no column
// for T exists, or when e's slot in that column is empty; at this layer a
// bad handle is indistinguishable from an absent component.
//
// The accessor holds the column's read lock: release it before attaching
// components or destroying entities, either of which may need the column.
func GetComponent[T any](w *World, e types.Entity) (*storage.Ref[T], bool) {
	if !w.Valid(e) {
		return nil, false
	}
	col, ok := storage.ColumnOf[T](w.columns)
	if !ok {
		return nil, false
	}
	return col.Borrow(int(e.Index))
}

// GetComponentMut is GetComponent with an exclusive accessor: it permits
// writing the payload in place and excludes every other accessor on the
// same column while alive.
func GetComponentMut[T any](w *World, e types.Entity) (*storage.MutRef[T], bool) {
	if !w.Valid(e) {
		return nil, false
	}
	col, ok := storage.ColumnOf[T](w.columns)
	if !ok {
		return nil, false
	}
	return col.BorrowMut(int(e.Index))
}

// ensureColumn returns the column for T, registering a new one sized to the
// slot table when T has not been seen before.
func ensureColumn[T any](w *World) *storage.Column[T] {
	if col, ok := storage.ColumnOf[T](w.columns); ok {
		return col
	}
	col := storage.EnsureColumnOf[T](w.columns, len(w.slots))
	log.ColumnCreated(&w.logger, col.ElementType(), col.Len())
	return col
}
