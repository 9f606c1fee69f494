package colstore

import (
	"errors"

	"github.com/rotisserie/eris"

	"github.com/colstore/colstore/log"
	"github.com/colstore/colstore/types"
)

// ErrEntityDoesNotExist is returned when an operation that validates its
// handle is given one that is stale or was never allocated.
var ErrEntityDoesNotExist = errors.New("entity does not exist")

// Create allocates a new entity handle. A recycled slot from the free list
// is preferred; its generation was bumped at destroy time, so handles to the
// previous occupant stay invalid. Otherwise a fresh slot is appended to the
// slot table and every registered column grows by one empty slot, keeping
// all columns the same length as the table.
func (w *World) Create() types.Entity {
	if n := len(w.free); n > 0 {
		e := w.free[n-1]
		w.free = w.free[:n-1]
		w.slots[e.Index].live = true
		log.EntityCreated(&w.logger, e, true)
		return e
	}
	e := types.Entity{Index: uint32(len(w.slots)), Generation: 0}
	w.slots = append(w.slots, slot{generation: 0, live: true})
	w.columns.ExtendAll()
	log.EntityCreated(&w.logger, e, false)
	return e
}

// Destroy invalidates e, empties its slot in every column, and returns the
// slot to the free list with a bumped generation. A stale or unknown handle
// returns ErrEntityDoesNotExist.
func (w *World) Destroy(e types.Entity) error {
	if !w.Valid(e) {
		return eris.Wrapf(ErrEntityDoesNotExist, "destroy %s", e)
	}
	w.columns.ClearAll(int(e.Index))
	s := &w.slots[e.Index]
	s.live = false
	s.generation++
	w.free = append(w.free, types.Entity{Index: e.Index, Generation: s.generation})
	log.EntityDestroyed(&w.logger, e)
	return nil
}

// Valid reports whether e refers to the current occupant of its slot: the
// index must be allocated, the slot live, and the generation an exact match.
// Handles to a since-recycled slot fail the generation comparison.
func (w *World) Valid(e types.Entity) bool {
	if int(e.Index) >= len(w.slots) {
		return false
	}
	s := w.slots[e.Index]
	return s.live && s.generation == e.Generation
}
