// Package colstore is a sparse-columnar object store: a World hands out
// generational entity handles and attaches heterogeneously-typed component
// values to them, one lazily-created dense column per component type.
package colstore

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/colstore/colstore/storage"
	"github.com/colstore/colstore/types"
)

// slot is one row of the World's slot table. The row at index i always
// describes slot i; the generation counts how many times the slot has been
// destroyed and recycled.
type slot struct {
	generation uint32
	live       bool
}

// World owns the slot table, the free list, and every component column. It
// is the type-indexed router: attach and read operations find the column
// whose element type matches the request exactly.
//
// A World has a single logical owner. Nothing synchronizes the slot table,
// the free list, or the column collection; the only locking in the store is
// the per-column borrow lock guarding payload access.
type World struct {
	slots   []slot
	free    []types.Entity
	columns *storage.Manager
	logger  zerolog.Logger
}

// NewWorld creates an empty World.
func NewWorld(opts ...WorldOption) *World {
	w := &World{
		columns: storage.NewManager(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// EntityCount returns the total number of slots ever allocated, live or
// recycled. Every registered column has exactly this many slots.
func (w *World) EntityCount() int { return len(w.slots) }

// ColumnCount returns the number of registered component columns.
func (w *World) ColumnCount() int { return w.columns.Count() }

// ColumnTypes returns the element types of all registered columns in
// registration order.
func (w *World) ColumnTypes() []reflect.Type { return w.columns.Types() }

// Logger returns the World's logger.
func (w *World) Logger() *zerolog.Logger { return &w.logger }

// logAndPanic logs err and panics with it. Reserved for broken invariants;
// expected absence never comes through here.
func (w *World) logAndPanic(err error) {
	w.logger.Error().Err(err).Msg("invariant violated")
	panic(err)
}
