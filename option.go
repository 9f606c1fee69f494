package colstore

import (
	"github.com/rs/zerolog"

	"github.com/colstore/colstore/types"
)

// WorldOption augments the creation of a World.
type WorldOption func(*World)

// WithLogger replaces the World's logger. The default logger discards
// everything; pass one backed by a buffer in tests to observe store events.
func WithLogger(logger zerolog.Logger) WorldOption {
	return func(w *World) {
		w.logger = logger
	}
}

// WithInitialCapacity pre-allocates the slot table and free list for n
// entities. Purely an allocation hint; the World still starts empty.
func WithInitialCapacity(n int) WorldOption {
	return func(w *World) {
		w.slots = make([]slot, 0, n)
		w.free = make([]types.Entity, 0, n)
	}
}
