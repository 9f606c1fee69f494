package storage

import "github.com/rotisserie/eris"

// Ref is a shared scoped accessor over one occupied column slot. It holds
// the column's read lock from Borrow until Release, so the payload it reads
// cannot change underneath it. Any number of Refs may be alive on a column
// at once; a MutRef excludes them all.
type Ref[T any] struct {
	col      *Column[T]
	index    int
	released bool
}

// Value returns a copy of the slot's payload.
func (r *Ref[T]) Value() T {
	if r.released {
		panic(eris.New("storage: use of released accessor"))
	}
	return r.col.values[r.index]
}

// Release returns the column's read lock. The accessor is dead afterwards;
// releasing twice panics.
func (r *Ref[T]) Release() {
	if r.released {
		panic(eris.New("storage: accessor released twice"))
	}
	r.released = true
	r.col.mu.RUnlock()
}

// MutRef is an exclusive scoped accessor over one occupied column slot. It
// holds the column's write lock from BorrowMut until Release. At most one
// MutRef may be alive on a column, and no Ref may coexist with it.
type MutRef[T any] struct {
	col      *Column[T]
	index    int
	released bool
}

// Value returns a copy of the slot's payload.
func (r *MutRef[T]) Value() T {
	if r.released {
		panic(eris.New("storage: use of released accessor"))
	}
	return r.col.values[r.index]
}

// Set overwrites the slot's payload in place.
func (r *MutRef[T]) Set(value T) {
	if r.released {
		panic(eris.New("storage: use of released accessor"))
	}
	r.col.values[r.index] = value
}

// Release returns the column's write lock. The accessor is dead afterwards;
// releasing twice panics.
func (r *MutRef[T]) Release() {
	if r.released {
		panic(eris.New("storage: accessor released twice"))
	}
	r.released = true
	r.col.mu.Unlock()
}
