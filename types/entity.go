package types

import "strconv"

// Entity is an opaque handle to one logical object in a World. It pairs a
// slot index with a generation counter so a handle minted before a slot was
// recycled can be told apart from a handle to the slot's current occupant.
//
// Entities are plain values: copy them freely, compare them with ==. Two
// handles are equal iff both the index and the generation match.
type Entity struct {
	Index      uint32
	Generation uint32
}

// String returns the handle in "index.vGeneration" form, e.g. "3.v1".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.Index), 10) + ".v" + strconv.FormatUint(uint64(e.Generation), 10)
}
