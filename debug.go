package colstore

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/colstore/colstore/codec"
	"github.com/colstore/colstore/types"
)

// DebugStateElement is one live entity and its component payloads, keyed by
// component type name, rendered as raw JSON.
type DebugStateElement struct {
	Entity     types.Entity               `json:"entity"`
	Components map[string]json.RawMessage `json:"components"`
}

// DebugState renders every live entity in the World for inspection. The
// output is a diagnostic view, not a persistence format; nothing reads it
// back. Columns with an empty slot for an entity are simply omitted from
// that entity's map.
func (w *World) DebugState() ([]DebugStateElement, error) {
	out := make([]DebugStateElement, 0, len(w.slots))
	for i, s := range w.slots {
		if !s.live {
			continue
		}
		elem := DebugStateElement{
			Entity:     types.Entity{Index: uint32(i), Generation: s.generation},
			Components: make(map[string]json.RawMessage),
		}
		for _, t := range w.columns.Types() {
			v, ok := w.columns.SlotValue(t, i)
			if !ok {
				continue
			}
			bz, err := codec.Encode(v)
			if err != nil {
				return nil, eris.Wrapf(err, "encode %s for entity %s", t, elem.Entity)
			}
			elem.Components[t.String()] = bz
		}
		out = append(out, elem)
	}
	return out, nil
}
