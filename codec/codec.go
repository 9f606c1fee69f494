// Package codec renders component payloads as JSON for the debug and
// logging paths. It is an observability device, not a persistence format:
// nothing in the store ever reads these bytes back into live state.
package codec

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Encode renders a component payload as JSON.
func Encode(comp any) ([]byte, error) {
	bz, err := json.Marshal(comp)
	if err != nil {
		return nil, eris.Wrap(err, "marshal component")
	}
	return bz, nil
}

// Decode parses an Encode payload back into a concrete component type.
func Decode[T any](bz []byte) (T, error) {
	comp := new(T)
	if err := json.Unmarshal(bz, comp); err != nil {
		return *comp, eris.Wrap(err, "unmarshal component")
	}
	return *comp, nil
}
