package graph

import "encoding/json"

// Emitter renders a Chain into a wire payload — generalized from the
// teacher's `Emitter.Emit(*File) ([]byte, error)` to Chains so that a UI
// builder's "export this chain" action isn't tied to a single format.
type Emitter interface {
	Emit(c *Chain) ([]byte, error)
}

// JSONEmitter renders a Chain as the §6 wire format.
type JSONEmitter struct {
	Indent string
}

// Emit marshals c, indenting with e.Indent when non-empty.
func (e JSONEmitter) Emit(c *Chain) ([]byte, error) {
	if e.Indent != "" {
		return json.MarshalIndent(c, "", e.Indent)
	}
	return json.Marshal(c)
}
