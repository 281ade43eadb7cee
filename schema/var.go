// Package schema implements Fury's JSON-schema-like value descriptor, the
// Var. A Var describes the shape of a single named input or output: its
// type, structural children (items, additionalProperties), and UI-facing
// rendering hints (password, placeholder, show).
package schema

import "encoding/json"

// Kind enumerates the closed set of primitive Var types. A union type is
// represented separately by Var.Type holding []*Var instead of a Kind.
type Kind string

const (
	KindString    Kind = "string"
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
	KindNull      Kind = "null"
	KindException Kind = "exception"
	KindModel     Kind = "model"
)

// FormatByte marks a string Var whose runtime value is base64-ish byte data.
const FormatByte = "byte"

// Var is a JSON-schema-like descriptor of a single named value. Type holds
// either a Kind (one of the constants above) or a []*Var for a union
// ("any-of") type; callers should prefer the constructor helpers below
// rather than building a Var by hand.
//
// Var is immutable after construction and safe to share across concurrent
// Chain executions: it never carries a runtime-bound value. Projected
// output values live in the executor's IR map instead (see package graph).
type Var struct {
	Type                 any    `json:"type"`
	Format               string `json:"format,omitempty"`
	Items                []*Var `json:"items,omitempty"`
	AdditionalProperties any    `json:"additionalProperties,omitempty"`
	Password             bool   `json:"password,omitempty"`
	Required             bool   `json:"required,omitempty"`
	Placeholder          string `json:"placeholder,omitempty"`
	Show                 bool   `json:"show,omitempty"`
	Name                 string `json:"name,omitempty"`

	// Loc is the location path into a native result used to extract this
	// output's value (§4.E step 4). Empty for input Vars. Not part of the
	// wire format.
	Loc []any `json:"-"`
}

// String builds a string Var; Required is left false.
func String(name string) *Var { return &Var{Type: KindString, Name: name} }

// Secret builds a string Var flagged for password-style UI rendering.
func Secret(name string) *Var { return &Var{Type: KindString, Name: name, Password: true} }

// Bytes builds a string Var with the "byte" format refinement.
func Bytes(name string) *Var { return &Var{Type: KindString, Format: FormatByte, Name: name} }

// Number builds a number Var.
func Number(name string) *Var { return &Var{Type: KindNumber, Name: name} }

// Boolean builds a boolean Var.
func Boolean(name string) *Var { return &Var{Type: KindBoolean, Name: name} }

// Null builds a null Var, valid only in return-position analysis.
func Null(name string) *Var { return &Var{Type: KindNull, Name: name} }

// Exception builds an exception Var, valid only in return-position analysis.
func Exception() *Var { return &Var{Type: KindException} }

// Model builds a Var representing Fury's Model handle type.
func Model(name string) *Var { return &Var{Type: KindModel, Name: name} }

// Array builds an array Var from its positional item schemas. A
// homogeneous list has exactly one item; a tuple has len(items) == arity.
func Array(name string, items ...*Var) *Var {
	return &Var{Type: KindArray, Name: name, Items: items}
}

// Object builds an object Var whose values all share a single schema.
func Object(name string, valueSchema *Var) *Var {
	return &Var{Type: KindObject, Name: name, AdditionalProperties: valueSchema}
}

// NamedObject builds an object Var whose keys are the given Vars' names;
// each must carry a non-empty Name.
func NamedObject(name string, fields ...*Var) *Var {
	return &Var{Type: KindObject, Name: name, AdditionalProperties: fields}
}

// Union builds an any-of Var from two or more alternatives. A unary
// "union" should be unwrapped by the caller instead of calling Union.
func Union(name string, alternatives ...*Var) *Var {
	return &Var{Type: alternatives, Name: name}
}

// IsUnion reports whether the Var's Type is an any-of list of Vars.
func (v *Var) IsUnion() bool {
	_, ok := v.Type.([]*Var)
	return ok
}

// Alternatives returns the union members, or nil if v is not a union.
func (v *Var) Alternatives() []*Var {
	alts, _ := v.Type.([]*Var)
	return alts
}

// KindOf returns the Var's primitive Kind, or "" if it is a union.
func (v *Var) KindOf() Kind {
	if k, ok := v.Type.(Kind); ok {
		return k
	}
	return ""
}

// varWire mirrors Var's exported shape but lets us post-process Type and
// AdditionalProperties into plain JSON-marshalable values.
type varWire struct {
	Type                 any    `json:"type"`
	Format               string `json:"format,omitempty"`
	Items                []*Var `json:"items,omitempty"`
	AdditionalProperties any    `json:"additionalProperties,omitempty"`
	Password             bool   `json:"password,omitempty"`
	Required             bool   `json:"required,omitempty"`
	Placeholder          string `json:"placeholder,omitempty"`
	Show                 bool   `json:"show,omitempty"`
	Name                 string `json:"name,omitempty"`
}

// MarshalJSON emits only attributes whose values are non-empty/non-default,
// mirroring the Python source's to_dict. Unions (Type == []*Var) serialise
// as a list of Var objects under "type"; a single-Var AdditionalProperties
// serialises inline, a []*Var one as a list.
func (v *Var) MarshalJSON() ([]byte, error) {
	w := varWire{
		Type:        v.Type,
		Format:      v.Format,
		Items:       v.Items,
		Password:    v.Password,
		Required:    v.Required,
		Placeholder: v.Placeholder,
		Show:        v.Show,
		Name:        v.Name,
	}
	if k, ok := v.Type.(Kind); ok {
		w.Type = string(k)
	}
	switch ap := v.AdditionalProperties.(type) {
	case nil:
		// omitted
	case *Var:
		w.AdditionalProperties = ap
	case []*Var:
		if len(ap) > 0 {
			w.AdditionalProperties = ap
		}
	}
	return json.Marshal(w)
}
