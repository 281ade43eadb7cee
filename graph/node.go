// Package graph implements Fury's Node/Edge/Chain data model and its
// topological executor (spec.md §4.E–§4.G, §9): the directed acyclic
// graph of computational units whose edges carry named values between
// them.
package graph

import (
	"encoding/json"
	"sort"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/flog"
	"github.com/neria05/fury/schema"
	"github.com/neria05/fury/value"
)

// Type distinguishes a Node's callable from a programmatic action or an
// AI action — the two only differ in how their Fn is constructed
// (package model builds AI-action Fns), never in how a Node invokes one.
type Type string

const (
	Programmatic Type = "programmatic"
	AIPowered    Type = "ai-powered"
)

// Fn is the callable body a Node wraps. It receives the node's bound
// input data and returns a raw payload alongside an error — the Go
// counterpart of the source's `fn(**data) -> (payload, Optional[Exception])`
// contract (spec.md §6).
type Fn func(data map[string]any) (any, error)

// Node is a registered computational unit: a callable plus the declared
// Vars describing its inputs (Fields) and outputs.
type Node struct {
	ID          string
	Type        Type
	Description string
	Fields      []*schema.Var
	Outputs     []*schema.Var
	fn          Fn
}

// NewNode constructs a Node, rejecting any Type outside the closed set.
func NewNode(id string, typ Type, fn Fn, fields, outputs []*schema.Var, description string) (*Node, error) {
	switch typ {
	case Programmatic, AIPowered:
	default:
		return nil, ferrors.NewUnsupportedType("node type " + string(typ))
	}
	return &Node{
		ID:          id,
		Type:        typ,
		Description: description,
		Fields:      fields,
		Outputs:     outputs,
		fn:          fn,
	}, nil
}

// HasField reports whether name is one of the Node's declared input
// fields, used by the executor to route shared initial inputs (spec.md §4.G).
func (n *Node) HasField(name string) bool {
	for _, f := range n.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Call invokes the node's callable (spec.md §4.E):
//  1. any key in data not among the declared Fields fails with UnknownInputs.
//  2. the callable is invoked; a non-nil error is wrapped as NodeExecutionError.
//  3. when projectOutputs is true, each output's value is lifted out of the
//     raw payload via its Loc and returned as a {name: value} map; otherwise
//     the raw payload is returned unchanged.
func (n *Node) Call(data map[string]any, projectOutputs bool) (any, error) {
	log := flog.Default()

	declared := make(map[string]bool, len(n.Fields))
	for _, f := range n.Fields {
		declared[f.Name] = true
	}

	var unknown []string
	for k := range data {
		if !declared[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		log.Error("unknown inputs", "node_id", n.ID, "keys", unknown)
		return nil, ferrors.NewUnknownInputs(unknown)
	}

	payload, err := n.fn(data)
	if err != nil {
		log.Error("node callable failed", "node_id", n.ID, "error", err)
		return nil, ferrors.NewNodeExecutionError(n.ID, err)
	}

	if !projectOutputs {
		return payload, nil
	}

	out := make(map[string]any, len(n.Outputs))
	for _, o := range n.Outputs {
		out[o.Name] = value.Get(payload, o.Loc)
	}
	return out, nil
}

type nodeWire struct {
	ID          string        `json:"id"`
	Type        Type          `json:"type"`
	Description string        `json:"description"`
	Fields      []*schema.Var `json:"fields"`
	Outputs     []*schema.Var `json:"outputs"`
}

// MarshalJSON emits the Node wire shape required by spec.md §6.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeWire{
		ID:          n.ID,
		Type:        n.Type,
		Description: n.Description,
		Fields:      n.Fields,
		Outputs:     n.Outputs,
	})
}
