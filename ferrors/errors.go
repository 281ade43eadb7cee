// Package ferrors implements Fury's error taxonomy (spec.md §7): a single
// exported Error type whose Kind names the taxonomy member, one constructor
// per kind, each error carrying a formatted stack trace via
// github.com/pkg/errors so that every error surfaced by the engine can be
// rendered as the "formatted stack string" diagnostic spec.md §4.E and §6
// require, without hand-rolling stack capture.
package ferrors

import (
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind names one of the error taxonomy's members.
type Kind string

const (
	KindUnsupportedType    Kind = "UnsupportedType"
	KindInvalidReturnShape Kind = "InvalidReturnShape"
	KindArityMismatch      Kind = "ArityMismatch"
	KindTemplateParseError Kind = "TemplateParseError"
	KindUnknownInputs      Kind = "UnknownInputs"
	KindMissingIntermediate Kind = "MissingIntermediate"
	KindNotDAG             Kind = "NotDAGError"
	KindMissingNode        Kind = "MissingNode"
	KindNodeExecutionError Kind = "NodeExecutionError"
	KindCancelled          Kind = "Cancelled"
)

// Error is the common shape of every Fury error: a Kind, a human-readable
// message, and (via Stack) a formatted traceback suitable as the
// diagnostic payload described in spec.md §6 "Error surface".
type Error struct {
	Kind Kind
	Msg  string
	err  error // carries the stack trace (github.com/pkg/errors)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the underlying stack-carrying error to errors.As/Is.
func (e *Error) Unwrap() error { return e.err }

// Stack renders the formatted stack trace for this error, the Go
// counterpart of the Python source's traceback.format_exc() string.
func (e *Error) Stack() string {
	return fmt.Sprintf("%s\n%+v", e.Msg, e.err)
}

func wrap(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, err: pkgerrors.New(msg)}
}

func wrapCause(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, err: pkgerrors.WithStack(cause)}
}

// NewUnsupportedType reports a native annotation that cannot be mapped to
// the schema model (spec.md §4.B).
func NewUnsupportedType(typ string) *Error {
	return wrap(KindUnsupportedType, fmt.Sprintf("unsupported type: %s", typ))
}

// NewInvalidReturnShape reports a native fn whose signature is not
// func(map[string]any) (<payload>, error) (spec.md §4.B).
func NewInvalidReturnShape(msg string) *Error {
	return wrap(KindInvalidReturnShape, msg)
}

// NewArityMismatch reports a `returns` mapping whose size disagrees with
// the payload's array arity (spec.md §4.B).
func NewArityMismatch(got, want string) *Error {
	return wrap(KindArityMismatch, fmt.Sprintf("returns arity mismatch: got %s, want %s", got, want))
}

// NewTemplateParseError wraps a template-dialect parse failure, surfacing
// the original error after a user-visible diagnostic (spec.md §4.C).
func NewTemplateParseError(cause error) *Error {
	return wrapCause(KindTemplateParseError,
		"could not parse prompt template; only range/if/with/pipelines are supported", cause)
}

// NewUnknownInputs reports input keys a node does not declare (spec.md §4.E).
func NewUnknownInputs(keys []string) *Error {
	return wrap(KindUnknownInputs, fmt.Sprintf("unknown inputs: %s", strings.Join(keys, ", ")))
}

// NewMissingIntermediate reports an IR key no upstream node produced
// (spec.md §4.G).
func NewMissingIntermediate(key string) *Error {
	return wrap(KindMissingIntermediate, fmt.Sprintf("missing value for %s", key))
}

// NewNotDAG reports a cycle in the edge set (spec.md §4.F).
func NewNotDAG() *Error {
	return wrap(KindNotDAG, "a cycle exists in the graph")
}

// NewMissingNode reports an edge referencing an unknown node id (spec.md §4.F).
func NewMissingNode(id string) *Error {
	return wrap(KindMissingNode, fmt.Sprintf("missing node from an edge: %s", id))
}

// NewNodeExecutionError wraps any error raised by a node's underlying
// callable, carrying the formatted stack (spec.md §7).
func NewNodeExecutionError(nodeID string, cause error) *Error {
	return wrapCause(KindNodeExecutionError, fmt.Sprintf("node %q failed", nodeID), cause)
}

// NewCancelled reports that the caller's context was cancelled between
// node invocations (spec.md §5).
func NewCancelled(cause error) *Error {
	return wrapCause(KindCancelled, "chain execution cancelled", cause)
}

// Is reports whether err is a Fury *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if !pkgerrors.As(err, &fe) {
		return false
	}
	return fe.Kind == kind
}
