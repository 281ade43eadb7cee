package signature

import (
	"fmt"
	"reflect"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/schema"
)

var mapStringAnyType = reflect.TypeOf(map[string]any{})

// ReturnProjection names one output and the location path used to lift its
// value out of a node's raw payload (spec.md §4.B's `returns` mapping).
// Ordered, unlike a Go map, so that positional naming (§4.B) is
// deterministic the way Python's insertion-ordered dict is.
type ReturnProjection struct {
	Name string
	Loc  []any
}

// Returns analyses a registered native action's return shape and produces
// the []Var for its outputs, mirroring func_to_return_vars.
//
// fn must be shaped func(map[string]any) (<payload>, error); any other
// shape fails with InvalidReturnShape — the Go counterpart of the Python
// source's requirement that a node body return Tuple[payload,
// Optional[Exception]]. payload is a zero-value example of fn's payload
// return type, used to infer its structural Var the same way Field
// inference walks a parameter struct.
func Returns(fn any, payload any, returns []ReturnProjection) ([]*schema.Var, error) {
	rt := reflect.TypeOf(fn)
	if rt == nil || rt.Kind() != reflect.Func {
		return nil, ferrors.NewInvalidReturnShape("fn must be a function")
	}
	if rt.NumIn() != 1 || !mapStringAnyType.AssignableTo(rt.In(0)) && rt.In(0).Kind() != reflect.Interface {
		return nil, ferrors.NewInvalidReturnShape("fn must take a single map[string]any (or any) input")
	}
	if rt.NumOut() != 2 {
		return nil, ferrors.NewInvalidReturnShape("fn must return exactly (payload, error)")
	}
	if !rt.Out(1).Implements(errorType) {
		return nil, ferrors.NewInvalidReturnShape("fn's second return value must implement error")
	}

	ret, err := nativeTypeToVar(reflect.TypeOf(payload), true, true, true, fieldTag{})
	if err != nil {
		return nil, err
	}

	if ret.KindOf() == schema.KindArray {
		if len(returns) != 1 && len(returns) != len(ret.Items) {
			return nil, ferrors.NewArityMismatch(
				fmt.Sprintf("%d", len(returns)),
				fmt.Sprintf("1 or %d", len(ret.Items)),
			)
		}
		for i, rp := range returns {
			if i >= len(ret.Items) {
				break
			}
			ret.Items[i].Name = rp.Name
			ret.Items[i].Loc = rp.Loc
		}
		return ret.Items, nil
	}

	if len(returns) != 1 {
		return nil, ferrors.NewArityMismatch(fmt.Sprintf("%d", len(returns)), "1")
	}
	ret.Name = returns[0].Name
	ret.Loc = returns[0].Loc
	return []*schema.Var{ret}, nil
}
