// Package signature maps a native Go action's declared parameter and
// return shape onto Fury's Var schema model (spec.md §4.B). Since a
// registered Fury node body is always shaped func(map[string]any) (any,
// error) — Go's reflect package cannot recover parameter names from a func
// value the way Python's inspect.signature does — field inference instead
// walks a plain Go struct whose exported fields stand in for the named
// parameters, using `fury:"..."` struct tags the way the Python source
// used inspect.Parameter defaults and names.
package signature

import (
	"reflect"
	"strings"

	"github.com/neria05/fury/ferrors"
	"github.com/neria05/fury/schema"
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	secretTy  = reflect.TypeOf(Secret(""))
	modelTy   = reflect.TypeOf(schema.ModelHandle{})
)

// Secret re-exports schema.Secret so callers only need to import one
// package when declaring parameter structs.
type Secret = schema.Secret

type fieldTag struct {
	name     string
	required bool
	hasDef   bool
	def      string
	secret   bool
	hidden   bool
	tuple    bool
	anyOf    []string
}

func parseTag(raw, fallbackName string) fieldTag {
	ft := fieldTag{name: fallbackName}
	if raw == "" {
		return ft
	}
	parts := strings.Split(raw, ",")
	if parts[0] != "" && parts[0] != "-" {
		ft.name = parts[0]
	}
	for _, p := range parts[1:] {
		switch {
		case p == "required":
			ft.required = true
		case p == "secret":
			ft.secret = true
		case p == "hidden":
			ft.hidden = true
		case p == "tuple":
			ft.tuple = true
		case strings.HasPrefix(p, "default="):
			ft.hasDef = true
			ft.def = strings.TrimPrefix(p, "default=")
		case strings.HasPrefix(p, "anyOf="):
			ft.anyOf = strings.Split(strings.TrimPrefix(p, "anyOf="), "|")
		}
	}
	return ft
}

// Fields introspects a parameter-shape struct (a value or pointer to one)
// and returns the []Var for its exported fields, mirroring func_to_vars:
// required reflects the absence of a `default=` tag, placeholder mirrors a
// present default, and show is true unless the field is tagged "hidden"
// (the Go analogue of the Python source's leading-underscore convention).
func Fields(paramsExample any) ([]*schema.Var, error) {
	rt := reflect.TypeOf(paramsExample)
	if rt == nil {
		return nil, nil
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, ferrors.NewUnsupportedType(rt.String())
	}
	return structFields(rt, false, false, false)
}

func structFields(rt reflect.Type, allowAny, allowExc, allowNone bool) ([]*schema.Var, error) {
	var fields []*schema.Var
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		tag := parseTag(sf.Tag.Get("fury"), strings.ToLower(sf.Name))
		if tag.name == "-" {
			continue
		}
		v, err := nativeTypeToVar(sf.Type, allowAny, allowExc, allowNone, tag)
		if err != nil {
			return nil, err
		}
		v.Name = tag.name
		v.Required = tag.required || !tag.hasDef
		if tag.hasDef {
			v.Required = false
			v.Placeholder = tag.def
		}
		v.Show = !tag.hidden
		fields = append(fields, v)
	}
	return fields, nil
}

// nativeTypeToVar is the Go counterpart of the Python source's
// pyannotation_to_json_schema: a closed-set switch from a native type to a
// Var, raising UnsupportedType on anything outside the supported set.
func nativeTypeToVar(rt reflect.Type, allowAny, allowExc, allowNone bool, tag fieldTag) (*schema.Var, error) {
	if rt == secretTy {
		return &schema.Var{Type: schema.KindString, Password: true}, nil
	}
	if rt == modelTy {
		return &schema.Var{Type: schema.KindModel}, nil
	}
	if rt == errorType {
		if !allowExc {
			return nil, ferrors.NewUnsupportedType(rt.String())
		}
		return &schema.Var{Type: schema.KindException}, nil
	}

	switch rt.Kind() {
	case reflect.String:
		if tag.secret {
			return &schema.Var{Type: schema.KindString, Password: true}, nil
		}
		return &schema.Var{Type: schema.KindString}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &schema.Var{Type: schema.KindNumber}, nil

	case reflect.Bool:
		return &schema.Var{Type: schema.KindBoolean}, nil

	case reflect.Slice, reflect.Array:
		if rt.Elem().Kind() == reflect.Uint8 {
			return &schema.Var{Type: schema.KindString, Format: schema.FormatByte}, nil
		}
		item, err := nativeTypeToVar(rt.Elem(), allowAny, allowExc, allowNone, fieldTag{})
		if err != nil {
			return nil, err
		}
		return &schema.Var{Type: schema.KindArray, Items: []*schema.Var{item}}, nil

	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, ferrors.NewUnsupportedType(rt.String())
		}
		elem, err := nativeTypeToVar(rt.Elem(), allowAny, allowExc, allowNone, fieldTag{})
		if err != nil {
			return nil, err
		}
		return &schema.Var{Type: schema.KindObject, AdditionalProperties: elem}, nil

	case reflect.Struct:
		if tag.tuple {
			return tupleVar(rt, allowAny, allowExc, allowNone)
		}
		sub, err := structFields(rt, allowAny, allowExc, allowNone)
		if err != nil {
			return nil, err
		}
		var props any
		if len(sub) > 0 {
			props = sub
		}
		return &schema.Var{Type: schema.KindObject, AdditionalProperties: props}, nil

	case reflect.Pointer:
		// Optional[T]: None is dropped from the union, the schema unwraps
		// to T's schema, exactly as the Python source's Union-with-None
		// handling does.
		return nativeTypeToVar(rt.Elem(), allowAny, allowExc, allowNone, tag)

	case reflect.Interface:
		if len(tag.anyOf) >= 2 {
			alts := make([]*schema.Var, 0, len(tag.anyOf))
			for _, kind := range tag.anyOf {
				alts = append(alts, &schema.Var{Type: schema.Kind(kind)})
			}
			return &schema.Var{Type: alts}, nil
		}
		if len(tag.anyOf) == 1 {
			return &schema.Var{Type: schema.Kind(tag.anyOf[0])}, nil
		}
		if rt.NumMethod() == 0 && allowAny {
			// the sentinel "any" value, permitted only in return position
			return &schema.Var{Type: schema.KindString}, nil
		}
		return nil, ferrors.NewUnsupportedType(rt.String())

	case reflect.Invalid:
		if allowNone {
			return &schema.Var{Type: schema.KindNull}, nil
		}
		return nil, ferrors.NewUnsupportedType("invalid")

	default:
		return nil, ferrors.NewUnsupportedType(rt.String())
	}
}

func tupleVar(rt reflect.Type, allowAny, allowExc, allowNone bool) (*schema.Var, error) {
	items := make([]*schema.Var, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		v, err := nativeTypeToVar(sf.Type, allowAny, allowExc, allowNone, fieldTag{})
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return &schema.Var{Type: schema.KindArray, Items: items}, nil
}
