// Package value implements nested-path accessors over the plain `any`
// structures (map[string]any, []any, and scalars) that node payloads and
// model-provider responses are made of — the same representation
// encoding/json produces from arbitrary JSON, which is what this engine's
// node bodies traffic in.
package value

import "strconv"

// Get descends obj by each key in path, matching mapping keys by equality
// and coercing sequence keys to integers with bounds checking. A missing
// mapping key, an out-of-bounds or non-integer sequence key, or descending
// into a non-container yields nil. An empty path returns obj unchanged.
func Get(obj any, path []any) any {
	if len(path) == 0 {
		return obj
	}
	key := path[0]
	rest := path[1:]

	switch container := obj.(type) {
	case map[string]any:
		k, ok := stringKey(key)
		if !ok {
			return nil
		}
		v, ok := container[k]
		if !ok {
			return nil
		}
		return Get(v, rest)
	case []any:
		idx, ok := intKey(key)
		if !ok || idx < 0 || idx >= len(container) {
			return nil
		}
		return Get(container[idx], rest)
	default:
		return nil
	}
}

// Put descends to the parent of path's terminal key, creating intermediate
// map[string]any (when the next segment is a string) or []any (when it is
// an integer) containers as needed, and sets value there. A replacement of
// a non-container at an intermediate position overwrites it with a fresh
// container. A slice index at or beyond the current length — including
// index 0 of a just-created empty slice — grows the slice with nil-filled
// gaps to make room, rather than silently dropping the write the way the
// source's put_value_by_keys does; see DESIGN.md. A negative index is
// still a silent no-op. Put returns the (possibly replaced or grown) root,
// since replacing a non-container root, or growing a slice past its
// capacity, requires returning a new value.
func Put(obj any, path []any, v any) any {
	if len(path) == 0 {
		return obj
	}
	key := path[0]

	if len(path) == 1 {
		switch k := key.(type) {
		case string:
			m, ok := obj.(map[string]any)
			if !ok {
				m = map[string]any{}
			}
			m[k] = v
			return m
		default:
			idx, ok := intKey(key)
			if !ok {
				return obj
			}
			s, ok := obj.([]any)
			if !ok {
				return obj
			}
			if idx < 0 {
				return s
			}
			s = growSlice(s, idx)
			s[idx] = v
			return s
		}
	}

	nextIsString := isStringKey(path[1])

	switch k := key.(type) {
	case string:
		m, ok := obj.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		child, ok := m[k]
		if !ok || !isContainer(child) {
			child = freshContainer(nextIsString)
		}
		m[k] = Put(child, path[1:], v)
		return m
	default:
		idx, ok := intKey(key)
		if !ok {
			return obj
		}
		s, ok := obj.([]any)
		if !ok {
			return obj
		}
		if idx < 0 {
			return s
		}
		s = growSlice(s, idx)
		child := s[idx]
		if !isContainer(child) {
			child = freshContainer(nextIsString)
		}
		s[idx] = Put(child, path[1:], v)
		return s
	}
}

// growSlice returns s grown to length idx+1 (nil-filled beyond the
// original length) when idx is not already a valid index, so a write or
// descent at idx always lands in bounds.
func growSlice(s []any, idx int) []any {
	if idx < len(s) {
		return s
	}
	grown := make([]any, idx+1)
	copy(grown, s)
	return grown
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func freshContainer(asMap bool) any {
	if asMap {
		return map[string]any{}
	}
	return []any{}
}

func isStringKey(key any) bool {
	_, ok := stringKey(key)
	return ok
}

func stringKey(key any) (string, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	default:
		return "", false
	}
}

func intKey(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int64:
		return int(k), true
	case float64:
		return int(k), true
	case string:
		n, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
