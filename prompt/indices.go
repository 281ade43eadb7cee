package prompt

import (
	"sort"

	"github.com/neria05/fury/schema"
)

// Index pairs a location inside a nested config structure with the Vars
// the template string found there would yield from InferVars, the Go
// counterpart of extract_jinja_indices's (path, [Var]) entries.
type Index struct {
	Path []any
	Vars []*schema.Var
}

// ExtractIndices walks a nested structure of map[string]any/[]any whose
// leaf values are template strings and returns one Index per leaf whose
// template yields at least one free variable. Path elements are a string
// key (map descent) or an int index (slice descent), accumulated one per
// level of descent — unlike the Python source, which special-cases a
// bare first-level key versus a tuple for every later level, Go's []any
// already represents both uniformly so no such special case is needed.
//
// Map traversal visits keys in sorted order: Go maps have no iteration
// order of their own (unlike the source's insertion-ordered dict), so
// keys are sorted to keep the returned Index order deterministic across
// calls with an identical structure.
func ExtractIndices(data any) ([]Index, error) {
	var out []Index
	if err := extractIndices(data, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func extractIndices(data any, path []any, out *[]Index) error {
	switch v := data.(type) {
	case string:
		vars, err := InferVars(v)
		if err != nil {
			return err
		}
		if len(vars) > 0 {
			*out = append(*out, Index{Path: path, Vars: vars})
		}

	case []any:
		for i, item := range v {
			if err := extractIndices(item, appendPath(path, i), out); err != nil {
				return err
			}
		}

	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := extractIndices(v[k], appendPath(path, k), out); err != nil {
				return err
			}
		}
	}
	return nil
}

func appendPath(path []any, seg any) []any {
	next := make([]any, len(path)+1)
	copy(next, path)
	next[len(path)] = seg
	return next
}
