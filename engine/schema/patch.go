package schema

import "github.com/nathoo/pokesave/types"

// With returns a shallow copy of doc with key set to value.
func With(doc types.Document, key string, value any) types.Document {
	next := make(types.Document, len(doc)+1)
	for k, v := range doc {
		next[k] = v
	}
	next[key] = value
	return next
}

// Merge returns a new map holding base's entries overwritten by patch's.
// A nil base merges as an empty object.
func Merge(base, patch map[string]any) map[string]any {
	next := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	return next
}

// PatchSection merges patch one level into the named section and
// returns the new document. Values in patch replace whole fields; lists
// are never edited element by element in place.
func PatchSection(doc types.Document, section string, patch map[string]any) types.Document {
	return With(doc, section, Merge(Section(doc, section), patch))
}

// ReplaceAt returns a copy of list with element i set to v.
func ReplaceAt(list []any, i int, v any) []any {
	next := make([]any, len(list))
	copy(next, list)
	next[i] = v
	return next
}

// RemoveAt returns a copy of list without element i.
func RemoveAt(list []any, i int) []any {
	next := make([]any, 0, len(list)-1)
	next = append(next, list[:i]...)
	return append(next, list[i+1:]...)
}

// Append returns a copy of list with vs added at the end.
func Append(list []any, vs ...any) []any {
	next := make([]any, 0, len(list)+len(vs))
	next = append(next, list...)
	return append(next, vs...)
}

// InRange reports whether i indexes list.
func InRange(list []any, i int) bool {
	return i >= 0 && i < len(list)
}
