package editor

import (
	"fmt"

	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

func stats(doc types.Document) map[string]any {
	return schema.Map(schema.Section(doc, types.KeyPlayer), "stats")
}

func setStatValue(doc types.Document, key string, v any) types.Document {
	return SetPlayer(doc, map[string]any{"stats": schema.Merge(stats(doc), map[string]any{key: v})})
}

// SetStat stores a numeric stat. A string stat is replaced by the number,
// the same as editing it in a number field. Missing keys are created.
func SetStat(doc types.Document, key string, n int) (types.Document, error) {
	v, ok := stats(doc)[key]
	if ok {
		if k := schema.StatKindOf(v); k == types.StatArray || (k == types.StatOther && v != nil) {
			return doc, fmt.Errorf("%w: %s", ErrNotScalar, key)
		}
	}
	return setStatValue(doc, key, n), nil
}

// statArray returns the normalized elements of an array stat and its kind.
func statArray(doc types.Document, key string) ([]any, rules.ArrayKind, error) {
	raw, ok := stats(doc)[key].([]any)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrNotArray, key)
	}
	list := rules.NormalizeArray(raw)
	kind, known := rules.StatsArrayKind(key)
	if !known {
		kind = rules.InferItemKind(list)
	}
	return list, kind, nil
}

func plainArray(doc types.Document, key string) ([]any, rules.ArrayKind, error) {
	list, kind, err := statArray(doc, key)
	if err != nil {
		return nil, "", err
	}
	if kind == rules.ArrayPair {
		return nil, "", fmt.Errorf("%w: %s holds pairs", ErrWrongArrayKind, key)
	}
	return list, kind, nil
}

func pairArray(doc types.Document, key string) ([]types.Pair, error) {
	list, kind, err := statArray(doc, key)
	if err != nil {
		return nil, err
	}
	if kind != rules.ArrayPair {
		return nil, fmt.Errorf("%w: %s does not hold pairs", ErrWrongArrayKind, key)
	}
	return rules.FlatToPairs(list), nil
}

// SetStatItem replaces element i of a plain stats array. Numeric arrays
// take the leading integer of value, 0 when there is none.
func SetStatItem(doc types.Document, key string, i int, value string) (types.Document, error) {
	list, kind, err := plainArray(doc, key)
	if err != nil {
		return doc, err
	}
	if !schema.InRange(list, i) {
		return doc, outOfRange(key, i, len(list))
	}
	var v any = value
	if kind == rules.ArrayNumber {
		v = schema.LeadingInt(value)
	}
	return setStatValue(doc, key, schema.ReplaceAt(list, i, v)), nil
}

// AppendStatItem adds a 0 or "" element to a plain stats array.
func AppendStatItem(doc types.Document, key string) (types.Document, error) {
	list, kind, err := plainArray(doc, key)
	if err != nil {
		return doc, err
	}
	var v any = ""
	if kind == rules.ArrayNumber {
		v = 0
	}
	return setStatValue(doc, key, schema.Append(list, v)), nil
}

// RemoveStatItem removes element i of a plain stats array.
func RemoveStatItem(doc types.Document, key string, i int) (types.Document, error) {
	list, _, err := plainArray(doc, key)
	if err != nil {
		return doc, err
	}
	if !schema.InRange(list, i) {
		return doc, outOfRange(key, i, len(list))
	}
	return setStatValue(doc, key, schema.RemoveAt(list, i)), nil
}

// SetStatPair replaces pair i of a flattened pair array. An odd trailing
// element in the stored array is dropped by the rewrite.
func SetStatPair(doc types.Document, key string, i int, p types.Pair) (types.Document, error) {
	pairs, err := pairArray(doc, key)
	if err != nil {
		return doc, err
	}
	if i < 0 || i >= len(pairs) {
		return doc, outOfRange(key, i, len(pairs))
	}
	next := append([]types.Pair(nil), pairs...)
	next[i] = p
	return setStatValue(doc, key, rules.PairsToFlat(next)), nil
}

// AppendStatPair adds a {0, ""} pair.
func AppendStatPair(doc types.Document, key string) (types.Document, error) {
	pairs, err := pairArray(doc, key)
	if err != nil {
		return doc, err
	}
	return setStatValue(doc, key, rules.PairsToFlat(append(pairs, types.Pair{}))), nil
}

// RemoveStatPair removes pair i.
func RemoveStatPair(doc types.Document, key string, i int) (types.Document, error) {
	pairs, err := pairArray(doc, key)
	if err != nil {
		return doc, err
	}
	if i < 0 || i >= len(pairs) {
		return doc, outOfRange(key, i, len(pairs))
	}
	next := append(append([]types.Pair(nil), pairs[:i]...), pairs[i+1:]...)
	return setStatValue(doc, key, rules.PairsToFlat(next)), nil
}
