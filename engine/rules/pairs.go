package rules

import (
	"math"

	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// ArrayKind is the element shape of an editable stats array.
type ArrayKind string

const (
	ArrayNumber ArrayKind = "number"
	ArrayString ArrayKind = "string"
	ArrayPair   ArrayKind = "pair"
)

// statsArrayKinds lists the stats keys with a known array shape. Pair
// arrays are stored flat: [gold0, wave0, gold1, wave1, ...].
var statsArrayKinds = map[string]ArrayKind{
	"defeatedSpecies": ArrayString,
	"maxGoldPerWave":  ArrayPair,
	"maxGoldPerTime":  ArrayPair,
}

var pairLabels = map[string][2]string{
	"maxGoldPerWave": {"Gold", "Wave"},
	"maxGoldPerTime": {"Gold", "Time"},
}

// StatsArrayKind returns the known array shape of a stats key.
func StatsArrayKind(key string) (ArrayKind, bool) {
	k, ok := statsArrayKinds[key]
	return k, ok
}

// PairLabels returns the field labels of a pair stats key.
func PairLabels(key string) [2]string {
	if l, ok := pairLabels[key]; ok {
		return l
	}
	return [2]string{"Gold", "Wave"}
}

// NormalizeArray keeps number and string elements of an array value and
// stringifies everything else. Non-arrays normalize to an empty list.
func NormalizeArray(v any) []any {
	list, ok := v.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, len(list))
	for i, e := range list {
		if schema.IsNumber(e) {
			out[i] = e
			continue
		}
		out[i] = schema.Stringify(e)
	}
	return out
}

// InferItemKind guesses the element kind of an array from its first
// element. Empty arrays are numeric.
func InferItemKind(list []any) ArrayKind {
	if len(list) == 0 || schema.IsNumber(list[0]) {
		return ArrayNumber
	}
	return ArrayString
}

// FlatToPairs groups a flat [num, text, num, text, ...] array into pairs.
// A number first element is kept as is, fractions included. Any other
// first element is parsed as a leading integer;
// a second element that is not a string is stringified. An odd trailing
// element has no partner and is dropped.
func FlatToPairs(list []any) []types.Pair {
	pairs := make([]types.Pair, 0, len(list)/2)
	for i := 0; i+1 < len(list); i += 2 {
		a, b := list[i], list[i+1]

		num, ok := schema.ToFloat(a)
		if !ok {
			num = float64(schema.LeadingInt(schema.Stringify(a)))
		}
		text, ok := b.(string)
		if !ok {
			text = schema.Stringify(b)
		}
		pairs = append(pairs, types.Pair{Num: num, Text: text})
	}
	return pairs
}

// PairsToFlat is the inverse of FlatToPairs. Whole numbers are written
// as ints. The result always holds exactly twice as many elements as
// there are pairs.
func PairsToFlat(pairs []types.Pair) []any {
	out := make([]any, 0, len(pairs)*2)
	for _, p := range pairs {
		out = append(out, pairNum(p.Num), p.Text)
	}
	return out
}

func pairNum(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int(f)
	}
	return f
}
