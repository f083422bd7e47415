// Package schema reads the open save document with default substitution.
// Absent and null fields read as the zero value of their type; nothing
// read here is ever written back to the document.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/nathoo/pokesave/types"
)

// DefaultTeamSlots is the documented default for player.teamSlots.
const DefaultTeamSlots = 10

// Section returns the named top-level section when it is an object,
// or nil otherwise. Reading from a nil map is safe.
func Section(doc types.Document, key string) map[string]any {
	m, _ := doc[key].(map[string]any)
	return m
}

// ToInt converts any JSON number representation to an int. Fractions
// are truncated toward zero and values beyond the int range clamp to its
// bounds. The bool is false for non-numbers.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt:
		return math.MaxInt, true
	case f <= math.MinInt:
		return math.MinInt, true
	}
	return int(f), true
}

// ToFloat converts any JSON number representation to a float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// IsNumber reports whether v is a JSON number.
func IsNumber(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// Int returns a numeric field, or 0 when it is missing, null or not a number.
func Int(m map[string]any, key string) int {
	return IntOr(m, key, 0)
}

// IntOr returns a numeric field, or def when it is missing, null or not
// a number.
func IntOr(m map[string]any, key string, def int) int {
	if n, ok := ToInt(m[key]); ok {
		return n
	}
	return def
}

// Float returns a numeric field as float64, or 0.
func Float(m map[string]any, key string) float64 {
	f, _ := ToFloat(m[key])
	return f
}

// String returns a string field, or "".
func String(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Bool returns a bool field, or false.
func Bool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// Map returns an object field, or nil.
func Map(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}

// List returns an array field, or nil.
func List(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}

// Ints returns an array field as ints. Null and non-number elements read as 0.
func Ints(m map[string]any, key string) []int {
	return IntsOf(List(m, key))
}

// IntsOf converts array elements to ints the same way Ints does.
func IntsOf(list []any) []int {
	out := make([]int, len(list))
	for i, v := range list {
		out[i], _ = ToInt(v)
	}
	return out
}

// Strings returns an array field as strings. Non-string elements are
// stringified; null reads as "".
func Strings(m map[string]any, key string) []string {
	list := List(m, key)
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = Stringify(v)
	}
	return out
}

// Stringify renders a scalar JSON value as text.
func Stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// StatKindOf tags a player.stats value by its JSON shape.
func StatKindOf(v any) types.StatKind {
	switch v.(type) {
	case string:
		return types.StatString
	case []any:
		return types.StatArray
	}
	if IsNumber(v) {
		return types.StatNumber
	}
	return types.StatOther
}

// StatOf builds the tagged view of a stats value. String stats also carry
// their leading integer (0 if none) in Number, the value the number input
// shows for them.
func StatOf(v any) types.StatValue {
	sv := types.StatValue{Kind: StatKindOf(v)}
	switch sv.Kind {
	case types.StatNumber:
		sv.Number, _ = ToFloat(v)
	case types.StatString:
		sv.Text = v.(string)
		sv.Number = float64(LeadingInt(sv.Text))
	case types.StatArray:
		sv.List = v.([]any)
	}
	return sv
}

// LeadingInt parses the optional sign and digits at the start of s, after
// leading whitespace, returning 0 if there are none.
func LeadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0
	}
	return n
}
