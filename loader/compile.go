package loader

import (
	"fmt"
	"math"

	"github.com/nathoo/pokesave/types"
	lua "github.com/yuin/gopher-lua"
)

// compile converts the collected effect tables into effects. Script
// indices are 1-based; effect indices are 0-based.
func compile(coll *collector) ([]types.Effect, error) {
	effs := make([]types.Effect, 0, len(coll.effects))
	for i, raw := range coll.effects {
		eff, err := compileEffect(raw.table)
		if err != nil {
			return nil, fmt.Errorf("%s: edit %d: %w", raw.file, i+1, err)
		}
		effs = append(effs, eff)
	}
	return effs, nil
}

func compileEffect(tbl *lua.LTable) (types.Effect, error) {
	typ, ok := tbl.RawGetString("type").(lua.LString)
	if !ok {
		return types.Effect{}, fmt.Errorf("effect has no type")
	}

	params := map[string]any{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok || ks == "type" {
			return
		}
		params[string(ks)] = fieldValue(string(ks), v)
	})

	if path, bad := nonFinite(params, ""); bad {
		return types.Effect{}, fmt.Errorf("%s: %s is not a finite number", typ, path)
	}

	if idx, ok := params["index"]; ok {
		n, ok := idx.(int)
		if !ok {
			return types.Effect{}, fmt.Errorf("%s: index must be an integer, got %v", typ, idx)
		}
		params["index"] = n - 1
	}

	return types.Effect{Type: string(typ), Params: params}, nil
}

// toGoValue converts a Lua value to a Go value recursively. Integral
// numbers become int. A table with a sequence part becomes a list; any
// other table becomes an object, except that an empty table under one of
// the listKeys becomes an empty list.
func toGoValue(v lua.LValue) any {
	switch val := v.(type) {
	case lua.LBool:
		return bool(val)
	case lua.LNumber:
		f := float64(val)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int(f)
		}
		return f
	case *lua.LNilType:
		return nil
	case lua.LString:
		return string(val)
	case *lua.LTable:
		maxN := val.MaxN()
		if maxN > 0 {
			arr := make([]any, 0, maxN)
			for i := 1; i <= maxN; i++ {
				arr = append(arr, toGoValue(val.RawGetInt(i)))
			}
			return arr
		}
		m := map[string]any{}
		val.ForEach(func(k, v lua.LValue) {
			if ks, ok := k.(lua.LString); ok {
				m[string(ks)] = fieldValue(string(ks), v)
			}
		})
		return m
	default:
		return nil
	}
}

// listKeys are save fields that hold arrays. An empty table assigned to
// one of them is written as [] rather than {}.
var listKeys = map[string]bool{
	"records":    true,
	"eggList":    true,
	"itemList":   true,
	"itemStock":  true,
	"routeWaves": true,
	"team":       true,
	"box":        true,
}

// fieldValue converts the value of a named table field.
func fieldValue(key string, v lua.LValue) any {
	if tbl, ok := v.(*lua.LTable); ok && listKeys[key] {
		if k, _ := tbl.Next(lua.LNil); k == lua.LNil {
			return []any{}
		}
	}
	return toGoValue(v)
}

// nonFinite reports the path of the first NaN or infinite number in v.
// JSON has no encoding for them.
func nonFinite(v any, path string) (string, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return path, true
		}
	case []any:
		for i, e := range val {
			if p, bad := nonFinite(e, fmt.Sprintf("%s[%d]", path, i+1)); bad {
				return p, true
			}
		}
	case map[string]any:
		for k, e := range val {
			sub := k
			if path != "" {
				sub = path + "." + k
			}
			if p, bad := nonFinite(e, sub); bad {
				return p, true
			}
		}
	}
	return "", false
}

// fromGoValue converts a decoded JSON value to a Lua value. Lists become
// 1-based sequences.
func fromGoValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case float64:
		return lua.LNumber(val)
	case int:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []any:
		tbl := L.CreateTable(len(val), 0)
		for _, e := range val {
			tbl.Append(fromGoValue(L, e))
		}
		return tbl
	case map[string]any:
		tbl := L.CreateTable(0, len(val))
		for k, e := range val {
			tbl.RawSetString(k, fromGoValue(L, e))
		}
		return tbl
	default:
		return lua.LString(fmt.Sprint(val))
	}
}
