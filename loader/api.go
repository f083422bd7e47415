package loader

import (
	"strings"

	"github.com/nathoo/pokesave/engine/effects"
	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the edit globals, the read-only Get helper and a
// print that collects output instead of writing to stdout.
func registerAPI(L *lua.LState, coll *collector, snapshot []byte) {
	registerPlayerHelpers(L, coll)
	registerStatsHelpers(L, coll)
	registerPokemonHelpers(L, coll)
	registerWorldHelpers(L, coll)
	registerReaders(L, coll, snapshot)
}

// effect builds an effect table with the given fields.
func effect(L *lua.LState, typ string, fields map[string]lua.LValue) *lua.LTable {
	tbl := L.NewTable()
	tbl.RawSetString("type", lua.LString(typ))
	for k, v := range fields {
		tbl.RawSetString(k, v)
	}
	return tbl
}

// register sets a global that queues the effect built by fn.
func register(L *lua.LState, coll *collector, name string, fn func(L *lua.LState) *lua.LTable) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		coll.add(fn(L))
		return 0
	}))
}

// value registers name(n) as an effect with a single numeric value.
func value(L *lua.LState, coll *collector, name, typ string) {
	register(L, coll, name, func(L *lua.LState) *lua.LTable {
		return effect(L, typ, map[string]lua.LValue{"value": L.CheckNumber(1)})
	})
}

// indexed registers name(i) as an effect addressing one list element.
func indexed(L *lua.LState, coll *collector, name, typ string) {
	register(L, coll, name, func(L *lua.LState) *lua.LTable {
		return effect(L, typ, map[string]lua.LValue{"index": L.CheckNumber(1)})
	})
}

// indexedValue registers name(i, n).
func indexedValue(L *lua.LState, coll *collector, name, typ string) {
	register(L, coll, name, func(L *lua.LState) *lua.LTable {
		return effect(L, typ, map[string]lua.LValue{
			"index": L.CheckNumber(1),
			"value": L.CheckNumber(2),
		})
	})
}

func registerPlayerHelpers(L *lua.LState, coll *collector) {
	// Edit { type = "set_gold", value = 5 } queues a raw effect table.
	register(L, coll, "Edit", func(L *lua.LState) *lua.LTable {
		return L.CheckTable(1)
	})

	// Player { name = "Red", ... } merges fields into the player section.
	register(L, coll, "Player", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetPlayer, map[string]lua.LValue{"patch": L.CheckTable(1)})
	})

	register(L, coll, "Name", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetName, map[string]lua.LValue{"name": lua.LString(L.CheckString(1))})
	})

	value(L, coll, "Portrait", effects.SetPortrait)
	value(L, coll, "Gold", effects.SetGold)
	value(L, coll, "TeamSlots", effects.SetTeamSlots)
	value(L, coll, "Stars", effects.SetStars)
	value(L, coll, "Ribbons", effects.SetRibbons)
	value(L, coll, "ExtraGold", effects.SetExtraGold)

	indexedValue(L, coll, "Record", effects.SetRecord)
	register(L, coll, "MaxRecords", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.MaxRecords, nil)
	})
	register(L, coll, "ResetRecords", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.ResetRecords, nil)
	})

	register(L, coll, "Unlock", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetAchievement, map[string]lua.LValue{
			"index":  L.CheckNumber(1),
			"status": lua.LTrue,
		})
	})
	register(L, coll, "Lock", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetAchievement, map[string]lua.LValue{
			"index":  L.CheckNumber(1),
			"status": lua.LFalse,
		})
	})
	indexed(L, coll, "Toggle", effects.ToggleAchievement)

	register(L, coll, "Progress", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetProgress, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"value": L.CheckNumber(2),
		})
	})
}

func registerStatsHelpers(L *lua.LState, coll *collector) {
	register(L, coll, "Stat", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetStat, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"value": L.CheckNumber(2),
		})
	})

	// StatItem("defeatedSpecies", 1, "rattata")
	register(L, coll, "StatItem", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetStatItem, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
			"value": lua.LString(L.ToString(3)),
		})
	})
	register(L, coll, "AddStatItem", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.AppendStatItem, map[string]lua.LValue{"key": lua.LString(L.CheckString(1))})
	})
	register(L, coll, "RemoveStatItem", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.RemoveStatItem, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
		})
	})

	// StatPair("maxGoldPerWave", 1, 5000, "R1 W30")
	register(L, coll, "StatPair", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetStatPair, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
			"num":   L.CheckNumber(3),
			"text":  lua.LString(L.ToString(4)),
		})
	})
	register(L, coll, "AddStatPair", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.AppendStatPair, map[string]lua.LValue{"key": lua.LString(L.CheckString(1))})
	})
	register(L, coll, "RemoveStatPair", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.RemoveStatPair, map[string]lua.LValue{
			"key":   lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
		})
	})
}

func registerPokemonHelpers(L *lua.LState, coll *collector) {
	// AddPokemon("team", { specieKey = "eevee", lvl = 30 })
	register(L, coll, "AddPokemon", func(L *lua.LState) *lua.LTable {
		fields := map[string]lua.LValue{"list": lua.LString(L.CheckString(1))}
		if tbl := L.OptTable(2, nil); tbl != nil {
			fields["pokemon"] = tbl
		} else {
			fields["pokemon"] = L.NewTable()
		}
		return effect(L, effects.AddPokemon, fields)
	})
	register(L, coll, "UpdatePokemon", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.UpdatePokemon, map[string]lua.LValue{
			"list":  lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
			"patch": L.CheckTable(3),
		})
	})
	register(L, coll, "RemovePokemon", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.RemovePokemon, map[string]lua.LValue{
			"list":  lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
		})
	})
	register(L, coll, "MovePokemon", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.MovePokemon, map[string]lua.LValue{
			"list":  lua.LString(L.CheckString(1)),
			"index": L.CheckNumber(2),
		})
	})
	register(L, coll, "LevelAll", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetAllLevels, map[string]lua.LValue{
			"list":  lua.LString(L.CheckString(1)),
			"value": L.CheckNumber(2),
		})
	})
}

func registerWorldHelpers(L *lua.LState, coll *collector) {
	value(L, coll, "Route", effects.SetRouteNumber)
	indexedValue(L, coll, "Wave", effects.SetRouteWave)

	value(L, coll, "EggPrice", effects.SetEggPrice)
	register(L, coll, "AddEgg", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.AddEgg, map[string]lua.LValue{"species": lua.LString(L.CheckString(1))})
	})
	indexed(L, coll, "RemoveEgg", effects.RemoveEgg)
	register(L, coll, "AddItem", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.AddItem, map[string]lua.LValue{"id": lua.LString(L.CheckString(1))})
	})
	indexed(L, coll, "RemoveItem", effects.RemoveItem)
	register(L, coll, "Stock", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.UpdateStock, map[string]lua.LValue{
			"index": L.CheckNumber(1),
			"patch": L.CheckTable(2),
		})
	})
	indexedValue(L, coll, "StockPrice", effects.SetStockPrice)

	// Set("player.stats.kills", 10) writes any JSON path.
	register(L, coll, "Set", func(L *lua.LState) *lua.LTable {
		return effect(L, effects.SetPath, map[string]lua.LValue{
			"path":  lua.LString(L.CheckString(1)),
			"value": L.CheckAny(2),
		})
	})
}

// registerReaders installs Get and print. Get reads the snapshot the
// script started from; queued edits are not visible to it.
func registerReaders(L *lua.LState, coll *collector, snapshot []byte) {
	L.SetGlobal("Get", L.NewFunction(func(L *lua.LState) int {
		res := gjson.GetBytes(snapshot, L.CheckString(1))
		L.Push(fromGoValue(L, res.Value()))
		return 1
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, L.GetTop())
		for i := range parts {
			parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
		}
		coll.output = append(coll.output, strings.Join(parts, "\t"))
		return 0
	}))
}
