package loader

import (
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

// newTestVM creates a sandboxed Lua VM with the API registered and a fresh collector.
func newTestVM(snapshot string) (*lua.LState, *collector) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	sandbox(L)
	coll := &collector{file: "test.lua"}
	registerAPI(L, coll, []byte(snapshot))
	return L, coll
}

func TestCompile_AllHelpers(t *testing.T) {
	L, coll := newTestVM(`{}`)
	defer L.Close()

	if err := L.DoString(`
		Player { name = "Red", portrait = 3 }
		Portrait(2)
		TeamSlots(6)
		Stars(10)
		Ribbons(1)
		ExtraGold(50)
		MaxRecords()
		ResetRecords()
		Lock(2)
		Toggle(3)
		Progress("catch", 40)
		Stat("kills", 99)
		StatItem("defeatedSpecies", 1, "rattata")
		AddStatItem("defeatedSpecies")
		RemoveStatItem("defeatedSpecies", 2)
		StatPair("maxGoldPerWave", 1, 5000, "R1 W30")
		AddStatPair("maxGoldPerWave")
		RemoveStatPair("maxGoldPerWave", 1)
		UpdatePokemon("team", 1, { isShiny = true })
		MovePokemon("box", 2)
		Route(4)
		Wave(1, 80)
		EggPrice(250)
		AddEgg("togepi")
		RemoveEgg(1)
		AddItem("rareCandy")
		RemoveItem(1)
		Stock(1, { price = 10 })
		StockPrice(2, 20)
		Set("custom.flag", true)
	`); err != nil {
		t.Fatal(err)
	}

	effs, err := compile(coll)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if len(effs) != 30 {
		t.Fatalf("expected 30 effects, got %d", len(effs))
	}

	wantTypes := []string{
		"set_player", "set_portrait", "set_team_slots", "set_stars", "set_ribbons",
		"set_extra_gold", "max_records", "reset_records", "set_achievement",
		"toggle_achievement", "set_progress", "set_stat", "set_stat_item",
		"append_stat_item", "remove_stat_item", "set_stat_pair", "append_stat_pair",
		"remove_stat_pair", "update_pokemon", "move_pokemon", "set_route_number",
		"set_route_wave", "set_egg_price", "add_egg", "remove_egg", "add_item",
		"remove_item", "update_stock", "set_stock_price", "set_path",
	}
	for i, want := range wantTypes {
		if effs[i].Type != want {
			t.Errorf("effect %d type = %q, want %q", i, effs[i].Type, want)
		}
	}

	if !reflect.DeepEqual(effs[0].Params["patch"], map[string]any{"name": "Red", "portrait": 3}) {
		t.Errorf("player patch = %v", effs[0].Params["patch"])
	}
	if effs[8].Params["status"] != false || effs[8].Params["index"] != 1 {
		t.Errorf("Lock params = %v", effs[8].Params)
	}
	if effs[12].Params["value"] != "rattata" || effs[12].Params["index"] != 0 {
		t.Errorf("StatItem params = %v", effs[12].Params)
	}
	if effs[15].Params["num"] != 5000 || effs[15].Params["text"] != "R1 W30" {
		t.Errorf("StatPair params = %v", effs[15].Params)
	}
	if effs[18].Params["list"] != "team" || effs[18].Params["index"] != 0 {
		t.Errorf("UpdatePokemon params = %v", effs[18].Params)
	}
	if effs[29].Params["path"] != "custom.flag" || effs[29].Params["value"] != true {
		t.Errorf("Set params = %v", effs[29].Params)
	}
}

func TestCompile_NonIntegerIndex(t *testing.T) {
	L, coll := newTestVM(`{}`)
	defer L.Close()

	if err := L.DoString(`Record(1.5, 10)`); err != nil {
		t.Fatal(err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error for fractional index")
	}
}

func TestCompile_MissingType(t *testing.T) {
	L, coll := newTestVM(`{}`)
	defer L.Close()

	if err := L.DoString(`Edit { value = 1 }`); err != nil {
		t.Fatal(err)
	}
	if _, err := compile(coll); err == nil {
		t.Fatal("expected error for effect without type")
	}
}

func TestToGoValue(t *testing.T) {
	L, _ := newTestVM(`{}`)
	defer L.Close()

	if err := L.DoString(`return { moves = { "thunder", "surf" }, lvl = 5, ratio = 0.5, item = {} }`); err != nil {
		t.Fatal(err)
	}
	got := toGoValue(L.Get(-1))
	want := map[string]any{
		"moves": []any{"thunder", "surf"},
		"lvl":   5,
		"ratio": 0.5,
		"item":  map[string]any{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("toGoValue = %#v, want %#v", got, want)
	}
}

func TestFromGoValue(t *testing.T) {
	L, _ := newTestVM(`{}`)
	defer L.Close()

	L.SetGlobal("v", fromGoValue(L, map[string]any{
		"list": []any{1.0, "two"},
		"ok":   true,
	}))
	if err := L.DoString(`assert(v.list[1] == 1 and v.list[2] == "two" and v.ok == true)`); err != nil {
		t.Errorf("converted table not readable from Lua: %v", err)
	}
}
