package schema

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/pokesave/types"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
		ok   bool
	}{
		{7, 7, true},
		{int64(8), 8, true},
		{9.9, 9, true},
		{json.Number("42"), 42, true},
		{json.Number("-3.7"), -3, true},
		{json.Number("1e20"), math.MaxInt, true},
		{json.Number("-1e20"), math.MinInt, true},
		{json.Number("1e400"), math.MaxInt, true},
		{1e300, math.MaxInt, true},
		{math.NaN(), 0, false},
		{"12", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToInt(tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
	}
}

func TestGetters_Defaults(t *testing.T) {
	var m map[string]any // nil section reads as empty
	assert.Equal(t, 0, Int(m, "gold"))
	assert.Equal(t, "", String(m, "name"))
	assert.False(t, Bool(m, "isShiny"))
	assert.Nil(t, Map(m, "stats"))
	assert.Empty(t, Ints(m, "records"))
	assert.Empty(t, Strings(m, "eggList"))

	m = map[string]any{"gold": nil, "name": 5, "records": []any{json.Number("3"), nil, "x"}}
	assert.Equal(t, 0, Int(m, "gold"))
	assert.Equal(t, "", String(m, "name"))
	assert.Equal(t, []int{3, 0, 0}, Ints(m, "records"))
	assert.Equal(t, 4, IntOr(m, "missing", 4))
}

func TestLeadingInt(t *testing.T) {
	assert.Equal(t, 12, LeadingInt("12abc"))
	assert.Equal(t, -4, LeadingInt("  -4"))
	assert.Equal(t, 0, LeadingInt("abc"))
	assert.Equal(t, 0, LeadingInt(""))
	assert.Equal(t, 0, LeadingInt("-"))
}

func TestStatKindOf(t *testing.T) {
	assert.Equal(t, types.StatNumber, StatKindOf(json.Number("1")))
	assert.Equal(t, types.StatNumber, StatKindOf(3))
	assert.Equal(t, types.StatString, StatKindOf("R1-1 W29"))
	assert.Equal(t, types.StatArray, StatKindOf([]any{}))
	assert.Equal(t, types.StatOther, StatKindOf(map[string]any{}))
	assert.Equal(t, types.StatOther, StatKindOf(nil))
	assert.Equal(t, types.StatOther, StatKindOf(true))
}

func TestPlayerOf_Defaults(t *testing.T) {
	p := PlayerOf(types.Document{})
	assert.Equal(t, "", p.Name)
	assert.Equal(t, 0, p.Gold)
	assert.Equal(t, DefaultTeamSlots, p.TeamSlots)
	assert.Empty(t, p.Records)
	assert.Empty(t, p.Achievements)
	assert.NotNil(t, p.AchievementProgress)
	assert.NotNil(t, p.Stats)
}

func TestPlayerOf_Values(t *testing.T) {
	doc := types.Document{
		"gold": json.Number("900"),
		"player": map[string]any{
			"name":      "Ash",
			"gold":      json.Number("100"),
			"teamSlots": json.Number("6"),
			"records":   []any{json.Number("10"), json.Number("20")},
			"achievements": []any{
				map[string]any{"description": []any{"Catch 10"}, "status": true, "image": "./a.png"},
				nil,
			},
			"achievementProgress": map[string]any{"catch": json.Number("4")},
			"stats": map[string]any{
				"defeatedSpecies": []any{"rattata"},
				"kills":           json.Number("55"),
				"best":            "31 waves",
			},
		},
	}
	p := PlayerOf(doc)
	assert.Equal(t, "Ash", p.Name)
	assert.Equal(t, 900, p.Gold, "root gold wins over player.gold")
	assert.Equal(t, 6, p.TeamSlots)
	assert.Equal(t, []int{10, 20}, p.Records)
	require.Len(t, p.Achievements, 2)
	assert.True(t, p.Achievements[0].Status)
	assert.Equal(t, []string{"Catch 10"}, p.Achievements[0].Description)
	assert.Equal(t, types.Achievement{Description: []string{}}, p.Achievements[1])
	assert.Equal(t, 4, p.AchievementProgress["catch"])
	assert.Equal(t, types.StatArray, p.Stats["defeatedSpecies"].Kind)
	assert.Equal(t, 55.0, p.Stats["kills"].Number)
	assert.Equal(t, 31.0, p.Stats["best"].Number)
	assert.Equal(t, "31 waves", p.Stats["best"].Text)
}

func TestPlayerOf_GoldFallsBackToPlayer(t *testing.T) {
	doc := types.Document{"player": map[string]any{"gold": json.Number("100")}}
	assert.Equal(t, 100, PlayerOf(doc).Gold)
}

func TestPokemonOf(t *testing.T) {
	p := PokemonOf(map[string]any{
		"specieKey": "pikachu",
		"lvl":       json.Number("50"),
		"isShiny":   true,
		"item":      map[string]any{"id": "amuletCoin", "name": []any{"Amulet Coin"}},
	})
	assert.Equal(t, "pikachu", p.SpecieKey)
	assert.Equal(t, 50, p.Lvl)
	assert.True(t, p.IsShiny)
	assert.Equal(t, "first", p.TargetMode)
	require.NotNil(t, p.Item)
	assert.Equal(t, "amuletCoin", p.Item.ID)

	empty := PokemonOf(nil)
	assert.Nil(t, empty.Item)
	assert.Equal(t, 0, empty.Lvl)
}

func TestShopOf_KeepsNullSlots(t *testing.T) {
	doc := types.Document{"shop": map[string]any{
		"eggPrice":  json.Number("500"),
		"itemList":  []any{"a", "b"},
		"itemStock": []any{nil, map[string]any{"id": "b", "price": json.Number("10")}, "junk"},
	}}
	shop := ShopOf(doc)
	assert.Equal(t, 500, shop.EggPrice)
	require.Len(t, shop.ItemStock, 3)
	assert.Nil(t, shop.ItemStock[0])
	assert.Equal(t, "b", shop.ItemStock[1].ID)
	assert.Nil(t, shop.ItemStock[2])
}

func TestAreaOf(t *testing.T) {
	a := AreaOf(types.Document{"area": map[string]any{"routeNumber": json.Number("3"), "routeWaves": []any{json.Number("100")}}})
	assert.Equal(t, 3, a.RouteNumber)
	assert.Equal(t, []int{100}, a.RouteWaves)

	assert.Equal(t, types.Area{RouteWaves: []int{}}, AreaOf(types.Document{"area": "not an object"}))
}

func TestPatchSection_DoesNotMutate(t *testing.T) {
	player := map[string]any{"name": "Ash", "records": []any{1, 2}}
	doc := types.Document{"player": player, "custom": "keep"}

	next := PatchSection(doc, "player", map[string]any{"name": "Red"})

	assert.Equal(t, "Ash", player["name"])
	assert.Equal(t, "Ash", doc["player"].(map[string]any)["name"])
	assert.Equal(t, "Red", next["player"].(map[string]any)["name"])
	assert.Equal(t, []any{1, 2}, next["player"].(map[string]any)["records"])
	assert.Equal(t, "keep", next["custom"])
}

func TestPatchSection_CreatesMissingSection(t *testing.T) {
	next := PatchSection(types.Document{}, "area", map[string]any{"routeNumber": 2})
	assert.Equal(t, map[string]any{"routeNumber": 2}, next["area"])
}

func TestListHelpers_Copy(t *testing.T) {
	list := []any{"a", "b", "c"}

	assert.Equal(t, []any{"a", "X", "c"}, ReplaceAt(list, 1, "X"))
	assert.Equal(t, []any{"a", "c"}, RemoveAt(list, 1))
	assert.Equal(t, []any{"a", "b", "c", "d"}, Append(list, "d"))
	assert.Equal(t, []any{"a", "b", "c"}, list)

	assert.True(t, InRange(list, 0))
	assert.False(t, InRange(list, 3))
	assert.False(t, InRange(list, -1))
}
