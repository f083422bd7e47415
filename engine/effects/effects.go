// Package effects implements centralized document edits via the Apply
// function. Every effect type is one atomic edit. No logic in effects:
// each case forwards its params to one editor function.
package effects

import (
	"fmt"

	"github.com/nathoo/pokesave/engine/editor"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// Effect types.
const (
	SetPlayer         = "set_player"
	SetName           = "set_name"
	SetPortrait       = "set_portrait"
	SetGold           = "set_gold"
	SetTeamSlots      = "set_team_slots"
	SetStars          = "set_stars"
	SetRibbons        = "set_ribbons"
	SetExtraGold      = "set_extra_gold"
	SetRecord         = "set_record"
	MaxRecords        = "max_records"
	ResetRecords      = "reset_records"
	SetAchievement    = "set_achievement"
	ToggleAchievement = "toggle_achievement"
	SetProgress       = "set_progress"
	SetStat           = "set_stat"
	SetStatItem       = "set_stat_item"
	AppendStatItem    = "append_stat_item"
	RemoveStatItem    = "remove_stat_item"
	SetStatPair       = "set_stat_pair"
	AppendStatPair    = "append_stat_pair"
	RemoveStatPair    = "remove_stat_pair"
	AddPokemon        = "add_pokemon"
	UpdatePokemon     = "update_pokemon"
	RemovePokemon     = "remove_pokemon"
	SetAllLevels      = "set_all_levels"
	MovePokemon       = "move_pokemon"
	SetRouteNumber    = "set_route_number"
	SetRouteWave      = "set_route_wave"
	SetEggPrice       = "set_egg_price"
	AddEgg            = "add_egg"
	RemoveEgg         = "remove_egg"
	AddItem           = "add_item"
	RemoveItem        = "remove_item"
	UpdateStock       = "update_stock"
	SetStockPrice     = "set_stock_price"
	SetPath           = "set_path"
)

// Known lists every effect type Apply understands.
var Known = map[string]bool{
	SetPlayer: true, SetName: true, SetPortrait: true, SetGold: true,
	SetTeamSlots: true, SetStars: true, SetRibbons: true, SetExtraGold: true,
	SetRecord: true, MaxRecords: true, ResetRecords: true,
	SetAchievement: true, ToggleAchievement: true, SetProgress: true,
	SetStat: true, SetStatItem: true, AppendStatItem: true, RemoveStatItem: true,
	SetStatPair: true, AppendStatPair: true, RemoveStatPair: true,
	AddPokemon: true, UpdatePokemon: true, RemovePokemon: true,
	SetAllLevels: true, MovePokemon: true,
	SetRouteNumber: true, SetRouteWave: true,
	SetEggPrice: true, AddEgg: true, RemoveEgg: true, AddItem: true,
	RemoveItem: true, UpdateStock: true, SetStockPrice: true,
	SetPath: true,
}

// EventEdited is emitted once for every applied effect.
const EventEdited = "edited"

// Apply runs effects in order against doc and returns the resulting
// document. The list is all-or-nothing: when one effect fails, the
// original document is returned with the error and no events. Unknown
// effect types are ignored.
func Apply(doc types.Document, effs []types.Effect) (types.Document, []types.Event, error) {
	var events []types.Event
	cur := doc

	for i, eff := range effs {
		if !Known[eff.Type] {
			continue
		}
		next, err := applyOne(cur, eff)
		if err != nil {
			return doc, nil, fmt.Errorf("effect %d (%s): %w", i+1, eff.Type, err)
		}
		cur = next
		events = append(events, types.Event{
			Type: EventEdited,
			Data: map[string]any{"effect": eff.Type, "params": eff.Params},
		})
	}
	return cur, events, nil
}

func applyOne(doc types.Document, eff types.Effect) (types.Document, error) {
	p := eff.Params

	switch eff.Type {
	case SetPlayer:
		return editor.SetPlayer(doc, object(p, "patch")), nil
	case SetName:
		return editor.SetName(doc, str(p, "name")), nil
	case SetPortrait:
		return editor.SetPortrait(doc, num(p, "value")), nil
	case SetGold:
		return editor.SetGold(doc, num(p, "value")), nil
	case SetTeamSlots:
		return editor.SetTeamSlots(doc, num(p, "value")), nil
	case SetStars:
		return editor.SetStars(doc, num(p, "value")), nil
	case SetRibbons:
		return editor.SetRibbons(doc, num(p, "value")), nil
	case SetExtraGold:
		return editor.SetExtraGold(doc, num(p, "value")), nil
	case SetRecord:
		return editor.SetRecord(doc, num(p, "index"), num(p, "value"))
	case MaxRecords:
		return editor.MaxAllRecords(doc), nil
	case ResetRecords:
		return editor.ResetRecords(doc), nil
	case SetAchievement:
		return editor.SetAchievementStatus(doc, num(p, "index"), flag(p, "status"))
	case ToggleAchievement:
		return editor.ToggleAchievement(doc, num(p, "index"))
	case SetProgress:
		return editor.SetAchievementProgress(doc, str(p, "key"), num(p, "value")), nil
	case SetStat:
		return editor.SetStat(doc, str(p, "key"), num(p, "value"))
	case SetStatItem:
		return editor.SetStatItem(doc, str(p, "key"), num(p, "index"), schema.Stringify(p["value"]))
	case AppendStatItem:
		return editor.AppendStatItem(doc, str(p, "key"))
	case RemoveStatItem:
		return editor.RemoveStatItem(doc, str(p, "key"), num(p, "index"))
	case SetStatPair:
		n, _ := schema.ToFloat(p["num"])
		pair := types.Pair{Num: n, Text: schema.Stringify(p["text"])}
		return editor.SetStatPair(doc, str(p, "key"), num(p, "index"), pair)
	case AppendStatPair:
		return editor.AppendStatPair(doc, str(p, "key"))
	case RemoveStatPair:
		return editor.RemoveStatPair(doc, str(p, "key"), num(p, "index"))
	case AddPokemon:
		return editor.AddPokemon(doc, list(p), object(p, "pokemon"))
	case UpdatePokemon:
		return editor.UpdatePokemon(doc, list(p), num(p, "index"), object(p, "patch"))
	case RemovePokemon:
		return editor.RemovePokemon(doc, list(p), num(p, "index"))
	case SetAllLevels:
		return editor.SetAllLevels(doc, list(p), num(p, "value"))
	case MovePokemon:
		return editor.MovePokemon(doc, list(p), num(p, "index"))
	case SetRouteNumber:
		return editor.SetRouteNumber(doc, num(p, "value")), nil
	case SetRouteWave:
		return editor.SetRouteWave(doc, num(p, "index"), num(p, "value"))
	case SetEggPrice:
		return editor.SetEggPrice(doc, num(p, "value")), nil
	case AddEgg:
		return editor.AddEgg(doc, str(p, "species")), nil
	case RemoveEgg:
		return editor.RemoveEgg(doc, num(p, "index"))
	case AddItem:
		return editor.AddItemID(doc, str(p, "id")), nil
	case RemoveItem:
		return editor.RemoveItemID(doc, num(p, "index"))
	case UpdateStock:
		return editor.UpdateStockEntry(doc, num(p, "index"), object(p, "patch"))
	case SetStockPrice:
		return editor.SetStockPrice(doc, num(p, "index"), num(p, "value"))
	case SetPath:
		if raw, ok := p["raw"].(string); ok {
			return editor.SetPathRaw(doc, str(p, "path"), raw)
		}
		return editor.SetPath(doc, str(p, "path"), p["value"])
	}
	return doc, nil
}

func str(p map[string]any, key string) string {
	s, _ := p[key].(string)
	return s
}

func num(p map[string]any, key string) int {
	n, _ := schema.ToInt(p[key])
	return n
}

func flag(p map[string]any, key string) bool {
	b, _ := p[key].(bool)
	return b
}

func object(p map[string]any, key string) map[string]any {
	m, _ := p[key].(map[string]any)
	return m
}

func list(p map[string]any) types.PokemonList {
	return types.PokemonList(str(p, "list"))
}
