package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nathoo/pokesave/engine/codec"
	"github.com/nathoo/pokesave/engine/editor"
	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// Sections lists the names Show accepts, in tab order.
var Sections = []string{"player", "team", "box", "area", "shop", "json"}

// Show renders one section of the current document as text lines.
func (e *Engine) Show(section string) ([]string, error) {
	if e.Doc == nil {
		return nil, ErrNoDocument
	}
	doc := e.Doc

	switch strings.ToLower(section) {
	case "player", "":
		return showPlayer(schema.PlayerOf(doc)), nil
	case "records", "routes":
		return showRecords(schema.PlayerOf(doc)), nil
	case "achievements", "ach":
		return showAchievements(schema.PlayerOf(doc)), nil
	case "progress":
		return showProgress(schema.PlayerOf(doc)), nil
	case "stats":
		return showStats(schema.PlayerOf(doc)), nil
	case "team":
		return showPokemon("Team", schema.TeamOf(doc)), nil
	case "box":
		return showPokemon("Box", schema.BoxOf(doc)), nil
	case "area":
		return showArea(schema.AreaOf(doc)), nil
	case "shop":
		return showShop(schema.ShopOf(doc)), nil
	case "json":
		s, err := codec.FormatJSON(doc)
		if err != nil {
			return nil, err
		}
		return strings.Split(s, "\n"), nil
	}
	return nil, fmt.Errorf("unknown section %q (player, team, box, area, shop, json, records, achievements, progress, stats)", section)
}

func (e *Engine) readCommand(in types.Intent) ([]string, error) {
	switch in.Verb {
	case "show":
		return e.Show(first(in.Args))
	case "stars":
		return starsReport(schema.PlayerOf(e.Doc)), nil
	case "get":
		if len(in.Args) != 1 {
			return nil, usage("get <path>")
		}
		r, err := editor.GetPath(e.Doc, in.Args[0])
		if err != nil {
			return nil, err
		}
		if !r.Exists() {
			return []string{in.Args[0] + " is not set."}, nil
		}
		return []string{r.Raw}, nil
	}
	return nil, nil
}

func (e *Engine) spriteCommand(a []string) ([]string, error) {
	if len(a) == 0 {
		return nil, usage("sprite <species> [shiny] [hide]")
	}
	var shiny, hide bool
	for _, w := range a[1:] {
		switch strings.ToLower(w) {
		case "shiny":
			shiny = true
		case "hide":
			hide = true
		default:
			return nil, usage("unknown option %q", w)
		}
	}
	return []string{e.Sprites.PokemonURL(strings.ToLower(a[0]), shiny, hide)}, nil
}

// summary reads back the part of the document an edit verb touched.
func (e *Engine) summary(verb string) []string {
	p := schema.PlayerOf(e.Doc)
	switch verb {
	case "name":
		return []string{"Name: " + p.Name}
	case "gold":
		return []string{"Gold: " + rules.FormatPrice(p.Gold)}
	case "portrait":
		return []string{fmt.Sprintf("Portrait: %d", p.Portrait)}
	case "teamslots":
		return []string{fmt.Sprintf("Team slots: %d", p.TeamSlots)}
	case "ribbons":
		return []string{fmt.Sprintf("Ribbons: %d", p.Ribbons)}
	case "extragold":
		return []string{fmt.Sprintf("Extra gold: %d", p.ExtraGold)}
	case "record", "records", "stars":
		return starsReport(p)
	case "ach":
		st := rules.AchievementSummary(p)
		return []string{fmt.Sprintf("Achievements: %d/%d unlocked", st.Unlocked, st.Total)}
	case "progress":
		return showProgress(p)
	case "stat", "statitem", "statpair":
		return showStats(p)
	case "team", "box", "move":
		return []string{fmt.Sprintf("Team: %d  Box: %d", len(schema.TeamOf(e.Doc)), len(schema.BoxOf(e.Doc)))}
	case "route", "wave":
		return showArea(schema.AreaOf(e.Doc))
	case "egg", "item", "stock":
		return showShop(schema.ShopOf(e.Doc))
	}
	return []string{"Done."}
}

// starsReport shows the derived total next to the stored value so a
// desync from raw JSON edits is visible.
func starsReport(p types.Player) []string {
	st := rules.Stars(p.Records)
	line := fmt.Sprintf("Stars: %d / %d (%.1f%%)", st.Total, st.Max, rules.Percent(st))
	if p.Stars != st.Total {
		line += fmt.Sprintf("  stored: %d (out of sync)", p.Stars)
	}
	return []string{line}
}

func showPlayer(p types.Player) []string {
	out := []string{
		fmt.Sprintf("Name: %s", p.Name),
		fmt.Sprintf("Portrait: %d", p.Portrait),
		fmt.Sprintf("Gold: %s", rules.FormatPrice(p.Gold)),
		fmt.Sprintf("Extra gold: %d", p.ExtraGold),
		fmt.Sprintf("Team slots: %d", p.TeamSlots),
		fmt.Sprintf("Ribbons: %d", p.Ribbons),
		"",
	}
	out = append(out, showRecords(p)...)
	out = append(out, "")
	out = append(out, showAchievements(p)...)
	out = append(out, "")
	out = append(out, showProgress(p)...)
	out = append(out, "")
	out = append(out, showStats(p)...)
	return out
}

func showRecords(p types.Player) []string {
	out := starsReport(p)
	for i, r := range p.Records {
		out = append(out, fmt.Sprintf("  %-9s %3d", rules.RouteName(i)+":", r))
	}
	return out
}

func showAchievements(p types.Player) []string {
	if len(p.Achievements) == 0 {
		return []string{"No achievements in save. Use set or /applyjson to add."}
	}
	st := rules.AchievementSummary(p)
	out := []string{fmt.Sprintf("Achievements: %d/%d unlocked", st.Unlocked, st.Total)}
	for i, a := range p.Achievements {
		mark := " "
		if a.Status {
			mark = "x"
		}
		desc := ""
		if len(a.Description) > 0 {
			desc = a.Description[0]
		}
		out = append(out, fmt.Sprintf("  #%d [%s] %s", i+1, mark, desc))
	}
	return out
}

func showProgress(p types.Player) []string {
	if len(p.AchievementProgress) == 0 {
		return []string{"No achievement progress."}
	}
	st := rules.AchievementSummary(p)
	out := []string{fmt.Sprintf("Progress: %d keys, total %d", st.ProgressKeys, st.ProgressSum)}
	for _, k := range sortedKeys(p.AchievementProgress) {
		out = append(out, fmt.Sprintf("  %s: %d", k, p.AchievementProgress[k]))
	}
	return out
}

func showStats(p types.Player) []string {
	if len(p.Stats) == 0 {
		return []string{"No stats in save."}
	}
	out := []string{"Stats:"}
	for _, k := range sortedKeys(p.Stats) {
		out = append(out, "  "+statLine(k, p.Stats[k]))
	}
	return out
}

func statLine(key string, v types.StatValue) string {
	switch v.Kind {
	case types.StatNumber:
		return fmt.Sprintf("%s: %s", key, schema.Stringify(v.Number))
	case types.StatString:
		return fmt.Sprintf("%s: %q", key, v.Text)
	case types.StatArray:
		kind, known := rules.StatsArrayKind(key)
		if !known {
			kind = rules.InferItemKind(rules.NormalizeArray(v.List))
		}
		if kind == rules.ArrayPair {
			labels := rules.PairLabels(key)
			var parts []string
			for i, pr := range rules.FlatToPairs(rules.NormalizeArray(v.List)) {
				parts = append(parts, fmt.Sprintf("#%d %s %s %s %s", i+1, labels[0], strconv.FormatFloat(pr.Num, 'f', -1, 64), labels[1], pr.Text))
			}
			return fmt.Sprintf("%s (pairs): %s", key, strings.Join(parts, "; "))
		}
		var parts []string
		for _, e := range rules.NormalizeArray(v.List) {
			parts = append(parts, schema.Stringify(e))
		}
		return fmt.Sprintf("%s (%s): [%s]", key, kind, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: (edit with set)", key)
}

func showPokemon(title string, list []types.Pokemon) []string {
	out := []string{fmt.Sprintf("%s: %d", title, len(list))}
	for i, p := range list {
		out = append(out, fmt.Sprintf("  #%d %s", i+1, pokemonLine(p)))
	}
	return out
}

func pokemonLine(p types.Pokemon) string {
	parts := []string{p.SpecieKey, fmt.Sprintf("Lv.%d", p.Lvl)}
	if p.IsShiny {
		if p.HideShiny {
			parts = append(parts, "shiny(hidden)")
		} else {
			parts = append(parts, "shiny")
		}
	}
	if p.Favorite {
		parts = append(parts, "fav")
	}
	if p.IsMega {
		parts = append(parts, "mega")
	}
	parts = append(parts, "target="+p.TargetMode)
	if p.Item != nil {
		parts = append(parts, "item="+rules.ItemDisplayName(*p.Item))
	}
	return strings.Join(parts, " ")
}

func showArea(a types.Area) []string {
	out := []string{fmt.Sprintf("Current route: %d", a.RouteNumber)}
	for i, w := range a.RouteWaves {
		out = append(out, fmt.Sprintf("  %-9s %3d waves", rules.RouteName(i)+":", w))
	}
	return out
}

func showShop(s types.Shop) []string {
	out := []string{
		"Egg price: " + rules.FormatPrice(s.EggPrice),
		"Eggs: " + joinOrNone(s.EggList),
		"Item list: " + joinOrNone(s.ItemList),
		"Stock:",
	}
	for _, slot := range rules.ShopSlots(s) {
		if slot.Kind == types.SlotEgg {
			out = append(out, fmt.Sprintf("  [egg] %s", rules.FormatPrice(slot.Price)))
			continue
		}
		out = append(out, fmt.Sprintf("  #%d %s (%s) %s",
			slot.Index+1, rules.ItemDisplayName(*slot.Item), slot.Item.ID, rules.FormatPrice(slot.Price)))
	}
	return out
}

func joinOrNone(list []string) string {
	if len(list) == 0 {
		return "(none)"
	}
	var parts []string
	for i, s := range list {
		parts = append(parts, fmt.Sprintf("%d.%s", i+1, s))
	}
	return strings.Join(parts, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HelpText lists the editor commands.
func HelpText() []string {
	return []string{
		"Player:  name <text> | gold <n> | portrait <n> | teamslots <n> | stars [n] | ribbons <n> | extragold <n>",
		"Routes:  record <route> <waves> | records max|reset",
		"Badges:  ach <n> [on|off|toggle] | unlock <n> | lock <n> | progress <key> <n>",
		"Stats:   stat <key> <n> | statitem <key> <n> <value>|add|rm <n> | statpair <key> <n> <num> <text>|add|rm <n>",
		"Pokémon: team|box add <species> [lvl] [shiny] [hide] [fav] [mega] | team|box rm <n>",
		"         team|box set <n> <field> <value> | box level <n> | move team|box <n>",
		"Area:    route <n> | wave <route> <waves>",
		"Shop:    egg price <n> | egg add <species> | egg rm <n> | item add <id> | item rm <n> | stock price <n> <price>",
		"Raw:     set <path> <json> | get <path>",
		"View:    show player|team|box|area|shop|json|records|achievements|progress|stats | sprite <species> [shiny] [hide]",
	}
}
