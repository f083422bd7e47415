package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/pokesave/engine/effects"
	"github.com/nathoo/pokesave/engine/parser"
	"github.com/nathoo/pokesave/types"
)

// ErrUsage wraps malformed command arguments.
var ErrUsage = errors.New("usage")

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}

// readOnlyVerbs never produce effects.
var readOnlyVerbs = map[string]bool{
	"get": true, "show": true, "stars": true, "sprite": true, "help": true,
}

// Step processes one command line and returns the result.
func (e *Engine) Step(input string) types.Result {
	var result types.Result

	// 1. Parse input.
	intent := parser.Parse(input)

	// 2. Empty input.
	if intent.Verb == "" {
		result.Output = append(result.Output, "Type a command, or help.")
		return result
	}

	// 3. Log the command.
	e.CommandLog = append(e.CommandLog, input)

	// 4. Commands that need no document.
	switch intent.Verb {
	case "help":
		result.Output = HelpText()
		return result
	case "sprite":
		out, err := e.spriteCommand(intent.Args)
		result.Output, result.Err = out, err
		return result
	}

	if e.Doc == nil {
		result.Err = ErrNoDocument
		result.Output = []string{"Decode a save first."}
		return result
	}

	// 5. Read-only commands.
	if readOnlyVerbs[intent.Verb] && !(intent.Verb == "stars" && len(intent.Args) > 0) {
		out, err := e.readCommand(intent)
		result.Output, result.Err = out, err
		if err != nil {
			result.Output = append(result.Output, err.Error())
		}
		return result
	}

	// 6. Build effects.
	effs, err := buildEffects(intent)
	if err != nil {
		result.Err = err
		result.Output = []string{err.Error()}
		return result
	}

	// 7. Apply as one replacement.
	applied := e.Apply(effs)
	if applied.Err != nil {
		applied.Output = append(applied.Output, applied.Err.Error())
		return applied
	}

	// 8. Read back what changed.
	applied.Output = append(applied.Output, e.summary(intent.Verb)...)
	return applied
}

func effect(typ string, params map[string]any) []types.Effect {
	return []types.Effect{{Type: typ, Params: params}}
}

// buildEffects maps an edit command to its effects. Indices in commands
// are 1-based; effect params are 0-based.
func buildEffects(in types.Intent) ([]types.Effect, error) {
	a := in.Args

	switch in.Verb {
	case "name":
		if len(a) == 0 {
			return nil, usage("name <text>")
		}
		return effect(effects.SetName, map[string]any{"name": a[0]}), nil

	case "portrait", "gold", "teamslots", "stars", "ribbons", "extragold", "route":
		n, err := oneInt(in.Verb+" <n>", a)
		if err != nil {
			return nil, err
		}
		return effect(scalarEffects[in.Verb], map[string]any{"value": n}), nil

	case "record", "wave":
		if len(a) != 2 {
			return nil, usage("%s <route> <waves>", in.Verb)
		}
		i, err := index(a[0])
		if err != nil {
			return nil, err
		}
		n, err := number(a[1])
		if err != nil {
			return nil, err
		}
		typ := effects.SetRecord
		if in.Verb == "wave" {
			typ = effects.SetRouteWave
		}
		return effect(typ, map[string]any{"index": i, "value": n}), nil

	case "records":
		switch first(a) {
		case "max":
			return effect(effects.MaxRecords, nil), nil
		case "reset":
			return effect(effects.ResetRecords, nil), nil
		}
		return nil, usage("records max|reset")

	case "ach":
		return achEffects(a)

	case "progress", "stat":
		if len(a) != 2 {
			return nil, usage("%s <key> <n>", in.Verb)
		}
		n, err := number(a[1])
		if err != nil {
			return nil, err
		}
		typ := effects.SetProgress
		if in.Verb == "stat" {
			typ = effects.SetStat
		}
		return effect(typ, map[string]any{"key": a[0], "value": n}), nil

	case "statitem":
		return statItemEffects(a)

	case "statpair":
		return statPairEffects(a)

	case "team", "box":
		return pokemonEffects(types.PokemonList(in.Verb), a)

	case "move":
		if len(a) != 2 || (a[0] != "team" && a[0] != "box") {
			return nil, usage("move team|box <n>")
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		return effect(effects.MovePokemon, map[string]any{"list": a[0], "index": i}), nil

	case "egg":
		return eggEffects(a)

	case "item":
		return itemEffects(a)

	case "stock":
		if len(a) != 3 || a[0] != "price" {
			return nil, usage("stock price <n> <price>")
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		n, err := number(a[2])
		if err != nil {
			return nil, err
		}
		return effect(effects.SetStockPrice, map[string]any{"index": i, "value": n}), nil

	case "set":
		if len(a) != 2 {
			return nil, usage("set <path> <json>")
		}
		return effect(effects.SetPath, map[string]any{"path": a[0], "raw": a[1]}), nil
	}

	return nil, fmt.Errorf("unknown command %q (try help)", in.Verb)
}

var scalarEffects = map[string]string{
	"portrait":  effects.SetPortrait,
	"gold":      effects.SetGold,
	"teamslots": effects.SetTeamSlots,
	"stars":     effects.SetStars,
	"ribbons":   effects.SetRibbons,
	"extragold": effects.SetExtraGold,
	"route":     effects.SetRouteNumber,
}

func achEffects(a []string) ([]types.Effect, error) {
	if len(a) == 0 || len(a) > 2 {
		return nil, usage("ach <n> [on|off|toggle]")
	}
	i, err := index(a[0])
	if err != nil {
		return nil, err
	}
	mode := "toggle"
	if len(a) == 2 {
		mode = strings.ToLower(a[1])
	}
	switch mode {
	case "toggle":
		return effect(effects.ToggleAchievement, map[string]any{"index": i}), nil
	case "on", "off":
		return effect(effects.SetAchievement, map[string]any{"index": i, "status": mode == "on"}), nil
	}
	return nil, usage("ach <n> [on|off|toggle]")
}

func statItemEffects(a []string) ([]types.Effect, error) {
	const u = "statitem <key> <n> <value> | statitem <key> add | statitem <key> rm <n>"
	switch {
	case len(a) == 2 && a[1] == "add":
		return effect(effects.AppendStatItem, map[string]any{"key": a[0]}), nil
	case len(a) == 3 && a[1] == "rm":
		i, err := index(a[2])
		if err != nil {
			return nil, err
		}
		return effect(effects.RemoveStatItem, map[string]any{"key": a[0], "index": i}), nil
	case len(a) >= 3:
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		return effect(effects.SetStatItem, map[string]any{"key": a[0], "index": i, "value": strings.Join(a[2:], " ")}), nil
	}
	return nil, usage(u)
}

func statPairEffects(a []string) ([]types.Effect, error) {
	const u = "statpair <key> <n> <number> <text> | statpair <key> add | statpair <key> rm <n>"
	switch {
	case len(a) == 2 && a[1] == "add":
		return effect(effects.AppendStatPair, map[string]any{"key": a[0]}), nil
	case len(a) == 3 && a[1] == "rm":
		i, err := index(a[2])
		if err != nil {
			return nil, err
		}
		return effect(effects.RemoveStatPair, map[string]any{"key": a[0], "index": i}), nil
	case len(a) >= 3:
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		n, err := number(a[2])
		if err != nil {
			return nil, err
		}
		return effect(effects.SetStatPair, map[string]any{
			"key": a[0], "index": i, "num": n, "text": strings.Join(a[3:], " "),
		}), nil
	}
	return nil, usage(u)
}

// pokemonFlags maps command words to Pokémon boolean fields.
var pokemonFlags = map[string]string{
	"shiny":     "isShiny",
	"isshiny":   "isShiny",
	"hide":      "hideShiny",
	"hideshiny": "hideShiny",
	"fav":       "favorite",
	"favorite":  "favorite",
	"mega":      "isMega",
	"ismega":    "isMega",
}

func pokemonEffects(list types.PokemonList, a []string) ([]types.Effect, error) {
	l := string(list)
	switch first(a) {
	case "add":
		if len(a) < 2 {
			return nil, usage("%s add <species> [lvl] [shiny] [hide] [fav] [mega]", l)
		}
		p := map[string]any{"specieKey": strings.ToLower(a[1])}
		for _, w := range a[2:] {
			if n, err := strconv.Atoi(w); err == nil {
				p["lvl"] = n
				continue
			}
			field, ok := pokemonFlags[strings.ToLower(w)]
			if !ok {
				return nil, usage("unknown option %q", w)
			}
			p[field] = true
		}
		return effect(effects.AddPokemon, map[string]any{"list": l, "pokemon": p}), nil

	case "rm":
		if len(a) != 2 {
			return nil, usage("%s rm <n>", l)
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		return effect(effects.RemovePokemon, map[string]any{"list": l, "index": i}), nil

	case "set":
		if len(a) < 4 {
			return nil, usage("%s set <n> <field> <value>", l)
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		field, value, err := pokemonField(a[2], strings.Join(a[3:], " "))
		if err != nil {
			return nil, err
		}
		return effect(effects.UpdatePokemon, map[string]any{
			"list": l, "index": i, "patch": map[string]any{field: value},
		}), nil

	case "level":
		n, err := oneInt(l+" level <n>", a[1:])
		if err != nil {
			return nil, err
		}
		return effect(effects.SetAllLevels, map[string]any{"list": l, "value": n}), nil
	}
	return nil, usage("%s add|rm|set|level ...", l)
}

// pokemonField converts a "team set" field and value to a patch entry.
func pokemonField(field, value string) (string, any, error) {
	f := strings.ToLower(field)
	if key, ok := pokemonFlags[f]; ok {
		b, err := parseBool(value)
		if err != nil {
			return "", nil, err
		}
		return key, b, nil
	}
	switch f {
	case "lvl", "level":
		n, err := number(value)
		return "lvl", n, err
	case "species", "speciekey":
		return "specieKey", strings.ToLower(value), nil
	case "target", "targetmode":
		return "targetMode", value, nil
	case "item":
		if value == "null" || value == "none" {
			return "item", nil, nil
		}
	}
	return "", nil, usage("unknown field %q", field)
}

func eggEffects(a []string) ([]types.Effect, error) {
	switch first(a) {
	case "price":
		n, err := oneInt("egg price <n>", a[1:])
		if err != nil {
			return nil, err
		}
		return effect(effects.SetEggPrice, map[string]any{"value": n}), nil
	case "add":
		if len(a) != 2 {
			return nil, usage("egg add <species>")
		}
		return effect(effects.AddEgg, map[string]any{"species": a[1]}), nil
	case "rm":
		if len(a) != 2 {
			return nil, usage("egg rm <n>")
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		return effect(effects.RemoveEgg, map[string]any{"index": i}), nil
	}
	return nil, usage("egg price|add|rm ...")
}

func itemEffects(a []string) ([]types.Effect, error) {
	switch first(a) {
	case "add":
		if len(a) != 2 {
			return nil, usage("item add <id>")
		}
		return effect(effects.AddItem, map[string]any{"id": a[1]}), nil
	case "rm":
		if len(a) != 2 {
			return nil, usage("item rm <n>")
		}
		i, err := index(a[1])
		if err != nil {
			return nil, err
		}
		return effect(effects.RemoveItem, map[string]any{"index": i}), nil
	}
	return nil, usage("item add|rm ...")
}

func first(a []string) string {
	if len(a) == 0 {
		return ""
	}
	return strings.ToLower(a[0])
}

func oneInt(u string, a []string) (int, error) {
	if len(a) != 1 {
		return 0, usage(u)
	}
	return number(a[0])
}

func number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usage("not a number: %q", s)
	}
	return n, nil
}

// index converts a 1-based command index to a 0-based one.
func index(s string) (int, error) {
	n, err := number(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, usage("index must be 1 or more, got %d", n)
	}
	return n - 1, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, usage("not a boolean: %q", s)
	}
	return b, nil
}
