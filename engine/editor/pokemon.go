package editor

import (
	"fmt"
	"strings"

	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// DefaultSpecies is used for new entries with a blank species key.
const DefaultSpecies = "pikachu"

// DefaultPokemon returns the template for a newly added entry.
func DefaultPokemon() map[string]any {
	return map[string]any{
		"specieKey":  DefaultSpecies,
		"lvl":        1,
		"targetMode": "first",
		"favorite":   false,
		"item":       nil,
		"isShiny":    false,
		"hideShiny":  false,
		"isMega":     false,
	}
}

func checkList(list types.PokemonList) error {
	if list != types.Team && list != types.Box {
		return fmt.Errorf("%w: %q", ErrUnknownList, list)
	}
	return nil
}

func other(list types.PokemonList) types.PokemonList {
	if list == types.Team {
		return types.Box
	}
	return types.Team
}

func entries(doc types.Document, list types.PokemonList) []any {
	return schema.List(doc, string(list))
}

// AddPokemon appends a new entry built from the default template and p.
func AddPokemon(doc types.Document, list types.PokemonList, p map[string]any) (types.Document, error) {
	if err := checkList(list); err != nil {
		return doc, err
	}
	entry := schema.Merge(DefaultPokemon(), p)
	if strings.TrimSpace(schema.String(entry, "specieKey")) == "" {
		entry["specieKey"] = DefaultSpecies
	}
	if lvl, ok := schema.ToInt(entry["lvl"]); ok {
		entry["lvl"] = rules.ClampLevel(lvl)
	}
	return schema.With(doc, string(list), schema.Append(entries(doc, list), entry)), nil
}

// UpdatePokemon merges patch into entry i. A numeric lvl in patch is
// clamped to [1, 100].
func UpdatePokemon(doc types.Document, list types.PokemonList, i int, patch map[string]any) (types.Document, error) {
	if err := checkList(list); err != nil {
		return doc, err
	}
	cur := entries(doc, list)
	if !schema.InRange(cur, i) {
		return doc, outOfRange(string(list), i, len(cur))
	}
	entry := schema.Merge(object(cur[i]), patch)
	if lvl, ok := schema.ToInt(patch["lvl"]); ok {
		entry["lvl"] = rules.ClampLevel(lvl)
	}
	return schema.With(doc, string(list), schema.ReplaceAt(cur, i, entry)), nil
}

// RemovePokemon removes entry i.
func RemovePokemon(doc types.Document, list types.PokemonList, i int) (types.Document, error) {
	if err := checkList(list); err != nil {
		return doc, err
	}
	cur := entries(doc, list)
	if !schema.InRange(cur, i) {
		return doc, outOfRange(string(list), i, len(cur))
	}
	return schema.With(doc, string(list), schema.RemoveAt(cur, i)), nil
}

// SetAllLevels sets lvl on every entry of the list.
func SetAllLevels(doc types.Document, list types.PokemonList, lvl int) (types.Document, error) {
	if err := checkList(list); err != nil {
		return doc, err
	}
	cur := entries(doc, list)
	next := make([]any, len(cur))
	lvl = rules.ClampLevel(lvl)
	for i, e := range cur {
		next[i] = schema.Merge(object(e), map[string]any{"lvl": lvl})
	}
	return schema.With(doc, string(list), next), nil
}

// MovePokemon removes entry i from one list and appends a copy of it to
// the other, in one replacement.
func MovePokemon(doc types.Document, from types.PokemonList, i int) (types.Document, error) {
	if err := checkList(from); err != nil {
		return doc, err
	}
	src := entries(doc, from)
	if !schema.InRange(src, i) {
		return doc, outOfRange(string(from), i, len(src))
	}
	to := other(from)
	moved := src[i]
	if m, ok := moved.(map[string]any); ok {
		moved = schema.Merge(m, nil)
	}
	next := schema.With(doc, string(from), schema.RemoveAt(src, i))
	next[string(to)] = schema.Append(entries(doc, to), moved)
	return next, nil
}
