// Package parser converts command strings into Intent structs.
// Intentionally dumb: no grammar, just aliases and field splitting.
package parser

import (
	"strings"

	"github.com/nathoo/pokesave/types"
)

var verbAliases = map[string]string{
	// Player
	"rename":    "name",
	"money":     "gold",
	"g":         "gold",
	"slots":     "teamslots",
	"star":      "stars",
	"ribbon":    "ribbons",
	"bonus":     "extragold",
	"rec":       "record",
	"achv":      "ach",
	"achieve":   "ach",
	"badge":     "ach",
	"prog":      "progress",
	"counter":   "progress",
	"stats":     "stat",
	"statpairs": "statpair",
	"statitems": "statitem",

	// Pokémon
	"party":    "team",
	"pkmn":     "team",
	"pc":       "box",
	"storage":  "box",
	"mv":       "move",
	"transfer": "move",

	// Area
	"waves": "wave",

	// Shop
	"eggs":  "egg",
	"items": "item",

	// Read-only
	"print":    "show",
	"view":     "show",
	"ls":       "show",
	"cat":      "get",
	"img":      "sprite",
	"url":      "sprite",
	"h":        "help",
	"?":        "help",
	"commands": "help",
}

// tailVerbs keep the rest of the line verbatim after the given number of
// leading fields, so names and JSON values may contain spaces.
var tailVerbs = map[string]int{
	"name": 0,
	"set":  1,
}

// Parse converts a raw command line into an Intent. The verb is lower
// cased; arguments keep their case.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(input)
	words[0] = strings.ToLower(words[0])

	// Handle multi-word verb phrases before alias lookup.
	words = expandMultiWordVerbs(words)

	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}
	verb := words[0]

	if n, ok := tailVerbs[verb]; ok {
		return types.Intent{Verb: verb, Args: splitTail(input, n)}
	}
	return types.Intent{Verb: verb, Args: words[1:]}
}

// expandMultiWordVerbs handles "max records", "unlock 3", "deposit 2" etc.
func expandMultiWordVerbs(words []string) []string {
	switch words[0] {
	case "max":
		if len(words) == 1 || isWord(words[1], "all", "records") {
			return []string{"records", "max"}
		}
	case "reset":
		if len(words) == 1 || isWord(words[1], "all", "records") {
			return []string{"records", "reset"}
		}
	case "unlock":
		return append(append([]string{"ach"}, words[1:]...), "on")
	case "lock":
		return append(append([]string{"ach"}, words[1:]...), "off")
	case "deposit":
		return append([]string{"move", "team"}, words[1:]...)
	case "withdraw":
		return append([]string{"move", "box"}, words[1:]...)
	case "level", "lvl":
		if len(words) > 2 && isWord(words[1], "all") {
			return append([]string{"box", "level"}, words[2:]...)
		}
	}
	return words
}

func isWord(w string, options ...string) bool {
	w = strings.ToLower(w)
	for _, o := range options {
		if w == o {
			return true
		}
	}
	return false
}

// splitTail returns the n fields after the verb followed by the remainder
// of the line with its inner spacing intact.
func splitTail(input string, n int) []string {
	rest := strings.TrimSpace(input[len(firstField(input)):])
	args := make([]string, 0, n+1)
	for i := 0; i < n && rest != ""; i++ {
		f := firstField(rest)
		args = append(args, f)
		rest = strings.TrimSpace(rest[len(f):])
	}
	if rest != "" {
		args = append(args, rest)
	}
	return args
}

func firstField(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
