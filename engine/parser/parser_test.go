package parser

import (
	"reflect"
	"testing"

	"github.com/nathoo/pokesave/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{},
		},

		// Basic verbs
		{
			name:  "stars",
			input: "stars",
			want:  types.Intent{Verb: "stars", Args: []string{}},
		},
		{
			name:  "gold with value",
			input: "gold 5000",
			want:  types.Intent{Verb: "gold", Args: []string{"5000"}},
		},
		{
			name:  "verb is case-insensitive",
			input: "GOLD 1",
			want:  types.Intent{Verb: "gold", Args: []string{"1"}},
		},
		{
			name:  "args keep case",
			input: "item add AmuletCoin",
			want:  types.Intent{Verb: "item", Args: []string{"add", "AmuletCoin"}},
		},

		// Aliases
		{
			name:  "money → gold",
			input: "money 10",
			want:  types.Intent{Verb: "gold", Args: []string{"10"}},
		},
		{
			name:  "pc → box",
			input: "pc level 100",
			want:  types.Intent{Verb: "box", Args: []string{"level", "100"}},
		},
		{
			name:  "? → help",
			input: "?",
			want:  types.Intent{Verb: "help", Args: []string{}},
		},

		// Multi-word phrases
		{
			name:  "max records",
			input: "max records",
			want:  types.Intent{Verb: "records", Args: []string{"max"}},
		},
		{
			name:  "bare reset",
			input: "reset",
			want:  types.Intent{Verb: "records", Args: []string{"reset"}},
		},
		{
			name:  "unlock 3",
			input: "unlock 3",
			want:  types.Intent{Verb: "ach", Args: []string{"3", "on"}},
		},
		{
			name:  "lock 3",
			input: "lock 3",
			want:  types.Intent{Verb: "ach", Args: []string{"3", "off"}},
		},
		{
			name:  "deposit 2",
			input: "deposit 2",
			want:  types.Intent{Verb: "move", Args: []string{"team", "2"}},
		},
		{
			name:  "withdraw 1",
			input: "withdraw 1",
			want:  types.Intent{Verb: "move", Args: []string{"box", "1"}},
		},
		{
			name:  "level all 100",
			input: "level all 100",
			want:  types.Intent{Verb: "box", Args: []string{"level", "100"}},
		},

		// Verbatim tails
		{
			name:  "name with spaces",
			input: "name  Ash   Ketchum",
			want:  types.Intent{Verb: "name", Args: []string{"Ash   Ketchum"}},
		},
		{
			name:  "rename alias keeps tail",
			input: "rename Red",
			want:  types.Intent{Verb: "name", Args: []string{"Red"}},
		},
		{
			name:  "set path with JSON value",
			input: `set player.stats {"a": [1, 2]}`,
			want:  types.Intent{Verb: "set", Args: []string{"player.stats", `{"a": [1, 2]}`}},
		},
		{
			name:  "set with path only",
			input: "set gold",
			want:  types.Intent{Verb: "set", Args: []string{"gold"}},
		},
		{
			name:  "bare name",
			input: "name",
			want:  types.Intent{Verb: "name", Args: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
