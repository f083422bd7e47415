package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/pokesave/engine/effects"
	"github.com/nathoo/pokesave/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Params every effect type needs to be applied meaningfully.
var requiredParams = map[string][]string{
	effects.SetPlayer:         {"patch"},
	effects.SetName:           {"name"},
	effects.SetPortrait:       {"value"},
	effects.SetGold:           {"value"},
	effects.SetTeamSlots:      {"value"},
	effects.SetStars:          {"value"},
	effects.SetRibbons:        {"value"},
	effects.SetExtraGold:      {"value"},
	effects.SetRecord:         {"index", "value"},
	effects.SetAchievement:    {"index", "status"},
	effects.ToggleAchievement: {"index"},
	effects.SetProgress:       {"key", "value"},
	effects.SetStat:           {"key", "value"},
	effects.SetStatItem:       {"key", "index", "value"},
	effects.AppendStatItem:    {"key"},
	effects.RemoveStatItem:    {"key", "index"},
	effects.SetStatPair:       {"key", "index", "num", "text"},
	effects.AppendStatPair:    {"key"},
	effects.RemoveStatPair:    {"key", "index"},
	effects.AddPokemon:        {"list"},
	effects.UpdatePokemon:     {"list", "index", "patch"},
	effects.RemovePokemon:     {"list", "index"},
	effects.SetAllLevels:      {"list", "value"},
	effects.MovePokemon:       {"list", "index"},
	effects.SetRouteNumber:    {"value"},
	effects.SetRouteWave:      {"index", "value"},
	effects.SetEggPrice:       {"value"},
	effects.AddEgg:            {"species"},
	effects.RemoveEgg:         {"index"},
	effects.AddItem:           {"id"},
	effects.RemoveItem:        {"index"},
	effects.UpdateStock:       {"index", "patch"},
	effects.SetStockPrice:     {"index", "value"},
	effects.SetPath:           {"path"},
}

// validate checks compiled effects before they reach the document. It
// returns the warnings on success.
func validate(effs []types.Effect) ([]string, error) {
	ve := &ValidationError{}

	if len(effs) == 0 {
		ve.Warnings = append(ve.Warnings, "script queued no edits")
	}

	for i, eff := range effs {
		where := fmt.Sprintf("edit %d (%s)", i+1, eff.Type)

		if !effects.Known[eff.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("edit %d: unknown effect type %q", i+1, eff.Type))
			continue
		}

		for _, key := range requiredParams[eff.Type] {
			if _, ok := eff.Params[key]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf("%s: missing %q", where, key))
			}
		}

		if idx, ok := eff.Params["index"].(int); ok && idx < 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s: index must be 1 or more", where))
		}

		if l, ok := eff.Params["list"]; ok {
			if l != string(types.Team) && l != string(types.Box) {
				ve.Errors = append(ve.Errors, fmt.Sprintf("%s: list must be %q or %q, got %v",
					where, types.Team, types.Box, l))
			}
		}

		if eff.Type == effects.SetPath {
			if _, ok := eff.Params["value"]; !ok {
				if _, raw := eff.Params["raw"]; !raw {
					ve.Warnings = append(ve.Warnings, fmt.Sprintf("%s: no value, path will be set to null", where))
				}
			}
		}
	}

	if len(ve.Errors) > 0 {
		return nil, ve
	}
	return ve.Warnings, nil
}
