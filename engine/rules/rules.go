// Package rules holds the derived-value computations over a save: star
// totals, stats pair reshaping, shop slot composition and achievement
// aggregation. Every function is pure and deterministic.
package rules

import (
	"fmt"

	"github.com/nathoo/pokesave/types"
)

// Bounds for clamped numeric inputs.
const (
	MaxWaves = 100
	MinLevel = 1
	MaxLevel = 100
)

// Stars derives the star progress from per-route records. Each record is
// worth up to MaxWaves stars. The result is never stored independently.
func Stars(records []int) types.StarTotals {
	total := 0
	for _, r := range records {
		total += r
	}
	return types.StarTotals{Total: total, Max: len(records) * MaxWaves}
}

// Percent returns the star progress as a percentage, 0 when there are
// no routes.
func Percent(st types.StarTotals) float64 {
	if st.Max == 0 {
		return 0
	}
	return float64(st.Total) / float64(st.Max) * 100
}

// ClampWaves limits a waves-cleared value to [0, MaxWaves].
func ClampWaves(n int) int {
	return clamp(n, 0, MaxWaves)
}

// ClampLevel limits a Pokémon level to [MinLevel, MaxLevel].
func ClampLevel(n int) int {
	return clamp(n, MinLevel, MaxLevel)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// RouteName returns the display name of the route at index i.
func RouteName(i int) string {
	return fmt.Sprintf("Route %d", i+1)
}

// AchievementStats aggregates the achievement section of a player.
type AchievementStats struct {
	Unlocked     int
	Total        int
	ProgressKeys int
	ProgressSum  int
}

// AchievementSummary counts unlocked achievements and sums progress values.
func AchievementSummary(p types.Player) AchievementStats {
	st := AchievementStats{
		Total:        len(p.Achievements),
		ProgressKeys: len(p.AchievementProgress),
	}
	for _, a := range p.Achievements {
		if a.Status {
			st.Unlocked++
		}
	}
	for _, v := range p.AchievementProgress {
		st.ProgressSum += v
	}
	return st
}
