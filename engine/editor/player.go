package editor

import (
	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// SetPlayer merges patch into the player section.
func SetPlayer(doc types.Document, patch map[string]any) types.Document {
	return setSection(doc, types.KeyPlayer, patch)
}

func SetName(doc types.Document, name string) types.Document {
	return SetPlayer(doc, map[string]any{"name": name})
}

func SetPortrait(doc types.Document, n int) types.Document {
	return SetPlayer(doc, map[string]any{"portrait": n})
}

// SetGold writes player.gold and the root-level gold mirror in a single
// replacement so the two never disagree.
func SetGold(doc types.Document, n int) types.Document {
	next := SetPlayer(doc, map[string]any{"gold": n})
	next[types.KeyGold] = n
	return next
}

// SetTeamSlots stores the team size. Zero and negative counts become 1.
func SetTeamSlots(doc types.Document, n int) types.Document {
	if n < 1 {
		n = 1
	}
	return SetPlayer(doc, map[string]any{"teamSlots": n})
}

// SetStars overwrites the stored star count. Records are not touched, so
// this can leave stars out of sync with them.
func SetStars(doc types.Document, n int) types.Document {
	return SetPlayer(doc, map[string]any{"stars": n})
}

func SetRibbons(doc types.Document, n int) types.Document {
	return SetPlayer(doc, map[string]any{"ribbons": n})
}

func SetExtraGold(doc types.Document, n int) types.Document {
	return SetPlayer(doc, map[string]any{"extraGold": n})
}

// SetRecord sets the waves cleared on route i, clamped to [0, 100], and
// stores the new sum of all records as stars.
func SetRecord(doc types.Document, i, n int) (types.Document, error) {
	records := sectionList(doc, types.KeyPlayer, "records")
	if !schema.InRange(records, i) {
		return doc, outOfRange("record", i, len(records))
	}
	next := schema.ReplaceAt(records, i, rules.ClampWaves(n))
	return SetPlayer(doc, map[string]any{
		"records": next,
		"stars":   rules.Stars(schema.IntsOf(next)).Total,
	}), nil
}

// MaxAllRecords sets every route record to the maximum and stars to the
// maximum total.
func MaxAllRecords(doc types.Document) types.Document {
	return fillRecords(doc, rules.MaxWaves)
}

// ResetRecords sets every route record and stars to zero.
func ResetRecords(doc types.Document) types.Document {
	return fillRecords(doc, 0)
}

func fillRecords(doc types.Document, n int) types.Document {
	records := sectionList(doc, types.KeyPlayer, "records")
	next := make([]any, len(records))
	for i := range next {
		next[i] = n
	}
	return SetPlayer(doc, map[string]any{"records": next, "stars": n * len(next)})
}

// SetAchievementStatus marks achievement i unlocked or pending. A null
// entry becomes an object holding only the status.
func SetAchievementStatus(doc types.Document, i int, unlocked bool) (types.Document, error) {
	list := sectionList(doc, types.KeyPlayer, "achievements")
	if !schema.InRange(list, i) {
		return doc, outOfRange("achievement", i, len(list))
	}
	entry := schema.Merge(object(list[i]), map[string]any{"status": unlocked})
	return SetPlayer(doc, map[string]any{"achievements": schema.ReplaceAt(list, i, entry)}), nil
}

// ToggleAchievement flips the status of achievement i.
func ToggleAchievement(doc types.Document, i int) (types.Document, error) {
	list := sectionList(doc, types.KeyPlayer, "achievements")
	if !schema.InRange(list, i) {
		return doc, outOfRange("achievement", i, len(list))
	}
	return SetAchievementStatus(doc, i, !schema.Bool(object(list[i]), "status"))
}

// SetAchievementProgress sets one achievementProgress counter.
func SetAchievementProgress(doc types.Document, key string, n int) types.Document {
	progress := schema.Map(schema.Section(doc, types.KeyPlayer), "achievementProgress")
	return SetPlayer(doc, map[string]any{
		"achievementProgress": schema.Merge(progress, map[string]any{key: n}),
	})
}
