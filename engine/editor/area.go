package editor

import (
	"github.com/nathoo/pokesave/engine/rules"
	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

// SetRouteNumber sets the current route index.
func SetRouteNumber(doc types.Document, n int) types.Document {
	return setSection(doc, types.KeyArea, map[string]any{"routeNumber": n})
}

// SetRouteWave sets the waves reached on route i, clamped to [0, 100].
func SetRouteWave(doc types.Document, i, n int) (types.Document, error) {
	waves := sectionList(doc, types.KeyArea, "routeWaves")
	if !schema.InRange(waves, i) {
		return doc, outOfRange("route", i, len(waves))
	}
	return setSection(doc, types.KeyArea, map[string]any{
		"routeWaves": schema.ReplaceAt(waves, i, rules.ClampWaves(n)),
	}), nil
}
