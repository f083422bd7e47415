// Package events implements single-pass event handler dispatch.
// Handlers observe events but cannot emit new ones, so dispatch never
// recurses.
package events

import "github.com/nathoo/pokesave/types"

// Event types emitted by the engine.
const (
	Decoded      = "decoded"
	DecodeFailed = "decode_failed"
	Encoded      = "encoded"
	Replaced     = "replaced"
)

// Handler observes one event type. An empty EventType matches every event.
type Handler struct {
	EventType string
	Fn        func(types.Event)
}

// Dispatch runs matching handlers against the emitted events, in handler
// registration order for each event. Returns the number of calls made.
func Dispatch(evts []types.Event, handlers []Handler) int {
	calls := 0
	for _, event := range evts {
		for _, h := range handlers {
			if h.EventType != "" && h.EventType != event.Type {
				continue
			}
			if h.Fn == nil {
				continue
			}
			h.Fn(event)
			calls++
		}
	}
	return calls
}
