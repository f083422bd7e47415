// Package engine provides the session store that owns the current save
// document and the Step() orchestrator that wires parsing, effects and
// events into a single edit.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/nathoo/pokesave/engine/codec"
	"github.com/nathoo/pokesave/engine/effects"
	"github.com/nathoo/pokesave/engine/events"
	"github.com/nathoo/pokesave/engine/sprite"
	"github.com/nathoo/pokesave/types"
)

var (
	// ErrNoDocument is returned when an operation needs a decoded save.
	ErrNoDocument = errors.New("no save decoded")
	// ErrUnencodable is returned when an edit would leave a document that
	// cannot be encoded.
	ErrUnencodable = errors.New("edit produces a save that cannot be encoded")
)

// Engine holds the single current document of an editing session. The
// document is only ever replaced wholesale.
type Engine struct {
	Doc        types.Document // nil until a decode succeeds
	Output     string         // last encoded save string
	Err        string         // last user-facing error message
	CommandLog []string
	Logger     *log.Logger
	Sprites    sprite.Resolver

	handlers []events.Handler
}

// New creates an engine with no document and a discarding logger.
func New() *Engine {
	return &Engine{
		Logger:  log.New(io.Discard, "pokesave: ", 0),
		Sprites: sprite.Default,
	}
}

// On registers fn for events of the given type ("" for all events).
func (e *Engine) On(eventType string, fn func(types.Event)) {
	e.handlers = append(e.handlers, events.Handler{EventType: eventType, Fn: fn})
}

// HasDocument reports whether a save is loaded.
func (e *Engine) HasDocument() bool {
	return e.Doc != nil
}

// Decode replaces the current document with the decoded save text. Blank
// input is rejected without touching the session. Any other failure
// clears both the document and the last output: the latest attempt is
// trusted over earlier ones.
func (e *Engine) Decode(text string) error {
	doc, err := codec.Decode(text)
	if err != nil {
		e.Err = codec.UserMessage(err)
		if !errors.Is(err, codec.ErrNoInput) {
			e.Doc = nil
			e.Output = ""
		}
		e.Logger.Printf("decode failed err=%q", err)
		e.emit(types.Event{Type: events.DecodeFailed, Data: map[string]any{"error": err.Error()}})
		return err
	}

	e.Doc = doc
	e.Output = ""
	e.Err = ""
	e.Logger.Printf("decode ok keys=%d", len(doc))
	e.emit(types.Event{Type: events.Decoded, Data: map[string]any{"keys": len(doc)}})
	return nil
}

// Encode serializes the current document and stores the result in Output.
func (e *Engine) Encode() (string, error) {
	if e.Doc == nil {
		e.Err = codec.MsgNoDocument
		return "", ErrNoDocument
	}
	out, err := codec.Encode(e.Doc)
	if err != nil {
		e.Err = err.Error()
		return "", err
	}
	e.Output = out
	e.Err = ""
	e.Logger.Printf("encode ok bytes=%d", len(out))
	e.emit(types.Event{Type: events.Encoded, Data: map[string]any{"bytes": len(out)}})
	return out, nil
}

// ApplyJSON replaces the document with raw JSON text from the raw editor.
// A failure leaves the current document untouched.
func (e *Engine) ApplyJSON(raw string) error {
	doc, err := codec.ParseJSON(raw)
	if err != nil {
		e.Err = codec.UserMessage(err)
		e.Logger.Printf("applyjson failed err=%q", err)
		return err
	}
	e.Err = ""
	e.Replace(doc)
	return nil
}

// FormatJSON renders the current document for the raw editor.
func (e *Engine) FormatJSON() (string, error) {
	if e.Doc == nil {
		return "", ErrNoDocument
	}
	return codec.FormatJSON(e.Doc)
}

// Replace installs next as the current document. Every edit ends here.
func (e *Engine) Replace(next types.Document) {
	e.Doc = next
	e.Logger.Printf("replace keys=%d", len(next))
	e.emit(types.Event{Type: events.Replaced, Data: map[string]any{"keys": len(next)}})
}

// Apply runs a list of effects as one edit. Either every effect lands in
// a single replacement or the document stays as it was.
func (e *Engine) Apply(effs []types.Effect) types.Result {
	var result types.Result
	if e.Doc == nil {
		result.Err = ErrNoDocument
		return result
	}
	if len(effs) == 0 {
		return result
	}

	next, evts, err := effects.Apply(e.Doc, effs)
	if err != nil {
		e.Logger.Printf("apply failed effects=%d err=%q", len(effs), err)
		result.Err = err
		return result
	}
	if _, err := codec.Marshal(next); err != nil {
		e.Logger.Printf("apply rejected effects=%d err=%q", len(effs), err)
		result.Err = fmt.Errorf("%w: %v", ErrUnencodable, err)
		return result
	}
	for _, ev := range evts {
		e.Logger.Printf("%s effect=%v", ev.Type, ev.Data["effect"])
	}
	result.Effects = append(result.Effects, effs...)
	result.Events = append(result.Events, evts...)
	e.Replace(next)
	e.emit(evts...)
	return result
}

func (e *Engine) emit(evts ...types.Event) {
	events.Dispatch(evts, e.handlers)
}
