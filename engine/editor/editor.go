// Package editor implements the section edits of a save document. Every
// function takes the current document and returns a complete replacement;
// the input document and everything it references are left unmodified.
// Index arguments are 0-based.
package editor

import (
	"errors"
	"fmt"

	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

var (
	// ErrIndexOutOfRange is returned when an index does not address an
	// existing element. The document is returned unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownList is returned for a Pokémon list other than team or box.
	ErrUnknownList = errors.New("unknown list")

	// ErrNotArray is returned by stats array edits on a non-array stat.
	ErrNotArray = errors.New("stat is not an array")

	// ErrWrongArrayKind is returned when item edits target a pair array
	// or pair edits target a plain array.
	ErrWrongArrayKind = errors.New("wrong array kind")

	// ErrNotScalar is returned by SetStat on an array or object stat.
	ErrNotScalar = errors.New("stat is not a number or string")
)

func outOfRange(what string, i, n int) error {
	return fmt.Errorf("%w: %s %d (have %d)", ErrIndexOutOfRange, what, i, n)
}

// setSection is the one-level merge every section edit goes through.
func setSection(doc types.Document, section string, patch map[string]any) types.Document {
	return schema.PatchSection(doc, section, patch)
}

func sectionList(doc types.Document, section, key string) []any {
	return schema.List(schema.Section(doc, section), key)
}

// object returns v as an object, or an empty one when it is null or not
// an object.
func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
