package editor

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nathoo/pokesave/engine/codec"
	"github.com/nathoo/pokesave/types"
)

// GetPath looks up a gjson path (e.g. "player.records.0") in the document.
func GetPath(doc types.Document, path string) (gjson.Result, error) {
	data, err := codec.Marshal(doc)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(data, path), nil
}

// SetPath sets the value at an sjson path and re-reads the document. The
// result must still be a JSON object.
func SetPath(doc types.Document, path string, value any) (types.Document, error) {
	data, err := codec.Marshal(doc)
	if err != nil {
		return doc, err
	}
	out, err := sjson.SetBytes(data, path, value)
	if err != nil {
		return doc, fmt.Errorf("set %s: %w", path, err)
	}
	return reparse(doc, out)
}

// SetPathRaw is SetPath with a raw JSON value.
func SetPathRaw(doc types.Document, path, raw string) (types.Document, error) {
	if !gjson.Valid(raw) {
		return doc, fmt.Errorf("set %s: invalid JSON value %q", path, raw)
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		return doc, err
	}
	out, err := sjson.SetRawBytes(data, path, []byte(raw))
	if err != nil {
		return doc, fmt.Errorf("set %s: %w", path, err)
	}
	return reparse(doc, out)
}

func reparse(doc types.Document, data []byte) (types.Document, error) {
	next, err := codec.ParseJSON(string(data))
	if err != nil {
		return doc, err
	}
	return next, nil
}
