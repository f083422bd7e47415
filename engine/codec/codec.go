// Package codec implements the Base64⇄JSON transform of save strings and
// the raw JSON re-entry path.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nathoo/pokesave/types"
)

// Decode turns a save string into a document. All whitespace is removed
// first because exported saves are sometimes wrapped across lines.
func Decode(text string) (types.Document, error) {
	compact := stripSpace(text)
	if compact == "" {
		return nil, &DecodeError{Kind: ErrNoInput}
	}

	raw, err := decodeBase64(compact)
	if err != nil {
		return nil, &DecodeError{Kind: ErrInvalidEncoding, Cause: err}
	}
	if !utf8.Valid(raw) {
		return nil, &DecodeError{Kind: ErrCorruptPayload, Cause: errors.New("payload is not valid UTF-8")}
	}

	v, err := parseValue(raw)
	if err != nil {
		return nil, &DecodeError{Kind: ErrCorruptPayload, Cause: err}
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, &DecodeError{Kind: ErrWrongShape, Cause: &PatchValidationError{Got: jsonType(v)}}
	}
	return doc, nil
}

// Encode serializes a document to compact JSON and Base64-encodes the
// UTF-8 bytes with standard padding and no line wrapping.
func Encode(doc types.Document) (string, error) {
	if doc == nil {
		doc = types.Document{}
	}
	data, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Marshal renders v as compact JSON without HTML escaping, the form the
// game itself exports.
func Marshal(v any) ([]byte, error) {
	return marshal(v, "")
}

// ParseJSON parses raw JSON text typed into the raw editor. The result
// must be a JSON object.
func ParseJSON(raw string) (types.Document, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyJSON
	}
	v, err := parseValue([]byte(raw))
	if err != nil {
		return nil, toSyntaxError(err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, &PatchValidationError{Got: jsonType(v)}
	}
	return doc, nil
}

// FormatJSON renders a document as two-space indented JSON.
func FormatJSON(doc types.Document) (string, error) {
	if doc == nil {
		doc = types.Document{}
	}
	data, err := marshal(doc, "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Reformat pretty-prints raw JSON text without any shape check.
func Reformat(raw string) (string, error) {
	v, err := parseValue([]byte(strings.TrimSpace(raw)))
	if err != nil {
		return "", toSyntaxError(err)
	}
	data, err := marshal(v, "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stripSpace removes every whitespace rune, not just the ends. A byte
// order mark counts as whitespace.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

// decodeBase64 follows the forgiving browser rules: padding is optional,
// but a length of 1 mod 4 after removing it is never valid.
func decodeBase64(s string) ([]byte, error) {
	if len(s)%4 == 0 {
		s = strings.TrimSuffix(s, "=")
		s = strings.TrimSuffix(s, "=")
	}
	if len(s)%4 == 1 {
		return nil, errors.New("illegal base64 data length")
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// parseValue decodes exactly one JSON value, keeping numbers as
// json.Number so integers round-trip without float conversion.
func parseValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if err == io.EOF {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func toSyntaxError(err error) *SyntaxError {
	var jse *json.SyntaxError
	if errors.As(err, &jse) {
		return &SyntaxError{Msg: jse.Error(), Offset: jse.Offset}
	}
	return &SyntaxError{Msg: err.Error()}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64, int:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return "object"
	}
}
