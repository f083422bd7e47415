package codec

import (
	"errors"
	"fmt"
)

// Decode failure kinds. A *DecodeError unwraps to exactly one of these.
var (
	ErrNoInput         = errors.New("no input provided")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrCorruptPayload  = errors.New("corrupt payload")
	ErrWrongShape      = errors.New("wrong shape")
)

// ErrEmptyJSON is returned by ParseJSON for blank raw JSON text.
var ErrEmptyJSON = errors.New("empty JSON")

// DecodeError reports why a save string could not be decoded.
type DecodeError struct {
	Kind  error // one of the Err* kind sentinels
	Cause error // underlying error, may be nil
}

func (e *DecodeError) Error() string {
	if e.Cause == nil {
		return "decode: " + e.Kind.Error()
	}
	return fmt.Sprintf("decode: %v: %v", e.Kind, e.Cause)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As.
func (e *DecodeError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// SyntaxError reports raw JSON text that does not parse.
type SyntaxError struct {
	Msg    string
	Offset int64
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// PatchValidationError reports raw JSON that parsed but is not an object.
type PatchValidationError struct {
	Got string // JSON type name of the parsed value
}

func (e *PatchValidationError) Error() string {
	return fmt.Sprintf("JSON must be an object, got %s", e.Got)
}

// User-facing messages.
const (
	MsgNoInput    = "Paste the string or load a .txt file"
	MsgInvalid    = "Invalid string. Check the Base64 format."
	MsgEmptyJSON  = "Enter the JSON."
	MsgNotObject  = "JSON must be an object."
	MsgBadJSON    = "Invalid JSON."
	MsgNoDocument = "Decode a save before encoding."
)

// UserMessage maps a codec error to the message shown to the user.
// Every decode failure other than empty input reads the same.
func UserMessage(err error) string {
	var pve *PatchValidationError
	var se *SyntaxError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoInput):
		return MsgNoInput
	case errors.Is(err, ErrEmptyJSON):
		return MsgEmptyJSON
	case errors.As(err, &pve):
		return MsgNotObject
	case errors.As(err, &se):
		return se.Msg
	case errors.Is(err, ErrInvalidEncoding),
		errors.Is(err, ErrCorruptPayload),
		errors.Is(err, ErrWrongShape):
		return MsgInvalid
	default:
		return err.Error()
	}
}
