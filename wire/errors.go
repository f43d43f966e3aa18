package wire

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrTruncated indicates the input ended in the middle of a value.
	ErrTruncated = errors.New("truncated input")

	// ErrMalformed indicates input that is not valid wire format.
	ErrMalformed = errors.New("malformed input")

	// ErrWireType indicates a field encoded with an unexpected wire type.
	ErrWireType = errors.New("unexpected wire type")

	// ErrRecursionLimit indicates messages nested deeper than RecursionLimit.
	ErrRecursionLimit = errors.New("recursion limit reached")
)

// DecodeError describes a failure to decode a message.
type DecodeError struct {
	Err   error            // Underlying sentinel error
	Field protowire.Number // Field being decoded, zero if unknown
	Type  protowire.Type   // Offending wire type for ErrWireType
	Cause error            // Error reported by protowire, if any
}

func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	if errors.Is(e.Err, ErrWireType) {
		msg = fmt.Sprintf("%s %d", msg, e.Type)
	}

	if e.Field != 0 {
		msg = fmt.Sprintf("field %d: %s", e.Field, msg)
	}

	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	return "decode: " + msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func parseError(num protowire.Number, n int) error {
	cause := protowire.ParseError(n)

	sentinel := ErrMalformed
	if errors.Is(cause, io.ErrUnexpectedEOF) {
		sentinel = ErrTruncated
	}

	return &DecodeError{Err: sentinel, Field: num, Cause: cause}
}
