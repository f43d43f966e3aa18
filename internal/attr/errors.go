package attr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrDuplicateAttribute indicates the same marker or key appeared twice.
	ErrDuplicateAttribute = errors.New("duplicate attribute")

	// ErrUnrecognizedAttribute indicates attributes the resolver does not understand.
	ErrUnrecognizedAttribute = errors.New("unrecognized attribute")

	// ErrMissingTag indicates a field without a tag and without a default tag.
	ErrMissingTag = errors.New("missing tag")

	// ErrInvalidAttribute indicates an attribute that is not allowed in its position.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrMalformedTag indicates a tag attribute whose value is not a valid field number.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrMalformedAttribute indicates a struct tag value that cannot be split into attributes.
	ErrMalformedAttribute = errors.New("malformed attribute")
)

var errTagRange = errors.New("field number out of range")

// Error is a configuration error found while resolving field annotations.
// It wraps one of the sentinel errors.
type Error struct {
	Err   error       // Underlying sentinel error
	Kind  string      // Attribute kind for duplicates, field kind otherwise
	Attrs []Attribute // Offending attributes, if any
	Cause error       // Parse error behind ErrMalformedTag
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrDuplicateAttribute):
		return fmt.Sprintf("duplicate %s attribute", e.Kind)
	case errors.Is(e.Err, ErrUnrecognizedAttribute):
		if len(e.Attrs) == 1 {
			return fmt.Sprintf("unknown attribute for %s field: %s", e.Kind, e.Attrs[0])
		}

		return fmt.Sprintf("unknown attributes for %s field: [%s]", e.Kind, joinAttrs(e.Attrs))
	case errors.Is(e.Err, ErrMissingTag):
		return fmt.Sprintf("%s field is missing a tag attribute", e.Kind)
	case errors.Is(e.Err, ErrInvalidAttribute):
		return fmt.Sprintf("invalid attribute for %s field: %s", e.Kind, joinAttrs(e.Attrs))
	case errors.Is(e.Err, ErrMalformedTag):
		if e.Cause != nil {
			return fmt.Sprintf("invalid tag attribute %q: %v", joinAttrs(e.Attrs), e.Cause)
		}

		return fmt.Sprintf("invalid tag attribute %q", joinAttrs(e.Attrs))
	case errors.Is(e.Err, ErrMalformedAttribute):
		return fmt.Sprintf("malformed attribute list: %s", e.Kind)
	default:
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func joinAttrs(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, a.String())
	}

	return strings.Join(parts, " ")
}
