// Package field turns the annotations of one struct field into a validated
// field descriptor and into the Go source fragments that encode, merge, size
// and clear that field.
//
// Resolution and generation depend only on their arguments. Fields are
// independent, so callers may resolve them concurrently.
//
// Only message-typed fields are handled here. A resolver returns a nil
// descriptor and a nil error when the annotations do not describe a message
// field, so the caller can try other field kinds on the same annotations.
//
// Fragments follow fixed naming conventions for the surrounding generated
// method: the output buffer is b, the incoming wire type is typ, the input
// cursor is c and the size accumulator is n. See the constants in fragment.go.
package field
