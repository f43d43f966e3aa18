// Package attr provides the annotation primitives shared by every field-kind
// resolver.
//
// Annotations come from a single struct tag key (proto by default):
//
//	Owner *Person `proto:"message,tag=2"`
//	People []*Person `proto:"message,repeated"`
//
// A tag value is split into an ordered list of Attribute tokens. Each token is
// either a bare marker (message, boxed, repeated) or a key/value pair
// (tag=2, label=required). The helpers in this package recognize one token at
// a time; deciding what a whole list means is the job of the resolvers in
// package field.
//
// Key types:
//   - Attribute: one annotation token
//   - Label: field cardinality (optional, required, repeated)
//   - Error: configuration error wrapping one of the sentinel errors
package attr
