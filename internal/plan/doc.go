// Package plan drives field resolution over an analyzed type graph and
// produces the Plan consumed by code generation.
//
// Resolution pipeline:
//  1. Collect oneof groups: interface-typed fields tagged `proto:"oneof"` and
//     the struct types of the same package implementing them (variants).
//  2. For every other struct type with at least one annotated field:
//     - resolve each field with the message field resolver, passing the next
//       sequential tag as the default
//     - resolve oneof variants with the oneof resolver (explicit tags only)
//     - check that the Go storage type matches the field label
//     - reject duplicate wire tags within the message
//  3. Emit diagnostics (unknown attributes with suggestions, unsupported
//     field kinds, shape mismatches).
package plan
