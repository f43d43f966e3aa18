// Package gen provides deterministic Go code generation for message types.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Each source file declaring planned messages gets one companion file
// (order.go -> order_proto.go) holding, per message:
//   - EncodeRaw: appends every present field
//   - MergeField: dispatches one field occurrence by number
//   - EncodedLen: sums the size EncodeRaw would write
//   - Clear: resets every field
//
// Oneof groups expand to type switches over their variants.
package gen
