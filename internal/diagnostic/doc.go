// Package diagnostic provides structured errors, warnings and notes
// produced while planning code generation for annotated message types.
//
// Key capabilities:
//   - Per-field resolution errors (unknown, duplicate or missing attributes)
//   - Storage shape mismatches between a field's label and its Go type
//   - Duplicate wire tags within one message
//   - "did you mean" suggestions for misspelled attributes
package diagnostic
