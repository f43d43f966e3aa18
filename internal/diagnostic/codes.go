package diagnostic

// Code identifies a class of diagnostic.
type Code string

// Annotation codes mirror the attribute parser's error kinds.
const (
	CodeDuplicateAttribute Code = "duplicate_attribute"
	CodeUnknownAttribute   Code = "unknown_attribute"
	CodeMissingTag         Code = "missing_tag"
	CodeInvalidAttribute   Code = "invalid_attribute"
	CodeMalformedTag       Code = "malformed_tag"
	CodeMalformedAttribute Code = "malformed_attribute"
	CodeAnnotation         Code = "annotation_error"
)

// Field and message level codes.
const (
	CodeUnsupportedKind Code = "unsupported_field_kind"
	CodeDuplicateTag    Code = "duplicate_tag"
	CodeStorageShape    Code = "storage_shape"
	CodeEmbeddedField   Code = "embedded_field"
	CodeEmptyOneof      Code = "empty_oneof"
	CodeOneofVariant    Code = "oneof_variant"
	CodeUnexportedType  Code = "unexported_type"
	CodeBoxedHint       Code = "boxed_hint"
)
