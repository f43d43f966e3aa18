package plan

import (
	"fmt"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/attr"
	"protofield-generator/internal/field"
)

// checkShape verifies that the Go storage type of a field matches its label:
// optional fields are *T, required fields are T and repeated fields are []*T,
// where T is a named struct.
func checkShape(m *field.Message, t *analyze.TypeInfo) error {
	switch m.Label {
	case attr.LabelOptional:
		if t.Kind != analyze.TypeKindPointer || !isMessageStruct(t.ElemType) {
			return fmt.Errorf("optional message field must be *T, got %s", analyze.TypeString(t))
		}
	case attr.LabelRequired:
		if !isMessageStruct(t) {
			return fmt.Errorf("required message field must be T, got %s", analyze.TypeString(t))
		}
	case attr.LabelRepeated:
		if t.Kind != analyze.TypeKindSlice ||
			t.ElemType == nil ||
			t.ElemType.Kind != analyze.TypeKindPointer ||
			!isMessageStruct(t.ElemType.ElemType) {
			return fmt.Errorf("repeated message field must be []*T, got %s", analyze.TypeString(t))
		}
	default:
		return fmt.Errorf("invalid label %d", int(m.Label))
	}

	return nil
}

func isMessageStruct(t *analyze.TypeInfo) bool {
	return t != nil && t.Kind == analyze.TypeKindStruct && t.IsNamed()
}
