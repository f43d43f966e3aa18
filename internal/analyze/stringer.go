package analyze

// TypeString returns a Go-like rendering of a type for diagnostics.
// Named types are shown without their package path.
func TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		return t.ID.Name
	}

	switch t.Kind {
	case TypeKindPointer:
		return "*" + TypeString(t.ElemType)
	case TypeKindSlice:
		return "[]" + TypeString(t.ElemType)
	case TypeKindStruct:
		return "struct{...}"
	case TypeKindInterface:
		return "interface{...}"
	default:
		if t.GoType != nil {
			return t.GoType.String()
		}

		return t.Kind.String()
	}
}
