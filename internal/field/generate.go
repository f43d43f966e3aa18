package field

import (
	"protofield-generator/internal/attr"
)

// The four generators below switch over the same three labels in the same
// order. Keep them parallel: the encoded length must count exactly what
// Encode writes, and Merge must add exactly one element per occurrence.

// Encode returns statements appending the field stored at ident to b.
func (f *Message) Encode(ident string) Fragment {
	switch f.Label {
	case attr.LabelOptional:
		return f.render(ident,
			"if {{.ident}} != nil {",
			"	{{.buf}} = {{.wire}}.Encode({{.tag}}, {{.ident}}, {{.buf}})",
			"}",
		)
	case attr.LabelRequired:
		return f.render(ident,
			"{{.buf}} = {{.wire}}.Encode({{.tag}}, &{{.ident}}, {{.buf}})",
		)
	case attr.LabelRepeated:
		return f.render(ident,
			"for _, msg := range {{.ident}} {",
			"	{{.buf}} = {{.wire}}.Encode({{.tag}}, msg, {{.buf}})",
			"}",
		)
	default:
		panic("field: invalid label " + f.Label.String())
	}
}

// Merge returns an expression of type error that merges one occurrence read
// from c into the field stored at ident.
func (f *Message) Merge(ident string) Fragment {
	switch f.Label {
	case attr.LabelOptional:
		return f.render(ident,
			"{{.wire}}.Merge({{.typ}}, {{.wire}}.Ensure(&{{.ident}}), {{.cursor}})",
		)
	case attr.LabelRequired:
		return f.render(ident,
			"{{.wire}}.Merge({{.typ}}, &{{.ident}}, {{.cursor}})",
		)
	case attr.LabelRepeated:
		return f.render(ident,
			"{{.wire}}.MergeRepeated({{.typ}}, &{{.ident}}, {{.cursor}})",
		)
	default:
		panic("field: invalid label " + f.Label.String())
	}
}

// EncodedLen returns statements adding the encoded size of the field stored
// at ident to n. They never modify the field.
func (f *Message) EncodedLen(ident string) Fragment {
	switch f.Label {
	case attr.LabelOptional:
		return f.render(ident,
			"if {{.ident}} != nil {",
			"	{{.size}} += {{.wire}}.EncodedLen({{.tag}}, {{.ident}})",
			"}",
		)
	case attr.LabelRequired:
		return f.render(ident,
			"{{.size}} += {{.wire}}.EncodedLen({{.tag}}, &{{.ident}})",
		)
	case attr.LabelRepeated:
		return f.render(ident,
			"{{.size}} += {{.wire}}.EncodedLenRepeated({{.tag}}, {{.ident}})",
		)
	default:
		panic("field: invalid label " + f.Label.String())
	}
}

// Clear returns statements resetting the field stored at ident. Required
// fields keep their value and clear it in place; repeated fields keep their
// capacity but drop references to the old elements.
func (f *Message) Clear(ident string) Fragment {
	switch f.Label {
	case attr.LabelOptional:
		return f.render(ident,
			"{{.ident}} = nil",
		)
	case attr.LabelRequired:
		return f.render(ident,
			"{{.ident}}.Clear()",
		)
	case attr.LabelRepeated:
		return f.render(ident,
			"clear({{.ident}})",
			"{{.ident}} = {{.ident}}[:0]",
		)
	default:
		panic("field: invalid label " + f.Label.String())
	}
}
