package attr

//go:generate go tool stringer -type=Label -linecomment -output=label_string.go

// Label is the cardinality of a field. It decides the storage shape the
// generated code assumes: *T for optional, T for required and []*T for
// repeated message fields.
type Label int

const (
	_ Label = iota // zero value is an invalid label

	LabelOptional // optional
	LabelRequired // required
	LabelRepeated // repeated
)

// Labels lists every valid label in declaration order.
func Labels() []Label {
	return []Label{LabelOptional, LabelRequired, LabelRepeated}
}

// IsValid reports whether l is one of the declared labels.
func (l Label) IsValid() bool {
	return l >= LabelOptional && l <= LabelRepeated
}

// LabelOf recognizes a label defining attribute: one of the bare markers
// optional, required, repeated or a label=<name> pair.
func LabelOf(a Attribute) (Label, bool) {
	name := a.Name
	if a.HasValue {
		if a.Name != "label" {
			return 0, false
		}

		name = a.Value
	}

	for _, l := range Labels() {
		if l.String() == name {
			return l, true
		}
	}

	return 0, false
}
