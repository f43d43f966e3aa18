package plan

import (
	"slices"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/diagnostic"
	"protofield-generator/internal/field"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Messages lists the resolved message types, ordered by package and name.
	Messages []MessagePlan
	// TypeGraph holds all analyzed types and packages.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// MessagePlan is a struct type for which wire methods are generated.
type MessagePlan struct {
	Type   *analyze.TypeInfo
	Fields []FieldPlan // in declaration order
}

// FieldPlan is one annotated struct field. Exactly one of Message and Oneof
// is set.
type FieldPlan struct {
	Name    string
	Message *field.Message
	Oneof   *OneofPlan
}

// OneofPlan is an interface-typed field holding one of several variants.
type OneofPlan struct {
	Interface *analyze.TypeInfo
	Variants  []VariantPlan
}

// VariantPlan is a oneof variant: a wrapper struct with a single message field.
type VariantPlan struct {
	Type    *analyze.TypeInfo
	Field   string
	Message *field.Message
}

// Tags returns the wire tags used by the field.
func (f FieldPlan) Tags() []uint32 {
	if f.Message != nil {
		return []uint32{f.Message.Tag}
	}

	tags := make([]uint32, 0, len(f.Oneof.Variants))
	for _, v := range f.Oneof.Variants {
		tags = append(tags, v.Message.Tag)
	}

	return tags
}

// MaxTag returns the highest wire tag used by the field.
func (f FieldPlan) MaxTag() uint32 {
	tags := f.Tags()
	if len(tags) == 0 {
		return 0
	}

	return slices.Max(tags)
}

// MessagesInPackage returns the messages declared in a package.
func (p *Plan) MessagesInPackage(pkgPath string) []MessagePlan {
	var res []MessagePlan

	for _, m := range p.Messages {
		if m.Type.ID.PkgPath == pkgPath {
			res = append(res, m)
		}
	}

	return res
}
