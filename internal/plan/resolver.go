package plan

import (
	"context"
	"errors"
	"fmt"
	"go/token"

	"github.com/bmatcuk/doublestar/v4"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/attr"
	"protofield-generator/internal/diagnostic"
	"protofield-generator/internal/field"
	"protofield-generator/internal/logger"
)

// attrOneof marks an interface-typed field holding a oneof group.
const attrOneof = "oneof"

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph  *analyze.TypeGraph
	config Config
	// variants holds the struct types used as oneof variants; they are not
	// planned as messages of their own.
	variants map[analyze.TypeID]bool
}

// NewResolver creates a new Resolver.
func NewResolver(graph *analyze.TypeGraph, config Config) *Resolver {
	if config.TagKey == "" {
		config.TagKey = attr.DefaultKey
	}

	return &Resolver{
		graph:    graph,
		config:   config,
		variants: make(map[analyze.TypeID]bool),
	}
}

// Resolve runs the full resolution pipeline and returns a Plan.
// Per-field problems are reported in Plan.Diagnostics; the returned error is
// reserved for invalid configuration and cancellation.
func (r *Resolver) Resolve(ctx context.Context) (*Plan, error) {
	if r.graph == nil {
		return nil, errors.New("plan: nil type graph")
	}

	if err := r.validatePatterns(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	p := &Plan{TypeGraph: r.graph}

	r.collectVariants()

	for _, pkgPath := range r.graph.PackagePaths() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pkg := r.graph.Packages[pkgPath]
		for _, id := range pkg.Types {
			t := r.graph.Types[id]
			if t == nil || t.Kind != analyze.TypeKindStruct || r.variants[id] {
				continue
			}

			if !r.hasAnnotations(t) {
				continue
			}

			if !token.IsExported(id.Name) {
				p.Diagnostics.AddWarning(diagnostic.CodeUnexportedType,
					"type has annotated fields but is not exported; skipped", id.String(), "")

				continue
			}

			if !r.selected(id.Name) {
				log.Debug("type filtered out", "type", id.String())
				continue
			}

			msg, ok := r.resolveMessage(t, &p.Diagnostics)
			if !ok {
				log.Debug("message has errors", "type", id.String())
				continue
			}

			log.Debug("resolved message", "type", id.String(), "fields", len(msg.Fields))
			p.Messages = append(p.Messages, msg)
		}
	}

	log.Info("plan resolved",
		"messages", len(p.Messages),
		"errors", len(p.Diagnostics.Errors),
		"warnings", len(p.Diagnostics.Warnings))

	return p, nil
}

func (r *Resolver) validatePatterns() error {
	for _, pattern := range append(append([]string(nil), r.config.Include...), r.config.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("plan: invalid type pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return nil
}

// selected reports whether a type name passes the include and exclude filters.
func (r *Resolver) selected(name string) bool {
	if len(r.config.Include) > 0 && !matchAny(r.config.Include, name) {
		return false
	}

	return !matchAny(r.config.Exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// annotation returns the raw annotation of a field, if any.
func (r *Resolver) annotation(f analyze.FieldInfo) (string, bool) {
	value, ok := f.Tag.Lookup(r.config.TagKey)
	if !ok || value == "-" {
		return "", false
	}

	return value, true
}

func (r *Resolver) hasAnnotations(t *analyze.TypeInfo) bool {
	for _, f := range t.Fields {
		if _, ok := r.annotation(f); ok {
			return true
		}
	}

	return false
}

// collectVariants marks every struct implementing an interface used by a
// oneof field.
func (r *Resolver) collectVariants() {
	for _, t := range r.graph.Types {
		if t.Kind != analyze.TypeKindStruct {
			continue
		}

		for _, f := range t.Fields {
			value, ok := r.annotation(f)
			if !ok || f.Type == nil || f.Type.Kind != analyze.TypeKindInterface {
				continue
			}

			attrs, err := attr.Parse(value)
			if err != nil || !hasWord(attrs, attrOneof) {
				continue
			}

			for _, v := range r.graph.Implementers(f.Type) {
				r.variants[v.ID] = true
			}
		}
	}
}

func hasWord(attrs []attr.Attribute, name string) bool {
	for _, a := range attrs {
		if attr.Word(name, a) {
			return true
		}
	}

	return false
}

// resolveMessage resolves every annotated field of a struct type. It returns
// false when any field produced an error.
func (r *Resolver) resolveMessage(t *analyze.TypeInfo, diags *diagnostic.Diagnostics) (MessagePlan, bool) {
	var (
		typeName = t.ID.String()
		msg      = MessagePlan{Type: t}
		next     = uint32(1)
		seen     = make(map[uint32]string)
		failed   bool
	)

	for _, f := range t.Fields {
		value, ok := r.annotation(f)
		if !ok {
			continue
		}

		if f.Embedded {
			diags.AddError(diagnostic.CodeEmbeddedField, "embedded fields cannot hold messages", typeName, f.Name)
			failed = true

			continue
		}

		attrs, err := attr.Parse(value)
		if err != nil {
			reportAttrError(diags, err, typeName, f.Name)
			failed = true

			continue
		}

		var fp FieldPlan

		if hasWord(attrs, attrOneof) {
			fp, ok = r.resolveOneof(t.ID, f, attrs, diags)
		} else {
			fp, ok = r.resolveField(f, attrs, next, typeName, diags)
		}

		if !ok {
			failed = true
			continue
		}

		for _, tag := range fp.Tags() {
			if prev, dup := seen[tag]; dup {
				diags.AddError(diagnostic.CodeDuplicateTag,
					fmt.Sprintf("tag %d is already used by field %s", tag, prev), typeName, f.Name)
				failed = true

				continue
			}

			seen[tag] = f.Name
		}

		next = fp.MaxTag() + 1
		msg.Fields = append(msg.Fields, fp)
	}

	return msg, !failed
}

func (r *Resolver) resolveField(
	f analyze.FieldInfo,
	attrs []attr.Attribute,
	defaultTag uint32,
	typeName string,
	diags *diagnostic.Diagnostics,
) (FieldPlan, bool) {
	defaultTag = attr.NextNumber(defaultTag)

	m, err := field.NewMessage(attrs, &defaultTag)
	if err != nil {
		reportAttrError(diags, err, typeName, f.Name)
		return FieldPlan{}, false
	}

	if m != nil && !attr.ValidNumber(m.Tag) {
		diags.AddError(diagnostic.CodeMalformedTag,
			fmt.Sprintf("default tag %d exceeds the largest field number; set tag explicitly", m.Tag), typeName, f.Name)

		return FieldPlan{}, false
	}

	if m == nil {
		diags.AddError(diagnostic.CodeUnsupportedKind,
			"only message fields are supported; add the message marker", typeName, f.Name)

		return FieldPlan{}, false
	}

	if err := checkShape(m, f.Type); err != nil {
		diags.AddError(diagnostic.CodeStorageShape, err.Error(), typeName, f.Name)
		return FieldPlan{}, false
	}

	if m.Boxed {
		diags.AddInfo(diagnostic.CodeBoxedHint, "boxed does not change the generated code", typeName, f.Name)
	}

	return FieldPlan{Name: f.Name, Message: m}, true
}

func (r *Resolver) resolveOneof(
	owner analyze.TypeID,
	f analyze.FieldInfo,
	attrs []attr.Attribute,
	diags *diagnostic.Diagnostics,
) (FieldPlan, bool) {
	typeName := owner.String()

	var extra []attr.Attribute

	for _, a := range attrs {
		if !attr.Word(attrOneof, a) {
			extra = append(extra, a)
		}
	}

	if len(extra) > 0 {
		reportAttrError(diags,
			&attr.Error{Err: attr.ErrUnrecognizedAttribute, Kind: attrOneof, Attrs: extra}, typeName, f.Name)

		return FieldPlan{}, false
	}

	if f.Type == nil || f.Type.Kind != analyze.TypeKindInterface || !f.Type.IsNamed() {
		diags.AddError(diagnostic.CodeStorageShape, "oneof field must have a named interface type", typeName, f.Name)
		return FieldPlan{}, false
	}

	if f.Type.ID.PkgPath != owner.PkgPath {
		diags.AddError(diagnostic.CodeStorageShape, "oneof interface must be declared in the message's package", typeName, f.Name)
		return FieldPlan{}, false
	}

	impls := r.graph.Implementers(f.Type)
	if len(impls) == 0 {
		diags.AddError(diagnostic.CodeEmptyOneof,
			fmt.Sprintf("no struct type in the package implements %s", f.Type.ID.Name), typeName, f.Name)

		return FieldPlan{}, false
	}

	oneof := &OneofPlan{Interface: f.Type}
	ok := true

	for _, v := range impls {
		vp, vok := r.resolveVariant(v, typeName, f.Name, diags)
		if !vok {
			ok = false
			continue
		}

		oneof.Variants = append(oneof.Variants, vp)
	}

	return FieldPlan{Name: f.Name, Oneof: oneof}, ok
}

func (r *Resolver) resolveVariant(
	v *analyze.TypeInfo,
	typeName, fieldName string,
	diags *diagnostic.Diagnostics,
) (VariantPlan, bool) {
	path := fieldName + "." + v.ID.Name

	var (
		annotated []analyze.FieldInfo
		values    []string
	)

	for _, f := range v.Fields {
		if value, ok := r.annotation(f); ok {
			annotated = append(annotated, f)
			values = append(values, value)
		}
	}

	if len(annotated) != 1 {
		diags.AddError(diagnostic.CodeOneofVariant,
			fmt.Sprintf("variant %s must have exactly one annotated field, found %d", v.ID.Name, len(annotated)),
			typeName, path)

		return VariantPlan{}, false
	}

	f := annotated[0]
	path += "." + f.Name

	attrs, err := attr.Parse(values[0])
	if err != nil {
		reportAttrError(diags, err, typeName, path)
		return VariantPlan{}, false
	}

	m, err := field.NewOneofMessage(attrs)
	if err != nil {
		reportAttrError(diags, err, typeName, path)
		return VariantPlan{}, false
	}

	if m == nil {
		diags.AddError(diagnostic.CodeUnsupportedKind,
			"only message variants are supported; add the message marker", typeName, path)

		return VariantPlan{}, false
	}

	if err := checkShape(m, f.Type); err != nil {
		diags.AddError(diagnostic.CodeStorageShape, err.Error(), typeName, path)
		return VariantPlan{}, false
	}

	return VariantPlan{Type: v, Field: f.Name, Message: m}, true
}

// reportAttrError converts an annotation error into a diagnostic.
func reportAttrError(diags *diagnostic.Diagnostics, err error, typeName, fieldPath string) {
	var suggestions []string

	var ae *attr.Error
	if errors.As(err, &ae) && errors.Is(err, attr.ErrUnrecognizedAttribute) {
		for _, a := range ae.Attrs {
			if s, ok := attr.Suggest(a, field.KnownAttributes()); ok {
				suggestions = append(suggestions, s)
			}
		}
	}

	diags.AddError(errorCode(err), err.Error(), typeName, fieldPath, suggestions...)
}

func errorCode(err error) diagnostic.Code {
	switch {
	case errors.Is(err, attr.ErrDuplicateAttribute):
		return diagnostic.CodeDuplicateAttribute
	case errors.Is(err, attr.ErrUnrecognizedAttribute):
		return diagnostic.CodeUnknownAttribute
	case errors.Is(err, attr.ErrMissingTag):
		return diagnostic.CodeMissingTag
	case errors.Is(err, attr.ErrInvalidAttribute):
		return diagnostic.CodeInvalidAttribute
	case errors.Is(err, attr.ErrMalformedTag):
		return diagnostic.CodeMalformedTag
	case errors.Is(err, attr.ErrMalformedAttribute):
		return diagnostic.CodeMalformedAttribute
	default:
		return diagnostic.CodeAnnotation
	}
}
