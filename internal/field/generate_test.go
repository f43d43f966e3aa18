package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"protofield-generator/internal/attr"
)

func TestFragments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label      attr.Label
		encode     string
		merge      string
		encodedLen string
		clear      string
	}{
		{
			label:      attr.LabelOptional,
			encode:     "if m.Item != nil {\n\tb = wire.Encode(5, m.Item, b)\n}",
			merge:      "wire.Merge(typ, wire.Ensure(&m.Item), c)",
			encodedLen: "if m.Item != nil {\n\tn += wire.EncodedLen(5, m.Item)\n}",
			clear:      "m.Item = nil",
		},
		{
			label:      attr.LabelRequired,
			encode:     "b = wire.Encode(5, &m.Item, b)",
			merge:      "wire.Merge(typ, &m.Item, c)",
			encodedLen: "n += wire.EncodedLen(5, &m.Item)",
			clear:      "m.Item.Clear()",
		},
		{
			label:      attr.LabelRepeated,
			encode:     "for _, msg := range m.Item {\n\tb = wire.Encode(5, msg, b)\n}",
			merge:      "wire.MergeRepeated(typ, &m.Item, c)",
			encodedLen: "n += wire.EncodedLenRepeated(5, m.Item)",
			clear:      "clear(m.Item)\nm.Item = m.Item[:0]",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label.String(), func(t *testing.T) {
			t.Parallel()

			f := &Message{Label: tt.label, Tag: 5}
			assert.Equal(t, tt.encode, f.Encode("m.Item").String())
			assert.Equal(t, tt.merge, f.Merge("m.Item").String())
			assert.Equal(t, tt.encodedLen, f.EncodedLen("m.Item").String())
			assert.Equal(t, tt.clear, f.Clear("m.Item").String())
		})
	}
}

func TestFragments_BoxedDoesNotChangeOutput(t *testing.T) {
	t.Parallel()

	for _, l := range attr.Labels() {
		plain := &Message{Label: l, Tag: 2}
		boxed := &Message{Label: l, Tag: 2, Boxed: true}

		assert.Equal(t, plain.Encode("x"), boxed.Encode("x"))
		assert.Equal(t, plain.Merge("x"), boxed.Merge("x"))
		assert.Equal(t, plain.EncodedLen("x"), boxed.EncodedLen("x"))
		assert.Equal(t, plain.Clear("x"), boxed.Clear("x"))
	}
}

func TestFragments_InvalidLabelPanics(t *testing.T) {
	t.Parallel()

	f := &Message{Tag: 1}

	assert.Panics(t, func() { f.Encode("x") })
	assert.Panics(t, func() { f.Merge("x") })
	assert.Panics(t, func() { f.EncodedLen("x") })
	assert.Panics(t, func() { f.Clear("x") })
}

func TestFragment_Indent(t *testing.T) {
	t.Parallel()

	f := Fragment{"if x {", "", "\ty()", "}"}

	assert.Equal(t, Fragment{"\t\tif x {", "", "\t\t\ty()", "\t\t}"}, f.Indent(2))
	assert.Equal(t, Fragment{"if x {", "", "\ty()", "}"}, f, "original is unchanged")
}
