package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/attr"
)

func TestResolve_AddressBookExample(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("protofield-generator/examples/addressbook")
	require.NoError(t, err)

	p, err := NewResolver(graph, DefaultConfig()).Resolve(context.Background())
	require.NoError(t, err)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	// Variants and leaf messages without annotations are not planned.
	require.Len(t, p.Messages, 1)

	book := p.Messages[0]
	assert.Equal(t, "AddressBook", book.Type.ID.Name)
	require.Len(t, book.Fields, 5)

	want := []struct {
		name  string
		label attr.Label
		tag   uint32
		boxed bool
	}{
		{"People", attr.LabelRepeated, 1, false},
		{"Owner", attr.LabelOptional, 2, false},
		{"Primary", attr.LabelRequired, 5, false},
		{"Previous", attr.LabelOptional, 6, true},
	}

	for i, w := range want {
		f := book.Fields[i]
		assert.Equal(t, w.name, f.Name)
		require.NotNil(t, f.Message, f.Name)
		assert.Equal(t, w.label, f.Message.Label, f.Name)
		assert.Equal(t, w.tag, f.Message.Tag, f.Name)
		assert.Equal(t, w.boxed, f.Message.Boxed, f.Name)
	}

	oneof := book.Fields[4]
	assert.Equal(t, "Preferred", oneof.Name)
	require.NotNil(t, oneof.Oneof)
	assert.Equal(t, "ContactMethod", oneof.Oneof.Interface.ID.Name)
	require.Len(t, oneof.Oneof.Variants, 2)

	email, phone := oneof.Oneof.Variants[0], oneof.Oneof.Variants[1]
	assert.Equal(t, "PreferredEmail", email.Type.ID.Name)
	assert.Equal(t, "Email", email.Field)
	assert.Equal(t, uint32(7), email.Message.Tag)
	assert.Equal(t, attr.LabelRequired, email.Message.Label)
	assert.Equal(t, "PreferredPhone", phone.Type.ID.Name)
	assert.Equal(t, uint32(8), phone.Message.Tag)

	assert.Equal(t, []uint32{7, 8}, oneof.Tags())
	assert.Equal(t, uint32(8), oneof.MaxTag())

	assert.Len(t, p.MessagesInPackage("protofield-generator/examples/addressbook"), 1)
	assert.Empty(t, p.MessagesInPackage("protofield-generator/wire"))
}
