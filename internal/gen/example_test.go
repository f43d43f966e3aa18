package gen

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/plan"
)

// The example package checks in its generated file; regenerating must
// reproduce it byte for byte.
func TestGenerate_AddressBookExample(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("protofield-generator/examples/addressbook")
	require.NoError(t, err)

	p, err := plan.NewResolver(graph, plan.DefaultConfig()).Resolve(context.Background())
	require.NoError(t, err)
	require.False(t, p.Diagnostics.HasErrors())

	files, err := NewGenerator(DefaultGeneratorConfig()).Generate(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "addressbook_proto.go", files[0].Filename)

	onDisk, err := os.ReadFile(files[0].Path())
	require.NoError(t, err)
	assert.Equal(t, string(onDisk), string(files[0].Content))

	stale, err := Check(files)
	require.NoError(t, err)
	assert.Empty(t, stale)
}
