package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addressbookPkg = "protofield-generator/examples/addressbook"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCheck_ExampleIsUpToDate(t *testing.T) {
	stdout, stderr, err := run(t, "check", "--log-level", "error", addressbookPkg)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "1 generated file(s) up to date")
}

func TestPlan_DumpsResolvedFields(t *testing.T) {
	stdout, stderr, err := run(t, "plan", "--log-level", "error", addressbookPkg)
	require.NoError(t, err, stderr)

	assert.Contains(t, stdout, addressbookPkg+".AddressBook")
	assert.Contains(t, stdout, `Name: (string) (len=6) "People"`)
	assert.Contains(t, stdout, `Label: (string) (len=8) "repeated"`)
	assert.Contains(t, stdout, `Type: (string) (len=14) "PreferredEmail"`)
	assert.Contains(t, stderr, "boxed_hint")
}

func TestCheck_ExcludedTypesProduceNoFiles(t *testing.T) {
	stdout, stderr, err := run(t, "check", "--log-level", "error", "--exclude", "Address*", addressbookPkg)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "0 generated file(s) up to date")
}

func TestCheck_StaleWithDifferentSuffix(t *testing.T) {
	stdout, _, err := run(t, "check", "--log-level", "error", "--suffix", "_wire.go", addressbookPkg)
	require.ErrorIs(t, err, errStale)
	assert.Contains(t, stdout, "addressbook_wire.go: missing")
}

func TestInvalidFlags(t *testing.T) {
	_, stderr, err := run(t, "check", "--suffix", "_proto.txt", addressbookPkg)
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid config")

	_, _, err = run(t, "check", "--config", "does-not-exist.yaml", addressbookPkg)
	require.Error(t, err)
}

func TestOptions_Load(t *testing.T) {
	opts := &options{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.register(fs)

	require.NoError(t, fs.Parse([]string{"--tag-key", "pb", "--include", "A*,B*", "--log-json"}))

	cfg, err := opts.load(fs, nil)
	require.NoError(t, err)

	assert.Equal(t, "pb", cfg.TagKey)
	assert.Equal(t, []string{"A*", "B*"}, cfg.Include)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "_proto.go", cfg.Suffix)
	assert.Equal(t, []string{"."}, cfg.Packages)
}

func TestOptions_LoadFlagZeroValueOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "protofield.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  json: true\nexclude: [\"Draft*\"]\n"), 0o600))

	opts := &options{}
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.register(fs)

	require.NoError(t, fs.Parse([]string{"--config", path, "--log-json=false", "--exclude="}))

	cfg, err := opts.load(fs, []string{"./pkg"})
	require.NoError(t, err)

	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, []string{"./pkg"}, cfg.Packages)
}
