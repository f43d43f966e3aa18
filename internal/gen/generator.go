package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/sync/errgroup"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/common"
	"protofield-generator/internal/field"
	"protofield-generator/internal/logger"
	"protofield-generator/internal/plan"
)

// Default generator settings.
const (
	DefaultSuffix        = "_proto.go"
	DefaultRuntimeImport = "protofield-generator/wire"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix replaces ".go" in the source file name to form the output name.
	Suffix string
	// RuntimeImport is the import path of the runtime encoding package.
	RuntimeImport string
	// DebugUnformatted writes unformattable output beside its target as
	// *.unformatted.go.
	DebugUnformatted bool
	// Concurrency bounds how many messages render at once; 0 means GOMAXPROCS.
	Concurrency int
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:           DefaultSuffix,
		RuntimeImport:    DefaultRuntimeImport,
		DebugUnformatted: true,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}

	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{config: config}
}

// ErrOverwritesSource is returned when a generated file would replace the
// source file it was generated from.
var ErrOverwritesSource = errors.New("generated file would overwrite its source")

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "order_proto.go").
	Filename string
	// Source is the name of the file declaring the messages.
	Source string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full output path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// sourceFile groups the messages declared in one source file.
type sourceFile struct {
	pkg      *analyze.PackageInfo
	name     string
	messages []plan.MessagePlan
}

// Generate generates Go code from a Plan.
// Returns one file per source file declaring planned messages, ordered by
// output path.
func (g *Generator) Generate(ctx context.Context, p *plan.Plan) ([]GeneratedFile, error) {
	log := logger.FromContext(ctx)

	sources := g.groupBySource(p)

	for _, src := range sources {
		if g.outputName(src.name) == src.name {
			return nil, fmt.Errorf("%w: %s", ErrOverwritesSource, filepath.Join(src.pkg.Dir, src.name))
		}
	}

	// Render every message concurrently; results keep plan order.
	rendered := make([][]string, len(sources))
	for i, src := range sources {
		rendered[i] = make([]string, len(src.messages))
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency())

	for i, src := range sources {
		for j, msg := range src.messages {
			i, j, msg := i, j, msg
			eg.Go(func() error {
				if err := egCtx.Err(); err != nil {
					return err
				}

				code, err := renderMessage(msg)
				if err != nil {
					return fmt.Errorf("generating %s: %w", msg.Type.ID, err)
				}

				rendered[i][j] = code

				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(sources))

	for i, src := range sources {
		file, err := g.assemble(src, rendered[i])
		if err != nil {
			return nil, err
		}

		log.Debug("generated file", "path", file.Path(), "messages", len(src.messages))
		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) concurrency() int {
	if g.config.Concurrency > 0 {
		return g.config.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

func (g *Generator) groupBySource(p *plan.Plan) []*sourceFile {
	byKey := make(map[string]*sourceFile)

	var keys []string

	for _, msg := range p.Messages {
		pkg := p.TypeGraph.Packages[msg.Type.ID.PkgPath]
		key := msg.Type.ID.PkgPath + "/" + msg.Type.File

		src, ok := byKey[key]
		if !ok {
			src = &sourceFile{pkg: pkg, name: msg.Type.File}
			byKey[key] = src
			keys = append(keys, key)
		}

		src.messages = append(src.messages, msg)
	}

	sort.Strings(keys)

	res := make([]*sourceFile, 0, len(keys))
	for _, k := range keys {
		res = append(res, byKey[k])
	}

	return res
}

// outputName returns the generated file name for a source file.
func (g *Generator) outputName(source string) string {
	return strings.TrimSuffix(source, ".go") + g.config.Suffix
}

// fileData holds all data needed for the file template.
type fileData struct {
	PackageName   string
	Source        string
	RuntimeImport string
	RuntimeAlias  string
	Messages      []string
}

func (g *Generator) assemble(src *sourceFile, messages []string) (*GeneratedFile, error) {
	data := fileData{
		PackageName:   src.pkg.Name,
		Source:        src.name,
		RuntimeImport: g.config.RuntimeImport,
		Messages:      messages,
	}

	if common.PkgAlias(g.config.RuntimeImport) != field.RuntimePkg {
		data.RuntimeAlias = field.RuntimePkg
	}

	file := &GeneratedFile{
		Dir:      src.pkg.Dir,
		Filename: g.outputName(src.name),
		Source:   src.name,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", file.Filename, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(file.Dir, file.Filename, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting %s: %w", file.Filename, err)
	}

	file.Content = formatted

	return file, nil
}

// messageData holds the rendered method bodies of one message.
type messageData struct {
	Name       string
	Encode     []string
	Merge      []string
	EncodedLen []string
	Clear      []string
}

func renderMessage(msg plan.MessagePlan) (code string, err error) {
	// Fragment rendering panics on invalid labels; the plan never carries
	// them, but surface one as an error rather than crash the worker pool.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering fragments: %v", r)
		}
	}()

	data := messageData{Name: msg.Type.ID.Name}

	for _, f := range msg.Fields {
		ident := "m." + f.Name

		if f.Oneof != nil {
			data.Encode = append(data.Encode, oneofEncode(ident, f.Oneof)...)
			data.Merge = append(data.Merge, oneofMerge(ident, f.Oneof)...)
			data.EncodedLen = append(data.EncodedLen, oneofEncodedLen(ident, f.Oneof)...)
			data.Clear = append(data.Clear, "\t"+ident+" = nil")

			continue
		}

		m := f.Message
		data.Encode = append(data.Encode, m.Encode(ident).Indent(1)...)
		data.Merge = append(data.Merge, mergeCase(m, ident)...)
		data.EncodedLen = append(data.EncodedLen, m.EncodedLen(ident).Indent(1)...)
		data.Clear = append(data.Clear, m.Clear(ident).Indent(1)...)
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// mergeCase renders the MergeField case for a plain message field.
func mergeCase(m *field.Message, ident string) []string {
	expr := m.Merge(ident)
	expr[0] = "return " + expr[0]

	lines := []string{fmt.Sprintf("\tcase %d:", m.Tag)}

	return append(lines, expr.Indent(2)...)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by protofield-generator. DO NOT EDIT.
// source: {{.Source}}

package {{.PackageName}}

import (
	"google.golang.org/protobuf/encoding/protowire"

	{{if .RuntimeAlias}}{{.RuntimeAlias}} {{end}}"{{.RuntimeImport}}"
)
{{range .Messages}}
{{.}}{{end}}`))

var messageTemplate = template.Must(template.New("message").Parse(`var _ wire.Message = (*{{.Name}})(nil)

// EncodeRaw appends the fields of m to b.
func (m *{{.Name}}) EncodeRaw(b []byte) []byte {
{{range .Encode}}{{.}}
{{end}}	return b
}

// MergeField merges one occurrence of field num read from c into m.
func (m *{{.Name}}) MergeField(num protowire.Number, typ protowire.Type, c *wire.Cursor) error {
	switch num {
{{range .Merge}}{{.}}
{{end}}	default:
		return c.Skip(num, typ)
	}
}

// EncodedLen returns the size of the fields of m in bytes.
func (m *{{.Name}}) EncodedLen() int {
	n := 0
{{range .EncodedLen}}{{.}}
{{end}}	return n
}

// Clear resets every field of m.
func (m *{{.Name}}) Clear() {
{{range .Clear}}{{.}}
{{end}}}
`))
