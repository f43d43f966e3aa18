package field

import (
	"bytes"
	"strings"
	"text/template"
)

// Names the fragments assume in the surrounding generated method.
const (
	BufVar      = "b"    // []byte output buffer, reassigned by encode fragments
	WireTypeVar = "typ"  // protowire.Type of the occurrence being merged
	CursorVar   = "c"    // *wire.Cursor positioned at the occurrence payload
	SizeVar     = "n"    // int accumulator for encoded-length fragments
	RuntimePkg  = "wire" // package name of the runtime encoding library
)

// Fragment is an ordered list of Go source lines for a single field.
type Fragment []string

// String joins the fragment lines.
func (f Fragment) String() string {
	return strings.Join(f, "\n")
}

// Indent returns a copy of the fragment with every non-empty line prefixed by
// the given number of tabs.
func (f Fragment) Indent(tabs int) Fragment {
	prefix := strings.Repeat("\t", tabs)
	out := make(Fragment, 0, len(f))

	for _, line := range f {
		if line == "" {
			out = append(out, line)
		} else {
			out = append(out, prefix+line)
		}
	}

	return out
}

func (f *Message) render(ident string, lines ...string) Fragment {
	data := map[string]any{
		"ident":  ident,
		"tag":    f.Tag,
		"buf":    BufVar,
		"typ":    WireTypeVar,
		"cursor": CursorVar,
		"size":   SizeVar,
		"wire":   RuntimePkg,
	}

	res := make(Fragment, len(lines))
	for i, line := range lines {
		tmpl, err := template.New("line").Option("missingkey=error").Parse(line)
		if err != nil {
			panic(err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			panic(err)
		}

		res[i] = buf.String()
	}

	return res
}
