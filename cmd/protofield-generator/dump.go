package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"protofield-generator/internal/plan"
)

type messageDump struct {
	Type   string
	File   string
	Fields []fieldDump
}

type fieldDump struct {
	Name     string
	Label    string
	Tag      uint32
	Boxed    bool
	Variants []variantDump
}

type variantDump struct {
	Type  string
	Field string
	Tag   uint32
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// dumpPlan writes the resolved messages without the type graph.
func dumpPlan(w io.Writer, p *plan.Plan) {
	dump := make([]messageDump, 0, len(p.Messages))

	for _, m := range p.Messages {
		md := messageDump{Type: m.Type.ID.String(), File: m.Type.File}

		for _, f := range m.Fields {
			fd := fieldDump{Name: f.Name}

			if f.Message != nil {
				fd.Label = f.Message.Label.String()
				fd.Tag = f.Message.Tag
				fd.Boxed = f.Message.Boxed
			} else {
				fd.Label = "oneof"

				for _, v := range f.Oneof.Variants {
					fd.Variants = append(fd.Variants, variantDump{
						Type:  v.Type.ID.Name,
						Field: v.Field,
						Tag:   v.Message.Tag,
					})
				}
			}

			md.Fields = append(md.Fields, fd)
		}

		dump = append(dump, md)
	}

	dumpConfig.Fdump(w, dump)
}
