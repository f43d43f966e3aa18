package gen

import (
	"fmt"

	"protofield-generator/internal/plan"
)

// oneofEncode renders a type switch encoding the variant held by ident.
func oneofEncode(ident string, o *plan.OneofPlan) []string {
	lines := []string{fmt.Sprintf("\tswitch v := %s.(type) {", ident)}

	for _, v := range o.Variants {
		lines = append(lines, fmt.Sprintf("\tcase *%s:", v.Type.ID.Name))
		lines = append(lines, v.Message.Encode("v."+v.Field).Indent(2)...)
	}

	return append(lines, "\t}")
}

// oneofEncodedLen renders a type switch sizing the variant held by ident.
func oneofEncodedLen(ident string, o *plan.OneofPlan) []string {
	lines := []string{fmt.Sprintf("\tswitch v := %s.(type) {", ident)}

	for _, v := range o.Variants {
		lines = append(lines, fmt.Sprintf("\tcase *%s:", v.Type.ID.Name))
		lines = append(lines, v.Message.EncodedLen("v."+v.Field).Indent(2)...)
	}

	return append(lines, "\t}")
}

// oneofMerge renders one MergeField case per variant. A variant of another
// kind held by ident is replaced.
func oneofMerge(ident string, o *plan.OneofPlan) []string {
	var lines []string

	for _, v := range o.Variants {
		expr := v.Message.Merge("v." + v.Field)
		expr[0] = "return " + expr[0]

		lines = append(lines,
			fmt.Sprintf("\tcase %d:", v.Message.Tag),
			fmt.Sprintf("\t\tv, ok := %s.(*%s)", ident, v.Type.ID.Name),
			"\t\tif !ok || v == nil {",
			fmt.Sprintf("\t\t\tv = new(%s)", v.Type.ID.Name),
			fmt.Sprintf("\t\t\t%s = v", ident),
			"\t\t}",
			"",
		)
		lines = append(lines, expr.Indent(2)...)
	}

	return lines
}
