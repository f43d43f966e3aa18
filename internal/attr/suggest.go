package attr

import (
	"protofield-generator/internal/match"
)

// maxSuggestDistance bounds how far a typo may be from a known name.
const maxSuggestDistance = 2

// Suggest proposes the known attribute name closest to the name of a.
func Suggest(a Attribute, known []string) (string, bool) {
	return match.Closest(a.Name, known, maxSuggestDistance)
}
