package match

import "strings"

// Closest returns the candidate with the smallest edit distance to name,
// compared case-insensitively. Candidates farther than maxDistance are
// ignored; ties resolve to the earliest candidate.
func Closest(name string, candidates []string, maxDistance int) (string, bool) {
	name = strings.ToLower(name)

	best := ""
	bestDistance := maxDistance + 1

	for _, c := range candidates {
		d := Levenshtein(name, strings.ToLower(c))
		if d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, bestDistance <= maxDistance
}
