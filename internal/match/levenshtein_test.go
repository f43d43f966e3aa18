package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"tag", "tag", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"tag", "tog", 1},
		{"boxed", "boxd", 1},
		{"message", "mesage", 1},
		{"repeated", "repaeted", 2},
		{"kitten", "sitting", 3},
		{"label", "optional", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
		assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a), "%q -> %q", tt.b, tt.a)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	known := []string{"message", "boxed", "tag", "label", "repeated", "required"}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "exact", input: "tag", want: "tag", wantOK: true},
		{name: "case insensitive", input: "MESSAGE", want: "message", wantOK: true},
		{name: "typo", input: "boxd", want: "boxed", wantOK: true},
		{name: "transposition", input: "repaeted", want: "repeated", wantOK: true},
		{name: "too far", input: "packed", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Closest(tt.input, known, 2)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClosest_TieKeepsFirstCandidate(t *testing.T) {
	t.Parallel()

	got, ok := Closest("tab", []string{"tag", "tap"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "tag", got)
}
