package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple name", "Hand Painted Pot", "hand-painted-pot"},
		{"punctuation collapses", "Hand Painted Pot!!", "hand-painted-pot"},
		{"mixed separators", "Terracotta -- Fridge  Magnet", "terracotta-fridge-magnet"},
		{"leading and trailing junk", "  ***Diya Set***  ", "diya-set"},
		{"digits survive", "Canvas 12x16", "canvas-12x16"},
		{"empty input", "", SlugFallback},
		{"only punctuation", "!!!", SlugFallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.input))
		})
	}
}

func TestGenerateSlugIsIdempotent(t *testing.T) {
	inputs := []string{"Hand Painted Pot!!", "Warli Art", "", "12 Diyas & More"}
	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once), "slug %q should not change on re-normalization", once)
	}
}
