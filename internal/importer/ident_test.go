package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Lower-cases and hyphenates",
			input:    "Grilled Chicken",
			expected: "grilled-chicken",
		},
		{
			name:     "Collapses runs of punctuation",
			input:    "Beans & Rice!!",
			expected: "beans-rice",
		},
		{
			name:     "Trims leading and trailing separators",
			input:    "  (Daily Special)  ",
			expected: "daily-special",
		},
		{
			name:     "Digits survive",
			input:    "Combo #2",
			expected: "combo-2",
		},
		{
			name:     "All punctuation collapses to empty",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeID(tt.input))
		})
	}
}

func TestNormalizeID_Charset(t *testing.T) {
	inputs := []string{
		"Chile Relleno (Stuffed Pepper)",
		"Café con Leche",
		"Taco -- al pastor / trompo",
		strings.Repeat("Very Long Name ", 30),
	}

	for _, input := range inputs {
		id := NormalizeID(input)

		assert.LessOrEqual(t, len(id), 120)
		assert.False(t, strings.HasPrefix(id, "-"))
		assert.False(t, strings.HasSuffix(id, "-"))
		for _, r := range id {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, valid, "unexpected rune %q in %q", r, id)
		}
	}
}

func TestRestaurantID(t *testing.T) {
	assert.Equal(t, "hilltop-sizzle", RestaurantID("Sizzle"))
	assert.Equal(t, "hilltop-fuego-grill", RestaurantID("Fuego Grill"))
	assert.Equal(t, "hilltop-la-cocina", RestaurantID("  La Cocina  "))
}

func TestRestaurantDisplayName(t *testing.T) {
	assert.Equal(t, "Sizzle at Hilltop", RestaurantDisplayName("Sizzle"))
	assert.Equal(t, "Fuego Grill at Hilltop", RestaurantDisplayName(" Fuego Grill "))
}

func TestBuildItemID(t *testing.T) {
	rid := RestaurantID("Sizzle")

	t.Run("Deterministic", func(t *testing.T) {
		first := BuildItemID(rid, "Entrees", "Grilled Chicken")
		second := BuildItemID(rid, "Entrees", "Grilled Chicken")
		assert.Equal(t, first, second)
		assert.Equal(t, "hilltop-sizzle-entrees-grilled-chicken", first)
	})

	t.Run("Distinct per component", func(t *testing.T) {
		base := BuildItemID(rid, "Entrees", "Grilled Chicken")
		assert.NotEqual(t, base, BuildItemID(rid, "Sides", "Grilled Chicken"))
		assert.NotEqual(t, base, BuildItemID(rid, "Entrees", "Grilled Steak"))
		assert.NotEqual(t, base, BuildItemID(RestaurantID("Fuego Grill"), "Entrees", "Grilled Chicken"))
	})

	t.Run("Empty category uses placeholder", func(t *testing.T) {
		assert.Equal(t, "hilltop-sizzle-uncategorized-churro", BuildItemID(rid, "", "Churro"))
	})
}
