package importer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dining-importer/internal/model"
)

func newTestImporter() *Importer {
	return NewImporter(zerolog.Nop())
}

func TestImporter_Parse_SingleRestaurant(t *testing.T) {
	imp := newTestImporter()

	catalog := imp.Parse([]string{
		"%%Sizzle%%",
		"Grilled Chicken, with rice (8 oz)",
	})

	require.Equal(t, []string{"Sizzle"}, catalog.Restaurants())

	items := catalog.Items("Sizzle")
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "hilltop-sizzle-uncategorized-grilled-chicken", item.ID)
	assert.Equal(t, "Grilled Chicken", item.Name)
	assert.Equal(t, "Entrees", item.Category)
	assert.Equal(t, "8 oz", item.ServingSize)
	assert.Equal(t, "Dinner", item.MealType)
	assert.True(t, item.Available)
	assert.Equal(t, 380, item.Nutrition.Calories)
}

func TestImporter_Parse_CategorySections(t *testing.T) {
	imp := newTestImporter()

	catalog := imp.Parse([]string{
		"%%Fuego Grill%%",
		"Entrees",
		"Carne Asada, with tortillas (10 oz)",
		"Beans & Rice",
		"Black Beans (6 oz)",
		"Cilantro Lime Rice (6 oz)",
		"Desserts",
		"Cinnamon Churro (2 each)",
	})

	require.Equal(t, []string{"Fuego Grill"}, catalog.Restaurants())

	items := catalog.Items("Fuego Grill")
	require.Len(t, items, 4)

	assert.Equal(t, "Carne Asada", items[0].Name)
	assert.Equal(t, "Entrees", items[0].Category)
	assert.Equal(t, 380, items[0].Nutrition.Calories)

	assert.Equal(t, "Black Beans", items[1].Name)
	assert.Equal(t, "Beans & Rice", items[1].Category)
	assert.Equal(t, 220, items[1].Nutrition.Calories)

	assert.Equal(t, "Cilantro Lime Rice", items[2].Name)
	assert.Equal(t, 210, items[2].Nutrition.Calories)

	assert.Equal(t, "Cinnamon Churro", items[3].Name)
	assert.Equal(t, "Desserts", items[3].Category)
	assert.Equal(t, 320, items[3].Nutrition.Calories)
}

func TestImporter_Parse_MultipleRestaurants(t *testing.T) {
	imp := newTestImporter()

	catalog := imp.Parse([]string{
		"%%Sizzle%%",
		"Grilled Chicken, with rice (8 oz)",
		"%%La Cocina%%",
		"Desserts",
		"Tres Leches (1 slice)",
	})

	require.Equal(t, []string{"Sizzle", "La Cocina"}, catalog.Restaurants())
	require.Len(t, catalog.Items("Sizzle"), 1)

	items := catalog.Items("La Cocina")
	require.Len(t, items, 1)
	assert.Equal(t, "Tres Leches", items[0].Name)
	assert.Equal(t, "Desserts", items[0].Category)
	// Delimiter must reset the previous restaurant's category.
	assert.Equal(t, 320, items[0].Nutrition.Calories)
}

func TestImporter_Parse_SkipsNoise(t *testing.T) {
	imp := newTestImporter()

	catalog := imp.Parse([]string{
		"",
		"   ",
		"Monday",
		"Cycle 2 Menu",
		"Menu items are subject to change.",
		"\"%%Sizzle%%\"",
		"Tuesday",
		"Grilled Chicken, with rice (8 oz)",
	})

	require.Equal(t, []string{"Sizzle"}, catalog.Restaurants())
	require.Len(t, catalog.Items("Sizzle"), 1)
}

func TestImporter_Parse_ItemsBeforeAnyRestaurantAreDropped(t *testing.T) {
	imp := newTestImporter()

	catalog := imp.Parse([]string{
		"Pozole Verde, hominy, pork, cilantro",
		"%%Sizzle%%",
		"Grilled Chicken, with rice (8 oz)",
	})

	require.Equal(t, []string{"Sizzle"}, catalog.Restaurants())
	items := catalog.Items("Sizzle")
	require.Len(t, items, 1)
	assert.Equal(t, "Grilled Chicken", items[0].Name)
}

func TestImporter_Parse_DuplicateLinesKept(t *testing.T) {
	imp := newTestImporter()

	// The export repeats dishes across days; each listing stays a row.
	catalog := imp.Parse([]string{
		"%%Sizzle%%",
		"Grilled Chicken, with rice (8 oz)",
		"Grilled Chicken, with rice (8 oz)",
	})

	items := catalog.Items("Sizzle")
	require.Len(t, items, 2)
	assert.Equal(t, items[0].ID, items[1].ID)
}

func TestImporter_Parse_Deterministic(t *testing.T) {
	lines := []string{
		"%%Fuego Grill%%",
		"Entrees",
		"Carne Asada, with tortillas (10 oz)",
		"Salsas & Condiments",
		"Pico de Gallo",
		"Fresh Guacamole (4 oz)",
		"%%El Mercado%%",
		"Shrimp Ceviche (6 oz)",
	}

	first := newTestImporter().Parse(lines)
	second := newTestImporter().Parse(lines)

	require.Equal(t, first.Restaurants(), second.Restaurants())
	for _, name := range first.Restaurants() {
		assert.Equal(t, first.Items(name), second.Items(name))
	}
}

func TestCatalog(t *testing.T) {
	catalog := NewCatalog()
	assert.Equal(t, 0, catalog.Len())
	assert.Equal(t, 0, catalog.TotalItems())
	assert.Nil(t, catalog.Items("Sizzle"))

	catalog.Add("Sizzle", model.MenuItem{Name: "Grilled Chicken"})
	catalog.Add("Fuego Grill", model.MenuItem{Name: "Carne Asada"})
	catalog.Add("Sizzle", model.MenuItem{Name: "Elote"})

	assert.Equal(t, []string{"Sizzle", "Fuego Grill"}, catalog.Restaurants())
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, 3, catalog.TotalItems())

	names := []string{}
	for _, item := range catalog.Items("Sizzle") {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Grilled Chicken", "Elote"}, names)
}
