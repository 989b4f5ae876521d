package importer

import (
	"github.com/rs/zerolog"

	"dining-importer/internal/model"
)

// DefaultMealType is the single classification applied to every imported
// item; the export does not distinguish meal periods per dish.
const DefaultMealType = "Dinner"

// Importer runs the full parse pipeline over an export: normalization,
// section classification, item extraction, nutrition estimation, allergen
// extraction and catalog assembly. It is a single sequential pass with no
// shared mutable state beyond the classifier session.
type Importer struct {
	logger zerolog.Logger
}

// NewImporter creates an importer.
func NewImporter(logger zerolog.Logger) *Importer {
	return &Importer{
		logger: logger.With().Str("component", "importer").Logger(),
	}
}

// Parse folds the export lines into a catalog. Line-level anomalies are
// never fatal: every line is either absorbed into classifier state or
// silently discarded.
func (i *Importer) Parse(lines []string) *Catalog {
	classifier := NewClassifier()
	catalog := NewCatalog()

	dropped := 0
	for _, raw := range lines {
		normalized := NormalizeLine(raw)
		if normalized == "" || IsBoilerplate(normalized) {
			continue
		}

		line := NewRawLine(normalized)
		result := classifier.Classify(line)
		if result.Kind != KindItem {
			continue
		}

		state := classifier.State()
		name, servingSize, ok := ExtractItem(line, classifier.Known())
		if !ok {
			dropped++
			continue
		}

		restaurantID := RestaurantID(state.Restaurant)
		category := state.Category
		if category == "" {
			category = DefaultCategory
		}

		catalog.Add(state.Restaurant, model.MenuItem{
			ID:          BuildItemID(restaurantID, state.Category, name),
			Name:        name,
			MealType:    DefaultMealType,
			Nutrition:   EstimateNutrition(name, state.Category),
			Allergens:   ExtractAllergens(line.Text),
			ServingSize: servingSize,
			Available:   true,
			Category:    category,
		})
	}

	i.logger.Info().
		Int("restaurants", catalog.Len()).
		Int("items", catalog.TotalItems()).
		Int("rejected_items", dropped).
		Msg("export parsed")

	return catalog
}
