package importer

import (
	"math"
	"strings"

	"dining-importer/internal/model"
)

// Calorie bases for the ordered keyword groups. These are deliberately
// coarse, explainable estimates, not a nutrition database.
const (
	proteinCalories      = 380
	friedProteinCalories = 450
	tacoCalories         = 350
	tamaleCalories       = 285
	beansCalories        = 220
	riceCalories         = 210
	salsaCalories        = 25
	guacamoleCalories    = 150
	cheeseCalories       = 110
	dessertCalories      = 320
	beverageCalories     = 120
	saladCalories        = 180
	baselineCalories     = 250

	// friedBonus is added whenever a fried keyword appears, even when the
	// base branch already priced the frying. The source data behaves this
	// way, so re-imports must too.
	friedBonus = 100
)

// Macro derivation ratios: share of calories per macro and calories per gram.
const (
	proteinCalorieShare = 0.25
	fatCalorieShare     = 0.35
	carbCalorieShare    = 0.40

	caloriesPerGramProtein = 4
	caloriesPerGramFat     = 9
	caloriesPerGramCarb    = 4

	sodiumMgPerCalorie = 2
	sugarShareOfCarbs  = 0.25
)

var friedKeywords = []string{"fried", "crispy", "chicharron"}

// calorieGroup is one entry in the ordered keyword table. The first group
// whose keywords appear in the item name supplies the base calorie value.
type calorieGroup struct {
	name     string
	keywords []string
	calories int
}

// calorieGroups is evaluated in order; protein terms must come first so a
// "chicken taco" prices as a protein dish rather than a taco.
var calorieGroups = []calorieGroup{
	{"protein", []string{"chicken", "beef", "steak", "pork", "carnitas", "barbacoa", "asada", "al pastor", "chorizo", "fish", "shrimp", "turkey"}, proteinCalories},
	{"taco", []string{"taco", "enchilada", "burrito", "quesadilla", "flauta", "torta", "tostada"}, tacoCalories},
	{"tamale", []string{"tamale", "tamal"}, tamaleCalories},
	{"beans", []string{"bean", "frijol", "lentil"}, beansCalories},
	{"rice", []string{"rice", "arroz"}, riceCalories},
	{"salsa", []string{"salsa", "pico"}, salsaCalories},
	{"guacamole", []string{"guacamole", "guac"}, guacamoleCalories},
	{"cheese", []string{"cheese", "queso"}, cheeseCalories},
	{"dessert", []string{"churro", "flan", "cookie", "brownie", "cake", "ice cream", "pudding"}, dessertCalories},
	{"beverage", []string{"agua", "horchata", "juice", "soda", "lemonade", "coffee", "tea"}, beverageCalories},
	{"salad", []string{"salad", "ensalada"}, saladCalories},
}

// EstimateCalories maps an item name and its category context to a base
// calorie estimate. It is a total function: every non-empty name yields a
// value.
func EstimateCalories(name, category string) int {
	lower := strings.ToLower(name)
	fried := containsAny(lower, friedKeywords)

	calories := baselineCalories
	matched := false
	for _, group := range calorieGroups {
		if containsAny(lower, group.keywords) {
			calories = group.calories
			if group.name == "protein" && fried {
				calories = friedProteinCalories
			}
			matched = true
			break
		}
	}

	if !matched {
		calories = categoryFallback(category)
	}

	if fried {
		calories += friedBonus
	}

	return calories
}

// categoryFallback prices an unrecognised item by its section when the
// section itself is informative.
func categoryFallback(category string) int {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "dessert"):
		return dessertCalories
	case strings.Contains(lower, "beverage"), strings.Contains(lower, "drink"):
		return beverageCalories
	default:
		return baselineCalories
	}
}

// EstimateNutrition derives the full macro profile from the calorie
// estimate using fixed percentage-of-calories ratios, rounded to whole
// units.
func EstimateNutrition(name, category string) model.Nutrition {
	calories := EstimateCalories(name, category)

	protein := roundToInt(float64(calories) * proteinCalorieShare / caloriesPerGramProtein)
	fat := roundToInt(float64(calories) * fatCalorieShare / caloriesPerGramFat)
	carbs := roundToInt(float64(calories) * carbCalorieShare / caloriesPerGramCarb)

	return model.Nutrition{
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Sodium:   calories * sodiumMgPerCalorie,
		Sugar:    roundToInt(float64(carbs) * sugarShareOfCarbs),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
