package importer

import "strings"

// allergenRule maps a keyword set to the allergen label it implies.
type allergenRule struct {
	label    string
	keywords []string
}

// allergenRules is the fixed keyword table. Matching is case-insensitive
// substring matching against the full raw line, not just the item name;
// the export often calls out allergens in the trailing description.
var allergenRules = []allergenRule{
	{"Milk", []string{"milk", "cheese", "dairy", "queso", "crema", "butter", "cream"}},
	{"Eggs", []string{"egg"}},
	{"Peanuts", []string{"peanut"}},
	{"Tree Nuts", []string{"almond", "cashew", "pecan", "walnut", "pistachio", "hazelnut", "tree nut"}},
	{"Soy", []string{"soy"}},
	{"Wheat", []string{"wheat", "flour"}},
	{"Fish", []string{"fish"}},
	{"Shellfish", []string{"shellfish", "shrimp", "crab", "lobster"}},
	{"Sesame", []string{"sesame"}},
}

// ExtractAllergens scans the full line for allergen keywords and returns a
// deduplicated label set. The order of labels is not semantically
// meaningful. This is a total function; it never fails.
func ExtractAllergens(line string) []string {
	lower := strings.ToLower(line)

	var labels []string
	seen := make(map[string]struct{}, len(allergenRules))

	for _, rule := range allergenRules {
		if _, dup := seen[rule.label]; dup {
			continue
		}
		if containsAny(lower, rule.keywords) {
			seen[rule.label] = struct{}{}
			labels = append(labels, rule.label)
		}
	}

	return labels
}
