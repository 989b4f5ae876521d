package importer

import "strings"

// delimiterMarker wraps explicit restaurant headers in the export, e.g. %%Sizzle%%.
const delimiterMarker = "%%"

// knownCategories is the fixed list of subsection names observed in the
// export layout. Matching is by prefix or first-token equality.
var knownCategories = []string{
	"Entrees",
	"Sides",
	"Soups",
	"Salads",
	"Desserts",
	"Beverages",
	"Beans & Rice",
	"Salsas & Condiments",
}

// defaultKnownRestaurants seeds the known-name set with the venue names that
// appear in the export without delimiter markers.
var defaultKnownRestaurants = []string{
	"Sizzle",
	"Fuego Grill",
	"La Cocina",
	"El Mercado",
	"The Comal",
}

// Kind is the outcome of classifying a single line.
type Kind int

const (
	// KindSkipped means the line was absorbed or discarded without output.
	KindSkipped Kind = iota

	// KindRestaurant means the line opened a new restaurant section.
	KindRestaurant

	// KindCategory means the line set or renamed the current category.
	KindCategory

	// KindItem means the line is a menu-item candidate.
	KindItem
)

// Classification is the result of running one line through the rule chain.
type Classification struct {
	Kind Kind

	// Rule is the name of the rule that matched, for diagnostics.
	Rule string

	// Value is the restaurant or category name, or the full line for items.
	Value string
}

// ParseState is the classifier session state. Category is only meaningful
// while Restaurant is non-empty.
type ParseState struct {
	Restaurant string
	Category   string
}

// KnownNames tracks restaurant names the classifier can recognise: the
// configured seed list plus every name learned during the scan. Learned
// names let bare repeats of a delimiter-declared restaurant be recognised
// without the marker.
type KnownNames struct {
	byLower map[string]string
	order   []string // lower-cased names in insertion order, for deterministic matching
}

// NewKnownNames creates a known-name set seeded with the given names.
func NewKnownNames(seed []string) *KnownNames {
	k := &KnownNames{byLower: make(map[string]string, len(seed))}
	for _, name := range seed {
		k.Add(name)
	}
	return k
}

// Add records a restaurant name for future recognition.
func (k *KnownNames) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	lower := strings.ToLower(name)
	if _, exists := k.byLower[lower]; !exists {
		k.order = append(k.order, lower)
	}
	k.byLower[lower] = name
}

// Contains reports whether the exact name (case-insensitive) is known.
func (k *KnownNames) Contains(name string) bool {
	_, ok := k.byLower[strings.ToLower(name)]
	return ok
}

// Match reports whether the line names a known restaurant, either as an
// exact prefix of the line or by first-token equality. It returns the
// canonical stored name. Names are tried in insertion order so re-imports
// resolve identically.
func (k *KnownNames) Match(line RawLine) (string, bool) {
	lowerText := strings.ToLower(line.Text)
	lowerFirst := strings.ToLower(line.First)

	for _, lower := range k.order {
		if strings.HasPrefix(lowerText, lower) || lowerFirst == lower {
			return k.byLower[lower], true
		}
	}
	return "", false
}

// Size returns the number of known restaurant names.
func (k *KnownNames) Size() int {
	return len(k.byLower)
}

// Classifier decides, line by line, whether a line opens a restaurant,
// sets a category, or is a menu-item candidate. Rules are evaluated in a
// fixed priority order; the first match wins.
type Classifier struct {
	state ParseState
	known *KnownNames
}

// NewClassifier creates a classifier with fresh state and the default
// known-restaurant seed list.
func NewClassifier() *Classifier {
	return &Classifier{
		known: NewKnownNames(defaultKnownRestaurants),
	}
}

// State returns a copy of the current session state.
func (c *Classifier) State() ParseState {
	return c.state
}

// Known returns the known-restaurant set.
func (c *Classifier) Known() *KnownNames {
	return c.known
}

// rule pairs a predicate/action with a stable name so the priority order is
// an explicit, testable artifact rather than implicit code layout.
type rule struct {
	name  string
	match func(c *Classifier, line RawLine) (Classification, bool)
}

// classifierRules is the priority chain. Explicit delimiters are
// authoritative; known names are checked before the generic heuristic so a
// short restaurant name is never misread as an item; subsection and
// category checks precede the item fallback because many category lines
// would otherwise pass the item heuristic.
var classifierRules = []rule{
	{name: "explicit-delimiter", match: matchExplicitDelimiter},
	{name: "restaurant-header", match: matchRestaurantHeader},
	{name: "known-subsection", match: matchKnownSubsection},
	{name: "generic-category", match: matchGenericCategory},
	{name: "item-candidate", match: matchItemCandidate},
}

// Classify runs a normalized line through the rule chain and updates the
// session state. Every line is either absorbed into state or safely
// discarded; classification never fails.
func (c *Classifier) Classify(line RawLine) Classification {
	for _, r := range classifierRules {
		if result, ok := r.match(c, line); ok {
			result.Rule = r.name
			return result
		}
	}

	// The item-candidate rule is a catch-all, so this is unreachable.
	return Classification{Kind: KindSkipped, Rule: "unmatched"}
}

// matchExplicitDelimiter handles lines wrapped in the %%...%% marker pair.
// The declared name always wins over heuristic detection and is remembered
// so later bare repeats are recognised.
func matchExplicitDelimiter(c *Classifier, line RawLine) (Classification, bool) {
	text := line.Text
	if len(text) <= 2*len(delimiterMarker) {
		return Classification{}, false
	}
	if !strings.HasPrefix(text, delimiterMarker) || !strings.HasSuffix(text, delimiterMarker) {
		return Classification{}, false
	}

	name := strings.TrimSpace(text[len(delimiterMarker) : len(text)-len(delimiterMarker)])
	if name == "" {
		return Classification{}, false
	}

	c.known.Add(name)
	c.state = ParseState{Restaurant: name}
	return Classification{Kind: KindRestaurant, Value: name}, true
}

// matchRestaurantHeader handles known restaurant names in any state, and
// heuristic header detection while no restaurant is open yet. Mid-section
// restaurant switches require a delimiter or a known name; otherwise short
// item lines would be misread as headers.
func matchRestaurantHeader(c *Classifier, line RawLine) (Classification, bool) {
	if name, ok := c.known.Match(line); ok {
		c.state = ParseState{Restaurant: name}
		return Classification{Kind: KindRestaurant, Value: name}, true
	}

	if c.state.Restaurant == "" && isLikelyHeader(line) {
		name := line.First
		c.known.Add(name)
		c.state = ParseState{Restaurant: name}
		return Classification{Kind: KindRestaurant, Value: name}, true
	}

	return Classification{}, false
}

// isLikelyHeader is the top-level header heuristic: not a known subsection
// name, not a day/cycle line, first token longer than 2 characters with at
// most 5 words, and at most 2 non-empty comma fields after it.
func isLikelyHeader(line RawLine) bool {
	if matchCategoryName(line.First) != "" {
		return false
	}
	if IsBoilerplate(line.Text) {
		return false
	}
	if len(line.First) <= 2 {
		return false
	}
	if len(strings.Fields(line.First)) > 5 {
		return false
	}
	if len(restTokens(line.Text)) > 2 {
		return false
	}
	return true
}

// matchCategoryName returns the canonical fixed category the text names,
// by prefix or first-token equality, or an empty string.
func matchCategoryName(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return ""
	}
	first := strings.ToLower(firstToken(text))

	for _, category := range knownCategories {
		lowerCat := strings.ToLower(category)
		if strings.HasPrefix(lower, lowerCat) || first == lowerCat {
			return category
		}
	}
	return ""
}

// matchKnownSubsection handles the fixed subsection list. Requires an open
// restaurant; a subsection before any header is absorbed without effect.
func matchKnownSubsection(c *Classifier, line RawLine) (Classification, bool) {
	category := matchCategoryName(line.Text)
	if category == "" {
		return Classification{}, false
	}

	if c.state.Restaurant == "" {
		return Classification{Kind: KindSkipped}, true
	}

	c.state.Category = category
	return Classification{Kind: KindCategory, Value: category}, true
}

// matchGenericCategory handles category lines outside the fixed list: a
// trailing colon, or a fixed category name appearing anywhere in the line.
func matchGenericCategory(c *Classifier, line RawLine) (Classification, bool) {
	looksLikeCategory := strings.HasSuffix(line.Text, ":") || containsCategoryName(line.Text)
	if !looksLikeCategory {
		return Classification{}, false
	}

	if c.state.Restaurant == "" {
		return Classification{Kind: KindSkipped}, true
	}

	category := strings.TrimSpace(strings.TrimSuffix(line.Text, ":"))
	c.state.Category = category
	return Classification{Kind: KindCategory, Value: category}, true
}

// containsCategoryName reports whether any fixed category name appears
// anywhere in the text, case-insensitively.
func containsCategoryName(text string) bool {
	lower := strings.ToLower(text)
	for _, category := range knownCategories {
		if strings.Contains(lower, strings.ToLower(category)) {
			return true
		}
	}
	return false
}

// matchItemCandidate is the default case. Item lines before any restaurant
// header are silently discarded; this protects against stray pre-header text.
func matchItemCandidate(c *Classifier, line RawLine) (Classification, bool) {
	if c.state.Restaurant == "" {
		return Classification{Kind: KindSkipped}, true
	}
	return Classification{Kind: KindItem, Value: line.Text}, true
}
