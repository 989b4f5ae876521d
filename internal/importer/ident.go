package importer

import (
	"fmt"
	"regexp"
	"strings"
)

// restaurantIDPrefix distinguishes this data source from the other feeds
// that share the destination catalog.
const restaurantIDPrefix = "hilltop_"

// restaurantNameSuffix decorates display names with the venue they belong to.
const restaurantNameSuffix = " at Hilltop"

// DefaultCategory is the sentinel category for items that appear before any
// subsection header.
const DefaultCategory = "Entrees"

// maxIDLength caps generated identifiers. Truncation is a plain cut, not a
// hash, so re-imports stay idempotent.
const maxIDLength = 120

var nonIDChars = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeID turns arbitrary text into a stable, URL-safe identifier:
// lower-cased, with every run of non-alphanumeric characters collapsed to a
// single hyphen, trimmed, and truncated to maxIDLength.
func NormalizeID(s string) string {
	id := strings.ToLower(s)
	id = nonIDChars.ReplaceAllString(id, "-")
	id = strings.Trim(id, "-")
	if len(id) > maxIDLength {
		id = strings.TrimRight(id[:maxIDLength], "-")
	}
	return id
}

// RestaurantID derives the stable store key for a restaurant display name.
func RestaurantID(name string) string {
	underscored := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	return NormalizeID(restaurantIDPrefix + underscored)
}

// RestaurantDisplayName decorates the raw section name for the catalog.
func RestaurantDisplayName(name string) string {
	return strings.TrimSpace(name) + restaurantNameSuffix
}

// BuildItemID derives the stable identifier for a menu item. Identical
// (restaurantID, category, name) triples always yield identical ids, which
// is what makes re-imports idempotent.
func BuildItemID(restaurantID, category, name string) string {
	if category == "" {
		category = "uncategorized"
	}
	return NormalizeID(fmt.Sprintf("%s-%s-%s", restaurantID, category, name))
}
