package importer

import "strings"

// DefaultServingSize is the sentinel used when an item line carries no
// parenthesised serving hint.
const DefaultServingSize = "1 serving"

// minItemNameLength rejects fragments left over from aggressive truncation.
const minItemNameLength = 2

// ExtractItem splits an item-candidate line into its dish name and serving
// size. The name is the text before the first comma, further truncated at
// the first opening parenthesis. Lines whose name is too short, or equal to
// a known category or restaurant name, are rejected; those are
// mis-classified repeats rather than dishes.
func ExtractItem(line RawLine, known *KnownNames) (name, servingSize string, ok bool) {
	name = line.First
	if idx := strings.Index(name, "("); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)

	if len(name) < minItemNameLength {
		return "", "", false
	}
	if isCategoryName(name) || known.Contains(name) {
		return "", "", false
	}

	servingSize = line.Paren
	if servingSize == "" {
		servingSize = DefaultServingSize
	}

	return name, servingSize, true
}

// isCategoryName reports whether the name equals a fixed category,
// case-insensitively.
func isCategoryName(name string) bool {
	for _, category := range knownCategories {
		if strings.EqualFold(name, category) {
			return true
		}
	}
	return false
}
