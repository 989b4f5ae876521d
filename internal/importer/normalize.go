package importer

import "strings"

// dayPrefixes are the day-of-week header lines that appear between menu
// cycles in the export. They carry no menu content.
var dayPrefixes = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// cyclePrefixes are the rotation headers the export emits above each week.
var cyclePrefixes = []string{
	"cycle", "week ", "day ",
}

// disclaimerSubstrings are known boilerplate fragments. These are exact
// substrings from the source layout, not a heuristic.
var disclaimerSubstrings = []string{
	"menu items are subject to change",
	"nutrition information available upon request",
	"consuming raw or undercooked",
}

// RawLine is a normalized export line with its pre-split tokens.
type RawLine struct {
	// Text is the line after trimming and quote stripping.
	Text string

	// First is the first comma-delimited token, trimmed.
	First string

	// Paren is the content of the first parenthesised group, if any.
	Paren string
}

// NewRawLine splits a normalized line into its tokens.
func NewRawLine(text string) RawLine {
	return RawLine{
		Text:  text,
		First: firstToken(text),
		Paren: parenContent(text),
	}
}

// NormalizeLine trims whitespace and removes a single layer of wrapping
// quotation characters. It returns an empty string for blank lines.
func NormalizeLine(raw string) string {
	line := strings.TrimSpace(raw)
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	return strings.TrimSpace(line)
}

// IsBoilerplate reports whether a normalized line is one of the known
// metadata lines from the source layout (day/cycle headers, disclaimers).
func IsBoilerplate(line string) bool {
	lower := strings.ToLower(line)

	for _, day := range dayPrefixes {
		if strings.HasPrefix(lower, day) {
			return true
		}
	}
	for _, prefix := range cyclePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, fragment := range disclaimerSubstrings {
		if strings.Contains(lower, fragment) {
			return true
		}
	}

	return false
}

// firstToken returns the text before the first comma, trimmed.
func firstToken(line string) string {
	if idx := strings.Index(line, ","); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// restTokens returns the non-empty comma-separated fields after the first token.
func restTokens(line string) []string {
	parts := strings.Split(line, ",")
	if len(parts) <= 1 {
		return nil
	}

	var fields []string
	for _, part := range parts[1:] {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

// parenContent returns the content of the first parenthesised group in the
// line, or an empty string when there is none.
func parenContent(line string) string {
	open := strings.Index(line, "(")
	if open < 0 {
		return ""
	}
	closing := strings.Index(line[open:], ")")
	if closing < 0 {
		return ""
	}
	return strings.TrimSpace(line[open+1 : open+closing])
}
