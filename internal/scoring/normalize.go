package scoring

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize converts an answer into its canonical comparison form: trimmed,
// upper-cased, with spacing around commas removed.
//
// Runs of spaces are collapsed in a single non-overlapping pass, so three
// consecutive spaces become two. Stored results depend on this exact form.
func Normalize(answer string) string {
	if answer == "" {
		return ""
	}

	normalized := cases.Upper(language.Und).String(strings.TrimSpace(answer))
	normalized = strings.ReplaceAll(normalized, "  ", " ")
	normalized = strings.ReplaceAll(normalized, " ,", ",")
	normalized = strings.ReplaceAll(normalized, ", ", ",")

	return normalized
}

// NormalizeRaw joins a multi-select answer with "," before normalizing it.
func NormalizeRaw(answer RawAnswer) string {
	return Normalize(answer.String())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
