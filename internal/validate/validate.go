package validate

import (
	"strings"
	"unicode/utf8"

	"seogen/internal/core"
)

// Check validates one generated field against its length limit and the
// required keyword set. Length counts runes, the same unit the generator
// truncates with. Pure function.
func Check(text string, maxLength int, required []string) core.FieldCheck {
	length := utf8.RuneCountInString(text)
	return core.FieldCheck{
		Length:          length,
		MaxAllowed:      maxLength,
		OKLength:        length <= maxLength,
		MissingKeywords: MissingKeywords(text, required),
	}
}

// MissingKeywords returns the required keywords that do not occur in text as
// a case-insensitive substring, in input order. No fuzzy or partial-word
// matching.
func MissingKeywords(text string, required []string) []string {
	missing := []string{}
	t := strings.ToLower(text)
	for _, kw := range required {
		if !strings.Contains(t, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}
