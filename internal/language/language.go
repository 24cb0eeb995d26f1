package language

import (
	"strings"

	"seogen/internal/core"
)

// Detect classifies text as Russian or English by counting how many of its
// characters fall into each alphabet. Cyrillic covers а..я plus ё; Latin
// covers a..z. Ties resolve to Russian, which also makes it the fallback for
// scripts matching neither range. The contract is determinism, not
// linguistic accuracy.
func Detect(text string) core.Language {
	var cyrillic, latin int
	for _, r := range strings.ToLower(text) {
		switch {
		case (r >= 'а' && r <= 'я') || r == 'ё':
			cyrillic++
		case r >= 'a' && r <= 'z':
			latin++
		}
	}
	if cyrillic >= latin {
		return core.LanguageRussian
	}
	return core.LanguageEnglish
}
