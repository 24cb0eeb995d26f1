package keywords

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"seogen/internal/core"
)

// Completer is the slice of the completion client the synthesizer needs.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, maxTokens int64) (string, error)
}

// listMarker matches leading list decorations the model tends to emit:
// numerals, dots, closing parens, dashes and whitespace.
var listMarker = regexp.MustCompile(`^[-\d.)\s]+`)

// Synthesizer produces candidate keywords for a topic when the caller
// supplied none.
type Synthesizer struct {
	client Completer
	model  string
}

// NewSynthesizer creates a synthesizer bound to a completion client and
// model identifier.
func NewSynthesizer(client Completer, model string) *Synthesizer {
	return &Synthesizer{client: client, model: model}
}

// Synthesize asks the completion service for count keywords, one per line,
// and returns the usable ones: deduplicated case-insensitively with
// first-seen order and casing preserved, capped at count. Malformed or empty
// lines are dropped, never an error; only the completion call itself can
// fail.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, lang core.Language, count int) ([]string, error) {
	var system, user string
	if lang == core.LanguageRussian {
		system = "Ты SEO-специалист. Отвечай списком, по одному слову или фразе на строку."
		user = fmt.Sprintf("Сгенерируй %d релевантных ключевых слов по теме: %s.", count, topic)
	} else {
		system = "You are an SEO specialist. Reply with a list, one keyword or phrase per line."
		user = fmt.Sprintf("Generate %d relevant keywords for the topic: %s.", count, topic)
	}

	text, err := s.client.Complete(ctx, s.model, system, user, 200)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize keywords: %w", err)
	}
	return ParseLines(text, count), nil
}

// ParseLines extracts keywords from raw model output: one candidate per
// line, stripped of leading list markers and whitespace. Duplicates compare
// case-insensitively; the first occurrence wins and keeps its casing.
func ParseLines(text string, limit int) []string {
	seen := make(map[string]struct{})
	result := []string{}
	for _, line := range strings.Split(text, "\n") {
		kw := strings.TrimSpace(listMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if kw == "" {
			continue
		}
		low := strings.ToLower(kw)
		if _, ok := seen[low]; ok {
			continue
		}
		seen[low] = struct{}{}
		result = append(result, kw)
		if len(result) == limit {
			break
		}
	}
	return result
}
