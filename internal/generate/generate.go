package generate

import (
	"context"
	"fmt"
	"strings"

	"seogen/internal/core"
)

// Completer is the slice of the completion client the generator needs.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, maxTokens int64) (string, error)
}

// FieldKind identifies one of the generated SEO fields. The string value is
// also the key under which the field's check appears in SEOResult.Checks.
type FieldKind string

const (
	FieldTitle           FieldKind = "title"
	FieldMetaDescription FieldKind = "meta_description"
	FieldSummary         FieldKind = "summary"
)

// Kinds returns every generated field in generation order. The order is
// fixed but immaterial: the three generations share no data.
func Kinds() []FieldKind {
	return []FieldKind{FieldTitle, FieldMetaDescription, FieldSummary}
}

// prompt holds the instruction texts for one field in one language. The
// keyword clause is appended to the user instruction only when the resolved
// keyword set is non-empty; %s receives the comma-joined keywords.
type prompt struct {
	system        string
	user          string // %s receives the topic, second %s the keyword clause
	keywordClause string
}

// fieldSpec drives generation for one field kind: role instructions per
// language, the hard character limit, and the output-token budget. The same
// maxLength constant feeds both truncation and validation, so the two can
// never disagree.
type fieldSpec struct {
	maxLength int
	maxTokens int64
	ru, en    prompt
}

func (s fieldSpec) prompts(lang core.Language) prompt {
	if lang == core.LanguageRussian {
		return s.ru
	}
	return s.en
}

var specs = map[FieldKind]fieldSpec{
	FieldTitle: {
		maxLength: 60,
		maxTokens: 60,
		ru: prompt{
			system:        "Ты SEO-копирайтер. Верни ТОЛЬКО заголовок (до 60 символов).",
			user:          "Создай кликабельный title по теме: %s.%s",
			keywordClause: " Добавь: %s.",
		},
		en: prompt{
			system:        "You are an SEO copywriter. Return ONLY a title (<=60 chars).",
			user:          "Create a catchy SEO title about: %s.%s",
			keywordClause: " Include: %s.",
		},
	},
	FieldMetaDescription: {
		maxLength: 150,
		maxTokens: 120,
		ru: prompt{
			system:        "Ты маркетолог. Ответь ТОЛЬКО meta description (до 150 символов).",
			user:          "Напиши meta description для сайта о %s.%s",
			keywordClause: " Включи слова: %s.",
		},
		en: prompt{
			system:        "You are a marketing specialist. Reply ONLY with a meta description (<=150 characters).",
			user:          "Write a meta description for a website about %s.%s",
			keywordClause: " Include words: %s.",
		},
	},
	FieldSummary: {
		maxLength: 300,
		maxTokens: 180,
		ru: prompt{
			system:        "Ты редактор. Верни 1–2 предложения (до 300 символов).",
			user:          "Кратко опиши тему: %s.%s",
			keywordClause: " Включи: %s.",
		},
		en: prompt{
			system:        "You are an editor. Return 1–2 sentences (<=300 chars).",
			user:          "Briefly describe the topic: %s.%s",
			keywordClause: " Include: %s.",
		},
	},
}

// MaxLength reports the hard character limit for the field kind.
func (k FieldKind) MaxLength() int {
	return specs[k].maxLength
}

// Generator produces the text for individual SEO fields via the completion
// service.
type Generator struct {
	client Completer
	model  string
}

// NewGenerator creates a generator bound to a completion client and model
// identifier.
func NewGenerator(client Completer, model string) *Generator {
	return &Generator{client: client, model: model}
}

// Generate builds the language-specific instruction pair for the field,
// invokes the completion service, and truncates the trimmed result to the
// field's maximum length.
func (g *Generator) Generate(ctx context.Context, kind FieldKind, topic string, lang core.Language, kws []string) (string, error) {
	spec, ok := specs[kind]
	if !ok {
		return "", fmt.Errorf("unknown field kind %q", kind)
	}
	p := spec.prompts(lang)

	var clause string
	if len(kws) > 0 {
		clause = fmt.Sprintf(p.keywordClause, strings.Join(kws, ", "))
	}
	user := fmt.Sprintf(p.user, topic, clause)

	text, err := g.client.Complete(ctx, g.model, p.system, user, spec.maxTokens)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", kind, err)
	}
	return Truncate(text, spec.maxLength), nil
}

// Truncate cuts text down to at most max characters (runes). The cut is
// hard, with no word-boundary awareness, and the trailing whitespace it may
// expose is trimmed afterwards.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) > max {
		r = r[:max]
	}
	return strings.TrimSpace(string(r))
}
