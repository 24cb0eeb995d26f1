package core

import "time"

// Language is a content language the pipeline can work in. The set is closed:
// the detector only ever returns one of the constants below.
type Language string

const (
	// LanguageRussian is the default language; detection ties resolve to it.
	LanguageRussian Language = "ru"
	// LanguageEnglish is selected when Latin characters dominate the topic.
	LanguageEnglish Language = "en"
)

// GenerationRequest describes a single pipeline run. It is treated as
// immutable once constructed; the pipeline never writes back into it.
type GenerationRequest struct {
	Topic              string   `json:"topic"`               // Subject to generate content about (required)
	Language           Language `json:"language"`            // Explicit language; empty means "detect from topic"
	Keywords           []string `json:"keywords"`            // Caller-supplied keywords; empty may trigger synthesis
	SynthesizeKeywords bool     `json:"synthesize_keywords"` // Synthesize keywords when none are supplied
	Model              string   `json:"model"`               // Model identifier; empty means the configured default
	Temperature        float64  `json:"temperature"`         // Sampling temperature used for this run
	TopP               float64  `json:"top_p"`               // Nucleus-sampling threshold used for this run
}

// FieldCheck is the validation outcome for one generated field. It is derived
// from already-produced data and never mutated after creation.
type FieldCheck struct {
	Length          int      `json:"length"`           // Produced length in characters (runes)
	MaxAllowed      int      `json:"max_allowed"`      // Hard limit for the field
	OKLength        bool     `json:"ok_length"`        // Length <= MaxAllowed
	MissingKeywords []string `json:"missing_keywords"` // Required keywords absent from the field text, in input order
}

// SEOResult is the artifact of one pipeline run. Field texts are already
// truncated to their limits, so every check in Checks agrees with the text it
// describes. The struct round-trips losslessly through encoding/json.
type SEOResult struct {
	Topic           string                `json:"topic"`
	Language        Language              `json:"language"`
	Keywords        []string              `json:"keywords"` // The exact keyword set used for both prompts and validation
	Title           string                `json:"title"`
	MetaDescription string                `json:"meta_description"`
	Summary         string                `json:"summary"`
	Checks          map[string]FieldCheck `json:"checks"` // Keyed by field name: title, meta_description, summary
	ModelUsed       string                `json:"model_used"`
	Timestamp       time.Time             `json:"timestamp"` // Generation time, UTC
}
