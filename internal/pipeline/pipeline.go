package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"seogen/internal/core"
	"seogen/internal/generate"
	"seogen/internal/keywords"
	"seogen/internal/language"
	"seogen/internal/logger"
	"seogen/internal/validate"
)

// Completer is the completion-client surface the pipeline depends on.
// *llm.Client satisfies it; tests substitute deterministic mocks.
type Completer interface {
	Complete(ctx context.Context, model, system, user string, maxTokens int64) (string, error)
}

// Options configures a Pipeline.
type Options struct {
	Model        string // Default model when the request does not name one
	KeywordCount int    // How many keywords to request when synthesizing
}

// Pipeline sequences one generation run: language detection, keyword
// resolution, three field generations, validation, result assembly. A run
// shares no mutable state with any other run.
type Pipeline struct {
	client Completer
	opts   Options
}

// New creates a pipeline over the given completion client.
func New(client Completer, opts Options) *Pipeline {
	if opts.KeywordCount <= 0 {
		opts.KeywordCount = 8
	}
	return &Pipeline{client: client, opts: opts}
}

// Run executes the pipeline for one request and returns the assembled
// result. Any completion failure aborts the run with no partial result;
// validation and assembly are pure computation and cannot fail.
func (p *Pipeline) Run(ctx context.Context, req core.GenerationRequest) (*core.SEOResult, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("topic is required")
	}

	model := req.Model
	if model == "" {
		model = p.opts.Model
	}

	lang := req.Language
	if lang == "" {
		lang = language.Detect(req.Topic)
		logger.Debug("Language detected", "language", lang)
	}

	kws := req.Keywords
	if len(kws) == 0 && req.SynthesizeKeywords {
		synth := keywords.NewSynthesizer(p.client, model)
		var err error
		kws, err = synth.Synthesize(ctx, req.Topic, lang, p.opts.KeywordCount)
		if err != nil {
			return nil, err
		}
		logger.Info("Keywords synthesized", "count", len(kws))
	}
	if kws == nil {
		kws = []string{}
	}

	gen := generate.NewGenerator(p.client, model)
	texts := make(map[generate.FieldKind]string, 3)
	for _, kind := range generate.Kinds() {
		text, err := gen.Generate(ctx, kind, req.Topic, lang, kws)
		if err != nil {
			return nil, err
		}
		texts[kind] = text
		logger.Debug("Field generated", "field", string(kind), "length", len([]rune(text)))
	}

	// Validation runs over the same keyword set the prompts embedded, so
	// generation-time and validation-time keywords cannot drift.
	checks := make(map[string]core.FieldCheck, len(texts))
	for kind, text := range texts {
		checks[string(kind)] = validate.Check(text, kind.MaxLength(), kws)
	}

	return &core.SEOResult{
		Topic:           req.Topic,
		Language:        lang,
		Keywords:        kws,
		Title:           texts[generate.FieldTitle],
		MetaDescription: texts[generate.FieldMetaDescription],
		Summary:         texts[generate.FieldSummary],
		Checks:          checks,
		ModelUsed:       model,
		Timestamp:       time.Now().UTC(),
	}, nil
}
