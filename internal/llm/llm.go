package llm

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/respjson"

	"seogen/internal/config"
)

// ErrServiceUnavailable indicates the completion endpoint could not be
// reached or rejected the request. It is the pipeline's only fatal error:
// the run aborts at the call site and is not retried.
var ErrServiceUnavailable = errors.New("completion service unavailable")

// Client is a thin wrapper around an OpenAI-compatible chat-completions
// endpoint (a local Ollama instance by default). One call, one response:
// no retry, no caching.
type Client struct {
	api         openai.Client
	model       string
	temperature float64
	topP        float64
}

// New creates a completion client from the given configuration. The base
// endpoint and credential are passed in explicitly; nothing is read from
// ambient state.
func New(cfg config.LLM) *Client {
	// One call, one response: the SDK's automatic retries are disabled.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		// openai-go resolves paths relative to the base URL, so it must
		// end with a slash to keep the /v1 prefix.
		base := cfg.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return &Client{
		api:         openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
	}
}

// Model returns the client's default model identifier.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one system/user instruction pair to the completion service
// and returns the primary completion's text, trimmed of surrounding
// whitespace. An empty model falls back to the configured default. A response
// with no usable text yields "" with a nil error; only transport or API
// failures return an error, wrapped in ErrServiceUnavailable.
func (c *Client) Complete(ctx context.Context, model, system, user string, maxTokens int64) (string, error) {
	if model == "" {
		model = c.model
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.temperature),
		TopP:        openai.Float(c.topP),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	msg := resp.Choices[0].Message
	text := msg.Content
	if text == "" {
		// Some reasoning models put their output in an extra field
		// instead of content.
		text = extraString(msg.JSON.ExtraFields, "reasoning_content")
	}
	return strings.TrimSpace(text), nil
}

func extraString(fields map[string]respjson.Field, key string) string {
	f, ok := fields[key]
	if !ok {
		return ""
	}
	if s, err := strconv.Unquote(f.Raw()); err == nil {
		return s
	}
	return f.Raw()
}
