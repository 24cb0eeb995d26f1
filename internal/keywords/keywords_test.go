package keywords

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"seogen/internal/core"
)

// mockCompleter implements Completer for testing
type mockCompleter struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (m *mockCompleter) Complete(_ context.Context, _, system, user string, _ int64) (string, error) {
	m.lastSystem = system
	m.lastUser = user
	return m.response, m.err
}

func TestSynthesizeParsesNumberedAndDashedLines(t *testing.T) {
	// Scenario: duplicate of the first keyword arrives in a different shape
	mock := &mockCompleter{response: "1. electric bike\n- cycling\nelectric bike\n"}
	s := NewSynthesizer(mock, "test-model")

	got, err := s.Synthesize(context.Background(), "electric bicycles", core.LanguageEnglish, 8)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"electric bike", "cycling"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Synthesize() = %v, want %v", got, want)
	}
}

func TestSynthesizePromptLanguage(t *testing.T) {
	mock := &mockCompleter{response: "bikes"}
	s := NewSynthesizer(mock, "test-model")

	if _, err := s.Synthesize(context.Background(), "bikes", core.LanguageEnglish, 5); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(mock.lastSystem, "SEO specialist") {
		t.Errorf("English system prompt not used: %q", mock.lastSystem)
	}
	if !strings.Contains(mock.lastUser, "5") {
		t.Errorf("Requested count missing from user prompt: %q", mock.lastUser)
	}

	if _, err := s.Synthesize(context.Background(), "велосипеды", core.LanguageRussian, 5); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(mock.lastSystem, "SEO-специалист") {
		t.Errorf("Russian system prompt not used: %q", mock.lastSystem)
	}
}

func TestSynthesizePropagatesCompletionError(t *testing.T) {
	wantErr := errors.New("connection refused")
	mock := &mockCompleter{err: wantErr}
	s := NewSynthesizer(mock, "test-model")

	_, err := s.Synthesize(context.Background(), "bikes", core.LanguageEnglish, 8)
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected wrapped completion error, got: %v", err)
	}
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "strips list markers",
			text:  "1. first keyword\n2) second keyword\n- third keyword",
			limit: 8,
			want:  []string{"first keyword", "second keyword", "third keyword"},
		},
		{
			name:  "dedupes case-insensitively keeping first casing",
			text:  "Electric Bike\nelectric bike\nELECTRIC BIKE\ncycling",
			limit: 8,
			want:  []string{"Electric Bike", "cycling"},
		},
		{
			name:  "drops empty and marker-only lines",
			text:  "\n  \n3.\nreal keyword\n---\n",
			limit: 8,
			want:  []string{"real keyword"},
		},
		{
			name:  "caps at limit",
			text:  "a\nb\nc\nd",
			limit: 2,
			want:  []string{"a", "b"},
		},
		{
			name:  "empty input yields empty list",
			text:  "",
			limit: 8,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLines(tt.text, tt.limit); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLinesNoCaseInsensitiveDuplicates(t *testing.T) {
	got := ParseLines("SEO\nseo\nSeo\nmarketing\nMARKETING\ncontent", 8)

	seen := map[string]bool{}
	for _, kw := range got {
		low := strings.ToLower(kw)
		if seen[low] {
			t.Errorf("Duplicate keyword under case-insensitive comparison: %q", kw)
		}
		seen[low] = true
	}
}
