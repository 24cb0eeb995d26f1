package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"seogen/internal/core"
)

// WriteResult serializes the result as indented JSON at the given path,
// creating parent directories as needed. A failure here is surfaced to the
// caller but never invalidates the in-memory result.
func WriteResult(res *core.SEOResult, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write result file %s: %w", path, err)
	}
	return nil
}

// LoadResult reads a previously written artifact back into an SEOResult.
// The artifact round-trips losslessly: Load(Write(res)) reproduces res.
func LoadResult(path string) (*core.SEOResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file %s: %w", path, err)
	}
	var res core.SEOResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse result file %s: %w", path, err)
	}
	return &res, nil
}
