package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	LLM      LLM      `mapstructure:"llm"`
	Keywords Keywords `mapstructure:"keywords"`
	Output   Output   `mapstructure:"output"`
	Server   Server   `mapstructure:"server"`
}

// App holds general application configuration
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// LLM holds the completion-service configuration. The endpoint is
// OpenAI-compatible; a local Ollama instance only needs a non-empty
// placeholder key.
type LLM struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	TopP        float64       `mapstructure:"top_p"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Keywords holds keyword-synthesis configuration
type Keywords struct {
	Count int `mapstructure:"count"` // How many keywords to request when synthesizing
}

// Output holds output-artifact configuration
type Output struct {
	Path string `mapstructure:"path"` // Default path for the JSON artifact
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SetDefaults registers the default configuration values with viper.
// Called from initConfig before the config file is read, so a bare
// installation works against a local Ollama out of the box.
func SetDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("llm.base_url", "http://localhost:11434/v1/")
	viper.SetDefault("llm.api_key", "ollama")
	viper.SetDefault("llm.model", "qwen2.5:3b-instruct")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.top_p", 0.9)
	viper.SetDefault("llm.timeout", "60s")

	viper.SetDefault("keywords.count", 8)

	viper.SetDefault("output.path", "seo_output.json")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "120s")
}

// Load unmarshals the current viper state into a Config and validates the
// values the pipeline cannot run without.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required (any non-empty value works for Ollama)")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Keywords.Count <= 0 {
		return fmt.Errorf("keywords.count must be positive, got %d", c.Keywords.Count)
	}
	return nil
}
