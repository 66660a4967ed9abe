// Package config builds the runtime configuration from defaults, an optional
// config file, environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/quicktran/internal/orchestrator"
	"github.com/valpere/quicktran/internal/segmenter"
	"github.com/valpere/quicktran/internal/translator"
)

const (
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
	BackendGoogle = "google"
)

var (
	ErrMissingAPIKey = errors.New("API key not found, set OPENAI_API_KEY")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Keys and the environment variables bound to them.
var envBindings = map[string]string{
	"backend":             "TRANSLATOR_BACKEND",
	"api_url":             "OPENAI_API_URL",
	"api_key":             "OPENAI_API_KEY",
	"model":               "MODEL",
	"debug":               "DEBUG",
	"use_ollama":          "USE_OLLAMA",
	"google_credentials":  "GOOGLE_APPLICATION_CREDENTIALS",
	"long_text_threshold": "LONG_TEXT_THRESHOLD",
	"max_segment_length":  "MAX_SEGMENT_LENGTH",
	"fast_mode":           "FAST_MODE",
	"segment_delay":       "SEGMENT_DELAY",
	"fast_segment_delay":  "FAST_SEGMENT_DELAY",
	"startup_delay":       "STARTUP_DELAY",
	"newline_once":        "NEWLINE_ONCE",
	"max_tokens":          "MAX_TOKENS",
	"timeout":             "REQUEST_TIMEOUT",
	"icon_path":           "ICON_PATH",
}

type Config struct {
	Backend           string
	APIURL            string
	APIKey            string
	Model             string
	Debug             bool
	GoogleCredentials string

	LongTextThreshold int
	MaxSegmentLength  int
	FastMode          bool
	SegmentDelay      time.Duration
	FastSegmentDelay  time.Duration
	StartupDelay      time.Duration
	NewlineOnce       bool

	MaxTokens int
	Timeout   time.Duration
	IconPath  string
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("model", translator.DefaultOpenAIModel)
	v.SetDefault("long_text_threshold", segmenter.DefaultThreshold)
	v.SetDefault("max_segment_length", segmenter.DefaultMaxSegmentLength)
	v.SetDefault("segment_delay", orchestrator.DefaultDelay)
	v.SetDefault("fast_segment_delay", orchestrator.DefaultFastDelay)
	v.SetDefault("startup_delay", 500*time.Millisecond)
	v.SetDefault("max_tokens", translator.DefaultMaxTokens)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("icon_path", "icon.png")

	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// ReadFile merges the YAML file at path into v. A missing default file is
// not an error; an explicit path that cannot be read is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".quicktran")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Backend:           strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		APIURL:            strings.TrimSpace(v.GetString("api_url")),
		APIKey:            strings.TrimSpace(v.GetString("api_key")),
		Model:             v.GetString("model"),
		Debug:             truthy(v.GetString("debug")),
		GoogleCredentials: v.GetString("google_credentials"),
		LongTextThreshold: v.GetInt("long_text_threshold"),
		MaxSegmentLength:  v.GetInt("max_segment_length"),
		FastMode:          truthy(v.GetString("fast_mode")),
		SegmentDelay:      v.GetDuration("segment_delay"),
		FastSegmentDelay:  v.GetDuration("fast_segment_delay"),
		StartupDelay:      v.GetDuration("startup_delay"),
		NewlineOnce:       truthy(v.GetString("newline_once")),
		MaxTokens:         v.GetInt("max_tokens"),
		Timeout:           v.GetDuration("timeout"),
		IconPath:          v.GetString("icon_path"),
	}

	if cfg.Backend == "" {
		cfg.Backend = BackendOpenAI
		if truthy(v.GetString("use_ollama")) {
			cfg.Backend = BackendOllama
		}
	}
	if cfg.APIURL == "" {
		switch cfg.Backend {
		case BackendOpenAI:
			cfg.APIURL = translator.DefaultOpenAIURL
		case BackendOllama:
			cfg.APIURL = translator.DefaultOllamaURL
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendOpenAI, BackendOllama, BackendGoogle:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if c.MaxSegmentLength <= 0 {
		return fmt.Errorf("%w: max_segment_length must be positive, got %d", ErrInvalidConfig, c.MaxSegmentLength)
	}
	if c.LongTextThreshold < 0 {
		return fmt.Errorf("%w: long_text_threshold must not be negative, got %d", ErrInvalidConfig, c.LongTextThreshold)
	}
	if c.SegmentDelay <= 0 || c.FastSegmentDelay <= 0 {
		return fmt.Errorf("%w: segment delays must be positive", ErrInvalidConfig)
	}
	if c.StartupDelay < 0 {
		return fmt.Errorf("%w: startup_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CheckCredentials reports missing credentials for the selected backend.
// Commands that never call a backend skip it.
func (c *Config) CheckCredentials() error {
	if c.Backend == BackendOpenAI && c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ServiceConfig returns the backend settings.
func (c *Config) ServiceConfig() translator.ServiceConfig {
	return translator.ServiceConfig{
		Credentials: c.GoogleCredentials,
		APIKey:      c.APIKey,
		Model:       c.Model,
		BaseURL:     c.APIURL,
		MaxTokens:   c.MaxTokens,
		Timeout:     c.Timeout,
	}
}

// OrchestratorConfig returns the segmentation and pacing settings.
func (c *Config) OrchestratorConfig() orchestrator.OrchestratorConfig {
	newlines := segmenter.NewlineTwice
	if c.NewlineOnce {
		newlines = segmenter.NewlineOnce
	}
	return orchestrator.OrchestratorConfig{
		Threshold:        c.LongTextThreshold,
		MaxSegmentLength: c.MaxSegmentLength,
		Delay:            c.SegmentDelay,
		FastDelay:        c.FastSegmentDelay,
		Fast:             c.FastMode,
		Newlines:         newlines,
	}
}

// truthy accepts the boolean spellings used in shell environments.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true
	}
	return false
}
