package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Project  ProjectConfig  `toml:"project"`
	Capture  CaptureConfig  `toml:"capture"`
	Logging  LoggingConfig  `toml:"logging"`
	Storage  StorageConfig  `toml:"storage"`
	Gemini   GeminiConfig   `toml:"gemini"`
	Claude   ClaudeConfig   `toml:"claude"`
	LLM      LLMConfig      `toml:"llm"`
	Insights InsightsConfig `toml:"insights"`
}

// ProjectConfig identifies the project being captured and where its source lives.
type ProjectConfig struct {
	Name       string `toml:"name" validate:"required"`
	SourcePath string `toml:"source_path" validate:"required"`
}

// CaptureConfig controls the capture orchestrator (C9).
type CaptureConfig struct {
	MaxConcurrency        int      `toml:"max_concurrency"`
	SkipAlreadyProcessed  bool     `toml:"skip_already_processed"`
	IgnoreDirs            []string `toml:"ignore_dirs"`
	IgnoreFilenamePrefix  []string `toml:"ignore_filename_prefixes"`
	DrainTimeoutSeconds   int      `toml:"drain_timeout_seconds"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`
	Output     []string `toml:"output"`
	TimeFormat string   `toml:"time_format"`
	EchoStats  bool     `toml:"echo_stats"` // mirror Stats Recorder symbols to the secondary log sink
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

type BadgerConfig struct {
	Path           string `toml:"path" validate:"required"`
	ResetOnStartup bool   `toml:"reset_on_startup"`
}

// GeminiConfig configures the Gemini adapter (secondary by default).
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TimeoutSecs int     `toml:"timeout_seconds"`
	// ContextWindowTokens is the model's total context window, used as
	// TokenCounts.ModelLimit when classifying an EXCEEDED response —
	// distinct from MaxTokens, which bounds only the completion.
	ContextWindowTokens int `toml:"context_window_tokens"`
}

// ClaudeConfig configures the Claude adapter (primary by default).
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TimeoutSecs int     `toml:"timeout_seconds"`
	// ContextWindowTokens is the model's total context window, used as
	// TokenCounts.ModelLimit when classifying an EXCEEDED response —
	// distinct from MaxTokens, which bounds only the completion.
	ContextWindowTokens int `toml:"context_window_tokens"`
}

// LLMConfig holds cross-provider pipeline settings.
type LLMConfig struct {
	DefaultProvider    string `toml:"default_provider"`
	SecondaryProvider  string `toml:"secondary_provider"`
	EmbeddingModel     string `toml:"embedding_model"`
	EmbeddingDimension int    `toml:"embedding_dimension" validate:"required"`
	MaxAttempts        int    `toml:"max_attempts"`
	MinRetryDelayMs    int    `toml:"min_retry_delay_ms"`
	BackoffMultiplier  float64 `toml:"backoff_multiplier"`
	JitterFraction     float64 `toml:"jitter_fraction"`
}

// InsightsConfig configures the out-of-scope scheduled app-summary synthesis job.
type InsightsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron expression, e.g. "0 */6 * * *"
}

var validate = validator.New()

// requiredEnvByProvider lists the environment variables that must be present for
// a given LLM provider family manifest, per spec.md §6.
var requiredEnvByProvider = map[string][]string{
	"claude": {"CLAUDE_API_KEY"},
	"gemini": {"GEMINI_API_KEY"},
}

// Default returns a Config populated with sensible defaults, mirroring the
// shape of the teacher's default-then-file-then-env layering.
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Name:       "",
			SourcePath: "",
		},
		Capture: CaptureConfig{
			MaxConcurrency:       8,
			SkipAlreadyProcessed: false,
			IgnoreDirs:           []string{".git", "node_modules", "vendor", "dist", "build", "target", "__pycache__", ".venv"},
			IgnoreFilenamePrefix: []string{"."},
			DrainTimeoutSeconds:  2,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05.000",
			EchoStats:  false,
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:           "./data/codescribe.badger",
				ResetOnStartup: false,
			},
		},
		Gemini: GeminiConfig{
			Model:               "gemini-2.5-flash",
			Temperature:         0.2,
			MaxTokens:           8192,
			TimeoutSecs:         60,
			ContextWindowTokens: 1048576,
		},
		Claude: ClaudeConfig{
			Model:               "claude-sonnet-4-20250514",
			Temperature:         0.2,
			MaxTokens:           8192,
			TimeoutSecs:         60,
			ContextWindowTokens: 200000,
		},
		LLM: LLMConfig{
			DefaultProvider:    "claude",
			SecondaryProvider:  "gemini",
			EmbeddingModel:     "text-embedding-004",
			EmbeddingDimension: 768,
			MaxAttempts:        5,
			MinRetryDelayMs:    500,
			BackoffMultiplier:  2.0,
			JitterFraction:     0.2,
		},
		Insights: InsightsConfig{
			Enabled:  false,
			Schedule: "0 */6 * * *",
		},
	}
}

// LoadFromFiles loads configuration starting from defaults, then layering
// each TOML file in order (later files win), then environment overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := Default()

	for _, path := range paths {
		if err := mergeFromFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func mergeFromFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, config)
}

// applyEnvOverrides reads the recognized environment variables from spec.md §6.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("CODEBASE_DIR_PATH"); v != "" {
		config.Project.SourcePath = v
	}
	// CODEBASE_SOURCE accepts a local path or a github:owner/repo[@ref] URI
	// and takes precedence over CODEBASE_DIR_PATH when both are set.
	if v := os.Getenv("CODEBASE_SOURCE"); v != "" {
		config.Project.SourcePath = v
	}
	if v := os.Getenv("SKIP_ALREADY_PROCESSED_FILES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Capture.SkipAlreadyProcessed = b
		}
	}
	if v := os.Getenv("LLM"); v != "" {
		config.LLM.DefaultProvider = strings.ToLower(v)
	}
	if v := os.Getenv("MAX_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Capture.MaxConcurrency = n
		}
	}
	if v := os.Getenv("CLAUDE_API_KEY"); v != "" {
		config.Claude.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.Gemini.APIKey = v
	}
}

// ApplyFlagOverrides applies CLI flag values, which take precedence over
// files and environment.
func ApplyFlagOverrides(config *Config, sourcePath, projectName string, maxConcurrency int) {
	if sourcePath != "" {
		config.Project.SourcePath = sourcePath
	}
	if projectName != "" {
		config.Project.Name = projectName
	}
	if maxConcurrency > 0 {
		config.Capture.MaxConcurrency = maxConcurrency
	}
}

// ConfigError is returned for missing or invalid configuration, per spec.md §7.
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("configuration error: %s (missing: %s)", e.Reason, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// validateConfig runs struct-tag validation plus the provider-manifest check
// from spec.md §6 ("missing required variables fail fast with a configuration
// error listing the names").
func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return &ConfigError{Reason: err.Error()}
	}

	var missing []string
	for _, provider := range []string{config.LLM.DefaultProvider, config.LLM.SecondaryProvider} {
		required, ok := requiredEnvByProvider[provider]
		if !ok {
			continue
		}
		for _, name := range required {
			if provider == "claude" && config.Claude.APIKey != "" {
				continue
			}
			if provider == "gemini" && config.Gemini.APIKey != "" {
				continue
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing, Reason: "missing required provider credentials"}
	}

	return nil
}
