package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrContentDirRequired     = errors.New("posts config: content directory is required")
	ErrExcerptLengthInvalid   = errors.New("posts config: excerpt length must be positive")
	ErrCacheCapacityInvalid   = errors.New("posts config: cache capacity must be positive when the cache is enabled")
	ErrCacheTTLInvalid        = errors.New("posts config: cache ttl must be positive when the cache is enabled")
	ErrLoggingProviderUnknown = errors.New("posts config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("posts config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("posts config: logging format is invalid")
)

const (
	LoggingProviderConsole  = "console"
	LoggingProviderGoLogger = "gologger"
	LoggingProviderNone     = "none"
)

// Config aggregates the settings of the posts module.
type Config struct {
	// ContentDir is the root holding one directory per category.
	ContentDir string         `yaml:"content_dir"`
	Markdown   MarkdownConfig `yaml:"markdown"`
	Excerpt    ExcerptConfig  `yaml:"excerpt"`
	Cache      CacheConfig    `yaml:"cache"`
	Logging    LoggingConfig  `yaml:"logging"`
}

// MarkdownConfig captures Markdown rendering behaviour.
type MarkdownConfig struct {
	Parser MarkdownParserConfig `yaml:"parser"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for configuration files.
type MarkdownParserConfig struct {
	Extensions []string `yaml:"extensions"`
	Sanitize   bool     `yaml:"sanitize"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// ExcerptConfig controls the excerpt derived when front-matter has none.
type ExcerptConfig struct {
	// Length is counted in characters, not bytes.
	Length int    `yaml:"length"`
	Suffix string `yaml:"suffix"`
}

// CacheConfig controls the read-through document cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the settings that reproduce the blog's behaviour:
// posts/ as content root, 200 character excerpts ending in "...", raw HTML
// passthrough and no caching.
func DefaultConfig() Config {
	return Config{
		ContentDir: "posts",
		Excerpt: ExcerptConfig{
			Length: 200,
			Suffix: "...",
		},
		Cache: CacheConfig{
			Enabled:  false,
			Capacity: 1024,
			TTL:      10 * time.Minute,
		},
		Logging: LoggingConfig{
			Provider: LoggingProviderConsole,
			Level:    "info",
		},
	}
}

// Validate checks the configuration and returns one of the package
// sentinel errors, wrapped with detail, on the first problem found.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if err := validation.Validate(cfg.Excerpt.Length, validation.Required, validation.Min(1)); err != nil {
		return fmt.Errorf("%w: %v", ErrExcerptLengthInvalid, err)
	}
	if cfg.Cache.Enabled {
		if err := validation.Validate(cfg.Cache.Capacity, validation.Required, validation.Min(1)); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheCapacityInvalid, err)
		}
		if err := validation.Validate(cfg.Cache.TTL, validation.Required, validation.Min(time.Nanosecond)); err != nil {
			return fmt.Errorf("%w: %v", ErrCacheTTLInvalid, err)
		}
	}
	return cfg.Logging.validate()
}

func (cfg LoggingConfig) validate() error {
	provider := NormalizeProvider(cfg.Provider)
	if err := validation.Validate(provider, validation.Required,
		validation.In(LoggingProviderConsole, LoggingProviderGoLogger, LoggingProviderNone)); err != nil {
		return fmt.Errorf("%w: %q", ErrLoggingProviderUnknown, cfg.Provider)
	}

	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if err := validation.Validate(level,
		validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")); err != nil {
		return fmt.Errorf("%w: %q", ErrLoggingLevelInvalid, cfg.Level)
	}

	if provider == LoggingProviderGoLogger {
		format := strings.ToLower(strings.TrimSpace(cfg.Format))
		if err := validation.Validate(format, validation.In("json", "console", "pretty")); err != nil {
			return fmt.Errorf("%w: %q", ErrLoggingFormatInvalid, cfg.Format)
		}
	}
	return nil
}

// NormalizeProvider lower-cases and trims a provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
