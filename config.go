package posts

import "github.com/goliatone/go-posts/internal/runtimeconfig"

type (
	Config               = runtimeconfig.Config
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	ExcerptConfig        = runtimeconfig.ExcerptConfig
	CacheConfig          = runtimeconfig.CacheConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

const (
	LoggingProviderConsole  = runtimeconfig.LoggingProviderConsole
	LoggingProviderGoLogger = runtimeconfig.LoggingProviderGoLogger
	LoggingProviderNone     = runtimeconfig.LoggingProviderNone
)

var (
	ErrContentDirRequired     = runtimeconfig.ErrContentDirRequired
	ErrExcerptLengthInvalid   = runtimeconfig.ErrExcerptLengthInvalid
	ErrCacheCapacityInvalid   = runtimeconfig.ErrCacheCapacityInvalid
	ErrCacheTTLInvalid        = runtimeconfig.ErrCacheTTLInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

// DefaultConfig returns the default module configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file over DefaultConfig. Call Validate, or pass
// the result to New, to check it.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
