package posts

import (
	"io/fs"
	"os"

	"github.com/goliatone/go-posts/internal/logging"
	"github.com/goliatone/go-posts/internal/logging/console"
	"github.com/goliatone/go-posts/internal/logging/gologger"
	"github.com/goliatone/go-posts/internal/markdown"
	postindex "github.com/goliatone/go-posts/internal/posts"
	"github.com/goliatone/go-posts/internal/runtimeconfig"
	"github.com/goliatone/go-posts/pkg/interfaces"
)

// Index exports the content index contract.
type Index = interfaces.PostIndex

// PostMetadata exports the post metadata DTO.
type PostMetadata = interfaces.PostMetadata

// Post exports the full post DTO.
type Post = interfaces.Post

// PostPath exports the (category, slug) pair used for static generation.
type PostPath = interfaces.PostPath

// CategorySummary exports the category/count pair.
type CategorySummary = interfaces.CategorySummary

// Module is the top level façade wiring configuration, logging, Markdown
// rendering and the content index.
type Module struct {
	config         Config
	index          *postindex.Service
	cache          *postindex.DocumentCache
	loggerProvider interfaces.LoggerProvider
}

// Option overrides a dependency that New would otherwise build from Config.
type Option func(*moduleOptions)

type moduleOptions struct {
	filesystem     fs.FS
	parser         interfaces.MarkdownParser
	loggerProvider interfaces.LoggerProvider
}

// WithFS serves posts from filesystem instead of os.DirFS(cfg.ContentDir).
func WithFS(filesystem fs.FS) Option {
	return func(o *moduleOptions) {
		o.filesystem = filesystem
	}
}

// WithParser replaces the goldmark renderer.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		o.parser = parser
	}
}

// WithLoggerProvider replaces the provider selected by cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.loggerProvider = provider
	}
}

// New validates cfg and builds the module. Configuration errors are the
// only errors it returns; a missing content directory is not one of them,
// since queries against it simply come back empty.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options moduleOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.loggerProvider
	if provider == nil {
		built, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	filesystem := options.filesystem
	if filesystem == nil {
		if _, err := os.Stat(cfg.ContentDir); err != nil {
			logging.IndexLogger(provider).Warn("posts.content_dir.unavailable",
				"content_dir", cfg.ContentDir,
				"error", err,
			)
		}
		filesystem = os.DirFS(cfg.ContentDir)
	}

	parser := options.parser
	if parser == nil {
		parseOpts := parseOptions(cfg.Markdown.Parser)
		parser = markdown.NewGoldmarkParser(parseOpts)
		logging.MarkdownLogger(provider).Debug("posts.markdown.parser",
			"extensions", parseOpts.Extensions,
			"sanitize", parseOpts.Sanitize,
			"safe_mode", parseOpts.SafeMode,
		)
	}

	var cache *postindex.DocumentCache
	if cfg.Cache.Enabled {
		cache = postindex.NewDocumentCache(cfg.Cache.Capacity, cfg.Cache.TTL)
	}

	index := postindex.NewService(filesystem, parser,
		postindex.WithLogger(logging.IndexLogger(provider)),
		postindex.WithExcerpt(cfg.Excerpt.Length, cfg.Excerpt.Suffix),
		postindex.WithCache(cache),
	)

	return &Module{
		config:         cfg,
		index:          index,
		cache:          cache,
		loggerProvider: provider,
	}, nil
}

// Index returns the content index.
func (m *Module) Index() Index {
	return m.index
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// LoggerProvider returns the provider used for module loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.loggerProvider
}

// CachedDocuments reports how many parsed documents the cache holds; zero
// when caching is disabled.
func (m *Module) CachedDocuments() int {
	return m.cache.Len()
}

func parseOptions(cfg MarkdownParserConfig) interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), cfg.Extensions...),
		Sanitize:   cfg.Sanitize,
		HardWraps:  cfg.HardWraps,
		SafeMode:   cfg.SafeMode,
	}
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case LoggingProviderGoLogger:
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case LoggingProviderNone:
		return nil, nil
	default:
		level, ok := console.ParseLevel(cfg.Level)
		if !ok {
			level = console.LevelInfo
		}
		return console.NewProvider(console.Options{
			Writer:   os.Stderr,
			MinLevel: &level,
		}), nil
	}
}
