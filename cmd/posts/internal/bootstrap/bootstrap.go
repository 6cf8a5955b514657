package bootstrap

import (
	"fmt"
	"strings"

	posts "github.com/goliatone/go-posts"
	"github.com/goliatone/go-posts/internal/logging"
	"github.com/goliatone/go-posts/pkg/interfaces"
)

// Options captures the command line overrides applied over the
// configuration file (or the defaults when no file is given).
type Options struct {
	ConfigPath     string
	ContentDir     string
	LogProvider    string
	LogLevel       string
	LogFormat      string
	Cache          *bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the posts module and the CLI logger.
type Module struct {
	Module *posts.Module
	Index  posts.Index
	Logger interfaces.Logger
}

// BuildModule resolves configuration and constructs the posts module.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return nil, err
	}

	moduleOpts := []posts.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, posts.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := posts.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise posts module: %w", err)
	}

	return &Module{
		Module: module,
		Index:  module.Index(),
		Logger: logging.CLILogger(module.LoggerProvider()),
	}, nil
}

// ResolveConfig loads opts.ConfigPath when set and applies the non-empty
// overrides on top.
func ResolveConfig(opts Options) (posts.Config, error) {
	cfg := posts.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := posts.LoadConfig(path)
		if err != nil {
			return posts.Config{}, err
		}
		cfg = loaded
	}

	if dir := strings.TrimSpace(opts.ContentDir); dir != "" {
		cfg.ContentDir = dir
	}
	if provider := strings.TrimSpace(opts.LogProvider); provider != "" {
		cfg.Logging.Provider = provider
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}
	if opts.Cache != nil {
		cfg.Cache.Enabled = *opts.Cache
	}
	return cfg, nil
}
