package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-posts/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Excerpt.Length != 200 || cfg.Excerpt.Suffix != "..." {
		t.Fatalf("unexpected excerpt defaults: %#v", cfg.Excerpt)
	}
	if cfg.Markdown.Parser.Sanitize || cfg.Markdown.Parser.SafeMode {
		t.Fatalf("expected raw HTML passthrough by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{
			name:   "blank content dir",
			mutate: func(cfg *runtimeconfig.Config) { cfg.ContentDir = "  " },
			want:   runtimeconfig.ErrContentDirRequired,
		},
		{
			name:   "zero excerpt length",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Excerpt.Length = 0 },
			want:   runtimeconfig.ErrExcerptLengthInvalid,
		},
		{
			name:   "negative excerpt length",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Excerpt.Length = -5 },
			want:   runtimeconfig.ErrExcerptLengthInvalid,
		},
		{
			name: "cache without capacity",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Cache.Enabled = true
				cfg.Cache.Capacity = 0
			},
			want: runtimeconfig.ErrCacheCapacityInvalid,
		},
		{
			name: "cache without ttl",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Cache.Enabled = true
				cfg.Cache.TTL = 0
			},
			want: runtimeconfig.ErrCacheTTLInvalid,
		},
		{
			name:   "unknown provider",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Provider = "syslog" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "missing provider",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Provider = "" },
			want:   runtimeconfig.ErrLoggingProviderUnknown,
		},
		{
			name:   "invalid level",
			mutate: func(cfg *runtimeconfig.Config) { cfg.Logging.Level = "verbose" },
			want:   runtimeconfig.ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(cfg *runtimeconfig.Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			want: runtimeconfig.ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidate_AllowsDisabledCacheWithoutCapacity(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Cache.Capacity = 0
	cfg.Cache.TTL = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_ConsoleIgnoresFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected console provider to ignore format, got %v", err)
	}
}

func TestDecodeOverlaysDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Decode(strings.NewReader(`
content_dir: content/posts
cache:
  enabled: true
  ttl: 30s
logging:
  provider: gologger
  format: pretty
markdown:
  parser:
    extensions: [gfm, footnote]
`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if cfg.ContentDir != "content/posts" {
		t.Fatalf("expected content dir override, got %q", cfg.ContentDir)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 30*time.Second || cfg.Cache.Capacity != 1024 {
		t.Fatalf("unexpected cache config: %#v", cfg.Cache)
	}
	if cfg.Excerpt.Length != 200 {
		t.Fatalf("expected excerpt default to survive, got %d", cfg.Excerpt.Length)
	}
	if len(cfg.Markdown.Parser.Extensions) != 2 {
		t.Fatalf("expected parser extensions, got %#v", cfg.Markdown.Parser.Extensions)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := runtimeconfig.Decode(strings.NewReader("content_dirr: x\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestDecodeEmptyInputKeepsDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.ContentDir != "posts" {
		t.Fatalf("expected default content dir, got %q", cfg.ContentDir)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.yaml")
	if err := os.WriteFile(path, []byte("excerpt:\n  length: 80\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Excerpt.Length != 80 || cfg.Excerpt.Suffix != "..." {
		t.Fatalf("unexpected excerpt config: %#v", cfg.Excerpt)
	}

	if _, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
