package posts_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	posts "github.com/goliatone/go-posts"
	"github.com/goliatone/go-posts/internal/logging/console"
	"github.com/goliatone/go-posts/pkg/interfaces"
)

var _ func(*posts.Module) posts.Index = (*posts.Module).Index
var _ interfaces.PostIndex = (posts.Index)(nil)

func quietConfig() posts.Config {
	cfg := posts.DefaultConfig()
	cfg.Logging.Provider = posts.LoggingProviderNone
	return cfg
}

func writePost(t *testing.T, root, category, name, body string) {
	t.Helper()
	dir := filepath.Join(root, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Excerpt.Length = 0

	if _, err := posts.New(cfg); !errors.Is(err, posts.ErrExcerptLengthInvalid) {
		t.Fatalf("expected ErrExcerptLengthInvalid, got %v", err)
	}
}

func TestNewServesContentDir(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "notes", "2025-10-01-hello.md", "---\ntitle: X\ndate: \"2025-10-01\"\ntags: [a, b]\n---\nHello\n")
	writePost(t, root, "notes", "2025-09-01-older.md", "Older post body\n")

	cfg := quietConfig()
	cfg.ContentDir = root

	module, err := posts.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	ctx := context.Background()
	index := module.Index()

	if got := index.ListCategories(ctx); strings.Join(got, ",") != "notes" {
		t.Fatalf("expected [notes], got %v", got)
	}

	list := index.ListPostsInCategory(ctx, "notes")
	if len(list) != 2 || list[0].Slug != "hello" || list[1].Slug != "older" {
		t.Fatalf("unexpected listing %#v", list)
	}
	if list[1].Title != "older" || list[1].Date != "2025-09-01" || list[1].Excerpt != "Older post body ..." {
		t.Fatalf("expected filename fallbacks, got %#v", list[1])
	}

	post, ok := index.GetPost(ctx, "notes", "hello")
	if !ok {
		t.Fatal("expected post")
	}
	if post.Title != "X" || post.Content != "<p>Hello</p>\n" {
		t.Fatalf("unexpected post %#v", post)
	}
	if module.Config().ContentDir != root {
		t.Fatalf("expected config to be retained")
	}
}

func TestNewToleratesMissingContentDir(t *testing.T) {
	var buf bytes.Buffer
	level := console.LevelDebug
	provider := console.NewProvider(console.Options{Writer: &buf, MinLevel: &level})

	cfg := posts.DefaultConfig()
	cfg.ContentDir = filepath.Join(t.TempDir(), "missing")

	module, err := posts.New(cfg, posts.WithLoggerProvider(provider))
	if err != nil {
		t.Fatalf("expected missing content dir to be accepted, got %v", err)
	}
	if !strings.Contains(buf.String(), "posts.content_dir.unavailable") {
		t.Fatalf("expected a warning about the content dir, got %q", buf.String())
	}

	ctx := context.Background()
	if got := module.Index().ListAllPosts(ctx); len(got) != 0 {
		t.Fatalf("expected no posts, got %#v", got)
	}
	if _, ok := module.Index().GetPost(ctx, "notes", "hello"); ok {
		t.Fatal("expected not found")
	}
}

func TestNewWithFSAndCache(t *testing.T) {
	fsys := fstest.MapFS{
		"diary/2025-03-15-spring.md": {Data: []byte("---\ntitle: Spring\n---\nIt is spring.\n")},
		"diary/2025-03-16-summer.md": {Data: []byte("Warm.\n")},
	}

	cfg := quietConfig()
	cfg.Cache.Enabled = true

	module, err := posts.New(cfg, posts.WithFS(fsys))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if got := module.Index().ListAllPostPaths(context.Background()); len(got) != 2 {
		t.Fatalf("expected 2 paths, got %#v", got)
	}
	if module.CachedDocuments() != 2 {
		t.Fatalf("expected 2 cached documents, got %d", module.CachedDocuments())
	}
}

func TestNewWithoutCacheReportsZeroDocuments(t *testing.T) {
	module, err := posts.New(quietConfig(), posts.WithFS(fstest.MapFS{
		"notes/2025-01-01-a.md": {Data: []byte("a\n")},
	}))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	module.Index().ListAllPosts(context.Background())
	if module.CachedDocuments() != 0 {
		t.Fatalf("expected no cached documents, got %d", module.CachedDocuments())
	}
}

func TestNewAppliesParserConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"notes/2025-01-01-raw.md": {Data: []byte("Some <b>bold</b> text\n")},
	}

	module, err := posts.New(quietConfig(), posts.WithFS(fsys))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	post, ok := module.Index().GetPost(context.Background(), "notes", "raw")
	if !ok || !strings.Contains(post.Content, "<b>bold</b>") {
		t.Fatalf("expected raw HTML passthrough by default, got %#v", post)
	}

	cfg := quietConfig()
	cfg.Markdown.Parser.Sanitize = true
	module, err = posts.New(cfg, posts.WithFS(fsys))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	post, ok = module.Index().GetPost(context.Background(), "notes", "raw")
	if !ok || strings.Contains(post.Content, "<b>") {
		t.Fatalf("expected raw HTML to be omitted when sanitizing, got %#v", post)
	}
}

type stubParser struct{}

func (stubParser) Parse(markdown []byte) ([]byte, error) {
	return []byte("stub"), nil
}

func (stubParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return []byte("stub"), nil
}

func TestNewWithParserOverride(t *testing.T) {
	module, err := posts.New(quietConfig(),
		posts.WithFS(fstest.MapFS{"notes/2025-01-01-a.md": {Data: []byte("# A\n")}}),
		posts.WithParser(stubParser{}),
	)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	post, ok := module.Index().GetPost(context.Background(), "notes", "a")
	if !ok || post.Content != "stub" {
		t.Fatalf("expected stub parser output, got %#v", post)
	}
}

func TestNewGoLoggerProvider(t *testing.T) {
	cfg := posts.DefaultConfig()
	cfg.Logging.Provider = posts.LoggingProviderGoLogger
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "error"

	module, err := posts.New(cfg, posts.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	if module.LoggerProvider() == nil {
		t.Fatal("expected a go-logger provider")
	}
}
