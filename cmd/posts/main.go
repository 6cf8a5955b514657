package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-posts/cmd/posts/internal/bootstrap"
	"github.com/goliatone/go-posts/internal/logging"
)

var moduleBuilder = bootstrap.BuildModule

var (
	errUsage        = errors.New("usage: posts [flags] <categories|summaries|list|tags|tag|show|paths> [command flags]")
	errPostNotFound = errors.New("post not found")
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("posts: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("posts", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	contentDir := fs.String("content-dir", "", "Content root holding one directory per category (overrides config)")
	logProvider := fs.String("log-provider", "", "Logger provider: console, gologger or none")
	logLevel := fs.String("log-level", "", "Minimum log level")
	logFormat := fs.String("log-format", "", "go-logger output format: json, console or pretty")
	cache := fs.Bool("cache", false, "Cache parsed documents between queries")

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	opts := bootstrap.Options{
		ConfigPath:  *configPath,
		ContentDir:  *contentDir,
		LogProvider: *logProvider,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cache" {
			opts.Cache = cache
		}
	})

	module, err := moduleBuilder(opts)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Index == nil {
		return fmt.Errorf("posts index not configured")
	}

	command, commandArgs := rest[0], rest[1:]
	ctx = logging.ContextWithFields(ctx, map[string]any{"command": command})
	module.Logger.WithContext(ctx).Debug("posts.cli.command", "args", commandArgs)

	index := module.Index
	switch command {
	case "categories":
		return writeJSON(out, index.ListCategories(ctx))
	case "summaries":
		return writeJSON(out, index.ListCategorySummaries(ctx))
	case "list":
		cmd := flag.NewFlagSet("list", flag.ContinueOnError)
		category := cmd.String("category", "", "Only list posts in this category")
		if err := cmd.Parse(commandArgs); err != nil {
			return err
		}
		if *category != "" {
			return writeJSON(out, index.ListPostsInCategory(ctx, *category))
		}
		return writeJSON(out, index.ListAllPosts(ctx))
	case "tags":
		return writeJSON(out, index.ListAllTags(ctx))
	case "tag":
		cmd := flag.NewFlagSet("tag", flag.ContinueOnError)
		name := cmd.String("name", "", "Tag to filter by (exact match)")
		if err := cmd.Parse(commandArgs); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("tag: -name is required")
		}
		return writeJSON(out, index.ListPostsByTag(ctx, *name))
	case "show":
		cmd := flag.NewFlagSet("show", flag.ContinueOnError)
		category := cmd.String("category", "", "Category of the post")
		slug := cmd.String("slug", "", "Slug of the post, URL-encoded or not")
		if err := cmd.Parse(commandArgs); err != nil {
			return err
		}
		if strings.TrimSpace(*category) == "" || strings.TrimSpace(*slug) == "" {
			return fmt.Errorf("show: -category and -slug are required")
		}
		post, ok := index.GetPost(ctx, *category, *slug)
		if !ok {
			return fmt.Errorf("%w: %s/%s", errPostNotFound, *category, *slug)
		}
		return writeJSON(out, post)
	case "paths":
		return writeJSON(out, index.ListAllPostPaths(ctx))
	default:
		return fmt.Errorf("unknown command %q: %w", command, errUsage)
	}
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
