package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-posts/pkg/interfaces"
)

// DateLayout is the zero-padded calendar date format posts are sorted by.
const DateLayout = "2006-01-02"

// ParseFrontMatter splits source into its front-matter and Markdown body.
// Sources without a front-matter block return empty metadata and the whole
// input as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from a file's path, raw
// content, modification time and size. BodyHTML is left empty so callers
// render only when they need the full post.
func BuildDocument(path string, source []byte, modified time.Time, size int64) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
		Size:         size,
	}, nil
}

// frontMatterEnvelope decodes date and tags loosely: YAML turns a bare
// 2025-10-01 into a timestamp and authors write a lone tag as a scalar.
type frontMatterEnvelope struct {
	Title   string         `yaml:"title" toml:"title"`
	Date    any            `yaml:"date" toml:"date"`
	Tags    any            `yaml:"tags" toml:"tags"`
	Excerpt string         `yaml:"excerpt" toml:"excerpt"`
	Custom  map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	custom := make(map[string]any, len(env.Custom))
	for key, value := range env.Custom {
		custom[key] = value
	}

	return interfaces.FrontMatter{
		Title:   env.Title,
		Date:    normaliseDate(env.Date),
		Tags:    normaliseTags(env.Tags),
		Excerpt: env.Excerpt,
		Custom:  custom,
	}
}

func normaliseDate(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(DateLayout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

func normaliseTags(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		return []string{v}
	case []string:
		return append([]string{}, v...)
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			tags = append(tags, fmt.Sprint(item))
		}
		return tags
	default:
		return []string{fmt.Sprint(v)}
	}
}
