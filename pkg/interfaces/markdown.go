package interfaces

import "time"

// MarkdownParser converts Markdown bytes into HTML.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering. Sanitize and SafeMode both
// suppress raw HTML passthrough; leaving them unset keeps author-supplied
// HTML intact.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document is a Markdown file split into its front-matter and body.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	Size         int64
}

// FrontMatter holds the recognised post keys. Date is kept as the
// YYYY-MM-DD string the author wrote, even when YAML decoded it as a
// timestamp. Keys outside the recognised set land in Custom.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Date    string         `yaml:"date" json:"date"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Excerpt string         `yaml:"excerpt" json:"excerpt"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
}
