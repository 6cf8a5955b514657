package posts

import (
	"context"
	"io/fs"
	"net/url"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/goliatone/go-posts/internal/logging"
	"github.com/goliatone/go-posts/internal/markdown"
	"github.com/goliatone/go-posts/pkg/interfaces"
)

const (
	defaultExcerptLength = 200
	defaultExcerptSuffix = "..."
)

// Service implements interfaces.PostIndex over an fs.FS rooted at the
// content directory.
type Service struct {
	fs            fs.FS
	parser        interfaces.MarkdownParser
	parseOptions  interfaces.ParseOptions
	excerptLength int
	excerptSuffix string
	cache         *DocumentCache
	logger        interfaces.Logger
}

var _ interfaces.PostIndex = (*Service)(nil)

// Option customises a Service.
type Option func(*Service)

// WithLogger sets the diagnostic logger. Failures that the queries swallow
// are reported here.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCache enables the read-through document cache.
func WithCache(cache *DocumentCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithExcerpt overrides the fallback excerpt length (in characters) and
// the suffix appended to it. Non-positive lengths are ignored.
func WithExcerpt(length int, suffix string) Option {
	return func(s *Service) {
		if length > 0 {
			s.excerptLength = length
		}
		s.excerptSuffix = suffix
	}
}

// WithParseOptions sets the options passed to the parser on every render.
func WithParseOptions(opts interfaces.ParseOptions) Option {
	return func(s *Service) {
		s.parseOptions = opts
	}
}

// NewService builds an index over filesystem. A nil parser selects goldmark
// with GFM and raw HTML passthrough.
func NewService(filesystem fs.FS, parser interfaces.MarkdownParser, opts ...Option) *Service {
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}
	s := &Service{
		fs:            filesystem,
		parser:        parser,
		excerptLength: defaultExcerptLength,
		excerptSuffix: defaultExcerptSuffix,
		logger:        logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ListCategories returns the names of the top-level directories, in
// name order. A missing or unreadable root yields an empty list.
func (s *Service) ListCategories(ctx context.Context) []string {
	log := s.log(ctx)
	if err := ctx.Err(); err != nil {
		log.Debug("posts.categories.cancelled", "error", err)
		return []string{}
	}

	entries, err := fs.ReadDir(s.fs, ".")
	if err != nil {
		log.Debug("posts.root.unavailable", "error", wrapReadError(err))
		return []string{}
	}

	categories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.isDir(entry.Name(), entry) {
			categories = append(categories, entry.Name())
		}
	}
	return categories
}

// ListCategorySummaries returns every category with its post count.
func (s *Service) ListCategorySummaries(ctx context.Context) []interfaces.CategorySummary {
	categories := s.ListCategories(ctx)
	summaries := make([]interfaces.CategorySummary, 0, len(categories))
	for _, category := range categories {
		summaries = append(summaries, interfaces.CategorySummary{
			Name:  category,
			Count: len(s.ListPostsInCategory(ctx, category)),
		})
	}
	return summaries
}

// ListPostsInCategory returns the metadata of the .md files directly in
// the category directory, newest first. Files that cannot be read or
// parsed are logged and left out.
func (s *Service) ListPostsInCategory(ctx context.Context, category string) []interfaces.PostMetadata {
	log := logging.WithPostContext(s.log(ctx), category, "", "")
	if err := ctx.Err(); err != nil {
		log.Debug("posts.category.cancelled", "error", err)
		return []interfaces.PostMetadata{}
	}

	dir, ok := categoryDir(category)
	if !ok {
		log.Debug("posts.category.invalid")
		return []interfaces.PostMetadata{}
	}

	entries, err := fs.ReadDir(s.fs, dir)
	if err != nil {
		log.Debug("posts.category.unavailable", "error", wrapReadError(err))
		return []interfaces.PostMetadata{}
	}

	posts := make([]interfaces.PostMetadata, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		filePath := path.Join(dir, name)
		if !isMarkdownFile(name) || s.isDir(filePath, entry) {
			continue
		}
		if err := ctx.Err(); err != nil {
			log.Debug("posts.category.cancelled", "error", err)
			return []interfaces.PostMetadata{}
		}

		doc, err := s.loadDocument(filePath)
		if err != nil {
			logging.WithPostContext(log, "", "", filePath).Warn("posts.document.skipped", "error", err)
			continue
		}
		posts = append(posts, s.metadata(category, name, doc))
	}

	sortPosts(posts)
	return posts
}

// ListAllPosts returns the posts of every category, newest first.
func (s *Service) ListAllPosts(ctx context.Context) []interfaces.PostMetadata {
	var posts []interfaces.PostMetadata
	for _, category := range s.ListCategories(ctx) {
		posts = append(posts, s.ListPostsInCategory(ctx, category)...)
	}
	if posts == nil {
		return []interfaces.PostMetadata{}
	}
	sortPosts(posts)
	return posts
}

// ListPostsByTag returns the posts carrying tag. Matching is exact and
// case-sensitive.
func (s *Service) ListPostsByTag(ctx context.Context, tag string) []interfaces.PostMetadata {
	all := s.ListAllPosts(ctx)
	tagged := make([]interfaces.PostMetadata, 0, len(all))
	for _, post := range all {
		if slices.Contains(post.Tags, tag) {
			tagged = append(tagged, post)
		}
	}
	return tagged
}

// ListAllTags returns every distinct tag in ascending order.
func (s *Service) ListAllTags(ctx context.Context) []string {
	seen := map[string]struct{}{}
	tags := []string{}
	for _, post := range s.ListAllPosts(ctx) {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// GetPost returns the post in category whose slug equals the URL-decoded
// slug, with its body rendered to HTML. It reports false when the post or
// category does not exist and when anything goes wrong on the way; those
// failures are logged.
func (s *Service) GetPost(ctx context.Context, category, slug string) (*interfaces.Post, bool) {
	log := logging.WithPostContext(s.log(ctx), category, slug, "")
	if err := ctx.Err(); err != nil {
		log.Debug("posts.get.cancelled", "error", err)
		return nil, false
	}

	decoded, err := url.PathUnescape(slug)
	if err != nil {
		log.Error("posts.get.failed", "error", wrapSlugError(err))
		return nil, false
	}

	dir, ok := categoryDir(category)
	if !ok {
		log.Debug("posts.get.not_found", "reason", "invalid category")
		return nil, false
	}

	entries, err := fs.ReadDir(s.fs, dir)
	if err != nil {
		log.Debug("posts.get.not_found", "error", wrapReadError(err))
		return nil, false
	}

	for _, entry := range entries {
		name := entry.Name()
		filePath := path.Join(dir, name)
		if !isMarkdownFile(name) || ExtractSlug(name) != decoded || s.isDir(filePath, entry) {
			continue
		}

		fileLog := logging.WithPostContext(log, "", "", filePath)
		doc, err := s.loadDocument(filePath)
		if err != nil {
			fileLog.Error("posts.get.failed", "error", err)
			return nil, false
		}
		html, err := s.render(doc)
		if err != nil {
			fileLog.Error("posts.get.failed", "error", err)
			return nil, false
		}

		return &interfaces.Post{
			PostMetadata: s.metadata(category, name, doc),
			Content:      string(html),
		}, true
	}

	log.Debug("posts.get.not_found")
	return nil, false
}

// ListAllPostPaths returns the (category, slug) pair of every post, in
// category order and newest first within a category.
func (s *Service) ListAllPostPaths(ctx context.Context) []interfaces.PostPath {
	paths := []interfaces.PostPath{}
	for _, category := range s.ListCategories(ctx) {
		for _, post := range s.ListPostsInCategory(ctx, category) {
			paths = append(paths, interfaces.PostPath{
				Category: category,
				Slug:     post.Slug,
			})
		}
	}
	return paths
}

func (s *Service) loadDocument(filePath string) (*interfaces.Document, error) {
	info, err := fs.Stat(s.fs, filePath)
	if err != nil {
		return nil, wrapReadError(err)
	}
	if doc, ok := s.cache.lookup(filePath, info); ok {
		return doc, nil
	}

	data, err := fs.ReadFile(s.fs, filePath)
	if err != nil {
		return nil, wrapReadError(err)
	}
	doc, err := markdown.BuildDocument(filePath, data, info.ModTime(), info.Size())
	if err != nil {
		return nil, wrapFrontMatterError(err)
	}
	s.cache.store(doc)
	return doc, nil
}

func (s *Service) render(doc *interfaces.Document) ([]byte, error) {
	if len(doc.BodyHTML) > 0 {
		return doc.BodyHTML, nil
	}
	html, err := s.parser.ParseWithOptions(doc.Body, s.parseOptions)
	if err != nil {
		return nil, wrapRenderError(err)
	}
	if s.cache != nil {
		rendered := *doc
		rendered.BodyHTML = html
		s.cache.store(&rendered)
	}
	return html, nil
}

func (s *Service) metadata(category, filename string, doc *interfaces.Document) interfaces.PostMetadata {
	slug := ExtractSlug(filename)
	fm := doc.FrontMatter

	title := fm.Title
	if title == "" {
		title = slug
	}

	date := fm.Date
	if date == "" {
		date, _ = ExtractDate(filename)
	}

	excerpt := fm.Excerpt
	if excerpt == "" {
		excerpt = s.excerpt(doc.Body)
	}

	return interfaces.PostMetadata{
		Slug:     slug,
		Title:    title,
		Date:     date,
		Category: category,
		Tags:     append([]string{}, fm.Tags...),
		Excerpt:  excerpt,
	}
}

// excerpt takes the first excerptLength characters of the raw Markdown,
// turns newlines into spaces and appends the suffix whether or not the
// body was cut.
func (s *Service) excerpt(body []byte) string {
	head := truncateRunes(string(body), s.excerptLength)
	return strings.ReplaceAll(head, "\n", " ") + s.excerptSuffix
}

func truncateRunes(value string, n int) string {
	count := 0
	for i := range value {
		if count == n {
			return value[:i]
		}
		count++
	}
	return value
}

// isDir follows symlinks so a linked category directory still counts.
func (s *Service) isDir(name string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(s.fs, name)
	return err == nil && info.IsDir()
}

func (s *Service) log(ctx context.Context) interfaces.Logger {
	return s.logger.WithContext(ctx)
}

// categoryDir accepts a single path element only; categories do not nest.
func categoryDir(category string) (string, bool) {
	if category == "" || category == "." || category == ".." {
		return "", false
	}
	if strings.ContainsAny(category, `/\`) || !fs.ValidPath(category) {
		return "", false
	}
	return category, true
}

// sortPosts orders by date descending using plain string comparison, which
// is chronological for zero-padded YYYY-MM-DD and puts undated posts last.
// Equal dates fall back to slug, then category, so the order does not
// depend on directory listing order.
func sortPosts(posts []interfaces.PostMetadata) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Slug != b.Slug {
			return a.Slug < b.Slug
		}
		return a.Category < b.Category
	})
}
