package interfaces

import "context"

// PostMetadata describes a post without its rendered body. Fields missing
// from front-matter are filled from the filename: Title falls back to the
// slug, Date to the filename date prefix, Excerpt to the opening of the
// body.
type PostMetadata struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Excerpt  string   `json:"excerpt"`
}

// Post is a single post with its body rendered to HTML.
type Post struct {
	PostMetadata
	Content string `json:"content"`
}

// PostPath identifies a post page for static generation.
type PostPath struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

// CategorySummary pairs a category with the number of posts it holds.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PostIndex answers read-only queries over a content root laid out as
// {root}/{category}/YYYY-MM-DD-<slug>.md. Implementations never return
// errors: a missing directory yields an empty result and a missing or
// unreadable post yields (nil, false).
type PostIndex interface {
	ListCategories(ctx context.Context) []string
	ListCategorySummaries(ctx context.Context) []CategorySummary
	ListPostsInCategory(ctx context.Context, category string) []PostMetadata
	ListAllPosts(ctx context.Context) []PostMetadata
	ListPostsByTag(ctx context.Context, tag string) []PostMetadata
	ListAllTags(ctx context.Context) []string
	GetPost(ctx context.Context, category, slug string) (*Post, bool)
	ListAllPostPaths(ctx context.Context) []PostPath
}
