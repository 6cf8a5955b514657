package posts

import (
	"regexp"
	"strings"
)

const markdownExt = ".md"

var datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// ExtractDate returns the YYYY-MM-DD prefix of a post filename such as
// 2025-10-01-hello.md. The digits are not checked against the calendar.
func ExtractDate(filename string) (string, bool) {
	match := datePrefix.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractSlug strips the date prefix and the .md extension from filename.
// Either part may be absent.
func ExtractSlug(filename string) string {
	slug := filename
	if loc := datePrefix.FindStringIndex(slug); loc != nil {
		slug = slug[loc[1]:]
	}
	return strings.TrimSuffix(slug, markdownExt)
}

func isMarkdownFile(name string) bool {
	return strings.HasSuffix(name, markdownExt)
}
