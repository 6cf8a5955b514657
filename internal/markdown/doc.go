// Package markdown splits post files into front-matter and body and renders
// Markdown bodies to HTML with goldmark.
package markdown
