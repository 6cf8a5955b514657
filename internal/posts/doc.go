// Package posts indexes a content root of Markdown posts laid out as
// {root}/{category}/YYYY-MM-DD-<slug>.md and answers read-only queries over
// it. Every query reads the filesystem afresh; failures degrade to empty
// results or "not found" and are reported only through the logger.
package posts
