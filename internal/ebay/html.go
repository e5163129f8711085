package ebay

import (
	"regexp"
	"strings"
)

// Listing descriptions arrive as seller-authored HTML. We only need
// readable text for drafts and error messages, so a light scrub is
// enough; full HTML parsing is out of scope.
var (
	reLineBreaks = regexp.MustCompile(`(?i)<br\s*/?>|</p\s*>`)
	reTags       = regexp.MustCompile(`<[^>]+>`)
	reSpaces     = regexp.MustCompile(`[ \t]+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// stripHTML converts simple HTML into plain text: breaks become
// newlines, tags are dropped, common entities are decoded, whitespace
// is normalized.
func stripHTML(html string) string {
	text := reLineBreaks.ReplaceAllString(html, "\n")
	text = reTags.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = reSpaces.ReplaceAllString(text, " ")
	text = reBlankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// oneLine collapses all whitespace runs into single spaces.
func oneLine(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
