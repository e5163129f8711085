// Package drafts renders copy/paste listing drafts for Depop and
// Poshmark from a fetched eBay item. Formatting is deliberately plain
// text; the operator pastes it into each marketplace's UI.
package drafts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/resellops/resell-sync/internal/ebay"
)

const (
	maxTitleLen       = 80
	maxDepopDescLen   = 550
	maxDepopPhotos    = 8
	maxPoshmarkPhotos = 16
	maxDepopHashtags  = 6
)

var reHashtagClean = regexp.MustCompile(`[^a-zA-Z0-9]`)

// BuildDepop renders a Depop draft. Depop listings run short: the
// description is truncated on a word boundary and specifics become
// hashtag suggestions.
func BuildDepop(item *ebay.Item) string {
	var b strings.Builder

	b.WriteString("=== DEPOP DRAFT ===\n")
	fmt.Fprintf(&b, "Title: %s\n", truncate(oneLine(item.Title), maxTitleLen))
	fmt.Fprintf(&b, "Price: %s\n\n", item.Price)

	b.WriteString("Description (copy/paste):\n")
	b.WriteString(shorten(strings.TrimSpace(item.Description), maxDepopDescLen))
	b.WriteString("\n")

	if tags := hashtags(item.Specifics); tags != "" {
		b.WriteString("\nSuggested hashtags:\n")
		b.WriteString(tags)
		b.WriteString("\n")
	}

	writePhotos(&b, item.PictureURLs, maxDepopPhotos)
	writeSpecifics(&b, item.Specifics)

	return strings.TrimSpace(b.String())
}

// BuildPoshmark renders a Poshmark draft with the structured fields
// Poshmark's form asks for.
func BuildPoshmark(item *ebay.Item) string {
	specs := item.Specifics
	size := specs["Size"]
	if size == "" {
		size = specs["Waist Size"]
	}
	brand := specs["Brand"]
	if brand == "" {
		brand = item.Brand
	}

	var b strings.Builder

	b.WriteString("=== POSHMARK DRAFT ===\n")
	fmt.Fprintf(&b, "Title: %s\n", truncate(oneLine(item.Title), maxTitleLen))
	fmt.Fprintf(&b, "Price: %s\n\n", item.Price)

	b.WriteString("Suggested fields:\n")
	fmt.Fprintf(&b, "- Brand: %s\n", brand)
	fmt.Fprintf(&b, "- Size: %s\n", size)
	fmt.Fprintf(&b, "- Color: %s\n", specs["Color"])
	fmt.Fprintf(&b, "- Style: %s\n", specs["Style"])
	fmt.Fprintf(&b, "- Material: %s\n", specs["Material"])
	fmt.Fprintf(&b, "- Department: %s\n\n", specs["Department"])

	b.WriteString("Description (copy/paste):\n")
	b.WriteString(strings.TrimSpace(item.Description))
	b.WriteString("\n")

	writePhotos(&b, item.PictureURLs, maxPoshmarkPhotos)
	writeSpecifics(&b, item.Specifics)

	return strings.TrimSpace(b.String())
}

// hashtags derives lowercase hashtags from the specifics Depop buyers
// actually search by. Nothing is invented; absent specifics yield no
// tags.
func hashtags(specs map[string]string) string {
	var tags []string
	for _, key := range []string{"Brand", "Color", "Size", "Style"} {
		v := specs[key]
		if v == "" {
			continue
		}
		cleaned := strings.ToLower(reHashtagClean.ReplaceAllString(v, ""))
		if cleaned == "" {
			continue
		}
		tags = append(tags, "#"+cleaned)
		if len(tags) == maxDepopHashtags {
			break
		}
	}
	return strings.Join(tags, " ")
}

func writePhotos(b *strings.Builder, urls []string, limit int) {
	if len(urls) > limit {
		urls = urls[:limit]
	}
	b.WriteString("\nPhotos (URLs):\n")
	for i, u := range urls {
		fmt.Fprintf(b, "%d. %s\n", i+1, u)
	}
}

func writeSpecifics(b *strings.Builder, specs map[string]string) {
	b.WriteString("\nItem specifics (reference):\n")
	for _, k := range sortedKeys(specs) {
		fmt.Fprintf(b, "- %s: %s\n", k, specs[k])
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// shorten truncates on a word boundary and appends an ellipsis.
func shorten(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n-10]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
