package drafts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resellops/resell-sync/internal/ebay"
)

func sampleItem() *ebay.Item {
	return &ebay.Item{
		ItemID:      "166123456789",
		Title:       "Vintage Levi's 501 Jeans 32x30",
		Description: "Classic straight fit.\nNo stains or holes.",
		Price:       "45.00",
		Currency:    "USD",
		Category:    "Jeans",
		Condition:   "Pre-owned",
		Brand:       "Levi's",
		Specifics: map[string]string{
			"Brand":    "Levi's",
			"Size":     "32x30",
			"Color":    "Blue",
			"Style":    "Straight",
			"Material": "Denim",
		},
		PictureURLs: []string{
			"https://i.ebayimg.com/1.jpg",
			"https://i.ebayimg.com/2.jpg",
		},
	}
}

func TestBuildDepop(t *testing.T) {
	t.Parallel()

	draft := BuildDepop(sampleItem())

	assert.Contains(t, draft, "=== DEPOP DRAFT ===")
	assert.Contains(t, draft, "Title: Vintage Levi's 501 Jeans 32x30")
	assert.Contains(t, draft, "Price: 45.00")
	assert.Contains(t, draft, "Classic straight fit.")
	assert.Contains(t, draft, "#levis")
	assert.Contains(t, draft, "#blue")
	assert.Contains(t, draft, "#32x30")
	assert.Contains(t, draft, "1. https://i.ebayimg.com/1.jpg")
	assert.Contains(t, draft, "- Material: Denim")
}

func TestBuildDepop_LongTitleTruncated(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	item.Title = strings.Repeat("very long title ", 20)

	draft := BuildDepop(item)

	for _, line := range strings.Split(draft, "\n") {
		if title, ok := strings.CutPrefix(line, "Title: "); ok {
			assert.LessOrEqual(t, len(title), maxTitleLen)
			return
		}
	}
	t.Fatal("no title line in draft")
}

func TestBuildDepop_LongDescriptionShortened(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	item.Description = strings.Repeat("word ", 300)

	draft := BuildDepop(item)

	assert.Contains(t, draft, "…")
	// The truncated description never splits a word.
	assert.NotContains(t, draft, "wor…")
}

func TestBuildDepop_PhotoLimit(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	item.PictureURLs = nil
	for i := 0; i < 12; i++ {
		item.PictureURLs = append(item.PictureURLs, fmt.Sprintf("https://i.ebayimg.com/%d.jpg", i))
	}

	draft := BuildDepop(item)

	assert.Contains(t, draft, "8. ")
	assert.NotContains(t, draft, "9. ")
}

func TestBuildDepop_NoSpecificsNoHashtags(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	item.Specifics = map[string]string{}

	draft := BuildDepop(item)

	assert.NotContains(t, draft, "Suggested hashtags")
	assert.NotContains(t, draft, "#")
}

func TestBuildPoshmark(t *testing.T) {
	t.Parallel()

	draft := BuildPoshmark(sampleItem())

	assert.Contains(t, draft, "=== POSHMARK DRAFT ===")
	assert.Contains(t, draft, "- Brand: Levi's")
	assert.Contains(t, draft, "- Size: 32x30")
	assert.Contains(t, draft, "- Color: Blue")
	assert.Contains(t, draft, "- Material: Denim")
	assert.Contains(t, draft, "No stains or holes.")
}

func TestBuildPoshmark_WaistSizeFallback(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	delete(item.Specifics, "Size")
	item.Specifics["Waist Size"] = "32"

	draft := BuildPoshmark(item)

	assert.Contains(t, draft, "- Size: 32")
}

func TestBuildPoshmark_BrandFallsBackToItemBrand(t *testing.T) {
	t.Parallel()

	item := sampleItem()
	delete(item.Specifics, "Brand")
	item.Brand = "Wrangler"

	draft := BuildPoshmark(item)

	assert.Contains(t, draft, "- Brand: Wrangler")
}

func TestHashtags_Limit(t *testing.T) {
	t.Parallel()

	// Only four specifics feed hashtags, so the cap needs all four set.
	tags := hashtags(map[string]string{
		"Brand": "A B", "Color": "Multi-Color", "Size": "XL", "Style": "Y2K",
	})

	assert.Equal(t, "#ab #multicolor #xl #y2k", tags)
}

func TestShorten_ExactFit(t *testing.T) {
	t.Parallel()

	s := strings.Repeat("a", 550)
	assert.Equal(t, s, shorten(s, 550))
}
