package community

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PreviewLength is how many runes a feed preview may carry.
const PreviewLength = 160

// Preview extracts a plain-text preview from post content that may contain
// HTML: tags stripped, whitespace collapsed, truncated on a rune boundary
// with an ellipsis.
func Preview(content string, maxRunes int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse post content: %w", err)
	}
	// script/style text is never part of the readable body
	doc.Find("script, style").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	if maxRunes <= 0 {
		maxRunes = PreviewLength
	}

	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text, nil
	}
	return strings.TrimRight(string(runes[:maxRunes]), " ") + "…", nil
}

// NormalizeTags slugifies tags and drops duplicates and empties, keeping
// first-seen order.
func NormalizeTags(tags []string, slugify func(string) string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		slug := slugify(t)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}
