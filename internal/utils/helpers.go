package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"golang.org/x/net/html"
)

// Source names accepted by the -source flag
const (
	SourceHeadHunter = "hh"
	SourceSuperJob   = "superjob"
)

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	validSources := map[string]bool{
		SourceHeadHunter: true,
		SourceSuperJob:   true,
	}
	return validSources[strings.ToLower(source)]
}

// PlainText strips markup (e.g. <highlighttext> in hh.ru snippets) and
// collapses whitespace. Input that cannot be parsed is returned trimmed.
func PlainText(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return strings.Join(strings.Fields(markup), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}

	// Text nodes are joined with spaces so adjacent block elements don't glue
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Truncate shortens s to at most length runes, adding "..." when cut
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	if length <= 3 {
		return string(r[:length])
	}
	return string(r[:length-3]) + "..."
}

// FormatRubles formats an amount with thousands separators, e.g. "150,000 ₽"
func FormatRubles(amount int) string {
	return humanize.Comma(int64(amount)) + " ₽"
}

// SplitKeywords parses a comma separated keyword list, dropping blanks and
// repeated entries while keeping the original order.
func SplitKeywords(raw string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, part := range strings.Split(raw, ",") {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
