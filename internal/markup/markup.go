// Package markup locates a section's markup inside the raw page text and
// pulls embedded media references out of it. Extraction is best-effort:
// a section whose identity cannot be recovered from flat markup yields
// an empty snippet, never an error.
package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// SectionRef identifies the element a snippet should be extracted for.
type SectionRef struct {
	Tag     string
	ID      string
	Classes []string
}

// Image is an embedded image reference.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Link is an embedded hyperlink reference.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// maxRefs caps how many images/links are extracted per snippet.
const maxRefs = 20

// SnippetExtractor recovers a section's markup from the raw page text.
// Implementations return "" when no match is found.
type SnippetExtractor interface {
	Extract(raw string, ref SectionRef) string
}

// ScanExtractor is the default extractor: a literal pattern search for
// the opening tag (by id, else by first class) followed by a depth-aware
// scan for the matching closing tag. No structural parse is involved.
type ScanExtractor struct{}

func (ScanExtractor) Extract(raw string, ref SectionRef) string {
	if raw == "" {
		return ""
	}
	tag := strings.ToLower(ref.Tag)
	if tag == "" {
		tag = "div"
	}

	if ref.ID != "" {
		pat := fmt.Sprintf(`(?i)<%s[^>]*id=["']?%s["']?[^>]*>`, regexp.QuoteMeta(tag), regexp.QuoteMeta(ref.ID))
		if snippet := extractAt(raw, tag, pat); snippet != "" {
			return snippet
		}
	}

	if cls := firstUsableClass(ref.Classes); cls != "" {
		pat := fmt.Sprintf(`(?i)<%s[^>]*class=["'][^"']*%s[^"']*["'][^>]*>`, regexp.QuoteMeta(tag), regexp.QuoteMeta(cls))
		if snippet := extractAt(raw, tag, pat); snippet != "" {
			return snippet
		}
	}

	return ""
}

func extractAt(raw, tag, pattern string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	loc := re.FindStringIndex(raw)
	if loc == nil {
		return ""
	}
	end := findClosingTag(raw, loc[1], tag)
	if end <= loc[0] {
		return ""
	}
	return raw[loc[0]:end]
}

// findClosingTag scans forward from just past an opening tag, tracking
// nesting depth of same-named tags, and returns the index one past the
// matching close tag. Falls back to len(html) when the markup is
// unbalanced.
func findClosingTag(html string, from int, tag string) int {
	lower := strings.ToLower(html)
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	depth := 0
	pos := from
	for pos < len(lower) {
		nextOpen := indexOpenTag(lower, openTag, pos)
		nextClose := strings.Index(lower[pos:], closeTag)
		if nextClose < 0 {
			return len(html)
		}
		nextClose += pos

		if nextOpen >= 0 && nextOpen < nextClose {
			depth++
			pos = nextOpen + len(openTag)
			continue
		}
		if depth == 0 {
			return nextClose + len(closeTag)
		}
		depth--
		pos = nextClose + len(closeTag)
	}
	return len(html)
}

// indexOpenTag finds "<tag" followed by a name boundary, so "<div" does
// not match "<divider".
func indexOpenTag(lower, openTag string, from int) int {
	for {
		i := strings.Index(lower[from:], openTag)
		if i < 0 {
			return -1
		}
		i += from
		next := i + len(openTag)
		if next >= len(lower) {
			return i
		}
		switch lower[next] {
		case ' ', '>', '/', '\t', '\n', '\r':
			return i
		}
		from = next
	}
}

func firstUsableClass(classes []string) string {
	for _, cls := range classes {
		if cls == "" {
			continue
		}
		if cls[0] >= '0' && cls[0] <= '9' {
			continue
		}
		return cls
	}
	return ""
}

var (
	imgPattern  = regexp.MustCompile(`(?i)<img[^>]*src=["']([^"']+)["'][^>]*?(?:alt=["']([^"']*)["'])?[^>]*>`)
	linkPattern = regexp.MustCompile(`(?i)<a[^>]*href=["']([^"']+)["'][^>]*>([^<]*)</a>`)
)

// Images extracts up to 20 image references from a markup snippet.
func Images(html string) []Image {
	images := []Image{}
	for _, m := range imgPattern.FindAllStringSubmatch(html, maxRefs) {
		images = append(images, Image{Src: m[1], Alt: m[2]})
	}
	return images
}

// Links extracts up to 20 hyperlink references from a markup snippet.
func Links(html string) []Link {
	links := []Link{}
	for _, m := range linkPattern.FindAllStringSubmatch(html, maxRefs) {
		links = append(links, Link{Href: m[1], Text: strings.TrimSpace(m[2])})
	}
	return links
}
