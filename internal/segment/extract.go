package segment

import (
	"strings"

	"github.com/dgallion1/webseg/internal/page"
)

// extractSections walks the element tree and returns the initial flat
// list of disjoint section candidates. Valid nodes become leaves of the
// output; recursion never continues below an emitted section, so no
// emitted section is a descendant of another.
func extractSections(root *page.Element, pageWidth, pageHeight float64, cfg Config) []Section {
	minWidth := pageWidth * cfg.MinWidthRatio

	isValid := func(el *page.Element) bool {
		if skipTags[strings.ToLower(el.Tag)] {
			return false
		}
		if el.Rect.Height < cfg.MinSectionHeight {
			return false
		}
		// Narrow elements still qualify when content-heavy.
		if el.Rect.Width < minWidth && sizeUnits(el) < 1000 {
			return false
		}
		return true
	}

	var fromNode func(el *page.Element) []Section
	fromNode = func(el *page.Element) []Section {
		if skipTags[strings.ToLower(el.Tag)] {
			return nil
		}
		if !isValid(el) {
			var out []Section
			for _, child := range el.Children {
				out = append(out, fromNode(child)...)
			}
			return out
		}
		if sizeUnits(el) < cfg.MinSizeUnits {
			// Too small to matter; drop without recursing.
			return nil
		}
		return []Section{newSection(el)}
	}

	var sections []Section
	for _, node := range unwrapMainContent(root, pageWidth, pageHeight) {
		sections = append(sections, fromNode(node)...)
	}
	return sections
}

// unwrapMainContent descends through html/body and any div covering at
// least 90% of both page dimensions. Full-bleed layout wrappers would
// otherwise swallow the whole page into a single section.
func unwrapMainContent(el *page.Element, pageWidth, pageHeight float64) []*page.Element {
	tag := strings.ToLower(el.Tag)

	if tag == "html" || tag == "body" {
		var out []*page.Element
		for _, child := range el.Children {
			out = append(out, unwrapMainContent(child, pageWidth, pageHeight)...)
		}
		return out
	}

	if tag == "div" && el.Rect.Width >= pageWidth*0.9 && el.Rect.Height >= pageHeight*0.9 {
		var out []*page.Element
		for _, child := range el.Children {
			out = append(out, unwrapMainContent(child, pageWidth, pageHeight)...)
		}
		if len(out) > 0 {
			return out
		}
	}

	return []*page.Element{el}
}
