package segment

import (
	"fmt"
	"sort"

	"github.com/dgallion1/webseg/internal/markup"
)

// finalize sorts sections into reading order, assigns sequential ids,
// extracts each section's markup snippet from the raw page text and
// pulls bounded image/link references from it. When a snippet is found,
// the size estimate is recomputed from its actual length; otherwise the
// geometric estimate stands.
func finalize(sections []Section, rawHTML string, ext markup.SnippetExtractor) []Chunk {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rect.Y != sorted[j].Rect.Y {
			return sorted[i].Rect.Y < sorted[j].Rect.Y
		}
		return sorted[i].Rect.X < sorted[j].Rect.X
	})

	chunks := make([]Chunk, 0, len(sorted))
	for i, sec := range sorted {
		html := ext.Extract(rawHTML, markup.SectionRef{
			Tag:     sec.Tag,
			ID:      sec.ID,
			Classes: sec.Classes,
		})

		estimate := sec.SizeEstimate
		if html != "" {
			estimate = len(html) / 4
		}

		chunks = append(chunks, Chunk{
			ID:           fmt.Sprintf("section-%d", i+1),
			Name:         fmt.Sprintf("section_%d", i+1),
			Type:         "section",
			Selector:     sec.Selector,
			Rect:         sec.Rect,
			Styles:       sec.Styles,
			HTML:         html,
			SizeEstimate: estimate,
			Images:       markup.Images(html),
			Links:        markup.Links(html),
		})
	}
	return chunks
}
