package segment

import (
	"strings"

	"github.com/dgallion1/webseg/internal/markup"
	"github.com/dgallion1/webseg/internal/page"
)

// Section is an intermediate candidate region of the page. Sections are
// created, reshaped and dropped entirely inside the pipeline; only
// finalized Chunks escape.
type Section struct {
	Tag      string
	ID       string
	Classes  []string
	Selector string
	Rect     page.Rect
	Styles   page.Styles

	HTMLLength   int
	SizeEstimate int

	// Children are retained solely so the splitter can subdivide further.
	ChildrenCount int
	Children      []*page.Element
}

// Chunk is a finalized output region in reading order.
type Chunk struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Selector     string         `json:"selector"`
	Rect         page.Rect      `json:"rect"`
	Styles       page.Styles    `json:"styles"`
	HTML         string         `json:"html"`
	SizeEstimate int            `json:"estimated_size"`
	Images       []markup.Image `json:"images"`
	Links        []markup.Link  `json:"links"`
}

// sizeUnits is the coarse size proxy: markup length at ~4 chars per unit.
func sizeUnits(el *page.Element) int {
	return el.HTMLLength / 4
}

// newSection wraps an element as a section candidate.
func newSection(el *page.Element) Section {
	return Section{
		Tag:           strings.ToLower(el.Tag),
		ID:            el.ID,
		Classes:       el.Classes,
		Selector:      selectorFor(el),
		Rect:          el.Rect,
		Styles:        el.Styles,
		HTMLLength:    el.HTMLLength,
		SizeEstimate:  sizeUnits(el),
		ChildrenCount: el.ChildrenCount,
		Children:      el.Children,
	}
}

// selectorFor builds a CSS-like locator: #id when present, otherwise the
// tag plus the first class that is a valid CSS identifier start.
func selectorFor(el *page.Element) string {
	if el.ID != "" {
		return "#" + el.ID
	}
	sel := strings.ToLower(el.Tag)
	if sel == "" {
		sel = "div"
	}
	for _, cls := range el.Classes {
		if cls == "" {
			continue
		}
		if cls[0] >= '0' && cls[0] <= '9' {
			continue
		}
		if cls[0] == '-' {
			continue
		}
		sel += "." + cls
		break
	}
	return sel
}
