package segment

import "github.com/dgallion1/webseg/internal/page"

// box builds a fully-derived Rect from position and size.
func box(x, y, w, h float64) page.Rect {
	return page.Rect{
		X: x, Y: y, Width: w, Height: h,
		Top: y, Left: x, Bottom: y + h, Right: x + w,
	}
}

// el builds an element with size units expressed directly (units*4 markup chars).
func el(tag string, r page.Rect, units int, children ...*page.Element) *page.Element {
	return &page.Element{
		Tag:           tag,
		Rect:          r,
		HTMLLength:    units * 4,
		ChildrenCount: len(children),
		Children:      children,
	}
}

// sec builds a bare section candidate for stage tests.
func sec(r page.Rect, units int) Section {
	return Section{
		Tag:          "div",
		Selector:     "div",
		Rect:         r,
		HTMLLength:   units * 4,
		SizeEstimate: units,
	}
}
