package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrCaptureFailed indicates the capture file reports an unsuccessful extraction.
var ErrCaptureFailed = errors.New("page capture reported failure")

// Document is a captured web page: dimensions, raw markup and the
// positioned element tree produced by the capture step.
type Document struct {
	URL     string
	Width   float64
	Height  float64
	RawHTML string
	Root    *Element
}

// Element is one node of the captured DOM tree. Bounding boxes are in
// page coordinates; a parent's box does not necessarily contain its
// children's boxes (overflow and positioned elements break containment).
type Element struct {
	Tag           string     `json:"tag"`
	ID            string     `json:"id"`
	Classes       []string   `json:"classes"`
	Rect          Rect       `json:"rect"`
	Styles        Styles     `json:"styles"`
	TextLength    int        `json:"text_length"`
	HTMLLength    int        `json:"inner_html_length"`
	ChildrenCount int        `json:"children_count"`
	Children      []*Element `json:"children"`
}

// Styles is the sparse subset of computed styles the engine carries
// through to finalized chunks.
type Styles struct {
	BackgroundColor string `json:"background_color,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
	Color           string `json:"color,omitempty"`
	Padding         string `json:"padding,omitempty"`
}

// Rect is an axis-aligned bounding box in page coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Area returns the box area in px².
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// IntersectionArea returns the overlap area of two boxes, 0 when disjoint.
func (r Rect) IntersectionArea(o Rect) float64 {
	w := min(r.Right, o.Right) - max(r.Left, o.Left)
	h := min(r.Bottom, o.Bottom) - max(r.Top, o.Top)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// VerticalOverlap returns the height of the vertical span shared by two boxes.
func (r Rect) VerticalOverlap(o Rect) float64 {
	v := min(r.Bottom, o.Bottom) - max(r.Top, o.Top)
	if v < 0 {
		return 0
	}
	return v
}

// captureFile mirrors the JSON layout written by the page capture step.
type captureFile struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Metadata struct {
		PageWidth  float64 `json:"page_width"`
		PageHeight float64 `json:"page_height"`
	} `json:"metadata"`
	RawHTML string   `json:"raw_html"`
	DOMTree *Element `json:"dom_tree"`
}

// Decode reads a capture JSON file into a Document.
func Decode(r io.Reader) (*Document, error) {
	var f captureFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode page data: %w", err)
	}
	if !f.Success {
		return nil, ErrCaptureFailed
	}

	doc := &Document{
		URL:     f.URL,
		Width:   f.Metadata.PageWidth,
		Height:  f.Metadata.PageHeight,
		RawHTML: f.RawHTML,
		Root:    f.DOMTree,
	}
	if doc.Width <= 0 {
		doc.Width = 1920
	}
	if doc.Height <= 0 {
		doc.Height = 1080
	}
	return doc, nil
}
