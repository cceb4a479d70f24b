// Package segment turns a captured page's positioned element tree into
// a validated, ordered list of bounded-size chunks. The pipeline aims
// for three structural principles: no chunk overlaps another, the
// chunks together account for the whole page, and no chunk exceeds the
// configured size ceiling.
package segment

import (
	"github.com/dgallion1/webseg/internal/markup"
	"github.com/dgallion1/webseg/internal/page"
)

// MissingTreeMessage is the report error recorded when the document
// carries no element tree.
const MissingTreeMessage = "No DOM tree found"

// Segment runs the full pipeline with the default scan-based snippet
// extractor. The returned report is derived from the section list
// before finalization; the chunk list is the only other artifact.
func Segment(doc *page.Document, cfg Config) ([]Chunk, Report) {
	return SegmentWith(doc, cfg, markup.ScanExtractor{})
}

// SegmentWith runs the pipeline with a caller-chosen snippet extractor.
// A document without an element tree short-circuits to an empty chunk
// list and an error report; nothing else is fatal.
func SegmentWith(doc *page.Document, cfg Config, ext markup.SnippetExtractor) ([]Chunk, Report) {
	cfg = cfg.withDefaults()

	if doc == nil || doc.Root == nil {
		return []Chunk{}, Report{
			Errors:        []string{MissingTreeMessage},
			Warnings:      []string{},
			PrinciplesMet: false,
		}
	}

	sections := extractSections(doc.Root, doc.Width, doc.Height, cfg)
	sections, splitWarnings := splitLarge(sections, cfg)
	sections = groupRows(sections, cfg)
	sections = resolveOverlaps(sections, cfg)
	sections = mergeGaps(sections, doc.Height, cfg)

	report := validate(sections, doc.Width, doc.Height, cfg)
	if len(splitWarnings) > 0 {
		report.Warnings = append(splitWarnings, report.Warnings...)
	}

	chunks := finalize(sections, doc.RawHTML, ext)
	return chunks, report
}
