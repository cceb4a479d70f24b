// Package report renders a segmentation outcome as a human-readable
// summary, in Markdown and as HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/webseg/internal/segment"
	"github.com/yuin/goldmark"
)

// Markdown builds a summary of a segmentation run.
func Markdown(rep segment.Report, chunks []segment.Chunk) string {
	var sb strings.Builder

	sb.WriteString("# Segmentation Report\n\n")
	if rep.PrinciplesMet {
		sb.WriteString("All principles met.\n\n")
	} else {
		sb.WriteString("**Principles not met.**\n\n")
	}

	sb.WriteString("## Stats\n\n")
	fmt.Fprintf(&sb, "- Sections: %d\n", rep.Stats.TotalSections)
	fmt.Fprintf(&sb, "- Total size: %d units\n", rep.Stats.TotalUnits)
	fmt.Fprintf(&sb, "- Average: %d units\n", rep.Stats.AvgUnits)
	fmt.Fprintf(&sb, "- Largest: %d units\n", rep.Stats.MaxUnits)
	fmt.Fprintf(&sb, "- Smallest: %d units\n\n", rep.Stats.MinUnits)

	if len(chunks) > 0 {
		sb.WriteString("## Chunks\n\n")
		for _, c := range chunks {
			fmt.Fprintf(&sb, "- `%s` (%s): %d units, %d images, %d links\n",
				c.ID, c.Selector, c.SizeEstimate, len(c.Images), len(c.Links))
		}
		sb.WriteString("\n")
	}

	if len(rep.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
		sb.WriteString("\n")
	}

	if len(rep.Errors) > 0 {
		sb.WriteString("## Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(&sb, "- %s\n", e)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// HTML converts a Markdown summary to HTML via goldmark.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}
