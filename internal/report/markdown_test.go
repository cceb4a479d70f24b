package report

import (
	"strings"
	"testing"

	"github.com/dgallion1/webseg/internal/segment"
)

func TestMarkdown(t *testing.T) {
	rep := segment.Report{
		Errors:        []string{"section 1 exceeds 50000 units: 60000"},
		Warnings:      []string{"low coverage: 42.0% of page"},
		PrinciplesMet: false,
		Stats: segment.Stats{
			TotalSections: 2,
			TotalUnits:    61000,
			AvgUnits:      30500,
			MaxUnits:      60000,
			MinUnits:      1000,
		},
	}
	chunks := []segment.Chunk{
		{ID: "section-1", Selector: "#hero", SizeEstimate: 60000},
		{ID: "section-2", Selector: "div.cards", SizeEstimate: 1000},
	}

	md := Markdown(rep, chunks)

	for _, want := range []string{
		"# Segmentation Report",
		"**Principles not met.**",
		"Sections: 2",
		"`section-1` (#hero)",
		"low coverage",
		"exceeds 50000 units",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdown_CleanRun(t *testing.T) {
	rep := segment.Report{PrinciplesMet: true, Stats: segment.Stats{TotalSections: 1}}

	md := Markdown(rep, nil)
	if !strings.Contains(md, "All principles met.") {
		t.Errorf("expected clean summary, got:\n%s", md)
	}
	if strings.Contains(md, "## Warnings") || strings.Contains(md, "## Errors") {
		t.Errorf("unexpected sections in clean summary:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML("# Title\n\n- item\n")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") || !strings.Contains(html, "<li>item</li>") {
		t.Errorf("unexpected rendering: %q", html)
	}
}
