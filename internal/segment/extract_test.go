package segment

import (
	"testing"

	"github.com/dgallion1/webseg/internal/page"
)

func TestExtractSections_EmitsValidLeaf(t *testing.T) {
	cfg := DefaultConfig()
	root := el("body", box(0, 0, 1920, 1080), 0,
		el("section", box(0, 0, 1920, 400), 2000),
	)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].SizeEstimate != 2000 {
		t.Errorf("expected 2000 units, got %d", got[0].SizeEstimate)
	}
}

func TestExtractSections_SkipsNonContentSubtrees(t *testing.T) {
	cfg := DefaultConfig()
	// A script node with a large, otherwise-valid child: recursion must
	// not enter the script at all.
	root := el("body", box(0, 0, 1920, 1080), 0,
		el("script", box(0, 0, 1920, 400), 5000,
			el("div", box(0, 0, 1920, 400), 5000),
		),
		el("section", box(0, 500, 1920, 300), 1500),
	)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Tag != "section" {
		t.Errorf("expected section tag, got %q", got[0].Tag)
	}
}

func TestExtractSections_RecursesThroughInvalidNodes(t *testing.T) {
	cfg := DefaultConfig()
	// A short wrapper is not a valid section; its children still are.
	wrapper := el("div", box(0, 0, 1920, 30), 4000,
		el("article", box(0, 0, 1920, 300), 1800),
		el("article", box(0, 300, 1920, 300), 1900),
	)
	root := el("body", box(0, 0, 1920, 1080), 0, wrapper)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
}

func TestExtractSections_DropsSmallValidNodesWithoutRecursing(t *testing.T) {
	cfg := DefaultConfig()
	// Valid geometry but below MinSizeUnits: dropped entirely, children
	// included.
	small := el("section", box(0, 0, 1920, 200), 10,
		el("div", box(0, 0, 1920, 200), 10),
	)
	root := el("body", box(0, 0, 1920, 1080), 0, small)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 0 {
		t.Fatalf("expected no sections, got %d", len(got))
	}
}

func TestExtractSections_NarrowButContentHeavyQualifies(t *testing.T) {
	cfg := DefaultConfig()
	// 100px wide on a 1920px page is under the width ratio, but 1000+
	// units of content still qualifies.
	root := el("body", box(0, 0, 1920, 1080), 0,
		el("aside", box(0, 0, 100, 600), 1200),
	)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
}

func TestExtractSections_NoNestedEmission(t *testing.T) {
	cfg := DefaultConfig()
	// Once a node is emitted, its valid descendants must not appear.
	inner := el("div", box(0, 0, 1920, 300), 1500)
	outer := el("section", box(0, 0, 1920, 600), 3000, inner)
	root := el("body", box(0, 0, 1920, 1080), 0, outer)

	got := extractSections(root, 1920, 1080, cfg)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got))
	}
	if got[0].Tag != "section" {
		t.Errorf("expected the outer section, got %q", got[0].Tag)
	}
}

func TestUnwrapMainContent_FullBleedDiv(t *testing.T) {
	content := el("main", box(0, 0, 1920, 500), 2000)
	wrapper := el("div", box(0, 0, 1920, 1080), 2000, content)
	root := el("html", box(0, 0, 1920, 1080), 0, el("body", box(0, 0, 1920, 1080), 0, wrapper))

	got := unwrapMainContent(root, 1920, 1080)
	if len(got) != 1 {
		t.Fatalf("expected 1 node, got %d", len(got))
	}
	if got[0].Tag != "main" {
		t.Errorf("expected full-bleed wrapper unwrapped to main, got %q", got[0].Tag)
	}
}

func TestUnwrapMainContent_KeepsPartialWidthDiv(t *testing.T) {
	wrapper := el("div", box(0, 0, 900, 1080), 2000,
		el("main", box(0, 0, 900, 500), 2000),
	)
	root := el("body", box(0, 0, 1920, 1080), 0, wrapper)

	got := unwrapMainContent(root, 1920, 1080)
	if len(got) != 1 || got[0].Tag != "div" {
		t.Fatalf("expected the 900px div kept as-is, got %+v", got)
	}
}

func TestSelectorFor(t *testing.T) {
	tests := []struct {
		name string
		el   *page.Element
		want string
	}{
		{"id wins", &page.Element{Tag: "div", ID: "hero", Classes: []string{"big"}}, "#hero"},
		{"first valid class", &page.Element{Tag: "div", Classes: []string{"9grid", "-lead", "cards"}}, "div.cards"},
		{"no classes", &page.Element{Tag: "SECTION"}, "section"},
		{"empty tag", &page.Element{}, "div"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectorFor(tt.el); got != tt.want {
				t.Errorf("selectorFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
