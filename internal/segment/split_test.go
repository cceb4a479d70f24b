package segment

import (
	"strings"
	"testing"
)

func TestSplitLarge_UnderBudgetUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	in := []Section{sec(box(0, 0, 1920, 400), 40000)}

	out, warnings := splitLarge(in, cfg)
	if len(out) != 1 || out[0].SizeEstimate != 40000 {
		t.Fatalf("expected section passed through, got %+v", out)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestSplitLarge_RecursiveSplit(t *testing.T) {
	// 120000-unit section with a 40000-unit child and an 80000-unit
	// child that itself splits into two 40000-unit children: three
	// leaves, all within the 50000 ceiling.
	cfg := DefaultConfig()

	grandA := el("div", box(0, 400, 1920, 300), 40000)
	grandB := el("div", box(0, 700, 1920, 300), 40000)
	childSmall := el("div", box(0, 0, 1920, 400), 40000)
	childBig := el("div", box(0, 400, 1920, 600), 80000, grandA, grandB)

	parent := newSection(el("section", box(0, 0, 1920, 1000), 120000, childSmall, childBig))

	out, warnings := splitLarge([]Section{parent}, cfg)
	if len(out) != 3 {
		t.Fatalf("expected 3 leaf sections, got %d", len(out))
	}
	for i, s := range out {
		if s.SizeEstimate != 40000 {
			t.Errorf("section %d: expected 40000 units, got %d", i, s.SizeEstimate)
		}
		if s.SizeEstimate > cfg.MaxSizeUnits {
			t.Errorf("section %d exceeds ceiling: %d", i, s.SizeEstimate)
		}
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestSplitLarge_NoChildrenWarns(t *testing.T) {
	cfg := DefaultConfig()
	in := []Section{sec(box(0, 0, 1920, 400), 60000)}

	out, warnings := splitLarge(in, cfg)
	if len(out) != 1 || out[0].SizeEstimate != 60000 {
		t.Fatalf("expected oversized section returned as-is, got %+v", out)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "no children") {
		t.Errorf("expected a no-children warning, got %v", warnings)
	}
}

func TestSplitLarge_AllChildrenFilteredFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	// Children are all skippable, too short or too small: fall back to
	// the original rather than dropping content.
	parent := newSection(el("section", box(0, 0, 1920, 1000), 60000,
		el("script", box(0, 0, 1920, 400), 30000),
		el("div", box(0, 400, 1920, 10), 30000),
		el("div", box(0, 410, 1920, 400), 10),
	))

	out, warnings := splitLarge([]Section{parent}, cfg)
	if len(out) != 1 || out[0].SizeEstimate != 60000 {
		t.Fatalf("expected fallback to original, got %+v", out)
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestSplitLarge_DocumentOrderPreserved(t *testing.T) {
	cfg := Config{MaxSizeUnits: 100, MinSizeUnits: 10}

	c1 := el("div", box(0, 0, 1920, 100), 80)
	c2 := el("div", box(0, 100, 1920, 100), 90)
	c3 := el("div", box(0, 200, 1920, 100), 70)
	parent := newSection(el("section", box(0, 0, 1920, 300), 240, c1, c2, c3))

	out, _ := splitLarge([]Section{parent}, cfg)
	if len(out) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(out))
	}
	want := []int{80, 90, 70}
	for i, s := range out {
		if s.SizeEstimate != want[i] {
			t.Errorf("position %d: expected %d units, got %d", i, want[i], s.SizeEstimate)
		}
	}
}
