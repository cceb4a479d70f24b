package segment

import "testing"

func TestGroupRows_CardRowOrderedLeftToRight(t *testing.T) {
	cfg := DefaultConfig()
	// Three cards on one visual row, arriving in document order that
	// does not match left-to-right.
	right := sec(box(1300, 100, 600, 400), 100)
	left := sec(box(0, 105, 600, 400), 100)
	middle := sec(box(650, 95, 600, 400), 100)

	out := groupRows([]Section{right, left, middle}, cfg)
	if len(out) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(out))
	}
	xs := []float64{out[0].Rect.X, out[1].Rect.X, out[2].Rect.X}
	if !(xs[0] < xs[1] && xs[1] < xs[2]) {
		t.Errorf("expected left-to-right order, got x positions %v", xs)
	}
}

func TestGroupRows_StackedSectionsKeepTopToBottom(t *testing.T) {
	cfg := DefaultConfig()
	top := sec(box(0, 0, 1920, 200), 100)
	bottom := sec(box(0, 300, 1920, 200), 100)

	out := groupRows([]Section{bottom, top}, cfg)
	if out[0].Rect.Y != 0 || out[1].Rect.Y != 300 {
		t.Errorf("expected top-to-bottom order, got y %v then %v", out[0].Rect.Y, out[1].Rect.Y)
	}
}

func TestGroupRows_SlightOverlapBelowThresholdStartsNewRow(t *testing.T) {
	cfg := DefaultConfig()
	// 20px of shared vertical span over 200px heights is a 0.1 ratio,
	// below the 0.3 threshold: separate rows despite the overlap.
	a := sec(box(500, 0, 400, 200), 100)
	b := sec(box(0, 180, 400, 200), 100)

	out := groupRows([]Section{a, b}, cfg)
	// a starts higher so it stays first even though b is further left.
	if out[0].Rect.X != 500 {
		t.Errorf("expected the higher section first, got x=%v", out[0].Rect.X)
	}
}

func TestGroupRows_SingleSectionUntouched(t *testing.T) {
	cfg := DefaultConfig()
	in := []Section{sec(box(0, 0, 1920, 200), 100)}
	out := groupRows(in, cfg)
	if len(out) != 1 {
		t.Fatalf("expected 1 section, got %d", len(out))
	}
}
