package segment

// resolveOverlaps drops redundant overlapping sections. Each incoming
// section is compared against the kept set: when the intersection area
// exceeds half the smaller box, the pair is redundant and the larger
// size estimate survives (possibly evicting a previously kept section).
// Resolution is order-dependent when three or more sections mutually
// overlap; that approximation is kept deliberately.
func resolveOverlaps(sections []Section, cfg Config) []Section {
	if len(sections) <= 1 {
		return sections
	}

	var kept []Section

	for _, sec := range sections {
		area := sec.Rect.Area()

		redundant := false
		evict := -1

		for i, k := range kept {
			overlap := sec.Rect.IntersectionArea(k.Rect)
			minArea := min(area, k.Rect.Area())
			if minArea <= 0 || overlap/minArea <= cfg.OverlapThreshold {
				continue
			}
			if sec.SizeEstimate > k.SizeEstimate {
				evict = i
			} else {
				redundant = true
			}
			break
		}

		switch {
		case evict >= 0:
			kept = append(kept[:evict], kept[evict+1:]...)
			kept = append(kept, sec)
		case !redundant:
			kept = append(kept, sec)
		}
	}

	return kept
}
