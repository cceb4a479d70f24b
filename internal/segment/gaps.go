package segment

import "sort"

// mergeGaps stretches section boundaries to close vertical coverage
// gaps larger than the threshold: the first section extends up to the
// page top, consecutive sections meet at the gap midpoint, and the last
// section extends down to the page bottom. Smaller gaps are tolerated
// slack; the validator measures the residual.
func mergeGaps(sections []Section, pageHeight float64, cfg Config) []Section {
	if len(sections) == 0 {
		return sections
	}

	out := make([]Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rect.Y < out[j].Rect.Y })

	if first := &out[0]; first.Rect.Top > cfg.GapThreshold {
		first.Rect.Top = 0
		first.Rect.Y = 0
		first.Rect.Height = first.Rect.Bottom
	}

	for i := 1; i < len(out); i++ {
		prev, cur := &out[i-1], &out[i]
		gap := cur.Rect.Top - prev.Rect.Bottom
		if gap > cfg.GapThreshold {
			mid := prev.Rect.Bottom + gap/2
			prev.Rect.Bottom = mid
			prev.Rect.Height = prev.Rect.Bottom - prev.Rect.Top
			cur.Rect.Top = mid
			cur.Rect.Y = mid
			cur.Rect.Height = cur.Rect.Bottom - cur.Rect.Top
		}
	}

	if last := &out[len(out)-1]; pageHeight-last.Rect.Bottom > cfg.GapThreshold {
		last.Rect.Bottom = pageHeight
		last.Rect.Height = last.Rect.Bottom - last.Rect.Top
	}

	return out
}
