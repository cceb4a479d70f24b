package segment

import "sort"

// groupRows reorders sections for left-to-right, top-to-bottom reading.
// Sections are sorted by (top, left) and walked once: a section joins
// the current row when its vertical overlap with the previous row
// member, relative to the smaller of the two heights, exceeds the
// threshold. Each finished row is sorted by left edge. A section is
// only compared against its immediate predecessor in the row, not all
// members; single-pass simplicity over exhaustive pairwise grouping.
func groupRows(sections []Section, cfg Config) []Section {
	if len(sections) <= 1 {
		return sections
	}

	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rect.Y != sorted[j].Rect.Y {
			return sorted[i].Rect.Y < sorted[j].Rect.Y
		}
		return sorted[i].Rect.X < sorted[j].Rect.X
	})

	var rows [][]Section
	row := []Section{sorted[0]}

	for _, cur := range sorted[1:] {
		prev := row[len(row)-1]

		overlap := cur.Rect.VerticalOverlap(prev.Rect)
		minHeight := min(cur.Rect.Bottom-cur.Rect.Top, prev.Rect.Bottom-prev.Rect.Top)

		if minHeight > 0 && overlap/minHeight > cfg.RowOverlapThreshold {
			row = append(row, cur)
		} else {
			rows = append(rows, row)
			row = []Section{cur}
		}
	}
	rows = append(rows, row)

	out := make([]Section, 0, len(sorted))
	for _, r := range rows {
		sort.SliceStable(r, func(i, j int) bool { return r[i].Rect.X < r[j].Rect.X })
		out = append(out, r...)
	}
	return out
}
