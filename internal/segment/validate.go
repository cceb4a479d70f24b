package segment

import "fmt"

// overlapTolerance is the intersection area, in px², below which two
// sections are not reported as overlapping (shadows, borders).
const overlapTolerance = 100

// Report is the outcome of checking the final section list against the
// three structural principles: mutual exclusivity, complete coverage
// and size control.
type Report struct {
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	PrinciplesMet bool     `json:"principles_met"`
	Stats         Stats    `json:"stats"`
}

// Stats are aggregate size counts over the final section list.
type Stats struct {
	TotalSections int `json:"total_sections"`
	TotalUnits    int `json:"total_units"`
	AvgUnits      int `json:"avg_units"`
	MaxUnits      int `json:"max_units"`
	MinUnits      int `json:"min_units"`
}

// validate re-checks the post-merge list. It never mutates the input;
// overlap residue and low coverage are warnings, oversized sections are
// errors.
func validate(sections []Section, pageWidth, pageHeight float64, cfg Config) Report {
	r := Report{Errors: []string{}, Warnings: []string{}}

	// Mutual exclusivity.
	for i := range sections {
		for j := i + 1; j < len(sections); j++ {
			area := sections[i].Rect.IntersectionArea(sections[j].Rect)
			if area > overlapTolerance {
				r.Warnings = append(r.Warnings, fmt.Sprintf("overlap: section %d and %d (%.0fpx²)", i+1, j+1, area))
			}
		}
	}

	// Complete coverage.
	if len(sections) > 0 {
		var covered float64
		for _, sec := range sections {
			covered += sec.Rect.Area()
		}
		pageArea := pageWidth * pageHeight
		if pageArea > 0 && covered/pageArea < cfg.CoverageTarget {
			r.Warnings = append(r.Warnings, fmt.Sprintf("low coverage: %.1f%% of page", covered/pageArea*100))
		}
	}

	// Size control.
	for i, sec := range sections {
		if sec.SizeEstimate > cfg.MaxSizeUnits {
			r.Errors = append(r.Errors, fmt.Sprintf("section %d exceeds %d units: %d", i+1, cfg.MaxSizeUnits, sec.SizeEstimate))
		}
	}

	r.PrinciplesMet = len(r.Errors) == 0
	r.Stats = statsFor(sections)
	return r
}

func statsFor(sections []Section) Stats {
	s := Stats{TotalSections: len(sections)}
	if len(sections) == 0 {
		return s
	}
	s.MinUnits = sections[0].SizeEstimate
	for _, sec := range sections {
		s.TotalUnits += sec.SizeEstimate
		s.MaxUnits = max(s.MaxUnits, sec.SizeEstimate)
		s.MinUnits = min(s.MinUnits, sec.SizeEstimate)
	}
	s.AvgUnits = s.TotalUnits / len(sections)
	return s
}
