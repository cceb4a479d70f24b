package segment

import (
	"fmt"
	"strings"
)

// splitLarge subdivides any section whose size estimate exceeds the
// ceiling, using the section's own children as split points. Children
// may split again in turn. A section that cannot be split (no retained
// children, or all children filtered out) is returned as-is with a
// warning: exceeding the budget beats silently dropping content.
func splitLarge(sections []Section, cfg Config) ([]Section, []string) {
	var out []Section
	var warnings []string

	var split func(sec Section) []Section
	split = func(sec Section) []Section {
		if sec.SizeEstimate <= cfg.MaxSizeUnits {
			return []Section{sec}
		}
		if len(sec.Children) == 0 {
			warnings = append(warnings, fmt.Sprintf("cannot split %s section of %d units (no children)", sec.Selector, sec.SizeEstimate))
			return []Section{sec}
		}

		var parts []Section
		for _, child := range sec.Children {
			if skipTags[strings.ToLower(child.Tag)] {
				continue
			}
			if child.Rect.Height < cfg.MinSectionHeight {
				continue
			}
			if sizeUnits(child) < cfg.MinSizeUnits {
				continue
			}
			parts = append(parts, split(newSection(child))...)
		}
		if len(parts) == 0 {
			warnings = append(warnings, fmt.Sprintf("cannot split %s section of %d units (all children filtered)", sec.Selector, sec.SizeEstimate))
			return []Section{sec}
		}
		return parts
	}

	for _, sec := range sections {
		out = append(out, split(sec)...)
	}
	return out, warnings
}
