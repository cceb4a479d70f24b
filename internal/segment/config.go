package segment

// Config controls segmentation behavior. The zero value is not usable;
// call DefaultConfig or rely on the clamping in Segment.
type Config struct {
	MaxSizeUnits int // Size ceiling per chunk, in units (~4 chars each).
	MinSizeUnits int // Floor below which content is dropped as noise.

	MinSectionHeight    float64 // Minimum box height for a section candidate, px.
	MinWidthRatio       float64 // Minimum box width as a fraction of page width.
	RowOverlapThreshold float64 // Vertical-overlap ratio that joins a row.
	OverlapThreshold    float64 // Intersection/min-area ratio judged redundant.
	GapThreshold        float64 // Vertical gaps above this many px get closed.
	CoverageTarget      float64 // Coverage ratio below which a warning is issued.
}

// DefaultConfig returns the compatibility-baseline thresholds.
func DefaultConfig() Config {
	return Config{
		MaxSizeUnits:        50000,
		MinSizeUnits:        50,
		MinSectionHeight:    50,
		MinWidthRatio:       0.2,
		RowOverlapThreshold: 0.3,
		OverlapThreshold:    0.5,
		GapThreshold:        30,
		CoverageTarget:      0.8,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxSizeUnits <= 0 {
		c.MaxSizeUnits = d.MaxSizeUnits
	}
	if c.MinSizeUnits <= 0 {
		c.MinSizeUnits = d.MinSizeUnits
	}
	if c.MinSectionHeight <= 0 {
		c.MinSectionHeight = d.MinSectionHeight
	}
	if c.MinWidthRatio <= 0 {
		c.MinWidthRatio = d.MinWidthRatio
	}
	if c.RowOverlapThreshold <= 0 {
		c.RowOverlapThreshold = d.RowOverlapThreshold
	}
	if c.OverlapThreshold <= 0 {
		c.OverlapThreshold = d.OverlapThreshold
	}
	if c.GapThreshold <= 0 {
		c.GapThreshold = d.GapThreshold
	}
	if c.CoverageTarget <= 0 {
		c.CoverageTarget = d.CoverageTarget
	}
	return c
}

// skipTags are non-content elements the extractor never descends into.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"meta":     true,
	"link":     true,
	"noscript": true,
	"svg":      true,
	"path":     true,
	"br":       true,
	"hr":       true,
}
