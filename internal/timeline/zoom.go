package timeline

import (
	"fmt"
	"strings"
)

// ZoomLevel selects the grid density.
type ZoomLevel string

const (
	// ZoomWeekly uses wide, day-labeled cells.
	ZoomWeekly ZoomLevel = "weekly"
	// ZoomMonthly uses narrow cells labeled only at month boundaries.
	ZoomMonthly ZoomLevel = "monthly"
)

// ZoomLevels lists the supported levels in display order.
var ZoomLevels = []ZoomLevel{ZoomWeekly, ZoomMonthly}

// IsValid returns true if the zoom level is a recognized value.
func (z ZoomLevel) IsValid() bool {
	return z == ZoomWeekly || z == ZoomMonthly
}

// Next cycles to the other zoom level.
func (z ZoomLevel) Next() ZoomLevel {
	if z == ZoomWeekly {
		return ZoomMonthly
	}
	return ZoomWeekly
}

// ParseZoom parses a zoom level name, case-insensitively.
func ParseZoom(s string) (ZoomLevel, error) {
	z := ZoomLevel(strings.ToLower(strings.TrimSpace(s)))
	if !z.IsValid() {
		return "", fmt.Errorf("unknown zoom level %q (expected weekly or monthly)", s)
	}
	return z, nil
}

// ZoomPresets maps each zoom level to its day width in pixels (or cells, for
// terminal renderers).
type ZoomPresets map[ZoomLevel]int

// DefaultZoomPresets returns the pixel day widths used by JSON and SVG output.
func DefaultZoomPresets() ZoomPresets {
	return ZoomPresets{
		ZoomWeekly:  40,
		ZoomMonthly: 12,
	}
}

// DayWidth returns the width configured for z, falling back to the defaults
// and finally to 1 when nothing positive is configured.
func (p ZoomPresets) DayWidth(z ZoomLevel) int {
	if w, ok := p[z]; ok && w > 0 {
		return w
	}
	if w, ok := DefaultZoomPresets()[z]; ok {
		return w
	}
	return 1
}
