package formatter

import (
	"fmt"
	"math"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	if width < 2 {
		width = 2
	}

	filled := filledCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %s", style.Render(bar), Percent(pct))
}

// Percent formats a fraction as a right-aligned whole percentage.
func Percent(pct float64) string {
	return fmt.Sprintf("%3.0f%%", clampFraction(pct)*100)
}

// filledCells returns how many of width cells a fraction fills. A non-zero
// fraction always fills at least one cell and only a complete one fills all.
func filledCells(pct float64, width int) int {
	pct = clampFraction(pct)
	if width <= 0 || pct == 0 {
		return 0
	}
	if pct >= 1 {
		return width
	}
	n := int(math.Round(pct * float64(width)))
	return max(1, min(n, width-1))
}

func clampFraction(pct float64) float64 {
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
