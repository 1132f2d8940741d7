package formatter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"empty", 0, 4, "[░░░░]   0%"},
		{"half", 0.5, 4, "[██░░]  50%"},
		{"full", 1, 4, "[████] 100%"},
		{"over 100% clamps", 1.5, 4, "[████] 100%"},
		{"negative clamps", -0.5, 4, "[░░░░]   0%"},
		{"tiny width clamps to 2", 0.5, 1, "[█░]  50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderProgress(tt.pct, tt.width))
		})
	}
}

func TestFilledCells(t *testing.T) {
	tests := []struct {
		pct   float64
		width int
		want  int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{0.01, 10, 1},
		{0.99, 10, 9},
		{1, 10, 10},
		{math.NaN(), 10, 0},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, filledCells(tt.pct, tt.width), "pct=%v width=%d", tt.pct, tt.width)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, " 50%", Percent(0.5))
	assert.Equal(t, "100%", Percent(2))
	assert.Equal(t, "  0%", Percent(-1))
}
