package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeader_Weekly(t *testing.T) {
	cells := BuildHeader(date(2024, 3, 1), date(2024, 3, 8), 40, ZoomWeekly, testNow)

	require.Len(t, cells, 8)
	assert.Equal(t, date(2024, 3, 1), cells[0].Date)
	assert.Equal(t, 0, cells[0].Offset)
	assert.Equal(t, 40, cells[0].Width)
	assert.Equal(t, "1", cells[0].Label)
	assert.True(t, cells[0].IsFirstOfMonth)

	assert.True(t, cells[1].IsWeekend, "Mar 2 2024 is a Saturday")
	assert.True(t, cells[2].IsWeekend)
	assert.False(t, cells[3].IsWeekend)

	last := cells[7]
	assert.Equal(t, 280, last.Offset)
	assert.Equal(t, "8", last.Label)
	assert.True(t, last.IsToday)
}

func TestBuildHeader_MonthlyLabelsMonthStarts(t *testing.T) {
	cells := BuildHeader(date(2024, 2, 27), date(2024, 3, 2), 12, ZoomMonthly, testNow)

	require.Len(t, cells, 5)
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{"Feb 2024", "", "", "Mar 2024", ""}, labels)
	assert.Equal(t, 48, cells[4].Offset)
}

func TestBuildHeader_InvertedRange(t *testing.T) {
	assert.Nil(t, BuildHeader(date(2024, 3, 2), date(2024, 3, 1), 10, ZoomWeekly, testNow))
}

func TestTodayMarkerOffset(t *testing.T) {
	offset, ok := TodayMarkerOffset(date(2024, 3, 1), date(2024, 3, 31), 40, testNow)
	assert.True(t, ok)
	assert.Equal(t, 280, offset)

	_, ok = TodayMarkerOffset(date(2024, 1, 1), date(2024, 1, 31), 40, testNow)
	assert.False(t, ok, "no marker when today is after the window")

	_, ok = TodayMarkerOffset(date(2024, 4, 1), date(2024, 4, 30), 40, testNow)
	assert.False(t, ok, "no marker when today is before the window")

	offset, ok = TodayMarkerOffset(date(2024, 3, 8), date(2024, 3, 8), 40, testNow)
	assert.True(t, ok, "inclusive bounds")
	assert.Zero(t, offset)
}
