package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositionOf(t *testing.T) {
	minDate := date(2024, 1, 1)

	tests := []struct {
		name     string
		date     time.Time
		dayWidth int
		want     int
	}{
		{"same day", date(2024, 1, 1), 40, 0},
		{"one week", date(2024, 1, 8), 40, 280},
		{"time of day ignored", time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC), 12, 12},
		{"before min is negative", date(2023, 12, 30), 10, -20},
		{"zero day width clamps to 1", date(2024, 1, 11), 0, 10},
		{"negative day width clamps to 1", date(2024, 1, 11), -5, 10},
		{"leap february", date(2024, 3, 1), 1, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionOf(tt.date, minDate, tt.dayWidth))
		})
	}
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		dayWidth   int
		want       int
	}{
		{"single day", date(2024, 1, 1), date(2024, 1, 1), 40, 40},
		{"inclusive span", date(2024, 1, 1), date(2024, 1, 10), 40, 400},
		{"inverted span floors to one day", date(2024, 1, 10), date(2024, 1, 1), 12, 12},
		{"zero day width", date(2024, 1, 1), date(2024, 1, 3), 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WidthOf(tt.start, tt.end, tt.dayWidth))
		})
	}
}
