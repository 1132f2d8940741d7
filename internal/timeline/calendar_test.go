package timeline

import (
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarMonth(t *testing.T) {
	created := func(id string, at time.Time) domain.Issue {
		return domain.Issue{ID: id, IssueType: domain.TypeTask, CreatedAt: at}
	}
	issues := []domain.Issue{
		created("1", time.Date(2024, 2, 5, 23, 0, 0, 0, time.UTC)),
		created("2", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		created("3", time.Date(2024, 2, 5, 8, 0, 0, 0, time.UTC)),
		{ID: "4"},
		created("5", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)),
	}

	days := CalendarMonth(issues, date(2024, 2, 17))

	require.Len(t, days, 29, "leap year February")
	assert.Equal(t, date(2024, 2, 1), days[0].Date)

	require.Len(t, days[4].Issues, 2)
	assert.Equal(t, "1", days[4].Issues[0].ID)
	assert.Equal(t, "3", days[4].Issues[1].ID)
	require.Len(t, days[28].Issues, 1)
	assert.Equal(t, "5", days[28].Issues[0].ID)

	total := 0
	for _, d := range days {
		total += len(d.Issues)
	}
	assert.Equal(t, 3, total, "other months and undated issues are skipped")
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 1), m)
	assert.Equal(t, "2024-03", MonthKey(m))

	_, err = ParseMonth("March")
	assert.ErrorContains(t, err, "YYYY-MM")
}
