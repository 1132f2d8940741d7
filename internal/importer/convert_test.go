package importer

import (
	"testing"
	"time"

	"github.com/Sricharanredd/jira-team-1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_ValidBatch(t *testing.T) {
	issues, warnings := Convert(validIssues())

	assert.Empty(t, warnings)
	require.Len(t, issues, 3)

	assert.Equal(t, domain.TypeEpic, issues[0].IssueType)
	assert.Equal(t, domain.StatusInProgress, issues[0].Status)
	assert.Nil(t, issues[0].ParentIssueID)

	story := issues[1]
	require.NotNil(t, story.ParentIssueID)
	assert.Equal(t, "1", *story.ParentIssueID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *story.StartDate)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), *story.EndDate)
	assert.Equal(t, time.Date(2023, 12, 20, 9, 15, 0, 123456000, time.UTC), story.CreatedAt)

	bare := issues[2]
	assert.Equal(t, domain.TypeStory, bare.IssueType, "missing type defaults to story")
	assert.Equal(t, domain.StatusBacklog, bare.Status, "missing status defaults to backlog")
	assert.Nil(t, bare.StartDate)
	assert.True(t, bare.CreatedAt.IsZero())
}

func TestConvert_DueDateIsLegacyEndAlias(t *testing.T) {
	issues, warnings := Convert([]IssueImport{
		{ID: "1", Title: "legacy", DueDate: strPtr("2024-05-01")},
		{ID: "2", Title: "both", EndDate: strPtr("2024-06-01"), DueDate: strPtr("2024-05-01")},
	})

	assert.Empty(t, warnings)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *issues[0].EndDate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *issues[1].EndDate, "end_date wins")
}

func TestConvert_IsTolerant(t *testing.T) {
	records := []IssueImport{
		{Title: "no id"},
		{ID: ReservedIssueID, Title: "sentinel"},
		{ID: "3", Title: "weird", IssueType: "initiative", Status: "blocked",
			StartDate: strPtr("yesterday"), CreatedAt: strPtr("never"), ParentIssueID: idPtr("3")},
	}

	issues, warnings := Convert(records)

	require.Len(t, issues, 1)
	got := issues[0]
	assert.Equal(t, "3", got.ID)
	assert.Equal(t, domain.TypeStory, got.IssueType)
	assert.Equal(t, domain.StatusBacklog, got.Status)
	assert.Nil(t, got.StartDate)
	assert.True(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.ParentIssueID, "self-parent is dropped")
	assert.Len(t, warnings, 6)
}

func TestConvert_OffsetTimestampsReduceToUTCDate(t *testing.T) {
	issues, _ := Convert([]IssueImport{
		{ID: "1", Title: "x", StartDate: strPtr("2024-01-01T23:00:00-05:00")},
	})

	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *issues[0].StartDate)
}

func TestParseTimestamp_Layouts(t *testing.T) {
	for _, s := range []string{
		"2024-03-08",
		"2024-03-08T10:00:00Z",
		"2024-03-08T10:00:00",
		"2024-03-08T10:00:00.654321",
		"2024-03-08 10:00:00",
	} {
		got, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), got, s)
	}
}

func TestConvert_BlankTitleFallsBackToStoryCode(t *testing.T) {
	issues, _ := Convert([]IssueImport{
		{ID: "1", Title: "  ", StoryCode: "ST-9"},
		{ID: "2"},
	})

	require.Len(t, issues, 2)
	assert.Equal(t, "ST-9", issues[0].Title)
	assert.Equal(t, "", issues[1].Title)
}
