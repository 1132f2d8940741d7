package repository

import (
	"context"
	"testing"

	"github.com/Sricharanredd/jira-team-1/internal/testutil"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStateRepo_GetUnknownScope(t *testing.T) {
	repo := NewSQLiteViewStateRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewStateRepo_SaveZoomUpserts(t *testing.T) {
	repo := NewSQLiteViewStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveZoom(ctx, "team", timeline.ZoomMonthly))
	require.NoError(t, repo.SaveZoom(ctx, "team", timeline.ZoomWeekly))

	rec, err := repo.Get(ctx, "team")
	require.NoError(t, err)
	assert.Equal(t, "team", rec.Scope)
	assert.Equal(t, timeline.ZoomWeekly, rec.Zoom)
	assert.Empty(t, rec.Expanded)
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestViewStateRepo_ExpansionsRoundTrip(t *testing.T) {
	repo := NewSQLiteViewStateRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SetExpansion(ctx, "team", "1", false))
	require.NoError(t, repo.SetExpansion(ctx, "team", "4", false))
	require.NoError(t, repo.SetExpansion(ctx, "team", "4", true))
	require.NoError(t, repo.SetExpansion(ctx, "other", "1", false))

	rec, err := repo.Get(ctx, "team")
	require.NoError(t, err, "SetExpansion creates the view state row")
	assert.Equal(t, timeline.ZoomWeekly, rec.Zoom, "default zoom")
	assert.Equal(t, timeline.ExpandState{"1": false, "4": true}, rec.Expanded)

	v := rec.ViewState()
	assert.False(t, v.Expanded.IsExpanded("1"))
	assert.True(t, v.Expanded.IsExpanded("unknown"))

	require.NoError(t, repo.ClearExpansions(ctx, "team"))
	state, err := repo.ListExpansions(ctx, "team")
	require.NoError(t, err)
	assert.Empty(t, state)

	other, err := repo.ListExpansions(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, timeline.ExpandState{"1": false}, other, "scopes are isolated")
}
