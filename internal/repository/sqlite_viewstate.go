package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/db"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
)

// SQLiteViewStateRepo implements ViewStateRepo over the view_states and
// group_expansions tables.
type SQLiteViewStateRepo struct {
	db db.DBTX
}

func NewSQLiteViewStateRepo(conn db.DBTX) *SQLiteViewStateRepo {
	return &SQLiteViewStateRepo{db: conn}
}

func (r *SQLiteViewStateRepo) Get(ctx context.Context, scope string) (*ViewStateRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT scope, zoom, updated_at FROM view_states WHERE scope = ?`, scope)

	var rec ViewStateRecord
	var zoom string
	var updatedAt sql.NullString
	if err := row.Scan(&rec.Scope, &zoom, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("view state %q: %w", scope, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning view state: %w", err)
	}
	rec.Zoom = timeline.ZoomLevel(zoom)
	rec.UpdatedAt = parseTime(updatedAt)

	expanded, err := r.ListExpansions(ctx, scope)
	if err != nil {
		return nil, err
	}
	rec.Expanded = expanded
	return &rec, nil
}

func (r *SQLiteViewStateRepo) SaveZoom(ctx context.Context, scope string, zoom timeline.ZoomLevel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO view_states (scope, zoom, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(scope) DO UPDATE SET zoom = excluded.zoom, updated_at = excluded.updated_at`,
		scope, string(zoom), formatTime(nowUTC()))
	if err != nil {
		return fmt.Errorf("saving zoom for %q: %w", scope, err)
	}
	return nil
}

// SetExpansion records the flag for one group. The scope's view_states row
// is created with the default zoom when missing.
func (r *SQLiteViewStateRepo) SetExpansion(ctx context.Context, scope, groupID string, expanded bool) error {
	now := formatTime(nowUTC())
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO view_states (scope, updated_at) VALUES (?, ?)
		 ON CONFLICT(scope) DO UPDATE SET updated_at = excluded.updated_at`,
		scope, now); err != nil {
		return fmt.Errorf("touching view state %q: %w", scope, err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO group_expansions (scope, group_id, expanded, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(scope, group_id) DO UPDATE SET expanded = excluded.expanded, updated_at = excluded.updated_at`,
		scope, groupID, boolToInt(expanded), now)
	if err != nil {
		return fmt.Errorf("setting expansion of %q in %q: %w", groupID, scope, err)
	}
	return nil
}

func (r *SQLiteViewStateRepo) ListExpansions(ctx context.Context, scope string) (timeline.ExpandState, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT group_id, expanded FROM group_expansions WHERE scope = ? ORDER BY group_id`, scope)
	if err != nil {
		return nil, fmt.Errorf("listing expansions: %w", err)
	}
	defer rows.Close()

	state := timeline.ExpandState{}
	for rows.Next() {
		var groupID string
		var expanded int
		if err := rows.Scan(&groupID, &expanded); err != nil {
			return nil, fmt.Errorf("scanning expansion: %w", err)
		}
		state[groupID] = intToBool(expanded)
	}
	return state, rows.Err()
}

func (r *SQLiteViewStateRepo) ClearExpansions(ctx context.Context, scope string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM group_expansions WHERE scope = ?`, scope); err != nil {
		return fmt.Errorf("clearing expansions of %q: %w", scope, err)
	}
	return nil
}
