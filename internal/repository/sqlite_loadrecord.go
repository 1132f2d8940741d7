package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sricharanredd/jira-team-1/internal/db"
	"github.com/google/uuid"
)

// SQLiteLoadRecordRepo implements LoadRecordRepo.
type SQLiteLoadRecordRepo struct {
	db db.DBTX
}

func NewSQLiteLoadRecordRepo(conn db.DBTX) *SQLiteLoadRecordRepo {
	return &SQLiteLoadRecordRepo{db: conn}
}

const loadRecordColumns = `id, scope, source, issue_count, group_count, full_reload, loaded_at`

// Create inserts rec, assigning an ID and LoadedAt when they are empty.
func (r *SQLiteLoadRecordRepo) Create(ctx context.Context, rec *LoadRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.LoadedAt.IsZero() {
		rec.LoadedAt = nowUTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO load_records (`+loadRecordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Scope, rec.Source, rec.IssueCount, rec.GroupCount,
		boolToInt(rec.FullReload), formatTime(rec.LoadedAt))
	if err != nil {
		return fmt.Errorf("inserting load record: %w", err)
	}
	return nil
}

func (r *SQLiteLoadRecordRepo) Latest(ctx context.Context, scope string) (*LoadRecord, error) {
	records, err := r.ListRecent(ctx, scope, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load record for %q: %w", scope, ErrNotFound)
	}
	return records[0], nil
}

// ListRecent returns up to limit records for scope, newest first.
func (r *SQLiteLoadRecordRepo) ListRecent(ctx context.Context, scope string, limit int) ([]*LoadRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+loadRecordColumns+` FROM load_records WHERE scope = ?
		 ORDER BY loaded_at DESC, rowid DESC LIMIT ?`, scope, limit)
	if err != nil {
		return nil, fmt.Errorf("listing load records: %w", err)
	}
	defer rows.Close()

	var out []*LoadRecord
	for rows.Next() {
		rec, err := scanLoadRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanLoadRecord(rows *sql.Rows) (*LoadRecord, error) {
	var rec LoadRecord
	var fullReload int
	var loadedAt sql.NullString
	err := rows.Scan(&rec.ID, &rec.Scope, &rec.Source, &rec.IssueCount, &rec.GroupCount, &fullReload, &loadedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning load record: %w", err)
	}
	rec.FullReload = intToBool(fullReload)
	rec.LoadedAt = parseTime(loadedAt)
	return &rec, nil
}
