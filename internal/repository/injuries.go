package repository

import (
	"context"
	"fmt"

	"nflgoat/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
)

// InjuryRepository handles injury report database operations
type InjuryRepository struct {
	db *Database
}

const upsertInjuryQuery = `
	INSERT INTO injuries (player_id, report_date, status, comment, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (player_id, report_date) DO UPDATE SET
		status = EXCLUDED.status,
		comment = EXCLUDED.comment,
		updated_at = EXCLUDED.updated_at
`

// UpsertBatch inserts or updates injury rows in one round trip
func (r *InjuryRepository) UpsertBatch(ctx context.Context, injuries []*models.Injury) (int, error) {
	b := &pgx.Batch{}
	for _, i := range injuries {
		b.Queue(upsertInjuryQuery, i.PlayerID, i.ReportDate, i.Status, i.Comment, i.UpdatedAt)
	}
	return r.db.execBatch(ctx, b)
}

// DeleteAll removes every injury row. The report is a snapshot, so each sync
// replaces it wholesale.
func (r *InjuryRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM injuries`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear injuries: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the total number of injury rows
func (r *InjuryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM injuries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count injuries: %w", err)
	}
	return count, nil
}
