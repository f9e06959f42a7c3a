package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/twkim02/todoc-chat-ai/internal/journal"
)

// EntryRepository is the durable persistence collaborator for journal entries.
// It is only ever called with entries the validator has already normalized.
type EntryRepository struct {
	db *pgxpool.Pool
}

// Create inserts an entry with its details as JSONB and returns the stored
// record with its assigned id and creation time, so callers mirroring the row
// elsewhere keep the same identity.
func (r *EntryRepository) Create(ctx context.Context, childID string, e journal.Entry) (journal.Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	details, err := json.Marshal(e.Details)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("marshal details: %w", err)
	}

	const q = `
INSERT INTO entries (id, child_id, category, title, content, entry_date, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8)
`
	_, err = r.db.Exec(ctx, q, e.ID, childID, string(e.Category), e.Title, e.Content, e.Date, details, e.CreatedAt)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return e, nil
}

// ListByChild returns a page of the child's entries, newest-created first,
// with the total count for pagination.
func (r *EntryRepository) ListByChild(ctx context.Context, childID string, limit, offset int) ([]journal.Entry, int, error) {
	var total int
	const countQ = `SELECT COUNT(*) FROM entries WHERE child_id = $1`
	if err := r.db.QueryRow(ctx, countQ, childID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	const q = `
SELECT id, category, title, content, entry_date, details, created_at
FROM entries
WHERE child_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.db.Query(ctx, q, childID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := make([]journal.Entry, 0, 8)
	for rows.Next() {
		var e journal.Entry
		var category string
		var detailBytes []byte
		if err := rows.Scan(&e.ID, &category, &e.Title, &e.Content, &e.Date, &detailBytes, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan entry row: %w", err)
		}
		e.Category = journal.Category(category)
		details, err := journal.DecodeDetails(e.Category, detailBytes)
		if err != nil {
			return nil, 0, err
		}
		e.Details = details
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}
