package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/twkim02/todoc-chat-ai/internal/children"
)

// ChildRepository is the concrete implementation for registered children.
// It satisfies children.Store.
type ChildRepository struct {
	db *pgxpool.Pool
}

// Create inserts a child and fills in its id and creation time.
func (r *ChildRepository) Create(ctx context.Context, child *children.Child) error {
	child.ID = uuid.New().String()
	child.CreatedAt = time.Now()
	const q = `
INSERT INTO children (id, user_id, name, birth_date, gender, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, q, child.ID, child.UserID, child.Name, child.BirthDate, child.Gender, child.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

// CountByUser returns how many children the user has registered.
func (r *ChildRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	const q = `SELECT COUNT(*) FROM children WHERE user_id = $1`
	var count int
	if err := r.db.QueryRow(ctx, q, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return count, nil
}

// ListByUser returns the user's children, oldest registration first.
func (r *ChildRepository) ListByUser(ctx context.Context, userID string) ([]children.Child, error) {
	const q = `
SELECT id, user_id, name, birth_date, gender, created_at
FROM children
WHERE user_id = $1
ORDER BY created_at
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	defer rows.Close()

	out := make([]children.Child, 0, 2)
	for rows.Next() {
		var c children.Child
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.BirthDate, &c.Gender, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan child row: %w", err)
		}
		out = append(out, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// GetByID returns one child, scoped to its owner.
func (r *ChildRepository) GetByID(ctx context.Context, id string) (children.Child, error) {
	const q = `
SELECT id, user_id, name, birth_date, gender, created_at
FROM children
WHERE id = $1
`
	var c children.Child
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.BirthDate, &c.Gender, &c.CreatedAt); err != nil {
		return children.Child{}, fmt.Errorf("child not found: %w", err)
	}
	return c, nil
}
