package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/twkim02/todoc-chat-ai/pkg/model"
)

// PostRepository is the concrete implementation for community posts.
type PostRepository struct {
	db *pgxpool.Pool
}

// Create inserts a post and fills in its id and creation time.
func (r *PostRepository) Create(ctx context.Context, p *model.Post) error {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	const q = `
INSERT INTO posts (id, user_id, author, category, title, content, preview, tags, likes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9)
`
	_, err := r.db.Exec(ctx, q, p.ID, p.UserID, p.Author, p.Category, p.Title, p.Content, p.Preview, p.Tags, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// List returns a page of posts, newest first, optionally filtered by category.
func (r *PostRepository) List(ctx context.Context, category string, limit, offset int) ([]model.Post, int, error) {
	var total int
	const countQ = `SELECT COUNT(*) FROM posts WHERE ($1 = '' OR category = $1)`
	if err := r.db.QueryRow(ctx, countQ, category).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	const q = `
SELECT id, user_id, author, category, title, content, preview, tags, likes, created_at
FROM posts
WHERE ($1 = '' OR category = $1)
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.db.Query(ctx, q, category, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0, 8)
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Author, &p.Category, &p.Title, &p.Content,
			&p.Preview, &p.Tags, &p.Likes, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan post row: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

// Like increments the like counter and returns the new count.
func (r *PostRepository) Like(ctx context.Context, id string) (int, error) {
	const q = `UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`
	var likes int
	if err := r.db.QueryRow(ctx, q, id).Scan(&likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("post not found: %w", err)
		}
		return 0, fmt.Errorf("like post: %w", err)
	}
	return likes, nil
}
