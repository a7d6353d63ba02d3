package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsRepository struct {
	db *pgxpool.Pool
}

func (r *NewsRepository) List(ctx context.Context) ([]model.News, error) {
	const q = `
SELECT id, title, content, coalesce(source_url, ''), created_at
FROM news
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	var out []model.News
	for rows.Next() {
		var n model.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.SourceURL, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NewsRepository) GetByID(ctx context.Context, id uuid.UUID) (model.News, error) {
	const q = `
SELECT id, title, content, coalesce(source_url, ''), created_at
FROM news
WHERE id = $1
`
	var n model.News
	err := r.db.QueryRow(ctx, q, id).Scan(&n.ID, &n.Title, &n.Content, &n.SourceURL, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.News{}, fmt.Errorf("%w: news %s", interview.ErrNotFound, id)
		}
		return model.News{}, fmt.Errorf("scan news: %w", err)
	}
	return n, nil
}

func (r *NewsRepository) Create(ctx context.Context, title, content, sourceURL string) (model.News, error) {
	n := model.News{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		SourceURL: sourceURL,
		CreatedAt: time.Now().UTC(),
	}
	const q = `
INSERT INTO news (id, title, content, source_url, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	if _, err := r.db.Exec(ctx, q, n.ID, n.Title, n.Content, n.SourceURL, n.CreatedAt); err != nil {
		return model.News{}, fmt.Errorf("insert news: %w", err)
	}
	return n, nil
}

func (r *NewsRepository) Update(ctx context.Context, id uuid.UUID, title, content, sourceURL string) error {
	const q = `UPDATE news SET title = $1, content = $2, source_url = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, q, title, content, sourceURL, id)
	if err != nil {
		return fmt.Errorf("update news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: news %s", interview.ErrNotFound, id)
	}
	return nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: news %s", interview.ErrNotFound, id)
	}
	return nil
}
