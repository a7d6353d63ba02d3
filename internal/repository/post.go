package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepository struct {
	db *pgxpool.Pool
}

const postColumns = `id, title, author, category, content, result, tool, cost, daily_time, user_id, likes, created_at`

func (r *PostRepository) Create(ctx context.Context, post *model.Post) (uuid.UUID, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	const q = `
INSERT INTO posts (id, title, author, category, content, result, tool, cost, daily_time, user_id, likes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`
	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		post.ID, post.Title, post.Author, post.Category, post.Content, post.Result,
		post.Tool, post.Cost, post.DailyTime, post.UserID, post.Likes, post.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	var p model.Post
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.Title, &p.Author, &p.Category, &p.Content, &p.Result,
		&p.Tool, &p.Cost, &p.DailyTime, &p.UserID, &p.Likes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, fmt.Errorf("%w: post %s", interview.ErrNotFound, id)
		}
		return model.Post{}, fmt.Errorf("scan post: %w", err)
	}
	return p, nil
}

// List returns newest-first posts, optionally narrowed to one category, plus
// the total row count for pagination.
func (r *PostRepository) List(ctx context.Context, category string, page, pageSize int) ([]model.Post, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	where := ""
	args := []any{}
	if category != "" {
		where = "WHERE category = $1"
		args = append(args, category)
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT count(*) FROM posts "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	q := fmt.Sprintf(
		"SELECT %s FROM posts %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		postColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	out, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query posts by user: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	const q = `
UPDATE posts
SET title = $1, category = $2, content = $3, result = $4, tool = $5, cost = $6, daily_time = $7
WHERE id = $8
`
	tag, err := r.db.Exec(ctx, q,
		post.Title, post.Category, post.Content, post.Result,
		post.Tool, post.Cost, post.DailyTime, post.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post %s", interview.ErrNotFound, post.ID)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: post %s", interview.ErrNotFound, id)
	}
	return nil
}

func collectPosts(rows pgx.Rows) ([]model.Post, error) {
	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Author, &p.Category, &p.Content, &p.Result,
			&p.Tool, &p.Cost, &p.DailyTime, &p.UserID, &p.Likes, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
