package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	const q = `
SELECT id, post_id, user_id, author, text, created_at
FROM comments
WHERE post_id = $1
ORDER BY created_at ASC
`
	rows, err := r.db.Query(ctx, q, postID)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListByUser is the admin activity view: each comment carries the title of
// the post it replies to, or a tombstone label when the post is gone.
func (r *CommentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Comment, error) {
	const q = `
SELECT c.id, c.post_id, c.user_id, c.author, c.text, c.created_at,
       coalesce(p.title, '삭제된 게시글')
FROM comments c
LEFT JOIN posts p ON p.id = c.post_id
WHERE c.user_id = $1
ORDER BY c.created_at DESC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query comments by user: %w", err)
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Author, &c.Text, &c.CreatedAt, &c.PostTitle); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, postID, userID uuid.UUID, author, text string) (model.Comment, error) {
	c := model.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	const q = `
INSERT INTO comments (id, post_id, user_id, author, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	if _, err := r.db.Exec(ctx, q, c.ID, c.PostID, c.UserID, c.Author, c.Text, c.CreatedAt); err != nil {
		return model.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: comment %s", interview.ErrNotFound, id)
	}
	return nil
}

func (r *CommentRepository) ListByNews(ctx context.Context, newsID uuid.UUID) ([]model.NewsComment, error) {
	const q = `
SELECT id, news_id, user_id, author, text, created_at
FROM news_comments
WHERE news_id = $1
ORDER BY created_at ASC
`
	rows, err := r.db.Query(ctx, q, newsID)
	if err != nil {
		return nil, fmt.Errorf("query news_comments: %w", err)
	}
	defer rows.Close()

	var out []model.NewsComment
	for rows.Next() {
		var c model.NewsComment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.UserID, &c.Author, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan news_comment: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CommentRepository) CreateNewsComment(ctx context.Context, newsID, userID uuid.UUID, author, text string) (model.NewsComment, error) {
	c := model.NewsComment{
		ID:        uuid.New(),
		NewsID:    newsID,
		UserID:    userID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	const q = `
INSERT INTO news_comments (id, news_id, user_id, author, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	if _, err := r.db.Exec(ctx, q, c.ID, c.NewsID, c.UserID, c.Author, c.Text, c.CreatedAt); err != nil {
		return model.NewsComment{}, fmt.Errorf("insert news_comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) DeleteNewsComment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news_comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: news comment %s", interview.ErrNotFound, id)
	}
	return nil
}
