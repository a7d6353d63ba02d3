package repository

import (
	"context"
	"fmt"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuestionRepository struct {
	db *pgxpool.Pool
}

func (r *QuestionRepository) ListByCategory(ctx context.Context, category string) ([]model.ChatQuestion, error) {
	const q = `
SELECT id, category, question_text, order_index
FROM chat_questions
WHERE category = $1
ORDER BY order_index ASC
`
	rows, err := r.db.Query(ctx, q, category)
	if err != nil {
		return nil, fmt.Errorf("query chat_questions: %w", err)
	}
	defer rows.Close()

	var out []model.ChatQuestion
	for rows.Next() {
		var cq model.ChatQuestion
		if err := rows.Scan(&cq.ID, &cq.Category, &cq.QuestionText, &cq.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan chat_question: %w", err)
		}
		out = append(out, cq)
	}
	return out, rows.Err()
}

// Create appends a question at the end of a category's script: the new row's
// order_index equals the current list length.
func (r *QuestionRepository) Create(ctx context.Context, category, text string, orderIndex int) (model.ChatQuestion, error) {
	cq := model.ChatQuestion{
		ID:           uuid.New(),
		Category:     category,
		QuestionText: text,
		OrderIndex:   orderIndex,
	}
	const q = `
INSERT INTO chat_questions (id, category, question_text, order_index)
VALUES ($1, $2, $3, $4)
`
	if _, err := r.db.Exec(ctx, q, cq.ID, cq.Category, cq.QuestionText, cq.OrderIndex); err != nil {
		return model.ChatQuestion{}, fmt.Errorf("insert chat_question: %w", err)
	}
	return cq, nil
}

func (r *QuestionRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	tag, err := r.db.Exec(ctx, `UPDATE chat_questions SET question_text = $1 WHERE id = $2`, text, id)
	if err != nil {
		return fmt.Errorf("update chat_question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: question %s", interview.ErrNotFound, id)
	}
	return nil
}

// Delete removes a question without renumbering its siblings; order gaps are
// fine since fetches sort by comparison.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM chat_questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chat_question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: question %s", interview.ErrNotFound, id)
	}
	return nil
}

// SaveOrder rewrites order_index for every entry of a reordered list in one
// batch. A partial failure may leave stored and in-memory orders diverged;
// callers treat that as retryable-from-scratch and re-fetch before retrying.
func (r *QuestionRepository) SaveOrder(ctx context.Context, questions []model.ChatQuestion) error {
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const q = `UPDATE chat_questions SET order_index = $1 WHERE id = $2`
	for _, cq := range questions {
		batch.Queue(q, cq.OrderIndex, cq.ID)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := range questions {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch update order_index %d: %w", i, err)
		}
	}
	return nil
}
