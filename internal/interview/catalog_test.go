package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuestionSource struct {
	rows []model.ChatQuestion
	err  error
}

func (s *stubQuestionSource) ListByCategory(ctx context.Context, category string) ([]model.ChatQuestion, error) {
	return s.rows, s.err
}

func q(text string, order int) model.ChatQuestion {
	return model.ChatQuestion{ID: uuid.New(), Category: "자유수다", QuestionText: text, OrderIndex: order}
}

func TestResolveQuestionsOrdered(t *testing.T) {
	src := &stubQuestionSource{rows: []model.ChatQuestion{q("둘째", 5), q("첫째", 0), q("셋째", 9)}}

	got, err := ResolveQuestions(context.Background(), src, "자유수다")
	require.NoError(t, err)
	assert.Equal(t, []string{"첫째", "둘째", "셋째"}, got)
}

func TestResolveQuestionsEmptyFallsBack(t *testing.T) {
	got, err := ResolveQuestions(context.Background(), &stubQuestionSource{}, "자유수다")
	require.NoError(t, err)
	assert.Equal(t, DefaultQuestions, got)
}

func TestResolveQuestionsErrorFallsBack(t *testing.T) {
	src := &stubQuestionSource{err: errors.New("connection refused")}

	got, err := ResolveQuestions(context.Background(), src, "자유수다")
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	// the script is still usable; the error is for logging only
	assert.Equal(t, DefaultQuestions, got)
	assert.NotEmpty(t, got)
}
