package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func script(texts ...string) []ChatQuestion {
	out := make([]ChatQuestion, len(texts))
	for i, t := range texts {
		out[i] = ChatQuestion{ID: uuid.New(), Category: "자유수다", QuestionText: t, OrderIndex: i}
	}
	return out
}

func texts(questions []ChatQuestion) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.QuestionText
	}
	return out
}

func TestMoveAdjacentUp(t *testing.T) {
	qs := script("a", "b", "c")

	got, moved := MoveAdjacent(qs, 2, MoveUp)
	require.True(t, moved)
	assert.Equal(t, []string{"a", "c", "b"}, texts(got))
	for i, q := range got {
		assert.Equal(t, i, q.OrderIndex)
	}
}

func TestMoveAdjacentDown(t *testing.T) {
	qs := script("a", "b", "c")

	got, moved := MoveAdjacent(qs, 0, MoveDown)
	require.True(t, moved)
	assert.Equal(t, []string{"b", "a", "c"}, texts(got))
}

func TestMoveAdjacentBoundaryNoOp(t *testing.T) {
	qs := script("a", "b")

	got, moved := MoveAdjacent(qs, 0, MoveUp)
	assert.False(t, moved)
	assert.Nil(t, got)

	got, moved = MoveAdjacent(qs, 1, MoveDown)
	assert.False(t, moved)
	assert.Nil(t, got)

	_, moved = MoveAdjacent(qs, -1, MoveDown)
	assert.False(t, moved)
	_, moved = MoveAdjacent(qs, 5, MoveUp)
	assert.False(t, moved)
}

func TestMoveAdjacentDoesNotMutateInput(t *testing.T) {
	qs := script("a", "b", "c")
	qs[1].OrderIndex = 7 // gap from a prior delete

	got, moved := MoveAdjacent(qs, 1, MoveUp)
	require.True(t, moved)

	assert.Equal(t, []string{"a", "b", "c"}, texts(qs))
	assert.Equal(t, 7, qs[1].OrderIndex)
	// the reordered copy is renumbered contiguously
	assert.Equal(t, []string{"b", "a", "c"}, texts(got))
	for i, q := range got {
		assert.Equal(t, i, q.OrderIndex)
	}
}
