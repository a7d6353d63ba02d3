package model

import "github.com/google/uuid"

// ChatQuestion is one prompt in a category's interview script. Fetch order is
// order_index ascending; gaps are tolerated, ordering is by comparison not
// contiguity.
type ChatQuestion struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Category     string    `json:"category" db:"category"`
	QuestionText string    `json:"question_text" db:"question_text"`
	OrderIndex   int       `json:"order_index" db:"order_index"`
}

type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveAdjacent swaps questions[index] with its neighbor in the given direction
// and reassigns order indexes 0..n-1 across the whole list. It does not touch
// the input slice. The second return is false when the neighbor is out of
// bounds; callers must then skip persistence entirely.
func MoveAdjacent(questions []ChatQuestion, index int, dir MoveDirection) ([]ChatQuestion, bool) {
	target := index - 1
	if dir == MoveDown {
		target = index + 1
	}
	if index < 0 || index >= len(questions) || target < 0 || target >= len(questions) {
		return nil, false
	}

	out := make([]ChatQuestion, len(questions))
	copy(out, questions)
	out[index], out[target] = out[target], out[index]
	for i := range out {
		out[i].OrderIndex = i
	}
	return out, true
}

type AddQuestionReq struct {
	Category     string `json:"category" binding:"required"`
	QuestionText string `json:"question_text" binding:"required"`
}

type UpdateQuestionReq struct {
	QuestionText string `json:"question_text" binding:"required"`
}

type MoveQuestionReq struct {
	Category  string `json:"category" binding:"required"`
	Index     int    `json:"index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}
