package model

import "github.com/google/uuid"

type SelectCategoryReq struct {
	Category string `json:"category" binding:"required"`
}

type ChatAnswerReq struct {
	Text string `json:"text" binding:"required"`
}

type StartScamReportReq struct {
	AuthorAlias string `json:"author_alias"`
}

// ChatStateRes is what the wizard client renders after every turn.
type ChatStateRes struct {
	SessionID     uuid.UUID  `json:"session_id"`
	Status        string     `json:"status"`
	Category      string     `json:"category,omitempty"`
	Prompt        string     `json:"prompt,omitempty"`
	QuestionIndex int        `json:"question_index"`
	QuestionCount int        `json:"question_count"`
	PostID        *uuid.UUID `json:"post_id,omitempty"`
}
