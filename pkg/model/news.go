package model

import (
	"time"

	"github.com/google/uuid"
)

type News struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	SourceURL string    `json:"source_url" db:"source_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type NewsComment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	NewsID    uuid.UUID `json:"news_id" db:"news_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Author    string    `json:"author" db:"author"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateNewsReq struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	SourceURL string `json:"source_url"`
}

type ImportNewsReq struct {
	URL string `json:"url" binding:"required,url"`
}

type CreateNewsCommentReq struct {
	Text string `json:"text" binding:"required"`
}
