package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author" db:"author"`
	Category  string    `json:"category" db:"category"`
	Content   string    `json:"content" db:"content"`
	Result    string    `json:"result" db:"result"`
	Tool      string    `json:"tool" db:"tool"`
	Cost      string    `json:"cost" db:"cost"`
	DailyTime string    `json:"daily_time" db:"daily_time"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreatePostReq struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Result    string `json:"result"`
	Tool      string `json:"tool"`
	Cost      string `json:"cost"`
	DailyTime string `json:"daily_time"`
}

type UpdatePostReq struct {
	Title     string `json:"title" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Result    string `json:"result"`
	Tool      string `json:"tool"`
	Cost      string `json:"cost"`
	DailyTime string `json:"daily_time"`
}

type ListPostsQuery struct {
	Category string `form:"cat"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}
