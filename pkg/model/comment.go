package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply on a community post. PostTitle is filled only by the
// admin activity view (joined from posts, "삭제된 게시글" when the post is gone).
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PostID    uuid.UUID `json:"post_id" db:"post_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Author    string    `json:"author" db:"author"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	PostTitle string    `json:"post_title,omitempty" db:"-"`
}

type CreateCommentReq struct {
	Text string `json:"text" binding:"required"`
}
