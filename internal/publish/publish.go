// Package publish is the record submission gateway: the single path through
// which assembled reports become rows in posts, whether authored by the user
// or proxied by an admin onto another member's identity.
package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
)

type PostStore interface {
	Create(ctx context.Context, post *model.Post) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Post, error)
	Update(ctx context.Context, post *model.Post) error
}

type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (model.Profile, error)
}

type Publisher struct {
	Posts    PostStore
	Profiles ProfileStore
}

func NewPublisher(posts PostStore, profiles ProfileStore) *Publisher {
	return &Publisher{Posts: posts, Profiles: profiles}
}

type SubmitInput struct {
	Acting      model.Profile
	TargetEmail string // set only on the admin proxy path
	AuthorAlias string // optional display-name override (scam wizard)
	Category    string
	Title       string
	Content     string
	Result      string
	Tool        string
	Cost        string
	DailyTime   string
}

// Submit inserts exactly one record. On the proxy path the record's author
// and user_id are the target's; the acting admin appears nowhere in the
// stored row. Target lookup failure aborts before any write. The restricted
// tier check is re-applied here as a second gate behind the UI: the target
// must hold the tier unless the acting identity is an administrator.
func (p *Publisher) Submit(ctx context.Context, in SubmitInput) (uuid.UUID, error) {
	target := in.Acting
	if in.TargetEmail != "" && !strings.EqualFold(in.TargetEmail, in.Acting.Email) {
		if !in.Acting.Role.IsAdmin() {
			return uuid.Nil, fmt.Errorf("%w: proxy submission requires ADMIN", interview.ErrPermissionDenied)
		}
		t, err := p.Profiles.GetByEmail(ctx, in.TargetEmail)
		if err != nil {
			if errors.Is(err, interview.ErrNotFound) {
				return uuid.Nil, fmt.Errorf("%w: no member with email %s", interview.ErrNotFound, in.TargetEmail)
			}
			return uuid.Nil, fmt.Errorf("%w: target lookup: %v", interview.ErrSubmissionFailed, err)
		}
		target = t
	}

	if model.IsRestrictedCategory(in.Category) &&
		!target.Role.CanAuthorRestricted() && !in.Acting.Role.IsAdmin() {
		return uuid.Nil, fmt.Errorf("%w: %s requires GOLD or above", interview.ErrPermissionDenied, in.Category)
	}

	author := target.AuthorName()
	if strings.TrimSpace(in.AuthorAlias) != "" {
		author = strings.TrimSpace(in.AuthorAlias)
	}

	post := &model.Post{
		Title:     in.Title,
		Author:    author,
		Category:  in.Category,
		Content:   in.Content,
		Result:    in.Result,
		Tool:      in.Tool,
		Cost:      in.Cost,
		DailyTime: in.DailyTime,
		UserID:    target.ID,
		Likes:     0,
		CreatedAt: time.Now().UTC(),
	}

	id, err := p.Posts.Create(ctx, post)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", interview.ErrSubmissionFailed, err)
	}
	return id, nil
}

type ReviseInput struct {
	Acting    model.Profile
	Category  string
	Title     string
	Content   string
	Result    string
	Tool      string
	Cost      string
	DailyTime string
}

// Revise applies the edit flow: one update on an existing record. Only the
// owner or an admin may edit, and the tier gate applies to the new category.
// Author and user_id are never touched by an edit.
func (p *Publisher) Revise(ctx context.Context, postID uuid.UUID, in ReviseInput) error {
	existing, err := p.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: load post: %v", interview.ErrSubmissionFailed, err)
	}

	if existing.UserID != in.Acting.ID && !in.Acting.Role.IsAdmin() {
		return fmt.Errorf("%w: not the author", interview.ErrPermissionDenied)
	}
	if model.IsRestrictedCategory(in.Category) && !in.Acting.Role.CanAuthorRestricted() {
		return fmt.Errorf("%w: %s requires GOLD or above", interview.ErrPermissionDenied, in.Category)
	}

	existing.Title = in.Title
	existing.Category = in.Category
	existing.Content = in.Content
	existing.Result = in.Result
	existing.Tool = in.Tool
	existing.Cost = in.Cost
	existing.DailyTime = in.DailyTime

	if err := p.Posts.Update(ctx, &existing); err != nil {
		return fmt.Errorf("%w: %v", interview.ErrSubmissionFailed, err)
	}
	return nil
}
