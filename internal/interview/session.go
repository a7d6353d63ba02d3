package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/google/uuid"
)

type Status string

const (
	StatusSelectingCategory Status = "SELECTING_CATEGORY"
	StatusAwaitingAnswer    Status = "AWAITING_ANSWER"
	StatusSynthesizing      Status = "SYNTHESIZING"
	StatusSubmitting        Status = "SUBMITTING"
	StatusComplete          Status = "COMPLETE"
)

type Kind string

const (
	KindCommunity  Kind = "community"
	KindScamReport Kind = "scam_report"
)

// Session is the transient state of one guided interview. It is a pure
// reducer: every network effect (catalog fetch, synthesis, submission) happens
// outside and feeds results back in. The question snapshot is taken once at
// category selection and never re-fetched mid-session. answers[i] is always
// the response to Questions[i]; answering is strictly sequential and skipping
// is not supported.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Kind        Kind       `json:"kind"`
	AuthorAlias string     `json:"author_alias,omitempty"`
	Category    string     `json:"category,omitempty"`
	Questions   []string   `json:"questions,omitempty"`
	Cursor      int        `json:"cursor"`
	Answers     []string   `json:"answers,omitempty"`
	Status      Status     `json:"status"`
	PostID      *uuid.UUID `json:"post_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewSession(userID uuid.UUID) *Session {
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      KindCommunity,
		Status:    StatusSelectingCategory,
		CreatedAt: time.Now().UTC(),
	}
}

// NewScamReportSession starts a scam-report interview. The category and the
// question script are fixed, so the session opens directly on the first
// question.
func NewScamReportSession(userID uuid.UUID, authorAlias string) *Session {
	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        KindScamReport,
		AuthorAlias: strings.TrimSpace(authorAlias),
		Category:    model.CategoryScamReport,
		Questions:   append([]string(nil), ScamReportQuestions...),
		Status:      StatusAwaitingAnswer,
		CreatedAt:   time.Now().UTC(),
	}
}

// SelectCategory resolves the category choice. Restricted categories require
// GOLD or better; on rejection the session stays at SELECTING_CATEGORY so the
// user can pick again.
func (s *Session) SelectCategory(category string, role model.Role, questions []string) error {
	if s.Status != StatusSelectingCategory {
		return fmt.Errorf("%w: status is %s", ErrSessionState, s.Status)
	}
	if model.IsRestrictedCategory(category) && !role.CanAuthorRestricted() {
		return fmt.Errorf("%w: %s requires GOLD or above", ErrPermissionDenied, category)
	}
	if len(questions) == 0 {
		return fmt.Errorf("%w: empty question set for %s", ErrCatalogUnavailable, category)
	}

	s.Category = category
	s.Questions = append([]string(nil), questions...)
	s.Cursor = 0
	s.Answers = nil
	s.Status = StatusAwaitingAnswer
	return nil
}

// CurrentQuestion returns the prompt awaiting an answer, or "" when none is.
func (s *Session) CurrentQuestion() string {
	if s.Status != StatusAwaitingAnswer || s.Cursor >= len(s.Questions) {
		return ""
	}
	return s.Questions[s.Cursor]
}

// SubmitAnswer records one answer. It returns true when every question has an
// answer and the session has moved to SUBMITTING; the caller must then run
// document assembly and persistence, followed by MarkComplete or MarkFailed.
// Retrying after MarkFailed re-enters here with a full answer list, in which
// case nothing is appended and the session goes straight back to SUBMITTING.
func (s *Session) SubmitAnswer(text string) (bool, error) {
	if s.Status != StatusAwaitingAnswer {
		return false, fmt.Errorf("%w: status is %s", ErrSessionState, s.Status)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false, ErrEmptyAnswer
	}

	if len(s.Answers) < len(s.Questions) {
		s.Answers = append(s.Answers, text)
	}
	if len(s.Answers) < len(s.Questions) {
		s.Cursor = len(s.Answers)
		return false, nil
	}

	s.Status = StatusSubmitting
	return true, nil
}

// BeginSynthesis moves a fresh session into the AI-answered path (the admin
// proxy flow): the question set is snapshotted and the session waits on a
// single synthesis call instead of per-question input.
func (s *Session) BeginSynthesis(category string, questions []string) error {
	if s.Status != StatusSelectingCategory {
		return fmt.Errorf("%w: status is %s", ErrSessionState, s.Status)
	}
	if len(questions) == 0 {
		return fmt.Errorf("%w: empty question set for %s", ErrCatalogUnavailable, category)
	}
	s.Category = category
	s.Questions = append([]string(nil), questions...)
	s.Status = StatusSynthesizing
	return nil
}

// FinishSynthesis installs synthesized answers and moves to SUBMITTING. The
// synthesizer gives no 1:1 line guarantee, so a short list is padded with
// empty slots; the renderer substitutes the placeholder for those.
func (s *Session) FinishSynthesis(answers []string) error {
	if s.Status != StatusSynthesizing {
		return fmt.Errorf("%w: status is %s", ErrSessionState, s.Status)
	}
	padded := make([]string, len(s.Questions))
	copy(padded, answers)
	s.Answers = padded
	s.Cursor = len(s.Questions)
	s.Status = StatusSubmitting
	return nil
}

// MarkComplete records the created post and terminates the session.
func (s *Session) MarkComplete(postID uuid.UUID) {
	s.PostID = &postID
	s.Status = StatusComplete
}

// MarkFailed returns a failed submission to AWAITING_ANSWER so the user can
// retry or abandon. The session never claims success when persistence failed.
func (s *Session) MarkFailed() {
	s.Status = StatusAwaitingAnswer
}

func (s *Session) State() model.ChatStateRes {
	return model.ChatStateRes{
		SessionID:     s.ID,
		Status:        string(s.Status),
		Category:      s.Category,
		Prompt:        s.CurrentQuestion(),
		QuestionIndex: s.Cursor,
		QuestionCount: len(s.Questions),
		PostID:        s.PostID,
	}
}
