package handler

import (
	"context"
	"errors"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/internal/publish"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/expgenwoo218/aibuup24/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResultRecorded is the result stamp for reports assembled by the community
// wizard.
const ResultRecorded = "기록 완료"

// StartChat opens a community wizard session at category selection.
func (h *Handler) StartChat(c *gin.Context) {
	profile := h.GetProfileFromContext(c)

	sess := interview.NewSession(profile.ID)
	if err := h.Sessions.Save(c.Request.Context(), sess); err != nil {
		h.Logger.Error("start chat: save session", zap.Error(err))
		response.InternalError(c, "failed to start session")
		return
	}

	response.Created(c, gin.H{
		"state":      sess.State(),
		"categories": model.AllCategories(),
	})
}

// StartScamReport opens a scam-report session. The category and question
// script are fixed, so the first prompt is returned immediately.
func (h *Handler) StartScamReport(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	var req model.StartScamReportReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.BadRequest(c, "invalid request body")
		return
	}

	sess := interview.NewScamReportSession(profile.ID, req.AuthorAlias)
	if err := h.Sessions.Save(c.Request.Context(), sess); err != nil {
		h.Logger.Error("start scam report: save session", zap.Error(err))
		response.InternalError(c, "failed to start session")
		return
	}
	response.Created(c, gin.H{"state": sess.State()})
}

// ChatSelectCategory resolves the category pick: snapshots the question
// script and emits the first prompt. A restricted category below the user's
// tier leaves the session at category selection.
func (h *Handler) ChatSelectCategory(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	sess, ok := h.loadOwnedSession(c, profile)
	if !ok {
		return
	}

	var req model.SelectCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !model.IsKnownCategory(req.Category) {
		response.BadRequest(c, "unknown category")
		return
	}

	ctx := c.Request.Context()
	questions, cerr := interview.ResolveQuestions(ctx, &h.Repo.Question, req.Category)
	if cerr != nil {
		// default script substituted; the session proceeds
		h.Logger.Warn("chat: catalog fallback", zap.String("category", req.Category), zap.Error(cerr))
	}

	if err := sess.SelectCategory(req.Category, profile.Role, questions); err != nil {
		if errors.Is(err, interview.ErrPermissionDenied) {
			response.Forbidden(c, "⚠️ 고수의 방은 GOLD 등급 이상만 작성이 가능합니다.")
			return
		}
		response.Conflict(c, "category already selected")
		return
	}

	if err := h.Sessions.Save(ctx, sess); err != nil {
		h.Logger.Error("chat: save session", zap.Error(err))
		response.InternalError(c, "failed to save session")
		return
	}
	response.OK(c, gin.H{"state": sess.State()})
}

// ChatAnswer records one answer. When the script is exhausted the report is
// assembled and submitted; a submission failure returns the session to
// AWAITING_ANSWER so the user can retry, never claiming success.
func (h *Handler) ChatAnswer(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	sess, ok := h.loadOwnedSession(c, profile)
	if !ok {
		return
	}

	var req model.ChatAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	done, err := sess.SubmitAnswer(req.Text)
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrEmptyAnswer):
			response.BadRequest(c, "답변을 입력해주세요.")
		case errors.Is(err, interview.ErrSessionState):
			response.Conflict(c, "session is not awaiting an answer")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	if !done {
		if err := h.Sessions.Save(ctx, sess); err != nil {
			h.Logger.Error("chat: save session", zap.Error(err))
			response.InternalError(c, "failed to save session")
			return
		}
		response.OK(c, gin.H{"state": sess.State()})
		return
	}

	postID, err := h.submitSession(ctx, profile, sess)
	if err != nil {
		sess.MarkFailed()
		if serr := h.Sessions.Save(ctx, sess); serr != nil {
			h.Logger.Error("chat: save failed session", zap.Error(serr))
		}
		h.Logger.Error("chat: submission failed",
			zap.String("session_id", sess.ID.String()),
			zap.Error(err),
		)
		h.respondSubmitError(c, err, "chat submission")
		return
	}

	sess.MarkComplete(postID)
	// session is transient; only the post outlives it
	if err := h.Sessions.Delete(ctx, sess.ID); err != nil {
		h.Logger.Warn("chat: delete session", zap.Error(err))
	}

	h.Logger.Info("chat: report published",
		zap.String("session_id", sess.ID.String()),
		zap.String("post_id", postID.String()),
		zap.String("category", sess.Category),
	)
	response.OK(c, gin.H{"state": sess.State()})
}

// GetChatState returns the wizard's current prompt and progress.
func (h *Handler) GetChatState(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	sess, ok := h.loadOwnedSession(c, profile)
	if !ok {
		return
	}
	response.OK(c, gin.H{"state": sess.State()})
}

// submitSession assembles the finished interview into a report and pushes it
// through the submission gateway.
func (h *Handler) submitSession(ctx context.Context, profile *model.Profile, sess *interview.Session) (uuid.UUID, error) {
	answer := func(i int) string {
		if i < len(sess.Answers) {
			return sess.Answers[i]
		}
		return ""
	}

	in := publish.SubmitInput{
		Acting:   *profile,
		Category: sess.Category,
	}

	switch sess.Kind {
	case interview.KindScamReport:
		in.Title = interview.ScamReportTitle(sess.Answers)
		in.Content = interview.RenderScamReport(sess.Answers)
		in.Result = interview.ScamReportResult
		in.Cost = answer(1)
		in.AuthorAlias = sess.AuthorAlias
	default:
		in.Title = interview.DeriveTitle(sess.Category, sess.Answers)
		in.Content = interview.RenderReport(sess.Category, sess.Questions, sess.Answers)
		in.Result = ResultRecorded
		in.Tool = answer(2)
		in.DailyTime = answer(3)
	}

	return h.Publisher.Submit(ctx, in)
}

// loadOwnedSession fetches the session named in the path and checks it
// belongs to the acting user. Foreign sessions read as not found.
func (h *Handler) loadOwnedSession(c *gin.Context, profile *model.Profile) (*interview.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return nil, false
	}

	sess, err := h.Sessions.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "session not found or expired")
			return nil, false
		}
		h.Logger.Error("load session", zap.String("session_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to load session")
		return nil, false
	}
	if sess.UserID != profile.ID {
		response.NotFound(c, "session not found or expired")
		return nil, false
	}
	return sess, true
}
