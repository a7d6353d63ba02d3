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

func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.Repo.Profile.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("admin: list profiles", zap.Error(err))
		response.InternalError(c, "failed to fetch profiles")
		return
	}

	out := make([]model.ProfileRes, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Public())
	}
	response.OK(c, out)
}

// GetUserActivity is the member audit view: profile, persona memo, authored
// posts, and comments with the titles of the posts they reply to.
func (h *Handler) GetUserActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	ctx := c.Request.Context()
	profile, err := h.Repo.Profile.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "member not found")
			return
		}
		h.Logger.Error("admin: get profile", zap.String("user_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch member")
		return
	}

	memo := ""
	if profile.PersonaMemo != "" {
		memo, err = h.Crypto.Decrypt(profile.PersonaMemo)
		if err != nil {
			// memo predates encryption or the key rotated; show nothing rather than garbage
			h.Logger.Warn("admin: decrypt persona memo", zap.String("user_id", id.String()), zap.Error(err))
			memo = ""
		}
	}

	posts, err := h.Repo.Post.ListByUser(ctx, id)
	if err != nil {
		h.Logger.Error("admin: list user posts", zap.String("user_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch member activity")
		return
	}
	comments, err := h.Repo.Comment.ListByUser(ctx, id)
	if err != nil {
		h.Logger.Error("admin: list user comments", zap.String("user_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch member activity")
		return
	}

	response.OK(c, gin.H{
		"profile":      profile.Public(),
		"persona_memo": memo,
		"posts":        posts,
		"comments":     comments,
	})
}

// SavePersonaMemo stores the admin-private note about a member, encrypted at
// rest.
func (h *Handler) SavePersonaMemo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req model.PersonaMemoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sealed := ""
	if req.Memo != "" {
		sealed, err = h.Crypto.Encrypt(req.Memo)
		if err != nil {
			h.Logger.Error("admin: encrypt persona memo", zap.Error(err))
			response.InternalError(c, "failed to save memo")
			return
		}
	}

	if err := h.Repo.Profile.UpdatePersonaMemo(c.Request.Context(), id, sealed); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "member not found")
			return
		}
		h.Logger.Error("admin: save persona memo", zap.String("user_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to save memo")
		return
	}
	response.Message(c, "persona memo saved")
}

func (h *Handler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req model.UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.Repo.Profile.UpdateRole(c.Request.Context(), id, role); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "member not found")
			return
		}
		h.Logger.Error("admin: update role", zap.String("user_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to update role")
		return
	}
	response.Message(c, "role updated")
}

// ProxyPublish runs the AI-answered pipeline on behalf of another member:
// resolve the category script, synthesize one answer per question from the
// persona, render the report, and submit it under the target's identity. The
// acting admin appears nowhere in the stored record.
func (h *Handler) ProxyPublish(c *gin.Context) {
	acting := h.GetProfileFromContext(c)
	var req model.ProxyPublishReq
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
		h.Logger.Warn("proxy publish: catalog fallback", zap.String("category", req.Category), zap.Error(cerr))
	}

	sess := interview.NewSession(acting.ID)
	if err := sess.BeginSynthesis(req.Category, questions); err != nil {
		response.InternalError(c, "failed to start synthesis")
		return
	}

	synthCtx, cancel := context.WithTimeout(ctx, h.SynthTimeout)
	defer cancel()
	answers, err := h.Synth.SynthesizeAnswers(synthCtx, req.Persona, questions)
	if err != nil {
		h.Logger.Error("proxy publish: synthesis failed",
			zap.String("category", req.Category),
			zap.Error(err),
		)
		response.BadGateway(c, "리포트 생성에 실패했습니다.")
		return
	}
	if err := sess.FinishSynthesis(answers); err != nil {
		response.InternalError(c, "failed to record synthesis")
		return
	}

	answer := func(i int) string {
		if i < len(answers) {
			return answers[i]
		}
		return ""
	}

	postID, err := h.Publisher.Submit(ctx, publish.SubmitInput{
		Acting:      *acting,
		TargetEmail: req.TargetEmail,
		Category:    req.Category,
		Title:       interview.DeriveTitle(req.Category, answers),
		Content:     interview.RenderReport(req.Category, sess.Questions, sess.Answers),
		Result:      ResultRecorded,
		Tool:        answer(2),
		DailyTime:   answer(3),
	})
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrNotFound):
			response.NotFound(c, "no member with that email")
		case errors.Is(err, interview.ErrPermissionDenied):
			response.Forbidden(c, "")
		default:
			h.Logger.Error("proxy publish: submit", zap.Error(err))
			response.InternalError(c, "failed to publish report")
		}
		return
	}

	sess.MarkComplete(postID)
	h.Logger.Info("proxy publish: report published",
		zap.String("post_id", postID.String()),
		zap.String("category", req.Category),
		zap.String("target_email", req.TargetEmail),
	)
	response.Created(c, gin.H{"post_id": postID, "state": sess.State()})
}

// ListQuestions returns one category's interview script for editing.
func (h *Handler) ListQuestions(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		response.BadRequest(c, "category is required")
		return
	}

	questions, err := h.Repo.Question.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.Logger.Error("admin: list questions", zap.String("category", category), zap.Error(err))
		response.InternalError(c, "failed to fetch questions")
		return
	}
	response.OK(c, questions)
}

// AddQuestion appends to a category's script; the new entry's order index is
// the current list length.
func (h *Handler) AddQuestion(c *gin.Context) {
	var req model.AddQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Repo.Question.ListByCategory(ctx, req.Category)
	if err != nil {
		h.Logger.Error("admin: add question: list", zap.String("category", req.Category), zap.Error(err))
		response.InternalError(c, "failed to add question")
		return
	}

	question, err := h.Repo.Question.Create(ctx, req.Category, req.QuestionText, len(existing))
	if err != nil {
		h.Logger.Error("admin: add question", zap.String("category", req.Category), zap.Error(err))
		response.InternalError(c, "failed to add question")
		return
	}
	response.Created(c, question)
}

func (h *Handler) UpdateQuestionText(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	var req model.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Repo.Question.UpdateText(c.Request.Context(), id, req.QuestionText); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "question not found")
			return
		}
		h.Logger.Error("admin: update question", zap.String("question_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to update question")
		return
	}
	response.Message(c, "question updated")
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	if err := h.Repo.Question.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "question not found")
			return
		}
		h.Logger.Error("admin: delete question", zap.String("question_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete question")
		return
	}
	response.Message(c, "question deleted")
}

// MoveQuestion swaps a question with its neighbor and persists the rewritten
// order. A move past either end is a no-op and issues no writes. If the
// batched rewrite fails midway the stored order may diverge; the client
// re-fetches and retries from scratch.
func (h *Handler) MoveQuestion(c *gin.Context) {
	var req model.MoveQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	questions, err := h.Repo.Question.ListByCategory(ctx, req.Category)
	if err != nil {
		h.Logger.Error("admin: move question: list", zap.String("category", req.Category), zap.Error(err))
		response.InternalError(c, "failed to reorder questions")
		return
	}

	reordered, moved := model.MoveAdjacent(questions, req.Index, model.MoveDirection(req.Direction))
	if !moved {
		response.OK(c, questions)
		return
	}

	if err := h.Repo.Question.SaveOrder(ctx, reordered); err != nil {
		h.Logger.Error("admin: move question: save order",
			zap.String("category", req.Category),
			zap.Int("index", req.Index),
			zap.Error(err),
		)
		response.InternalError(c, "순서 변경 실패: 목록을 새로고침 후 다시 시도해주세요.")
		return
	}
	response.OK(c, reordered)
}
