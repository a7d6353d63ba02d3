package handler

import (
	"errors"

	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/internal/publish"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/expgenwoo218/aibuup24/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListCategories returns the writable board and GOLD-room categories.
func (h *Handler) ListCategories(c *gin.Context) {
	response.OK(c, gin.H{
		"board": model.BoardCategories,
		"vip":   model.VIPCategories,
	})
}

// CategoryTemplate returns the direct-write prefill for a category: the
// report skeleton built from its question script.
func (h *Handler) CategoryTemplate(c *gin.Context) {
	category := c.Param("name")
	if !model.IsKnownCategory(category) {
		response.NotFound(c, "unknown category")
		return
	}

	questions, err := interview.ResolveQuestions(c.Request.Context(), &h.Repo.Question, category)
	if err != nil {
		// recovered via the default script; log only
		h.Logger.Warn("category template: catalog fallback", zap.String("category", category), zap.Error(err))
	}

	response.OK(c, gin.H{
		"category": category,
		"template": interview.RenderTemplate(category, questions),
	})
}

func (h *Handler) ListPosts(c *gin.Context) {
	var q model.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	posts, total, err := h.Repo.Post.List(c.Request.Context(), q.Category, q.Page, q.PageSize)
	if err != nil {
		h.Logger.Error("list posts", zap.Error(err))
		response.InternalError(c, "failed to fetch posts")
		return
	}

	response.OKWithMeta(c, posts, &response.Meta{
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
		HasNext:  q.Page*q.PageSize < total,
	})
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	post, err := h.Repo.Post.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		h.Logger.Error("get post", zap.String("post_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch post")
		return
	}
	response.OK(c, post)
}

// CreatePost is the direct-write path: a hand-authored report submitted
// through the same gateway as the wizards.
func (h *Handler) CreatePost(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	var req model.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !model.IsKnownCategory(req.Category) {
		response.BadRequest(c, "unknown category")
		return
	}

	id, err := h.Publisher.Submit(c.Request.Context(), publish.SubmitInput{
		Acting:    *profile,
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		Result:    req.Result,
		Tool:      req.Tool,
		Cost:      req.Cost,
		DailyTime: req.DailyTime,
	})
	if err != nil {
		h.respondSubmitError(c, err, "create post")
		return
	}

	h.Logger.Info("post created",
		zap.String("post_id", id.String()),
		zap.String("category", req.Category),
		zap.String("user_id", profile.ID.String()),
	)
	response.Created(c, gin.H{"post_id": id})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !model.IsKnownCategory(req.Category) {
		response.BadRequest(c, "unknown category")
		return
	}

	err = h.Publisher.Revise(c.Request.Context(), id, publish.ReviseInput{
		Acting:    *profile,
		Category:  req.Category,
		Title:     req.Title,
		Content:   req.Content,
		Result:    req.Result,
		Tool:      req.Tool,
		Cost:      req.Cost,
		DailyTime: req.DailyTime,
	})
	if err != nil {
		h.respondSubmitError(c, err, "update post")
		return
	}
	response.Message(c, "post updated")
}

// DeletePost removes a post; allowed for the author or an admin.
func (h *Handler) DeletePost(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	ctx := c.Request.Context()
	post, err := h.Repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		h.Logger.Error("delete post: load", zap.String("post_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete post")
		return
	}
	if post.UserID != profile.ID && !profile.Role.IsAdmin() {
		response.Forbidden(c, "")
		return
	}

	if err := h.Repo.Post.Delete(ctx, id); err != nil {
		h.Logger.Error("delete post", zap.String("post_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete post")
		return
	}
	response.Message(c, "post deleted")
}

func (h *Handler) ListPostComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}
	comments, err := h.Repo.Comment.ListByPost(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("list comments", zap.String("post_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch comments")
		return
	}
	response.OK(c, comments)
}

func (h *Handler) CreatePostComment(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid post id")
		return
	}

	var req model.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.Repo.Comment.Create(c.Request.Context(), id, profile.ID, profile.AuthorName(), req.Text)
	if err != nil {
		h.Logger.Error("create comment", zap.String("post_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to create comment")
		return
	}
	response.Created(c, comment)
}

// DeletePostComment is admin moderation; authors cannot remove their own
// comments.
func (h *Handler) DeletePostComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}
	if err := h.Repo.Comment.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "comment not found")
			return
		}
		h.Logger.Error("delete comment", zap.String("comment_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete comment")
		return
	}
	response.Message(c, "comment deleted")
}

// respondSubmitError maps gateway failures onto the response taxonomy.
func (h *Handler) respondSubmitError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, interview.ErrPermissionDenied):
		response.Forbidden(c, "작성 권한이 없습니다.")
	case errors.Is(err, interview.ErrNotFound):
		response.NotFound(c, "")
	default:
		h.Logger.Error(op, zap.Error(err))
		response.InternalError(c, "저장 중 오류가 발생했습니다.")
	}
}
