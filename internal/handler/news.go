package handler

import (
	"errors"

	"github.com/expgenwoo218/aibuup24/internal/fetcher"
	"github.com/expgenwoo218/aibuup24/internal/interview"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/expgenwoo218/aibuup24/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) ListNews(c *gin.Context) {
	news, err := h.Repo.News.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("list news", zap.Error(err))
		response.InternalError(c, "failed to fetch news")
		return
	}
	response.OK(c, news)
}

func (h *Handler) GetNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid news id")
		return
	}

	ctx := c.Request.Context()
	news, err := h.Repo.News.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "news not found")
			return
		}
		h.Logger.Error("get news", zap.String("news_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch news")
		return
	}

	comments, err := h.Repo.Comment.ListByNews(ctx, id)
	if err != nil {
		h.Logger.Error("get news: comments", zap.String("news_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch news")
		return
	}

	response.OK(c, gin.H{"news": news, "comments": comments})
}

func (h *Handler) CreateNews(c *gin.Context) {
	var req model.CreateNewsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	news, err := h.Repo.News.Create(c.Request.Context(), req.Title, req.Content, req.SourceURL)
	if err != nil {
		h.Logger.Error("create news", zap.Error(err))
		response.InternalError(c, "failed to create news")
		return
	}
	response.Created(c, news)
}

// ImportNews scrapes an external article and files it as a news entry for
// the admin to edit afterwards.
func (h *Handler) ImportNews(c *gin.Context) {
	var req model.ImportNewsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	article, err := fetcher.Fetch(req.URL, c.Request.UserAgent())
	if err != nil {
		h.Logger.Warn("import news: fetch", zap.String("url", req.URL), zap.Error(err))
		response.BadGateway(c, "failed to fetch article")
		return
	}

	news, err := h.Repo.News.Create(c.Request.Context(), article.Title, article.Content, article.SourceURL)
	if err != nil {
		h.Logger.Error("import news: save", zap.Error(err))
		response.InternalError(c, "failed to save news")
		return
	}
	response.Created(c, news)
}

func (h *Handler) UpdateNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid news id")
		return
	}

	var req model.CreateNewsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Repo.News.Update(c.Request.Context(), id, req.Title, req.Content, req.SourceURL); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "news not found")
			return
		}
		h.Logger.Error("update news", zap.String("news_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to update news")
		return
	}
	response.Message(c, "news updated")
}

func (h *Handler) DeleteNews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid news id")
		return
	}

	if err := h.Repo.News.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "news not found")
			return
		}
		h.Logger.Error("delete news", zap.String("news_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete news")
		return
	}
	response.Message(c, "news deleted")
}

func (h *Handler) CreateNewsComment(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid news id")
		return
	}

	var req model.CreateNewsCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.Repo.Comment.CreateNewsComment(c.Request.Context(), id, profile.ID, profile.AuthorName(), req.Text)
	if err != nil {
		h.Logger.Error("create news comment", zap.String("news_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to create comment")
		return
	}
	response.Created(c, comment)
}

func (h *Handler) DeleteNewsComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}
	if err := h.Repo.Comment.DeleteNewsComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, interview.ErrNotFound) {
			response.NotFound(c, "comment not found")
			return
		}
		h.Logger.Error("delete news comment", zap.String("comment_id", id.String()), zap.Error(err))
		response.InternalError(c, "failed to delete comment")
		return
	}
	response.Message(c, "comment deleted")
}
