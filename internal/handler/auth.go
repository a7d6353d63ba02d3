package handler

import (
	"errors"

	"github.com/expgenwoo218/aibuup24/internal/repository"
	"github.com/expgenwoo218/aibuup24/pkg"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/expgenwoo218/aibuup24/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignUp registers a profile and returns an access token. New members start
// at SILVER.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("signup: hash password", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	profile, err := h.Repo.Profile.Create(ctx, req.Email, pwHash, req.Nickname)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "email already registered")
			return
		}
		h.Logger.Error("signup: create profile", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "could not create profile")
		return
	}

	token, claims, err := h.TokenMaker.CreateToken(profile.ID, profile.Email, profile.Role, h.TokenTTL)
	if err != nil {
		h.Logger.Error("signup: create token", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	response.Created(c, gin.H{
		"profile": profile.Public(),
		"token": model.TokenRes{
			AccessToken: token,
			ExpiresAt:   claims.ExpiresAt.Unix(),
		},
	})
}

// Login verifies credentials and returns a JWT carrying the member's role.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	profile, err := h.Repo.Profile.GetByEmail(ctx, req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.CheckPassword(profile.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, claims, err := h.TokenMaker.CreateToken(profile.ID, profile.Email, profile.Role, h.TokenTTL)
	if err != nil {
		h.Logger.Error("login: create token", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{
		"profile": profile.Public(),
		"token": model.TokenRes{
			AccessToken: token,
			ExpiresAt:   claims.ExpiresAt.Unix(),
		},
	})
}

// Me returns the acting user's profile.
func (h *Handler) Me(c *gin.Context) {
	profile := h.GetProfileFromContext(c)
	if profile == nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, profile.Public())
}
