package handler

import (
	"context"
	"time"

	"github.com/expgenwoo218/aibuup24/internal/auth"
	"github.com/expgenwoo218/aibuup24/internal/cache"
	"github.com/expgenwoo218/aibuup24/internal/publish"
	"github.com/expgenwoo218/aibuup24/internal/repository"
	"github.com/expgenwoo218/aibuup24/pkg"
	"github.com/expgenwoo218/aibuup24/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Synthesizer is the generative-text collaborator used by the proxy publish
// flow.
type Synthesizer interface {
	SynthesizeAnswers(ctx context.Context, persona model.Persona, questions []string) ([]string, error)
}

type Handler struct {
	Logger       *zap.Logger
	Repo         *repository.Repository
	TokenMaker   *auth.JWTMaker
	TokenTTL     time.Duration
	Sessions     *cache.SessionStore
	Publisher    *publish.Publisher
	Synth        Synthesizer
	SynthTimeout time.Duration
	Crypto       *pkg.Crypto
}

// GetProfileFromContext retrieves the acting user's profile, set by the auth
// middleware. Nil when the route is unauthenticated.
func (h *Handler) GetProfileFromContext(c *gin.Context) *model.Profile {
	v, exists := c.Get("profile")
	if !exists {
		return nil
	}
	p, ok := v.(*model.Profile)
	if !ok {
		return nil
	}
	return p
}
