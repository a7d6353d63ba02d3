package main

import (
	"fmt"
	"strings"

	"github.com/expgenwoo218/aibuup24/internal/auth"
	"github.com/expgenwoo218/aibuup24/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and loads a fresh profile so role
// changes take effect without re-login.
func (app *application) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Handler.TokenMaker)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		profile, err := app.Repository.Profile.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "unauthorized access")
			c.Abort()
			return
		}

		c.Set("profile", &profile)
		c.Next()
	}
}

func (app *application) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyClaimsFromAuthHeader(c, app.Handler.TokenMaker)
		if err != nil {
			response.Unauthorized(c, err.Error())
			c.Abort()
			return
		}

		profile, err := app.Repository.Profile.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "unauthorized access")
			c.Abort()
			return
		}
		if !profile.Role.IsAdmin() {
			response.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set("profile", &profile)
		c.Next()
	}
}

func verifyClaimsFromAuthHeader(c *gin.Context, tokenMaker *auth.JWTMaker) (*auth.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is missing")
	}

	fields := strings.Fields(authHeader)
	if len(fields) != 2 || fields[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header")
	}

	claims, err := tokenMaker.VerifyToken(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}
