package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/seahorse/auth/authctx"
	"github.com/skillsenselab/seahorse/auth/jwt"
	apperrors "github.com/skillsenselab/seahorse/errors"
)

// AuthConfig configures the authentication middleware.
type AuthConfig struct {
	// Verifier validates candidate tokens.
	Verifier *jwt.Verifier
	// CookieName is the session cookie carrying the token.
	CookieName string
}

// Authenticate returns middleware that gates requests on a valid identity
// token. The session cookie takes precedence; otherwise the Authorization
// header must carry the Bearer scheme. Every verification failure reads as
// 401: an invalid token must not be distinguishable from a missing one.
// Verified claims are attached to the request context for downstream
// handlers.
func Authenticate(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, appErr := extractToken(c, cfg.CookieName)
		if appErr != nil {
			abort(c, appErr)
			return
		}

		claims, err := cfg.Verifier.Verify(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				abort(c, apperrors.TokenExpired())
			} else {
				abort(c, apperrors.InvalidToken())
			}
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Set("user_id", claims.ID)
		c.Next()
	}
}

// extractToken resolves the candidate token: cookie first, then Bearer header.
func extractToken(c *gin.Context, cookieName string) (string, *apperrors.AppError) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return "", apperrors.Unauthorized("")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", apperrors.Unauthorized("")
	}
	return parts[1], nil
}

func abort(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}
