package account

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/seahorse/auth/authctx"
	"github.com/skillsenselab/seahorse/auth/jwt"
	apperrors "github.com/skillsenselab/seahorse/errors"
	"github.com/skillsenselab/seahorse/server"
)

// CookieConfig controls the session cookie set on successful register/login.
type CookieConfig struct {
	// Name of the cookie (default: "seahorse").
	Name string
	// TTL is the cookie lifetime. Configured separately from the token
	// lifetime; an expired cookie simply stops being sent while the token it
	// carried may still verify, and vice versa.
	TTL time.Duration
	// Secure marks the cookie for HTTPS-only transport.
	Secure bool
}

// ApplyDefaults fills in zero-value fields.
func (c *CookieConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "seahorse"
	}
	if c.TTL == 0 {
		c.TTL = 10 * time.Minute
	}
}

// Handler exposes the account flows over HTTP.
type Handler struct {
	svc    *Service
	cookie CookieConfig
}

// NewHandler creates the account HTTP handler.
func NewHandler(svc *Service, cookie CookieConfig) *Handler {
	cookie.ApplyDefaults()
	return &Handler{svc: svc, cookie: cookie}
}

// RegisterRoutes mounts the account routes. Routes registered behind authMW
// require a verified identity.
func (h *Handler) RegisterRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	grp := r.Group("/api/auth")
	grp.POST("/register", h.Register)
	grp.POST("/login", h.Login)
	grp.GET("/me", authMW, h.Me)
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
	FirstName     string `json:"firstName,omitempty"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body must be valid JSON."))
		return
	}

	result, err := h.svc.Register(c.Request.Context(), RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, authResponse{Authenticated: true, Token: result.Token})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Request body must be valid JSON."))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, authResponse{
		Authenticated: true,
		Token:         result.Token,
		FirstName:     result.FirstName,
	})
}

// Me handles GET /api/auth/me: it echoes the verified identity attached by
// the authentication middleware.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := authctx.Get[*jwt.Claims](c.Request.Context())
	if !ok {
		server.RespondWithError(c, apperrors.Unauthorized(""))
		return
	}
	server.RespondOK(c, gin.H{"id": claims.ID, "name": claims.Name})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
}
