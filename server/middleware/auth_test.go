package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/seahorse/auth/authctx"
	"github.com/skillsenselab/seahorse/auth/jwt"
	apperrors "github.com/skillsenselab/seahorse/errors"
	"github.com/skillsenselab/seahorse/server/middleware"
	"github.com/skillsenselab/seahorse/testutil"
)

const cookieName = "seahorse"

type authFixture struct {
	engine   *gin.Engine
	issuer   *jwt.Issuer
	expiring *jwt.Issuer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	key := testutil.RSAKey(t)
	issuer, err := jwt.NewIssuer(&jwt.Config{PrivateKey: key, TokenTTL: time.Minute})
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	expiring, err := jwt.NewIssuer(&jwt.Config{PrivateKey: key, TokenTTL: -time.Minute})
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	verifier, err := jwt.NewVerifier(&jwt.Config{PrivateKey: key})
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}

	engine := gin.New()
	engine.Use(middleware.Authenticate(middleware.AuthConfig{
		Verifier:   verifier,
		CookieName: cookieName,
	}))
	engine.GET("/whoami", func(c *gin.Context) {
		claims := authctx.MustGet[*jwt.Claims](c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": claims.ID, "name": claims.Name})
	})

	return &authFixture{engine: engine, issuer: issuer, expiring: expiring}
}

func (f *authFixture) request(t *testing.T, set func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if set != nil {
		set(req)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, body []byte) apperrors.ErrorCode {
	t.Helper()
	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error.Code
}

func TestAuthenticate_BearerToken(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.issuer.Issue("user-1", "Jane")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := f.request(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var identity struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if identity.ID != "user-1" || identity.Name != "Jane" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.issuer.Issue("user-1", "Jane")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec := f.request(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	})

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthenticate_CookieTakesPrecedence(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.issuer.Issue("cookie-user", "Jane")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// A garbage header must not shadow a valid cookie.
	rec := f.request(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		req.Header.Set("Authorization", "Bearer not-a-token")
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var identity struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if identity.ID != "cookie-user" {
		t.Errorf("expected cookie identity, got %q", identity.ID)
	}
}

func TestAuthenticate_Failures(t *testing.T) {
	f := newAuthFixture(t)
	expired, err := f.expiring.Issue("user-1", "Jane")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name string
		set  func(*http.Request)
		code apperrors.ErrorCode
	}{
		{
			name: "no credentials",
			set:  nil,
			code: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "wrong scheme",
			set: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			},
			code: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "bare token without scheme",
			set: func(req *http.Request) {
				req.Header.Set("Authorization", expired)
			},
			code: apperrors.ErrCodeUnauthorized,
		},
		{
			name: "malformed token",
			set: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not.a.token")
			},
			code: apperrors.ErrCodeInvalidToken,
		},
		{
			name: "expired token",
			set: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+expired)
			},
			code: apperrors.ErrCodeTokenExpired,
		},
		{
			name: "expired token in cookie",
			set: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: expired})
			},
			code: apperrors.ErrCodeTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.request(t, tt.set)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := errorCode(t, rec.Body.Bytes()); got != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, got)
			}
		})
	}
}
