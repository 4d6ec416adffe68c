package authctx_test

import (
	"context"
	"testing"

	"github.com/skillsenselab/seahorse/auth/authctx"
	"github.com/skillsenselab/seahorse/auth/jwt"
)

func TestSetGet(t *testing.T) {
	claims := &jwt.Claims{ID: "user-1", Name: "Jane"}
	ctx := authctx.Set(context.Background(), claims)

	got, ok := authctx.Get[*jwt.Claims](ctx)
	if !ok {
		t.Fatal("expected claims in context")
	}
	if got.ID != "user-1" || got.Name != "Jane" {
		t.Errorf("unexpected claims: %+v", got)
	}
}

func TestGet_Missing(t *testing.T) {
	if _, ok := authctx.Get[*jwt.Claims](context.Background()); ok {
		t.Error("expected no claims in empty context")
	}
}

func TestGet_WrongType(t *testing.T) {
	ctx := authctx.Set(context.Background(), "not claims")
	if _, ok := authctx.Get[*jwt.Claims](ctx); ok {
		t.Error("expected type mismatch to report false")
	}
}

func TestMustGet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on missing claims")
		}
	}()
	authctx.MustGet[*jwt.Claims](context.Background())
}
