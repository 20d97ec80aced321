package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubProfileService{
		roleFn: func(ctx context.Context) (domain.UserRole, error) {
			return domain.RoleUser, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/v1/auth/session", "", "principal-9")
	if err := h.Session(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Principal != "principal-9" || resp.Role != "user" {
		t.Fatalf("unexpected session payload: %+v", resp)
	}
}

func TestAuthHandler_Session_RequiresIdentity(t *testing.T) {
	h := NewAuthHandler(&stubProfileService{
		roleFn: func(ctx context.Context) (domain.UserRole, error) {
			t.Fatal("service must not be called without a session")
			return "", nil
		},
	})

	c, _ := newTestContext(http.MethodGet, "/v1/auth/session", "", "")
	if code := httpCode(h.Session(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	cleared := false
	h := NewAuthHandler(&stubProfileService{
		logoutFn: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/v1/auth/logout", "", "principal-9")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !cleared {
		t.Fatal("expected logout to reach the service")
	}
}
