package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

type stubProfileService struct {
	profileFn func(ctx context.Context) (*domain.UserProfile, error)
	roleFn    func(ctx context.Context) (domain.UserRole, error)
	saveFn    func(ctx context.Context, profile domain.UserProfile) error
	logoutFn  func(ctx context.Context) error
}

func (s *stubProfileService) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return s.profileFn(ctx)
}

func (s *stubProfileService) Role(ctx context.Context) (domain.UserRole, error) {
	return s.roleFn(ctx)
}

func (s *stubProfileService) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	return s.saveFn(ctx, profile)
}

func (s *stubProfileService) Logout(ctx context.Context) error {
	return s.logoutFn(ctx)
}

func TestProfileHandler_Get_NoProfileYet(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		profileFn: func(ctx context.Context) (*domain.UserProfile, error) {
			return nil, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/v1/profile", "", "buyer-1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if v, ok := resp["profile"]; !ok || v != nil {
		t.Fatalf("expected null profile field, got %+v", resp)
	}
}

func TestProfileHandler_Get_RequiresIdentity(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		profileFn: func(ctx context.Context) (*domain.UserProfile, error) {
			t.Fatal("service must not be called without a session")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodGet, "/v1/profile", "", "")
	if code := httpCode(h.Get(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestProfileHandler_Put_Saves(t *testing.T) {
	var saved domain.UserProfile
	h := NewProfileHandler(&stubProfileService{
		saveFn: func(ctx context.Context, profile domain.UserProfile) error {
			saved = profile
			return nil
		},
	})

	c, rec := newTestContext(http.MethodPut, "/v1/profile", `{"name":"Dana"}`, "buyer-1")
	if err := h.Put(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if saved.Name != "Dana" {
		t.Fatalf("unexpected saved profile: %+v", saved)
	}
}

func TestProfileHandler_Put_RequiresName(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		saveFn: func(ctx context.Context, profile domain.UserProfile) error {
			t.Fatal("service must not be called for an empty name")
			return nil
		},
	})

	c, _ := newTestContext(http.MethodPut, "/v1/profile", `{}`, "buyer-1")
	if code := httpCode(h.Put(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
