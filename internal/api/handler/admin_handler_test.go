package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

type stubAdminService struct {
	gateFn      func(ctx context.Context) (*ports.GateStatus, error)
	unlockFn    func(ctx context.Context, password string) error
	lockFn      func(ctx context.Context) error
	bootstrapFn func(ctx context.Context, password string) error
	createFn    func(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error)
	updateFn    func(ctx context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error
	toggleFn    func(ctx context.Context, id domain.ProductID) error
}

func (s *stubAdminService) Gate(ctx context.Context) (*ports.GateStatus, error) {
	return s.gateFn(ctx)
}

func (s *stubAdminService) Unlock(ctx context.Context, password string) error {
	return s.unlockFn(ctx, password)
}

func (s *stubAdminService) Lock(ctx context.Context) error {
	return s.lockFn(ctx)
}

func (s *stubAdminService) ClaimBootstrap(ctx context.Context, password string) error {
	return s.bootstrapFn(ctx, password)
}

func (s *stubAdminService) CreateProduct(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error) {
	return s.createFn(ctx, fields)
}

func (s *stubAdminService) UpdateProduct(ctx context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error {
	return s.updateFn(ctx, id, fields, isActive)
}

func (s *stubAdminService) ToggleProductActive(ctx context.Context, id domain.ProductID) error {
	return s.toggleFn(ctx, id)
}

func TestAdminHandler_Gate(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		gateFn: func(ctx context.Context) (*ports.GateStatus, error) {
			return &ports.GateStatus{State: domain.GateNonAdmin, BootstrapAvailable: true}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/v1/admin/gate", "", "visitor")
	if err := h.Gate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ports.GateStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.State != domain.GateNonAdmin || !resp.BootstrapAvailable {
		t.Fatalf("unexpected gate status: %+v", resp)
	}
}

func TestAdminHandler_Unlock_Success(t *testing.T) {
	var gotPassword string
	h := NewAdminHandler(&stubAdminService{
		unlockFn: func(ctx context.Context, password string) error {
			gotPassword = password
			return nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/v1/admin/unlock", `{"password":"letmein"}`, "admin-1")
	if err := h.Unlock(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotPassword != "letmein" {
		t.Fatalf("unexpected password: %q", gotPassword)
	}
}

func TestAdminHandler_Unlock_WrongPasswordPassesThrough(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		unlockFn: func(ctx context.Context, password string) error {
			return domain.ErrWrongPassword
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/admin/unlock", `{"password":"nope"}`, "admin-1")
	if err := h.Unlock(c); err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestAdminHandler_Unlock_RequiresPassword(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		unlockFn: func(ctx context.Context, password string) error {
			t.Fatal("service must not be called without a password")
			return nil
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/admin/unlock", `{}`, "admin-1")
	if code := httpCode(h.Unlock(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAdminHandler_Bootstrap_ClaimedPassesThrough(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		bootstrapFn: func(ctx context.Context, password string) error {
			return domain.ErrBootstrapClaimed
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/admin/bootstrap", `{"password":"first"}`, "claimer")
	if err := h.Bootstrap(c); err != domain.ErrBootstrapClaimed {
		t.Fatalf("expected ErrBootstrapClaimed, got %v", err)
	}
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	var gotFields ports.ProductFields
	h := NewAdminHandler(&stubAdminService{
		createFn: func(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error) {
			gotFields = fields
			return 42, nil
		},
	})

	body := `{"name":"Mug","price":50,"category":"kitchen","stock":10,"points":5,"image_urls":["https://cdn.example.com/mug.png"]}`
	c, rec := newTestContext(http.MethodPost, "/v1/admin/products", body, "admin-1")
	if err := h.CreateProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != 42 {
		t.Fatalf("expected id 42, got %d", resp.ID)
	}
	if gotFields.Name != "Mug" || gotFields.Price != 50 || gotFields.Points != 5 {
		t.Fatalf("unexpected fields: %+v", gotFields)
	}
}

func TestAdminHandler_CreateProduct_RejectsZeroPrice(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		createFn: func(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error) {
			t.Fatal("service must not be called for an invalid product")
			return 0, nil
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/admin/products", `{"name":"Mug","price":0,"category":"kitchen"}`, "admin-1")
	if code := httpCode(h.CreateProduct(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAdminHandler_UpdateProduct_PassesActiveFlag(t *testing.T) {
	var gotActive bool
	h := NewAdminHandler(&stubAdminService{
		updateFn: func(ctx context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error {
			if id != 7 {
				t.Fatalf("expected id 7, got %d", id)
			}
			gotActive = isActive
			return nil
		},
	})

	body := `{"name":"Mug","price":60,"category":"kitchen","is_active":false}`
	c, rec := newTestContext(http.MethodPut, "/v1/admin/products/7", body, "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.UpdateProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotActive {
		t.Fatal("expected is_active=false to reach the service")
	}
}

func TestAdminHandler_ToggleProduct_LockedPassesThrough(t *testing.T) {
	h := NewAdminHandler(&stubAdminService{
		toggleFn: func(ctx context.Context, id domain.ProductID) error {
			return domain.ErrGateLocked
		},
	})

	c, _ := newTestContext(http.MethodPost, "/v1/admin/products/7/toggle", "", "admin-1")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.ToggleProduct(c); err != domain.ErrGateLocked {
		t.Fatalf("expected ErrGateLocked, got %v", err)
	}
}
