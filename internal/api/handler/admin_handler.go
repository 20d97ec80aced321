package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/api/metrics"
	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// AdminHandler handles the admin gate and product-management operations.
// Authorization is entirely the service's: the handler only shapes HTTP.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// --- Request / Response types ---

type passwordRequest struct {
	Password string `json:"password" validate:"required"`
}

type productWriteRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Price       int64    `json:"price"       validate:"required,gt=0"`
	Description string   `json:"description"`
	Category    string   `json:"category"    validate:"required"`
	Stock       int64    `json:"stock"       validate:"min=0"`
	Points      int64    `json:"points"      validate:"min=0"`
	ImageURLs   []string `json:"image_urls"  validate:"dive,url"`
	// IsActive is honored on update only; new products start active.
	IsActive bool `json:"is_active"`
}

type createProductResponse struct {
	ID int64 `json:"id"`
}

func (r productWriteRequest) fields() ports.ProductFields {
	return ports.ProductFields{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Stock:       r.Stock,
		Points:      r.Points,
		ImageURLs:   r.ImageURLs,
	}
}

// Gate handles GET /v1/admin/gate.
//
// @Summary      Evaluate the admin-gate state for the caller
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.GateStatus
// @Router       /v1/admin/gate [get]
func (h *AdminHandler) Gate(c echo.Context) error {
	status, err := h.admin.Gate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, status)
}

// Unlock handles POST /v1/admin/unlock.
//
// @Summary      Unlock the admin panel with the gate password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      passwordRequest  true  "Gate password"
// @Success      204   "unlocked"
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/unlock [post]
func (h *AdminHandler) Unlock(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admin.Unlock(c.Request().Context(), req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrWrongPassword):
			metrics.GateUnlockAttemptsTotal.WithLabelValues("wrong_password").Inc()
		default:
			metrics.GateUnlockAttemptsTotal.WithLabelValues("denied").Inc()
		}
		return err
	}

	metrics.GateUnlockAttemptsTotal.WithLabelValues("ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Lock handles POST /v1/admin/lock.
//
// @Summary      Re-lock the admin panel for this session
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      204  "locked"
// @Failure      401  {object}  map[string]string
// @Router       /v1/admin/lock [post]
func (h *AdminHandler) Lock(c echo.Context) error {
	if err := h.admin.Lock(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Bootstrap handles POST /v1/admin/bootstrap — the one-time first-admin claim.
//
// @Summary      Claim first-admin access with the bootstrap password
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      passwordRequest  true  "Bootstrap password"
// @Success      204   "claimed"
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/bootstrap [post]
func (h *AdminHandler) Bootstrap(c echo.Context) error {
	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admin.ClaimBootstrap(c.Request().Context(), req.Password); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /v1/admin/products.
//
// @Summary      Create a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productWriteRequest  true  "Product fields"
// @Success      201   {object}  createProductResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req productWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.admin.CreateProduct(c.Request().Context(), req.fields())
	if err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, createProductResponse{ID: int64(id)})
}

// UpdateProduct handles PUT /v1/admin/products/:id.
//
// @Summary      Update a product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Product ID"
// @Param        body  body      productWriteRequest  true  "Product fields"
// @Success      204   "updated"
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}

	var req productWriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.admin.UpdateProduct(c.Request().Context(), id, req.fields(), req.IsActive); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("update").Inc()
	return c.NoContent(http.StatusNoContent)
}

// ToggleProduct handles POST /v1/admin/products/:id/toggle.
//
// @Summary      Flip a product's catalog visibility
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Product ID"
// @Success      204  "toggled"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/products/{id}/toggle [post]
func (h *AdminHandler) ToggleProduct(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}

	if err := h.admin.ToggleProductActive(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ProductWritesTotal.WithLabelValues("toggle").Inc()
	return c.NoContent(http.StatusNoContent)
}
