package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/api/metrics"
	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// CartHandler handles HTTP requests for the caller's cart and checkout.
type CartHandler struct {
	cart ports.CartService
}

func NewCartHandler(cart ports.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"   validate:"required,min=1"`
}

// Get handles GET /v1/cart.
//
// @Summary      Get the caller's cart, valued against the current catalog
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.CartSummary
// @Failure      401  {object}  map[string]string
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	summary, err := h.cart.GetCart(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Product and quantity"
// @Success      204   "added"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.cart.AddToCart(c.Request().Context(), domain.ProductID(req.ProductID), req.Quantity); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /v1/cart/items/:id.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Product ID"
// @Success      204  "removed"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	id, err := productIDParam(c)
	if err != nil {
		return err
	}

	if err := h.cart.RemoveFromCart(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /v1/orders.
//
// @Summary      Place an order from the caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  ports.CartSummary
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /v1/orders [post]
func (h *CartHandler) PlaceOrder(c echo.Context) error {
	if _, err := ctxSession(c); err != nil {
		return err
	}

	summary, err := h.cart.PlaceOrder(c.Request().Context())
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, summary)
}
