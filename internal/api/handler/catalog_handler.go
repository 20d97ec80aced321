package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// CatalogHandler handles HTTP requests for product reads.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
}

// List handles GET /v1/products.
//
// @Summary      List catalog products
// @Tags         catalog
// @Produce      json
// @Param        include_inactive  query     bool  false  "Include products hidden from the storefront (admin view)"
// @Success      200               {object}  productListResponse
// @Failure      502               {object}  map[string]string
// @Router       /v1/products [get]
func (h *CatalogHandler) List(c echo.Context) error {
	var (
		products []domain.Product
		err      error
	)
	if c.QueryParam("include_inactive") == "true" {
		products, err = h.catalog.ListProducts(c.Request().Context())
	} else {
		products, err = h.catalog.ListActiveProducts(c.Request().Context())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productListResponse{Products: products})
}

// Get handles GET /v1/products/:id.
//
// @Summary      Get a product by ID
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/products/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}
