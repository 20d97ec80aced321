package backend

import "github.com/caffeinepub/ryk-cart/internal/core/domain"

// Wire types for the remote storefront service. Field names follow the
// service's JSON contract.

type wireProduct struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Stock       int64    `json:"stock"`
	Points      int64    `json:"points"`
	ImageURLs   []string `json:"imageUrls"`
	IsActive    bool     `json:"isActive"`
}

func (w wireProduct) toDomain() domain.Product {
	return domain.Product{
		ID:          domain.ProductID(w.ID),
		Name:        w.Name,
		Description: w.Description,
		Category:    w.Category,
		Price:       w.Price,
		Stock:       w.Stock,
		Points:      w.Points,
		ImageURLs:   w.ImageURLs,
		IsActive:    w.IsActive,
	}
}

type wireCartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type productWriteRequest struct {
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Stock       int64    `json:"stock"`
	Points      int64    `json:"points"`
	ImageURLs   []string `json:"imageUrls"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type createProductResponse struct {
	ID int64 `json:"id"`
}

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type profileEnvelope struct {
	Profile *domain.UserProfile `json:"profile"`
}

type pointsResponse struct {
	Balance int64 `json:"balance"`
}

type redeemRequest struct {
	Kind        string `json:"kind"`
	Amount      int64  `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
}

type roleResponse struct {
	Role string `json:"role"`
}

type isAdminResponse struct {
	Admin bool `json:"admin"`
}

type assignRoleRequest struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
}

type bootstrapStatusResponse struct {
	Available bool `json:"available"`
}

type bootstrapRequest struct {
	Password string `json:"password"`
}

type errorResponse struct {
	Error string `json:"error"`
}
