package ports

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

// ProductFields carries the writable fields of a product for admin
// create/update calls.
type ProductFields struct {
	Name        string
	Price       int64
	Description string
	Category    string
	Stock       int64
	Points      int64
	ImageURLs   []string
}

// Backend is the remote storefront service call contract. All business
// state (catalog, carts, points, roles, orders) is owned and mutated by the
// backend; the gateway only issues these calls and renders results.
//
// Caller-scoped operations resolve "the caller" from the identity attached
// to ctx by the transport layer. Two implementations exist: the HTTP client
// in internal/infrastructure/backend and an in-memory fake used in tests.
type Backend interface {
	// Catalog
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	CreateProduct(ctx context.Context, fields ProductFields) (domain.ProductID, error)
	UpdateProduct(ctx context.Context, id domain.ProductID, fields ProductFields, isActive bool) error
	ToggleProductActive(ctx context.Context, id domain.ProductID) error

	// Cart and checkout
	GetCart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, id domain.ProductID, quantity int64) error
	RemoveFromCart(ctx context.Context, id domain.ProductID) error
	// PlaceOrder makes the backend compute totals and points from the
	// caller's current cart, record the order, and clear the cart.
	PlaceOrder(ctx context.Context) error

	// Profile
	GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error

	// Loyalty points
	GetPointsBalance(ctx context.Context) (int64, error)
	RedeemPoints(ctx context.Context, reward domain.Redemption) error

	// Roles and admin bootstrap
	IsCallerAdmin(ctx context.Context) (bool, error)
	GetCallerUserRole(ctx context.Context) (domain.UserRole, error)
	AssignCallerUserRole(ctx context.Context, principal string, role domain.UserRole) error
	IsBootstrapAvailable(ctx context.Context) (bool, error)
	RequestBootstrap(ctx context.Context, password string) error
}
