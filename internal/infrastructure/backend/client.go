// Package backend implements the remote storefront service contract over
// HTTP. The service is an opaque collaborator: it owns all business state
// and rules; this client only encodes calls, forwards the caller's identity
// token, and maps the service's errors onto the domain's.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client is the HTTP implementation of ports.Backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time check
var _ ports.Backend = (*Client)(nil)

// NewClient constructs a backend client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// --- Catalog ---

func (c *Client) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products", nil, &wire, "getAllProducts"); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.toDomain())
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var wire wireProduct
	if err := c.do(ctx, http.MethodGet, "/products/"+formatID(id), nil, &wire, "getProduct"); err != nil {
		return nil, err
	}
	product := wire.toDomain()
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, fields ports.ProductFields) (domain.ProductID, error) {
	req := productWriteRequest{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		Category:    fields.Category,
		Stock:       fields.Stock,
		Points:      fields.Points,
		ImageURLs:   fields.ImageURLs,
	}
	var resp createProductResponse
	if err := c.do(ctx, http.MethodPost, "/products", req, &resp, "createProduct"); err != nil {
		return 0, err
	}
	return domain.ProductID(resp.ID), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error {
	req := productWriteRequest{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		Category:    fields.Category,
		Stock:       fields.Stock,
		Points:      fields.Points,
		ImageURLs:   fields.ImageURLs,
		IsActive:    &isActive,
	}
	return c.do(ctx, http.MethodPut, "/products/"+formatID(id), req, nil, "updateProduct")
}

func (c *Client) ToggleProductActive(ctx context.Context, id domain.ProductID) error {
	return c.do(ctx, http.MethodPost, "/products/"+formatID(id)+"/toggle", nil, nil, "toggleProductActive")
}

// --- Cart and checkout ---

func (c *Client) GetCart(ctx context.Context) ([]domain.CartItem, error) {
	var wire []wireCartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &wire, "getCart"); err != nil {
		return nil, err
	}
	items := make([]domain.CartItem, 0, len(wire))
	for _, w := range wire {
		items = append(items, domain.CartItem{
			ProductID: domain.ProductID(w.ProductID),
			Quantity:  w.Quantity,
		})
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, id domain.ProductID, quantity int64) error {
	req := addToCartRequest{ProductID: int64(id), Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/cart", req, nil, "addToCart")
}

func (c *Client) RemoveFromCart(ctx context.Context, id domain.ProductID) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+formatID(id), nil, nil, "removeFromCart")
}

func (c *Client) PlaceOrder(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/orders", nil, nil, "placeOrder")
}

// --- Profile ---

func (c *Client) GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var resp profileEnvelope
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp, "getCallerUserProfile"); err != nil {
		return nil, err
	}
	return resp.Profile, nil
}

func (c *Client) SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/profile", profile, nil, "saveCallerUserProfile")
}

// --- Loyalty points ---

func (c *Client) GetPointsBalance(ctx context.Context) (int64, error) {
	var resp pointsResponse
	if err := c.do(ctx, http.MethodGet, "/points", nil, &resp, "getPointsBalance"); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *Client) RedeemPoints(ctx context.Context, reward domain.Redemption) error {
	req := redeemRequest{Kind: string(reward.Kind)}
	switch reward.Kind {
	case domain.RedemptionCashback:
		req.Amount = reward.Amount
	case domain.RedemptionMysteryBox:
		req.Description = reward.Description
	}
	return c.do(ctx, http.MethodPost, "/points/redeem", req, nil, "redeemPoints")
}

// --- Roles and bootstrap ---

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var resp isAdminResponse
	if err := c.do(ctx, http.MethodGet, "/roles/me/admin", nil, &resp, "isCallerAdmin"); err != nil {
		return false, err
	}
	return resp.Admin, nil
}

func (c *Client) GetCallerUserRole(ctx context.Context) (domain.UserRole, error) {
	var resp roleResponse
	if err := c.do(ctx, http.MethodGet, "/roles/me", nil, &resp, "getCallerUserRole"); err != nil {
		return "", err
	}
	role := domain.UserRole(resp.Role)
	if !role.Valid() {
		return "", domain.NewBackendError("getCallerUserRole", fmt.Sprintf("unknown role %q", resp.Role))
	}
	return role, nil
}

func (c *Client) AssignCallerUserRole(ctx context.Context, principal string, role domain.UserRole) error {
	req := assignRoleRequest{Principal: principal, Role: string(role)}
	return c.do(ctx, http.MethodPost, "/roles/assign", req, nil, "assignCallerUserRole")
}

func (c *Client) IsBootstrapAvailable(ctx context.Context) (bool, error) {
	var resp bootstrapStatusResponse
	if err := c.do(ctx, http.MethodGet, "/bootstrap", nil, &resp, "isBootstrapAvailable"); err != nil {
		return false, err
	}
	return resp.Available, nil
}

func (c *Client) RequestBootstrap(ctx context.Context, password string) error {
	return c.do(ctx, http.MethodPost, "/bootstrap", bootstrapRequest{Password: password}, nil, "requestBootstrap")
}

// do performs one JSON request against the service and decodes the response
// into dest (when non-nil). Non-2xx responses are mapped onto domain errors.
func (c *Client) do(ctx context.Context, method, path string, body, dest any, op string) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := identity.FromContext(ctx).Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(op, resp)
	}
	if dest == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// mapError converts an error response into the matching domain error. The
// service's own message is preserved so it can surface to the user verbatim.
func (c *Client) mapError(op string, resp *http.Response) error {
	var envelope errorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &envelope)
	msg := envelope.Error
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", op, domain.ErrNotAuthenticated)
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(msg), "already claimed") {
			return fmt.Errorf("%s: %w", op, domain.ErrBootstrapClaimed)
		}
		return fmt.Errorf("%s: %w", op, domain.ErrNotAuthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrProductNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", op, domain.ErrBootstrapClaimed)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", op, domain.ErrInsufficientPoints)
	default:
		return domain.NewBackendError(op, msg)
	}
}

func formatID(id domain.ProductID) string {
	return strconv.FormatInt(int64(id), 10)
}
