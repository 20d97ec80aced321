package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
	"github.com/caffeinepub/ryk-cart/internal/core/identity"
	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory fake backend
// ---------------------------------------------------------------------------

// fakeBackend is an in-memory ports.Backend. It applies the same business
// rules the remote service enforces (stock-free adds, points threshold,
// role checks) so service tests exercise realistic behaviour.
type fakeBackend struct {
	products  map[domain.ProductID]*domain.Product
	nextID    domain.ProductID
	cart      []domain.CartItem
	profile   *domain.UserProfile
	points    int64
	role      domain.UserRole
	bootstrap bool // claim still open

	// error injection, per operation name
	failWith map[string]error

	calls []string // operation log, in order
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		products: make(map[domain.ProductID]*domain.Product),
		nextID:   1,
		role:     domain.RoleUser,
		failWith: make(map[string]error),
	}
}

func (b *fakeBackend) record(op string) error {
	b.calls = append(b.calls, op)
	return b.failWith[op]
}

func (b *fakeBackend) called(op string) int {
	n := 0
	for _, c := range b.calls {
		if c == op {
			n++
		}
	}
	return n
}

func (b *fakeBackend) seedProduct(p domain.Product) domain.Product {
	if p.ID == 0 {
		p.ID = b.nextID
	}
	if p.ID >= b.nextID {
		b.nextID = p.ID + 1
	}
	clone := p
	b.products[p.ID] = &clone
	return p
}

func (b *fakeBackend) GetAllProducts(_ context.Context) ([]domain.Product, error) {
	if err := b.record("getAllProducts"); err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, *p)
	}
	return out, nil
}

func (b *fakeBackend) GetProduct(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	if err := b.record("getProduct"); err != nil {
		return nil, err
	}
	p, ok := b.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

func (b *fakeBackend) CreateProduct(_ context.Context, fields ports.ProductFields) (domain.ProductID, error) {
	if err := b.record("createProduct"); err != nil {
		return 0, err
	}
	id := b.nextID
	b.nextID++
	b.products[id] = &domain.Product{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		Price:       fields.Price,
		Stock:       fields.Stock,
		Points:      fields.Points,
		ImageURLs:   fields.ImageURLs,
		IsActive:    true,
	}
	return id, nil
}

func (b *fakeBackend) UpdateProduct(_ context.Context, id domain.ProductID, fields ports.ProductFields, isActive bool) error {
	if err := b.record("updateProduct"); err != nil {
		return err
	}
	p, ok := b.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Name = fields.Name
	p.Price = fields.Price
	p.Description = fields.Description
	p.Category = fields.Category
	p.Stock = fields.Stock
	p.Points = fields.Points
	p.ImageURLs = fields.ImageURLs
	p.IsActive = isActive
	return nil
}

func (b *fakeBackend) ToggleProductActive(_ context.Context, id domain.ProductID) error {
	if err := b.record("toggleProductActive"); err != nil {
		return err
	}
	p, ok := b.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.IsActive = !p.IsActive
	return nil
}

func (b *fakeBackend) GetCart(_ context.Context) ([]domain.CartItem, error) {
	if err := b.record("getCart"); err != nil {
		return nil, err
	}
	return append([]domain.CartItem(nil), b.cart...), nil
}

func (b *fakeBackend) AddToCart(_ context.Context, id domain.ProductID, quantity int64) error {
	if err := b.record("addToCart"); err != nil {
		return err
	}
	for i := range b.cart {
		if b.cart[i].ProductID == id {
			b.cart[i].Quantity += quantity
			return nil
		}
	}
	b.cart = append(b.cart, domain.CartItem{ProductID: id, Quantity: quantity})
	return nil
}

func (b *fakeBackend) RemoveFromCart(_ context.Context, id domain.ProductID) error {
	if err := b.record("removeFromCart"); err != nil {
		return err
	}
	for i := range b.cart {
		if b.cart[i].ProductID == id {
			b.cart = append(b.cart[:i], b.cart[i+1:]...)
			return nil
		}
	}
	return nil
}

func (b *fakeBackend) PlaceOrder(_ context.Context) error {
	if err := b.record("placeOrder"); err != nil {
		return err
	}
	for _, item := range b.cart {
		if p, ok := b.products[item.ProductID]; ok {
			b.points += p.Points * item.Quantity
			p.Stock -= item.Quantity
		}
	}
	b.cart = nil
	return nil
}

func (b *fakeBackend) GetCallerUserProfile(_ context.Context) (*domain.UserProfile, error) {
	if err := b.record("getCallerUserProfile"); err != nil {
		return nil, err
	}
	if b.profile == nil {
		return nil, nil
	}
	clone := *b.profile
	return &clone, nil
}

func (b *fakeBackend) SaveCallerUserProfile(_ context.Context, profile domain.UserProfile) error {
	if err := b.record("saveCallerUserProfile"); err != nil {
		return err
	}
	b.profile = &profile
	return nil
}

func (b *fakeBackend) GetPointsBalance(_ context.Context) (int64, error) {
	if err := b.record("getPointsBalance"); err != nil {
		return 0, err
	}
	return b.points, nil
}

func (b *fakeBackend) RedeemPoints(_ context.Context, reward domain.Redemption) error {
	if err := b.record("redeemPoints"); err != nil {
		return err
	}
	if b.points < domain.RedemptionThreshold {
		return domain.ErrInsufficientPoints
	}
	b.points -= domain.RedemptionThreshold
	_ = reward
	return nil
}

func (b *fakeBackend) IsCallerAdmin(_ context.Context) (bool, error) {
	if err := b.record("isCallerAdmin"); err != nil {
		return false, err
	}
	return b.role == domain.RoleAdmin, nil
}

func (b *fakeBackend) GetCallerUserRole(_ context.Context) (domain.UserRole, error) {
	if err := b.record("getCallerUserRole"); err != nil {
		return "", err
	}
	return b.role, nil
}

func (b *fakeBackend) AssignCallerUserRole(_ context.Context, _ string, role domain.UserRole) error {
	if err := b.record("assignCallerUserRole"); err != nil {
		return err
	}
	b.role = role
	return nil
}

func (b *fakeBackend) IsBootstrapAvailable(_ context.Context) (bool, error) {
	if err := b.record("isBootstrapAvailable"); err != nil {
		return false, err
	}
	return b.bootstrap, nil
}

func (b *fakeBackend) RequestBootstrap(_ context.Context, password string) error {
	if err := b.record("requestBootstrap"); err != nil {
		return err
	}
	if !b.bootstrap {
		return domain.ErrBootstrapClaimed
	}
	if password != "open-sesame" {
		return domain.ErrNotAuthorized
	}
	b.bootstrap = false
	b.role = domain.RoleAdmin
	return nil
}

// ---------------------------------------------------------------------------
// In-memory query cache
// ---------------------------------------------------------------------------

// memCache stores JSON-encoded entries, mirroring the Redis implementation.
type memCache struct {
	entries map[string][]byte
	getErr  error // if set, Get returns this error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest any) error {
	if c.getErr != nil {
		return c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memCache) has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// ---------------------------------------------------------------------------
// In-memory unlock store
// ---------------------------------------------------------------------------

type memUnlocks struct {
	unlocked map[string]bool
	err      error
}

func newMemUnlocks() *memUnlocks {
	return &memUnlocks{unlocked: make(map[string]bool)}
}

func (u *memUnlocks) IsUnlocked(_ context.Context, principal string) (bool, error) {
	if u.err != nil {
		return false, u.err
	}
	return u.unlocked[principal], nil
}

func (u *memUnlocks) SetUnlocked(_ context.Context, principal string) error {
	if u.err != nil {
		return u.err
	}
	u.unlocked[principal] = true
	return nil
}

func (u *memUnlocks) Clear(_ context.Context, principal string) error {
	if u.err != nil {
		return u.err
	}
	delete(u.unlocked, principal)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func authedCtx(principal string) context.Context {
	return identity.WithSession(context.Background(), identity.Session{
		Identity: domain.Identity{Principal: principal},
		Token:    "token-" + principal,
	})
}
