package domain

// ProductID identifies a product. IDs are assigned by the backend and are
// unique and roughly monotonic.
type ProductID int64

// Product is a read-only snapshot of a catalog product as reported by the
// backend. The gateway never mutates products locally.
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       int64     `json:"price"`
	Stock       int64     `json:"stock"`
	Points      int64     `json:"points"`
	ImageURLs   []string  `json:"image_urls"`
	IsActive    bool      `json:"is_active"`
}
