package domain

// CartItem is a single cart line. The cart is keyed by product: the backend
// stores at most one line per product, and a line's quantity is always >= 1
// (removal deletes the line rather than storing a zero).
type CartItem struct {
	ProductID ProductID `json:"product_id"`
	Quantity  int64     `json:"quantity"`
}
