package models

// Product represents an item available in the storefront catalog.
// Prices are whole roubles.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Badge    string `json:"badge,omitempty"`
}
