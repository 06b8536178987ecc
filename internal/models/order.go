package models

// OrderStatus is the delivery state of a past order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusPending:   "В обработке",
	OrderStatusShipped:   "Отправлен",
	OrderStatusDelivered: "Доставлен",
}

// Label returns the customer-facing name of the status
func (s OrderStatus) Label() string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// OrderItem represents a single product line of a past order
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for the line
func (i OrderItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// Order represents an entry in the customer's order history
type Order struct {
	ID     string      `json:"id"`
	Date   string      `json:"date"`
	Status OrderStatus `json:"status"`
	Total  int64       `json:"total"`
	Items  []OrderItem `json:"items"`
}
