package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/repository"
	"github.com/mistore/storefront/internal/service"
)

// OrderHandler handles order history HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// OrderItemResponse is one rendered order line
type OrderItemResponse struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal int64          `json:"subtotal"`
}

// OrderResponse is an order card on the orders tab
type OrderResponse struct {
	ID             string              `json:"id"`
	Date           string              `json:"date"`
	Status         models.OrderStatus  `json:"status"`
	StatusLabel    string              `json:"statusLabel"`
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"totalFormatted"`
	Items          []OrderItemResponse `json:"items"`
}

func renderOrder(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			Product:  it.Product,
			Quantity: it.Quantity,
			Subtotal: it.Subtotal(),
		}
	}
	return OrderResponse{
		ID:             o.ID,
		Date:           o.Date,
		Status:         o.Status,
		StatusLabel:    o.Status.Label(),
		Total:          o.Total,
		TotalFormatted: models.FormatPrice(o.Total),
		Items:          items,
	}
}

// ListOrders handles GET /api/order
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = renderOrder(o)
	}
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "orderId", orderID)
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "orderId", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, renderOrder(*order), h.log)
}
