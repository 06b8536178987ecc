package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mistore/storefront/internal/cart"
	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/repository"
	"github.com/mistore/storefront/internal/service"
	"github.com/mistore/storefront/internal/session"
)

// CartHandler exposes the session cart
type CartHandler struct {
	products *service.ProductService
	sessions *session.Manager
	log      *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(products *service.ProductService, sessions *session.Manager, log *slog.Logger) *CartHandler {
	return &CartHandler{
		products: products,
		sessions: sessions,
		log:      log,
	}
}

// AddItemRequest is the body of POST /api/cart/items
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateItemRequest is the body of PATCH /api/cart/items/{productId}
type UpdateItemRequest struct {
	Delta int `json:"delta"`
}

// CartResponse is the rendered cart panel
type CartResponse struct {
	Items          []cart.Line `json:"items"`
	Count          int         `json:"count"`
	Units          int         `json:"units"`
	Total          int64       `json:"total"`
	TotalFormatted string      `json:"totalFormatted"`
	Messages       []string    `json:"messages,omitempty"`
}

func renderCart(s *session.Session) CartResponse {
	total := s.Cart.Total()
	return CartResponse{
		Items:          s.Cart.Lines(),
		Count:          s.Cart.Count(),
		Units:          s.Cart.Units(),
		Total:          total,
		TotalFormatted: models.FormatPrice(total),
		Messages:       s.Confirmations(),
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	var resp CartResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		resp = renderCart(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to get product", "productId", req.ProductID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	var resp CartResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		s.Cart.Add(*product)
		resp = renderCart(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// UpdateItem handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r, "productId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req UpdateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode update item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	var resp CartResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		s.Cart.UpdateQuantity(productID, req.Delta)
		resp = renderCart(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
// Removing a product that is not in the cart succeeds and changes nothing.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r, "productId")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var resp CartResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		s.Cart.Remove(productID)
		resp = renderCart(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}
