package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/repository"
	"github.com/mistore/storefront/internal/service"
	"github.com/mistore/storefront/internal/session"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service  *service.ProductService
	sessions *session.Manager
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, sessions *session.Manager, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// ListProducts handles GET /api/product
// With ?q= the catalog is filtered and the query is remembered for the session;
// without it the session's current query applies.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var query string
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		if r.URL.Query().Has("q") {
			s.Query = r.URL.Query().Get("q")
		}
		query = s.Query
	})

	products, err := h.service.SearchProducts(ctx, query)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/product/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := productIDParam(r, "productId")
	if err != nil {
		h.logger.Warn("invalid product ID format", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", productID)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
