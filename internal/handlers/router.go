package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mistore/storefront/internal/config"
	"github.com/mistore/storefront/internal/middleware"
	"github.com/mistore/storefront/internal/repository"
	"github.com/mistore/storefront/internal/service"
	"github.com/mistore/storefront/internal/session"
)

// Deps wires the storefront together
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Products *repository.InMemoryProductRepository
	Orders   repository.OrderRepository
	Sessions *session.Manager
}

// NewDeps builds the in-memory storefront from seed data
func NewDeps(cfg *config.Config, log *slog.Logger) Deps {
	products := repository.NewInMemoryProductRepository()
	return Deps{
		Config:   cfg,
		Logger:   log,
		Products: products,
		Orders:   repository.NewInMemoryOrderRepository(products),
		Sessions: session.NewManager(products, repository.SeedNotifications, log,
			session.WithIdleTTL(time.Duration(cfg.Session.IdleTTL)*time.Second),
			session.WithMaxSessions(cfg.Session.MaxSessions),
		),
	}
}

// NewRouter builds the HTTP API
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	header := d.Config.Session.Header

	productService := service.NewProductService(d.Products)
	orderService := service.NewOrderService(d.Orders)
	profileService := service.NewProfileService(repository.SeedProfile())

	healthHandler := NewHealthHandler(log, d.Sessions, d.Config.AppEnv)
	productHandler := NewProductHandler(productService, d.Sessions, log)
	cartHandler := NewCartHandler(productService, d.Sessions, log)
	notificationHandler := NewNotificationHandler(d.Sessions, log)
	orderHandler := NewOrderHandler(orderService, log)
	profileHandler := NewProfileHandler(profileService, log)
	sessionHandler := NewSessionHandler(d.Sessions, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log, header))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", header},
		ExposedHeaders:   []string{header},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(header))

		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{productId}", cartHandler.UpdateItem)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)
		})

		r.Get("/notifications", notificationHandler.ListNotifications)
		r.Post("/notifications/{notificationId}/read", notificationHandler.MarkRead)

		r.Get("/order", orderHandler.ListOrders)
		r.Get("/order/{orderId}", orderHandler.GetOrder)

		r.Get("/profile", profileHandler.GetProfile)

		r.Get("/session", sessionHandler.GetSession)
		r.Put("/session", sessionHandler.UpdateSession)
	})

	return r
}
