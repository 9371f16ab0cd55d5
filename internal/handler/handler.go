package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Config struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

type Handler struct {
	router *chi.Mux

	users     *UserHandler
	products  *ProductHandler
	orders    *OrderHandler
	history   *HistoryHandler
	analytics *AnalyticsHandler
}

func NewHandler(cfg Config, users *UserHandler, products *ProductHandler, orders *OrderHandler, history *HistoryHandler, analytics *AnalyticsHandler) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	router.Use(newCompressor().Handler)
	if cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	h := &Handler{
		router:    router,
		users:     users,
		products:  products,
		orders:    orders,
		history:   history,
		analytics: analytics,
	}

	h.registerRoutes()
	return h
}

// newCompressor prefers brotli and falls back to chi's gzip/deflate.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json", "text/plain")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}

func (h *Handler) registerRoutes() {
	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.users.Signup)
		r.Post("/login", h.users.Login)

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.users.ListUsers)
			r.Delete("/{id}", h.users.DeleteUser)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.products.ListProducts)
			r.Post("/", h.products.CreateProduct)
			r.Put("/{id}", h.products.UpdateProduct)
			r.Delete("/{id}", h.products.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.orders.ListOrders)
			r.Post("/", h.orders.PlaceOrder)
			r.Put("/cancel/{orderId}", h.orders.CancelOrder)
		})

		r.Post("/orderhistory", h.history.RecordBill)
		r.Get("/order-history", h.history.ListBills)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/total-stock", h.analytics.TotalStock)
			r.Get("/stock-by-type", h.analytics.StockByType)
			r.Get("/low-stock", h.analytics.LowStock)
			r.Get("/top-stocked", h.analytics.TopStocked)
			r.Get("/avg-price-by-type", h.analytics.AvgPriceByType)
			r.Get("/summary", h.analytics.Summary)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
