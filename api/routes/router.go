package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/techstore3d/techstore-backend/api/controllers"
	"github.com/techstore3d/techstore-backend/api/middleware"
	cartsvc "github.com/techstore3d/techstore-backend/internal/cart"
	"github.com/techstore3d/techstore-backend/internal/catalog"
	statussvc "github.com/techstore3d/techstore-backend/internal/status"
	usersvc "github.com/techstore3d/techstore-backend/internal/users"
	"github.com/techstore3d/techstore-backend/pkg/config"
	"github.com/techstore3d/techstore-backend/pkg/db"
	"github.com/techstore3d/techstore-backend/pkg/logger"
	"github.com/techstore3d/techstore-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	userService usersvc.Service,
	statusService statussvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", controllers.APIRoot())

		r.Route("/status", func(r chi.Router) {
			r.Get("/", controllers.StatusList(statusService, logg))
			r.Post("/", controllers.StatusCreate(statusService, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Post("/", controllers.ProductCreate(catalogService, logg))
			r.Route("/{productId}", func(r chi.Router) {
				r.Get("/", controllers.ProductGet(catalogService, logg))
				r.Put("/", controllers.ProductUpdate(catalogService, logg))
				r.Delete("/", controllers.ProductDelete(catalogService, logg))
			})
		})

		r.Route("/cart/{sessionId}", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", controllers.UserCreate(userService, logg))
			r.Get("/{userId}", controllers.UserGet(userService, logg))
		})

		r.Post("/init-sample-data", controllers.InitSampleData(catalogService, logg))
	})

	return r
}
