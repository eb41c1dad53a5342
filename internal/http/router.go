package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/asset-inventory/docs"
	"github.com/rogerio-castellano/asset-inventory/internal/http/handlers"
	rl "github.com/rogerio-castellano/asset-inventory/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, RequestLogger, middleware.Recoverer)

	r.Get("/healthz", handlers.HealthHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/assets", handlers.GetAssetsHandler)
	r.Get("/assets/search", handlers.SearchAssetsHandler)
	r.Get("/assets/export", handlers.ExportAssetsHandler)
	r.Get("/assets/{id}", handlers.GetAssetByIDHandler)
	r.Get("/catalog", handlers.GetCatalogHandler)

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/summary", handlers.SummaryHandler)
		r.Get("/status", handlers.StatusCountsHandler)
		r.Get("/distribution", handlers.DistributionHandler)
		r.Get("/top", handlers.TopHandler)
		r.Get("/value", handlers.ValueByFieldHandler)
		r.Get("/maintenance", handlers.MaintenanceHandler)
		r.Get("/warranty", handlers.WarrantyHandler)
		r.Get("/unique", handlers.UniqueValuesHandler)
		r.Get("/network", handlers.NetworkHandler)
		r.Get("/recent", handlers.RecentHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, rl.Middleware)

		r.Post("/assets", handlers.CreateAssetHandler)
		r.Post("/assets/import", handlers.ImportAssetsHandler)
		r.Put("/assets/{id}", handlers.UpdateAssetHandler)
		r.Delete("/assets/{id}", handlers.DeleteAssetHandler)

		r.Post("/catalog/brands", handlers.AddBrandHandler)
		r.Delete("/catalog/brands/{brand}", handlers.RemoveBrandHandler)
		r.Post("/catalog/models", handlers.AddModelHandler)
		r.Delete("/catalog/models/{brand}/{model}", handlers.RemoveModelHandler)
		r.Post("/catalog/locations", handlers.AddLocationHandler)
		r.Delete("/catalog/locations/{kind}/{name}", handlers.RemoveLocationHandler)

		r.With(RequireRole("admin")).Post("/admin/users", handlers.RegisterAsAdminHandler)
	})

	return r
}
