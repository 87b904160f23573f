package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrum-studio/vitrum-backend/api/controllers"
	"github.com/vitrum-studio/vitrum-backend/api/middleware"
	"github.com/vitrum-studio/vitrum-backend/pkg/config"
	"github.com/vitrum-studio/vitrum-backend/pkg/db"
	"github.com/vitrum-studio/vitrum-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	svc controllers.Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Route("/api/v1/glass", func(r chi.Router) {
		r.Get("/", controllers.GlassGet(svc, logg))
		r.Post("/", controllers.GlassPost(svc, logg))
		r.Put("/", controllers.GlassPut(svc, logg))
		r.Delete("/", controllers.GlassDelete(svc, logg))
	})

	return r
}
