package http

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func NewRouter(
	allowedOrigins []string,
	logger *logrus.Logger,
	recordHandler RecordHandler,
	statsHandler StatsHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/record", recordHandler.Create)
		r.Route("/record/{date}", func(r chi.Router) {
			r.Get("/", recordHandler.Get)
			r.Put("/", recordHandler.Update)
			r.Delete("/", recordHandler.Delete)
		})

		r.Get("/records", statsHandler.Current)

		r.Route("/history", func(r chi.Router) {
			r.Get("/", statsHandler.History)
			r.Get("/export", statsHandler.Export)
			r.Get("/{year}/{month}", statsHandler.Month)
		})

		r.Get("/calendar/{date}", calendarHandler.CheckDay)
	})

	return r
}
