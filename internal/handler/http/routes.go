package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	// recovered panics are still logged and counted as 500 with the trace id
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Method("GET", "/metrics", h.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withConnection)

		// routes without authorization
		r.Get("/user", h.diagnostic)
		r.Get("/version", h.getServerVersion)
		r.Post("/registeruser", h.register)
		r.Post("/authorized", h.authorize)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/user-car", h.listCars)
			r.Post("/", h.createCar)
			r.Get("/{id}", h.getCar)
			r.Put("/{id}", h.updateCar)
			r.Delete("/{id}", h.deleteCar)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
