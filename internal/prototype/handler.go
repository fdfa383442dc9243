package prototype

import (
	"net/http"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("prototype handler created")
	return &Handler{logger: logger}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	router.Get("/api/dashboard/stats", h.serve("stats", fixedStats))
	router.Get("/api/dashboard/nps-trend", h.serve("nps-trend", fixedTrend))
	router.Get("/api/dashboard/map-points", h.serve("map-points", fixedMapPoints))
	// path used by the first dashboard build
	router.Get("/api/feedbacks/map", h.serve("map-points", fixedMapPoints))

	return router
}

func (h *Handler) serve(name string, payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.Info().Str("payload", name).Str("uri", r.RequestURI).Msg("serving fixed payload")
		if _, err := utils.WriteJSON(w, payload, http.StatusOK); err != nil {
			h.logger.Err(err).Str("func", "prototype.serve").Msg("error writing payload")
		}
	}
}
