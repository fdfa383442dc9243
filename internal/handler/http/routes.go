package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	router.Get("/healthz", h.health)
	router.Get("/api/version", h.getServerVersion)

	// realtime streams are long-lived: no gzip buffering, no request timeout
	router.With(h.auth).Get("/api/realtime/{entity}", h.stream)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Post("/api/auth/signup", h.signUp)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/public/qr-codes/{id}", h.scanQRCode)
		r.Post("/api/public/qr-codes/{id}/feedbacks", h.submitFeedback)

		r.Get("/api/providers", h.listProviders)
		r.Get("/api/billing/plans", h.billingPlans)

		r.Route("/api/geo", func(r chi.Router) {
			r.Get("/states", h.geoStates)
			r.Get("/states/{uf}/cities", h.geoCities)
			r.Get("/cnae-classes", h.geoCNAEClasses)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/api/auth", func(r chi.Router) {
				r.Get("/user", h.currentUser)
				r.Patch("/user", h.updateUser)
				r.Put("/password", h.changePassword)
			})

			r.Route("/api/qr-codes", func(r chi.Router) {
				r.Get("/", h.listQRCodes)
				r.Post("/", h.createQRCode)
				r.Patch("/{id}", h.updateQRCode)
				r.Delete("/{id}", h.deleteQRCode)
				r.Post("/{id}/logo", h.uploadQRCodeLogo)
			})

			r.Route("/api/feedbacks", func(r chi.Router) {
				r.Get("/", h.listFeedbacks)
				r.Get("/recent", h.recentFeedbacks)
				r.Get("/map", h.feedbackMap)
				r.Patch("/{id}/status", h.updateFeedbackStatus)
				r.Post("/{id}/archive", h.archiveFeedback)
				r.Post("/{id}/unarchive", h.unarchiveFeedback)
			})

			r.Route("/api/campaigns", func(r chi.Router) {
				r.Get("/", h.listCampaigns)
				r.Post("/", h.createCampaign)
				r.Get("/{id}", h.getCampaign)
				r.Patch("/{id}", h.updateCampaign)
				r.Delete("/{id}", h.deleteCampaign)
			})

			r.Route("/api/profile", func(r chi.Router) {
				r.Get("/", h.getProfile)
				r.Put("/", h.saveProfile)
				r.Post("/images", h.uploadProfileImage)
			})

			r.Route("/api/notifications", func(r chi.Router) {
				r.Get("/", h.listNotifications)
				r.Post("/read-all", h.markAllNotificationsRead)
				r.Post("/{id}/read", h.markNotificationRead)
			})

			r.Route("/api/dashboard", func(r chi.Router) {
				r.Get("/stats", h.dashboardStats)
				r.Get("/nps-trend", h.npsTrend)
				r.Get("/benchmark", h.benchmark)
				r.Get("/comparison", h.benchmarkComparison)
			})

			r.Post("/api/billing/checkout", h.checkout)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
