package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/middleware"
)

// Routes builds the full API router. cmd/api and the integration tests share
// this wiring so they cannot drift apart.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.CORS(s.Cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	bookingLimiter := middleware.NewRateLimiter(s.Cfg.RateLimitBookings, time.Duration(s.Cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", s.GetServices)
		api.Get("/hours", s.GetHours)
		api.Get("/slots", s.GetSlots)

		api.With(bookingLimiter.Middleware).Post("/bookings", s.CreateBooking)

		api.Post("/admin/login", s.AdminLogin)
		api.Post("/admin/logout", s.AdminLogout)

		// chi: middlewares must be attached before defining routes, so the
		// authenticated surface lives on a sub-router.
		api.Group(func(protected chi.Router) {
			protected.Use(middleware.AdminAuth(s.Sessions))
			protected.Get("/bookings", s.AdminListBookings)
			protected.Patch("/bookings/{id}/status", s.AdminUpdateBookingStatus)
			protected.Patch("/bookings/{id}", s.AdminUpdateBooking)
			protected.Delete("/bookings/{id}", s.AdminDeleteBooking)
		})
	})

	return r
}
