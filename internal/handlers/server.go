package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/cache"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/config"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/middleware"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/session"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/store"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/validation"
)

type Server struct {
	Cfg      *config.Config
	Store    store.AppointmentStore
	Sessions session.Guard
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
