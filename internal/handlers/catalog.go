package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/salon"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/schedule"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/transport"
)

type slotsQuery struct {
	Date string `validate:"required,date"`
}

// GetSlots offers the bookable time slots for a date. Slots depend only on
// the day of week, so responses cache well; closed days yield an empty list.
func (s *Server) GetSlots(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	q := slotsQuery{Date: r.URL.Query().Get("date")}
	if err := s.Val.Struct(q); err != nil {
		log.Warn("slots: invalid query")
		transport.WriteError(w, http.StatusBadRequest, "invalid query", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	cacheKey := "slots:" + q.Date
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("slots: cache hit", slog.String("date", q.Date))
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	slots, err := schedule.Slots(q.Date, s.Cfg.Timezone)
	if err != nil {
		log.Warn("slots: invalid date", slog.String("date", q.Date))
		transport.WriteError(w, http.StatusBadRequest, "invalid date", nil)
		return
	}

	response := map[string]interface{}{
		"date":     q.Date,
		"timezone": s.Cfg.Timezone.String(),
		"slots":    slots,
	}

	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("slots: ok", slog.String("date", q.Date), slog.Int("slots", len(slots)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (s *Server) GetServices(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	cacheKey := "services:all"
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("services: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	response := map[string]interface{}{
		"categories": salon.Catalog(),
	}

	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("services: ok")
	transport.WriteJSON(w, http.StatusOK, response)
}

func (s *Server) GetHours(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	log.Info("hours: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"hours":   salon.Hours(),
		"contact": salon.ContactInfo(),
	})
}
