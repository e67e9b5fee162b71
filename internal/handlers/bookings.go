package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/store"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/transport"
)

// CreateBookingRequest is the public intake payload. The server never trusts
// caller-supplied id, status, or createdAt; the lenient decoder drops them.
type CreateBookingRequest struct {
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerEmail   string `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string `json:"customerPhone" validate:"required,phone"`
	AppointmentDate string `json:"appointmentDate" validate:"required,date"`
	AppointmentTime string `json:"appointmentTime" validate:"required,clock12"`
	ServiceName     string `json:"serviceName" validate:"required"`
	ServicePrice    int    `json:"servicePrice" validate:"gte=0"`
}

func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateBookingRequest
	if err := decodeJSONLenient(r, &req); err != nil {
		log.Warn("bookings create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("bookings create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	appointment := models.Appointment{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now().In(s.Cfg.Timezone),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := s.Store.Create(ctx, appointment)
	if err != nil {
		log.Error("bookings create: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "storage error", nil)
		return
	}

	log.Info("bookings create: booked",
		slog.String("appointment_id", created.ID),
		slog.String("date", created.AppointmentDate),
		slog.String("time", created.AppointmentTime),
		slog.String("service", created.ServiceName),
	)
	transport.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := s.Store.ListAll(ctx)
	if err != nil {
		log.Error("bookings list: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "storage error", nil)
		return
	}
	if items == nil {
		items = []models.Appointment{}
	}

	log.Info("bookings list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed no-show cancelled"`
}

func (s *Server) AdminUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		log.Warn("bookings status: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req BookingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("bookings status: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("bookings status: invalid status", slog.String("status", req.Status))
		transport.WriteError(w, http.StatusBadRequest, "invalid status", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := s.Store.UpdateStatus(ctx, id, req.Status)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("bookings status: not found", slog.String("appointment_id", id))
		transport.WriteError(w, http.StatusNotFound, "appointment not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings status: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "storage error", nil)
		return
	}

	log.Info("bookings status: ok", slog.String("appointment_id", id), slog.String("status", req.Status))
	transport.WriteJSON(w, http.StatusOK, updated)
}

// BookingEditRequest carries a partial edit; absent fields are untouched and
// status cannot be changed here.
type BookingEditRequest struct {
	CustomerName    *string `json:"customerName" validate:"omitempty,min=1"`
	CustomerEmail   *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone   *string `json:"customerPhone" validate:"omitempty,phone"`
	AppointmentDate *string `json:"appointmentDate" validate:"omitempty,date"`
	AppointmentTime *string `json:"appointmentTime" validate:"omitempty,clock12"`
	ServiceName     *string `json:"serviceName" validate:"omitempty,min=1"`
	ServicePrice    *int    `json:"servicePrice" validate:"omitempty,gte=0"`
}

func (s *Server) AdminUpdateBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		log.Warn("bookings update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req BookingEditRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("bookings update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("bookings update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := s.Store.Update(ctx, id, store.Update{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
	})
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("bookings update: not found", slog.String("appointment_id", id))
		transport.WriteError(w, http.StatusNotFound, "appointment not found", nil)
		return
	}
	if err != nil {
		log.Error("bookings update: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "storage error", nil)
		return
	}

	log.Info("bookings update: ok", slog.String("appointment_id", id))
	transport.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) AdminDeleteBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		log.Warn("bookings delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := s.Store.Delete(ctx, id)
	if err != nil {
		log.Error("bookings delete: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "storage error", nil)
		return
	}
	if !deleted {
		log.Warn("bookings delete: not found", slog.String("appointment_id", id))
		transport.WriteError(w, http.StatusNotFound, "appointment not found", nil)
		return
	}

	log.Info("bookings delete: ok", slog.String("appointment_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
