// Package store is the persistence boundary for appointments. Callers treat
// it as an opaque record store: a storage failure surfaces as an ordinary
// error, absence of a record as ErrNotFound.
package store

import (
	"context"
	"errors"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
)

var ErrNotFound = errors.New("appointment not found")

// Update carries the fields an admin edit may change. Nil fields are left
// untouched; status is never editable through Update.
type Update struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	AppointmentDate *string
	AppointmentTime *string
	ServiceName     *string
	ServicePrice    *int
}

type AppointmentStore interface {
	// Create persists the appointment as given and returns the stored record.
	Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error)
	// ListAll returns every appointment, most recently created first.
	ListAll(ctx context.Context) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (models.Appointment, error)
	Update(ctx context.Context, id string, update Update) (models.Appointment, error)
	// Delete removes the record permanently and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
