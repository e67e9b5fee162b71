package store

import (
	"context"
	"sync"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
)

// Memory keeps appointments in process memory. Used by tests and by local
// development when no Mongo instance is configured (STORAGE=memory).
type Memory struct {
	mu    sync.RWMutex
	items []models.Appointment
}

func NewMemory() *Memory {
	return &Memory{items: make([]models.Appointment, 0)}
}

func (s *Memory) Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, appointment)
	return appointment, nil
}

func (s *Memory) ListAll(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Insertion order is creation order; newest first.
	out := make([]models.Appointment, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *Memory) UpdateStatus(ctx context.Context, id, status string) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			return s.items[i], nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

func (s *Memory) Update(ctx context.Context, id string, update Update) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		a := &s.items[i]
		if update.CustomerName != nil {
			a.CustomerName = *update.CustomerName
		}
		if update.CustomerEmail != nil {
			a.CustomerEmail = *update.CustomerEmail
		}
		if update.CustomerPhone != nil {
			a.CustomerPhone = *update.CustomerPhone
		}
		if update.AppointmentDate != nil {
			a.AppointmentDate = *update.AppointmentDate
		}
		if update.AppointmentTime != nil {
			a.AppointmentTime = *update.AppointmentTime
		}
		if update.ServiceName != nil {
			a.ServiceName = *update.ServiceName
		}
		if update.ServicePrice != nil {
			a.ServicePrice = *update.ServicePrice
		}
		return *a, nil
	}
	return models.Appointment{}, ErrNotFound
}

func (s *Memory) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Len reports the number of stored appointments. Test helper.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
