package bookingflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
)

// APISubmitter posts bookings to the public intake endpoint.
type APISubmitter struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPISubmitter(baseURL string) *APISubmitter {
	return &APISubmitter{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

func (s *APISubmitter) Submit(ctx context.Context, req BookingRequest) (models.Appointment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.Appointment{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return models.Appointment{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return models.Appointment{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return models.Appointment{}, fmt.Errorf("booking rejected: status %d", resp.StatusCode)
	}

	var created models.Appointment
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return models.Appointment{}, err
	}
	return created, nil
}
