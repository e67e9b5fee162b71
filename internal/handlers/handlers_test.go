package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/cache"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/config"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/session"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/store"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/validation"
)

type testEnv struct {
	router http.Handler
	store  *store.Memory
	guard  *session.MemoryGuard
}

func newTestEnv(t *testing.T, adminPassword string) *testEnv {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	mem := store.NewMemory()
	guard := session.NewMemoryGuard()
	server := &Server{
		Cfg: &config.Config{
			Env:                "test",
			ServerAddr:         ":0",
			FrontendOrigin:     "http://localhost:3000",
			RateLimitBookings:  1000,
			RateLimitWindowSec: 60,
			CacheTTLSeconds:    60,
			AdminPassword:      adminPassword,
			Timezone:           loc,
		},
		Store:    mem,
		Sessions: guard,
		Val:      validation.New(),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cache:    cache.NewNoop(),
	}
	return &testEnv{router: server.Routes(), store: mem, guard: guard}
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": password})
	require.Equal(t, http.StatusOK, rec.Code)
	var out AdminLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func validBookingPayload() map[string]interface{} {
	return map[string]interface{}{
		"customerName":    "Maria Santos",
		"customerEmail":   "maria@example.com",
		"customerPhone":   "863-555-0140",
		"appointmentDate": "2026-09-05",
		"appointmentTime": "09:30 AM",
		"serviceName":     "Press-Curl",
		"servicePrice":    55,
	}
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusScheduled, created.Status)
	assert.Equal(t, "Maria Santos", created.CustomerName)
	assert.Equal(t, 55, created.ServicePrice)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, 1, env.store.Len())
}

func TestCreateBookingIgnoresCallerIDAndStatus(t *testing.T) {
	env := newTestEnv(t, "secret")

	payload := validBookingPayload()
	payload["id"] = "attacker-chosen-id"
	payload["status"] = models.StatusCompleted
	payload["createdAt"] = "1999-01-01T00:00:00Z"

	rec := env.do(t, http.MethodPost, "/api/bookings", "", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, "attacker-chosen-id", created.ID)
	assert.Equal(t, models.StatusScheduled, created.Status)
	assert.True(t, created.CreatedAt.After(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t, "secret")

	payload := validBookingPayload()
	delete(payload, "customerEmail")
	rec := env.do(t, http.MethodPost, "/api/bookings", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload = validBookingPayload()
	payload["appointmentTime"] = "17:30"
	rec = env.do(t, http.MethodPost, "/api/bookings", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	payload = validBookingPayload()
	payload["appointmentDate"] = "09/05/2026"
	rec = env.do(t, http.MethodPost, "/api/bookings", "", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 0, env.store.Len(), "rejected bookings must not be stored")
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	token := env.login(t, "secret")
	assert.True(t, env.guard.Validate(token))
}

func TestAdminLoginUnconfigured(t *testing.T) {
	env := newTestEnv(t, "")

	rec := env.do(t, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "anything"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var out struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "admin not configured", out.Error)
}

func TestAdminLogoutInvalidatesToken(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/bookings", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLogoutWithoutToken(t *testing.T) {
	env := newTestEnv(t, "secret")
	rec := env.do(t, http.MethodPost, "/api/admin/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListBookingsRequiresAuth(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/bookings", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListBookingsNewestFirst(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	first := validBookingPayload()
	second := validBookingPayload()
	second["customerName"] = "Keisha Brown"
	env.do(t, http.MethodPost, "/api/bookings", "", first)
	env.do(t, http.MethodPost, "/api/bookings", "", second)

	rec := env.do(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Keisha Brown", items[0].CustomerName)
	assert.Equal(t, "Maria Santos", items[1].CustomerName)
}

func TestListBookingsEmptyArray(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUpdateBookingStatus(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	for _, status := range []string{models.StatusCompleted, models.StatusNoShow, models.StatusCancelled, models.StatusScheduled} {
		rec = env.do(t, http.MethodPatch, "/api/bookings/"+created.ID+"/status", token, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, rec.Code, "status %q", status)
		var updated models.Appointment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateBookingStatusRejectsUnknown(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodPatch, "/api/bookings/"+created.ID+"/status", token, map[string]string{"status": "rescheduled"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPatch, "/api/bookings/no-such-id/status", token, map[string]string{"status": models.StatusCompleted})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingPartial(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodPatch, "/api/bookings/"+created.ID, token, map[string]interface{}{
		"appointmentTime": "11:30 AM",
		"servicePrice":    70,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "11:30 AM", updated.AppointmentTime)
	assert.Equal(t, 70, updated.ServicePrice)
	assert.Equal(t, created.CustomerName, updated.CustomerName)
	assert.Equal(t, created.AppointmentDate, updated.AppointmentDate)
	assert.Equal(t, created.Status, updated.Status)
}

func TestUpdateBookingRejectsStatusField(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Status changes go through the dedicated endpoint; the strict decoder
	// rejects the unknown field here.
	rec = env.do(t, http.MethodPatch, "/api/bookings/"+created.ID, token, map[string]string{"status": models.StatusCompleted})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteBooking(t *testing.T) {
	env := newTestEnv(t, "secret")
	token := env.login(t, "secret")

	rec := env.do(t, http.MethodPost, "/api/bookings", "", validBookingPayload())
	var created models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = env.do(t, http.MethodDelete, "/api/bookings/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.True(t, out["success"])
	assert.Equal(t, 0, env.store.Len())

	rec = env.do(t, http.MethodDelete, "/api/bookings/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSlots(t *testing.T) {
	env := newTestEnv(t, "secret")

	// 2026-09-05 is a Saturday.
	rec := env.do(t, http.MethodGet, "/api/slots?date=2026-09-05", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Date     string   `json:"date"`
		Timezone string   `json:"timezone"`
		Slots    []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "2026-09-05", out.Date)
	assert.Equal(t, "America/New_York", out.Timezone)
	require.Len(t, out.Slots, 11)
	assert.Equal(t, "09:30 AM", out.Slots[0])
	assert.Equal(t, "04:45 PM", out.Slots[10])
}

func TestGetSlotsClosedDay(t *testing.T) {
	env := newTestEnv(t, "secret")

	// 2026-09-07 is a Monday.
	rec := env.do(t, http.MethodGet, "/api/slots?date=2026-09-07", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Slots)
}

func TestGetSlotsInvalidDate(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/slots?date=tomorrow", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/slots", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetServices(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/services", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Categories []struct {
			Title    string `json:"title"`
			Services []struct {
				Slug  string `json:"slug"`
				Name  string `json:"name"`
				Price string `json:"price"`
			} `json:"services"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Categories, 3)
	assert.Equal(t, "Signature Styling", out.Categories[0].Title)
	assert.Equal(t, "bangs-cut", out.Categories[0].Services[0].Slug)
}

func TestGetHours(t *testing.T) {
	env := newTestEnv(t, "secret")

	rec := env.do(t, http.MethodGet, "/api/hours", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Hours []struct {
			Day  string `json:"day"`
			Open bool   `json:"open"`
		} `json:"hours"`
		Contact struct {
			Phone string `json:"phone"`
		} `json:"contact"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Hours, 7)
	assert.False(t, out.Hours[0].Open)
	assert.False(t, out.Hours[1].Open)
	assert.Equal(t, "863-940-4469", out.Contact.Phone)
}
