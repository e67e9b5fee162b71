package dashboard

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/cache"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/config"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/handlers"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/session"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/store"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/validation"
)

func newTestBackend(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	mem := store.NewMemory()
	server := &handlers.Server{
		Cfg: &config.Config{
			Env:                "test",
			FrontendOrigin:     "http://localhost:3000",
			RateLimitBookings:  1000,
			RateLimitWindowSec: 60,
			CacheTTLSeconds:    60,
			AdminPassword:      "secret",
			Timezone:           loc,
		},
		Store:    mem,
		Sessions: session.NewMemoryGuard(),
		Val:      validation.New(),
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cache:    cache.NewNoop(),
	}

	srv := httptest.NewServer(server.Routes())
	t.Cleanup(srv.Close)
	return srv, mem
}

func seedBooking(t *testing.T, mem *store.Memory, id, name string) {
	t.Helper()
	_, err := mem.Create(context.Background(), models.Appointment{
		ID:              id,
		CustomerName:    name,
		CustomerEmail:   "test@example.com",
		CustomerPhone:   "863-555-0100",
		AppointmentDate: "2026-09-05",
		AppointmentTime: "10:00 AM",
		ServiceName:     "Hair Cut",
		ServicePrice:    35,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
}

func TestClientLogin(t *testing.T) {
	srv, _ := newTestBackend(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	err := client.Login(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, client.HasToken())

	require.NoError(t, client.Login(ctx, "secret"))
	assert.True(t, client.HasToken())
}

func TestClientAppointmentsRequireLogin(t *testing.T) {
	srv, mem := newTestBackend(t)
	seedBooking(t, mem, "a", "Maria Santos")

	client := NewClient(srv.URL)
	ctx := context.Background()

	_, err := client.Appointments(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, client.Login(ctx, "secret"))
	items, err := client.Appointments(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Maria Santos", items[0].CustomerName)
}

func TestClientDropsTokenOnRejection(t *testing.T) {
	srv, _ := newTestBackend(t)
	client := NewClient(srv.URL)
	ctx := context.Background()

	client.SetToken("stale-token-from-before-restart")
	_, err := client.Appointments(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, client.HasToken(), "a rejected token must be dropped so the caller re-authenticates")
}

func TestClientLogout(t *testing.T) {
	srv, mem := newTestBackend(t)
	seedBooking(t, mem, "a", "Maria Santos")

	client := NewClient(srv.URL)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "secret"))

	require.NoError(t, client.Logout(ctx))
	assert.False(t, client.HasToken())

	_, err := client.Appointments(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClientStatusAndEdit(t *testing.T) {
	srv, mem := newTestBackend(t)
	seedBooking(t, mem, "a", "Maria Santos")

	client := NewClient(srv.URL)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "secret"))

	updated, err := client.UpdateStatus(ctx, "a", models.StatusNoShow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNoShow, updated.Status)

	updated, err = client.Update(ctx, "a", map[string]any{"servicePrice": 55})
	require.NoError(t, err)
	assert.Equal(t, 55, updated.ServicePrice)
	assert.Equal(t, "Maria Santos", updated.CustomerName)

	_, err = client.UpdateStatus(ctx, "missing", models.StatusCompleted)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = client.UpdateStatus(ctx, "a", "rescheduled")
	assert.Error(t, err)
}

func TestClientDelete(t *testing.T) {
	srv, mem := newTestBackend(t)
	seedBooking(t, mem, "a", "Maria Santos")

	client := NewClient(srv.URL)
	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "secret"))

	require.NoError(t, client.Delete(ctx, "a"))
	assert.Equal(t, 0, mem.Len())

	err := client.Delete(ctx, "a")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
