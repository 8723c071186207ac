package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/najah-dev/campus-events/internal/fixture"
	"github.com/najah-dev/campus-events/internal/repository"
	"github.com/najah-dev/campus-events/internal/service"
)

// newTestServer spins up the full router over in-memory stores, and a
// client with a cookie jar so session state behaves like a browser.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	venues := fixture.Venues()
	users := repository.NewMemoryUserStore()
	slots := repository.NewMemorySlotStore(venues)

	sessions := scs.New()
	sessions.Cookie.Persist = false

	authSvc := service.NewAuthService(users)
	catalog := service.NewCatalog(fixture.Catalog())
	reservationSvc := service.NewReservationService(venues, slots)

	authHandler := NewAuthHandler(authSvc, sessions)
	eventHandler := NewEventHandler(catalog, sessions)
	reservationHandler := NewReservationHandler(reservationSvc, sessions)

	r := chi.NewRouter()
	r.Use(sessions.LoadAndSave)

	r.Get("/health", HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/demo", authHandler.DemoLogin)
		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
		r.Post("/forgot", authHandler.Forgot)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.List)
		r.Get("/{id}", eventHandler.Get)
		r.Get("/{id}/venue", reservationHandler.Venue)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser(sessions))
			r.Put("/{id}/selection", reservationHandler.Select)
			r.Delete("/{id}/selection", reservationHandler.ClearSelection)
			r.Post("/{id}/reservations", reservationHandler.Reserve)
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireApprover(sessions))
			r.Get("/{id}/reservations", reservationHandler.ListReservations)
			r.Post("/{id}/slots/{slotID}/approve", reservationHandler.Approve)
		})
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return ts, &http.Client{Jar: jar}
}

// doJSON sends a request with an optional JSON body and decodes the JSON
// response into out (when out is non-nil). It returns the status code.
func doJSON(t *testing.T, client *http.Client, method, url string, body, out any) int {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	ts, client := newTestServer(t)

	var body map[string]string
	status := doJSON(t, client, http.MethodGet, ts.URL+"/health", nil, &body)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
}
