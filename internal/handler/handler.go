// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer, plus the session glue
// that keeps per-visitor state (login, catalog cursor, slot selection).
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/najah-dev/campus-events/internal/model"
)

// Session keys. The login keys mirror the session record (email, name,
// role, created-at); the catalog keys hold the visitor's view cursor; the
// selection key is per event.
const (
	sessionKeyEmail   = "user_email"
	sessionKeyName    = "user_name"
	sessionKeyRole    = "user_role"
	sessionKeyLoginAt = "login_at"

	sessionKeyCatalogQuery    = "catalog_query"
	sessionKeyCatalogCategory = "catalog_category"
	sessionKeyCatalogVisible  = "catalog_visible"
)

// selectionKey names the session entry holding the visitor's selected slot
// for one event.
func selectionKey(eventID string) string {
	return "selection:" + eventID
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func writeFieldErrors(w http.ResponseWriter, status int, msg string, fields map[string]string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Fields: fields})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// decodeJSONOptional is decodeJSON for endpoints where an empty body is
// fine (e.g. submitting the reservation form with the stored selection).
func decodeJSONOptional(r *http.Request, dst any) error {
	err := decodeJSON(r, dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
