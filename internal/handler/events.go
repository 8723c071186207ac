package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/najah-dev/campus-events/internal/repository"
	"github.com/najah-dev/campus-events/internal/service"
)

// EventHandler holds the HTTP handlers for the event catalog.
type EventHandler struct {
	catalog  *service.Catalog
	sessions *scs.SessionManager
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(catalog *service.Catalog, sessions *scs.SessionManager) *EventHandler {
	return &EventHandler{catalog: catalog, sessions: sessions}
}

// List handles GET /events?q=&category=&more=
//
// The visible-count cursor lives in the session, so the load-more
// semantics are enforced server-side: changing q or category snaps the
// window back to the first page, more=true grows it by one page.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view := service.RestoreView(h.catalog,
		h.sessions.GetString(ctx, sessionKeyCatalogQuery),
		h.sessions.GetString(ctx, sessionKeyCatalogCategory),
		h.sessions.GetInt(ctx, sessionKeyCatalogVisible),
	)

	params := r.URL.Query()
	view.SetQuery(params.Get("q"))
	view.SetCategory(params.Get("category"))
	if more := params.Get("more"); more == "true" || more == "1" {
		view.LoadMore()
	}

	h.sessions.Put(ctx, sessionKeyCatalogQuery, view.Query())
	h.sessions.Put(ctx, sessionKeyCatalogCategory, view.Category())
	h.sessions.Put(ctx, sessionKeyCatalogVisible, view.Visible())

	writeJSON(w, http.StatusOK, view.Page())
}

// Get handles GET /events/{id}
// Returns a single reservable catalog entry by its venue-map identifier.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}
