package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
	"github.com/najah-dev/campus-events/internal/service"
)

// ReservationHandler holds the HTTP handlers for the reservation page: the
// venue slot map, the visitor's selection, and the submit/approve
// transitions.
type ReservationHandler struct {
	reservations *service.ReservationService
	sessions     *scs.SessionManager
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(reservations *service.ReservationService, sessions *scs.SessionManager) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, sessions: sessions}
}

// Venue handles GET /events/{id}/venue
// Renders the slot map with live statuses. An unknown event id is the
// terminal "not found" state: a 404 the client renders as a disabled page.
func (h *ReservationHandler) Venue(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	view, err := h.reservations.VenueView(r.Context(), eventID,
		h.sessions.GetString(r.Context(), selectionKey(eventID)))
	if err != nil {
		if errors.Is(err, service.ErrUnknownEvent) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load venue")
		return
	}

	h.syncSelection(r, eventID, view)
	writeJSON(w, http.StatusOK, view)
}

// Select handles PUT /events/{id}/selection
// Stores the slot as the visitor's selection, replacing any prior one.
// Only an available slot can be selected.
func (h *ReservationHandler) Select(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	var req model.SelectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.reservations.Select(r.Context(), eventID, req.SlotID); err != nil {
		h.writeReservationError(w, err)
		return
	}

	h.sessions.Put(r.Context(), selectionKey(eventID), req.SlotID)
	writeJSON(w, http.StatusOK, map[string]string{"selected": req.SlotID})
}

// ClearSelection handles DELETE /events/{id}/selection
func (h *ReservationHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.sessions.Remove(r.Context(), selectionKey(chi.URLParam(r, "id")))
	w.WriteHeader(http.StatusNoContent)
}

// Reserve handles POST /events/{id}/reservations
// Submits the reservation form for the selected slot. The body may carry a
// slot_id to select-and-submit in one call; otherwise the stored selection
// is used. Availability is re-validated at this moment; a stale selection
// fails without mutating anything.
func (h *ReservationHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	ctx := r.Context()

	var req model.ReserveRequest
	if err := decodeJSONOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	slotID := req.SlotID
	if slotID == "" {
		slotID = h.sessions.GetString(ctx, selectionKey(eventID))
	}

	res, err := h.reservations.Request(ctx, eventID, slotID, h.sessions.GetString(ctx, sessionKeyEmail))
	if err != nil {
		h.writeReservationError(w, err)
		return
	}

	// The slot changed state, so the selection does not survive.
	h.sessions.Remove(ctx, selectionKey(eventID))

	view, err := h.reservations.VenueView(ctx, eventID, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reload venue")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "Request sent. Your slot is pending admin approval.",
		"reservation": res,
		"venue":       view,
	})
}

// ListReservations handles GET /events/{id}/reservations (approvers only).
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.reservations.Reservations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownEvent) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list reservations")
		return
	}

	if regs == nil {
		regs = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, regs)
}

// Approve handles POST /events/{id}/slots/{slotID}/approve (approvers
// only). Moves a pending slot to reserved.
func (h *ReservationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	slotID := chi.URLParam(r, "slotID")

	if err := h.reservations.Approve(r.Context(), eventID, slotID); err != nil {
		h.writeReservationError(w, err)
		return
	}

	view, err := h.reservations.VenueView(r.Context(), eventID, "")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reload venue")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Slot approved.",
		"venue":   view,
	})
}

// syncSelection drops the stored selection when the view no longer carries
// it (the slot left the available state since it was selected).
func (h *ReservationHandler) syncSelection(r *http.Request, eventID string, view *model.VenueView) {
	stored := h.sessions.GetString(r.Context(), selectionKey(eventID))
	if stored != "" && view.Selected == "" {
		h.sessions.Remove(r.Context(), selectionKey(eventID))
	}
}

// writeReservationError maps reservation failures to HTTP statuses.
func (h *ReservationHandler) writeReservationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownEvent):
		writeError(w, http.StatusNotFound, "event not found")
	case errors.Is(err, service.ErrNoSelection):
		writeError(w, http.StatusConflict, "please select an available slot before sending the request")
	case errors.Is(err, repository.ErrSlotUnavailable):
		writeError(w, http.StatusConflict, "this slot is not available anymore")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "slot not found")
	default:
		writeError(w, http.StatusInternalServerError, "reservation failed")
	}
}
