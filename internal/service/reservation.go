package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
)

// ErrUnknownEvent is returned when an event identifier does not resolve to
// a venue slot map. It is a terminal display state for the reservation
// page, not a server fault.
var ErrUnknownEvent = errors.New("event not found")

// ErrNoSelection is returned when a reservation is submitted without a
// selected slot.
var ErrNoSelection = errors.New("no slot selected")

// ReservationService orchestrates the venue slot map: rendering it with
// live statuses, validating selections, and driving the two legal status
// transitions through the slot store.
type ReservationService struct {
	venues map[string]model.Venue
	slots  repository.SlotStore
}

// NewReservationService constructs a ReservationService over the injected
// venue layouts and the slot store.
func NewReservationService(venues map[string]model.Venue, slots repository.SlotStore) *ReservationService {
	return &ReservationService{venues: venues, slots: slots}
}

// VenueView renders the reservation page state for one event: the fixture
// layout overlaid with live statuses. selected is the visitor's current
// selection; it is kept only while that slot is still available, so a
// selection never survives a status change.
func (s *ReservationService) VenueView(ctx context.Context, eventID, selected string) (*model.VenueView, error) {
	venue, ok := s.venues[eventID]
	if !ok {
		return nil, ErrUnknownEvent
	}

	statuses, err := s.slots.Statuses(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load slot statuses: %w", err)
	}

	view := &model.VenueView{
		EventID:   venue.EventID,
		EventName: venue.EventName,
		VenueName: venue.VenueName,
		ImageURL:  venue.ImageURL,
		Slots:     make([]model.SlotView, 0, len(venue.Slots)),
	}
	for _, slot := range venue.Slots {
		if live, ok := statuses[slot.ID]; ok {
			slot.Status = live
		}
		view.Slots = append(view.Slots, model.SlotView{
			Slot:       slot,
			Selectable: slot.Status == model.SlotAvailable,
		})
		if slot.ID == selected && slot.Status == model.SlotAvailable {
			view.Selected = selected
		}
	}
	return view, nil
}

// Select validates that slotID may become the visitor's selection: the slot
// must exist and currently be available. Anything else is
// repository.ErrSlotUnavailable; an unknown event is ErrUnknownEvent.
func (s *ReservationService) Select(ctx context.Context, eventID, slotID string) error {
	if _, ok := s.venues[eventID]; !ok {
		return ErrUnknownEvent
	}
	if slotID == "" {
		return ErrNoSelection
	}

	statuses, err := s.slots.Statuses(ctx, eventID)
	if err != nil {
		return fmt.Errorf("load slot statuses: %w", err)
	}
	status, ok := statuses[slotID]
	if !ok || status != model.SlotAvailable {
		return repository.ErrSlotUnavailable
	}
	return nil
}

// Request submits the reservation form for the selected slot. The slot's
// availability is re-checked at the moment of the call by the store's
// compare-and-swap, guarding against selections that went stale between
// render and submit. On any failure nothing mutates.
func (s *ReservationService) Request(ctx context.Context, eventID, slotID, userEmail string) (*model.Reservation, error) {
	if _, ok := s.venues[eventID]; !ok {
		return nil, ErrUnknownEvent
	}
	if slotID == "" {
		return nil, ErrNoSelection
	}

	res, err := s.slots.Request(ctx, eventID, slotID, userEmail)
	if err != nil {
		// A slot id absent from the map is the same user-facing failure as
		// a slot that is no longer available.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrSlotUnavailable
		}
		if errors.Is(err, repository.ErrSlotUnavailable) {
			return nil, repository.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("request reservation: %w", err)
	}
	return res, nil
}

// Approve moves a pending slot to reserved on behalf of an organizer.
func (s *ReservationService) Approve(ctx context.Context, eventID, slotID string) error {
	if _, ok := s.venues[eventID]; !ok {
		return ErrUnknownEvent
	}

	err := s.slots.Approve(ctx, eventID, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrSlotUnavailable) {
			return err
		}
		return fmt.Errorf("approve reservation: %w", err)
	}
	return nil
}

// Reservations returns the reservation log for an event.
func (s *ReservationService) Reservations(ctx context.Context, eventID string) ([]model.Reservation, error) {
	if _, ok := s.venues[eventID]; !ok {
		return nil, ErrUnknownEvent
	}
	return s.slots.ListReservations(ctx, eventID)
}
