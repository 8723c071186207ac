package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/najah-dev/campus-events/internal/model"
)

// MemorySlotStore keeps slot statuses and reservations in process memory.
// A single mutex serializes all mutations, which trivially satisfies the
// per-event compare-and-swap contract.
type MemorySlotStore struct {
	mu           sync.RWMutex
	statuses     map[string]map[string]model.SlotStatus // eventID → slotID → status
	reservations []model.Reservation
}

// NewMemorySlotStore constructs a MemorySlotStore seeded from the given
// venue fixtures.
func NewMemorySlotStore(venues map[string]model.Venue) *MemorySlotStore {
	statuses := make(map[string]map[string]model.SlotStatus, len(venues))
	for eventID, venue := range venues {
		slots := make(map[string]model.SlotStatus, len(venue.Slots))
		for _, slot := range venue.Slots {
			slots[slot.ID] = slot.Status
		}
		statuses[eventID] = slots
	}
	return &MemorySlotStore{statuses: statuses}
}

// Statuses returns a copy of the current statuses of an event's slots.
func (s *MemorySlotStore) Statuses(ctx context.Context, eventID string) (map[string]model.SlotStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots, ok := s.statuses[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make(map[string]model.SlotStatus, len(slots))
	for id, status := range slots {
		out[id] = status
	}
	return out, nil
}

// Request performs the available → pending transition and records the
// reservation under the store lock.
func (s *MemorySlotStore) Request(ctx context.Context, eventID, slotID, userEmail string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := s.slotStatus(eventID, slotID)
	if err != nil {
		return nil, err
	}
	if status != model.SlotAvailable {
		return nil, ErrSlotUnavailable
	}

	s.statuses[eventID][slotID] = model.SlotPending
	res := model.Reservation{
		ID:        uuid.New().String(),
		EventID:   eventID,
		SlotID:    slotID,
		UserEmail: userEmail,
		Status:    model.SlotPending,
		CreatedAt: time.Now().UTC(),
	}
	s.reservations = append(s.reservations, res)
	return &res, nil
}

// Approve performs the pending → reserved transition.
func (s *MemorySlotStore) Approve(ctx context.Context, eventID, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	status, err := s.slotStatus(eventID, slotID)
	if err != nil {
		return err
	}
	if status != model.SlotPending {
		return ErrSlotUnavailable
	}

	s.statuses[eventID][slotID] = model.SlotReserved
	for i := range s.reservations {
		r := &s.reservations[i]
		if r.EventID == eventID && r.SlotID == slotID && r.Status == model.SlotPending {
			r.Status = model.SlotReserved
		}
	}
	return nil
}

// ListReservations returns the reservation log for an event, oldest first.
func (s *MemorySlotStore) ListReservations(ctx context.Context, eventID string) ([]model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Reservation
	for _, r := range s.reservations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

// slotStatus looks up one slot's status. Callers must hold the lock.
func (s *MemorySlotStore) slotStatus(eventID, slotID string) (model.SlotStatus, error) {
	slots, ok := s.statuses[eventID]
	if !ok {
		return "", ErrNotFound
	}
	status, ok := slots[slotID]
	if !ok {
		return "", ErrNotFound
	}
	return status, nil
}
