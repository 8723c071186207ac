// Package repository implements persistence for the portal's mutable state:
// the user directory and the live slot statuses with their reservation log.
//
// Each store has two implementations: a Postgres one using pgx directly
// (no ORM) and an in-memory one used by tests and by deployments that run
// without a database. The catalog and venue geometry are not stored here;
// they are compiled-in fixture data.
package repository

import (
	"context"
	"errors"

	"github.com/najah-dev/campus-events/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when registering an email that already
// exists, compared case-insensitively.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrSlotUnavailable is returned when a slot transition is attempted on a
// slot that is not in the required state. The failed attempt never mutates
// anything, so callers can simply re-render and let the user try again.
var ErrSlotUnavailable = errors.New("slot is not available")

// UserStore persists the user directory.
type UserStore interface {
	// Create appends a new user record. Fails with ErrDuplicateEmail when a
	// case-normalized email match already exists.
	Create(ctx context.Context, u *model.User) error

	// GetByEmail returns the user with the given email (case-insensitive)
	// or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// SlotStore owns the live status of every venue slot and the reservation
// log. Implementations must serialize status mutations per event so that
// the available → pending transition behaves like a compare-and-swap:
// of two concurrent requests for the same slot, exactly one wins.
type SlotStore interface {
	// Statuses returns the current status of every slot of an event,
	// keyed by slot ID. Unknown events return ErrNotFound.
	Statuses(ctx context.Context, eventID string) (map[string]model.SlotStatus, error)

	// Request transitions a slot from available to pending and records the
	// reservation. Returns ErrNotFound when the slot does not exist and
	// ErrSlotUnavailable when it is no longer available.
	Request(ctx context.Context, eventID, slotID, userEmail string) (*model.Reservation, error)

	// Approve transitions a slot from pending to reserved and marks its
	// open reservation approved. Returns ErrNotFound when the slot does not
	// exist and ErrSlotUnavailable when it is not pending.
	Approve(ctx context.Context, eventID, slotID string) error

	// ListReservations returns the reservation log for an event, oldest
	// first.
	ListReservations(ctx context.Context, eventID string) ([]model.Reservation, error)
}
