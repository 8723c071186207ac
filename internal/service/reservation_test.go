package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/najah-dev/campus-events/internal/fixture"
	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
)

func newReservationService() *ReservationService {
	venues := fixture.Venues()
	return NewReservationService(venues, repository.NewMemorySlotStore(venues))
}

func statuses(t *testing.T, svc *ReservationService, eventID string) map[string]model.SlotStatus {
	t.Helper()
	view, err := svc.VenueView(context.Background(), eventID, "")
	require.NoError(t, err)
	out := make(map[string]model.SlotStatus, len(view.Slots))
	for _, s := range view.Slots {
		out[s.ID] = s.Status
	}
	return out
}

func TestVenueViewUnknownEvent(t *testing.T) {
	svc := newReservationService()

	_, err := svc.VenueView(context.Background(), "no-such-event", "")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestVenueViewSelectableMirrorsStatus(t *testing.T) {
	svc := newReservationService()

	view, err := svc.VenueView(context.Background(), "career-expo", "")
	require.NoError(t, err)
	require.Len(t, view.Slots, 8)

	for _, s := range view.Slots {
		assert.Equal(t, s.Status == model.SlotAvailable, s.Selectable, "slot %s", s.ID)
	}
}

func TestSelect(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	// Available slot: fine.
	require.NoError(t, svc.Select(ctx, "career-expo", "A1"))

	// Reserved slot: refused.
	assert.ErrorIs(t, svc.Select(ctx, "career-expo", "A2"), repository.ErrSlotUnavailable)

	// Unknown slot id: same user-facing failure.
	assert.ErrorIs(t, svc.Select(ctx, "career-expo", "Z9"), repository.ErrSlotUnavailable)

	// Unknown event.
	assert.ErrorIs(t, svc.Select(ctx, "no-such-event", "A1"), ErrUnknownEvent)

	// Empty selection.
	assert.ErrorIs(t, svc.Select(ctx, "career-expo", ""), ErrNoSelection)
}

func TestRequestTransitionsExactlyOneSlot(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	before := statuses(t, svc, "career-expo")
	require.Equal(t, model.SlotAvailable, before["A1"])

	res, err := svc.Request(ctx, "career-expo", "A1", "demo@najah.edu")
	require.NoError(t, err)
	assert.Equal(t, model.SlotPending, res.Status)
	assert.Equal(t, "A1", res.SlotID)
	assert.NotEmpty(t, res.ID)

	after := statuses(t, svc, "career-expo")
	assert.Equal(t, model.SlotPending, after["A1"])
	for id, status := range before {
		if id == "A1" {
			continue
		}
		assert.Equal(t, status, after[id], "slot %s must not change", id)
	}
}

func TestRequestWithoutSelection(t *testing.T) {
	svc := newReservationService()

	before := statuses(t, svc, "career-expo")
	_, err := svc.Request(context.Background(), "career-expo", "", "demo@najah.edu")
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, before, statuses(t, svc, "career-expo"))
}

func TestRequestTwiceIsRejectedSecondTime(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	_, err := svc.Request(ctx, "career-expo", "A1", "demo@najah.edu")
	require.NoError(t, err)
	after := statuses(t, svc, "career-expo")

	_, err = svc.Request(ctx, "career-expo", "A1", "demo@najah.edu")
	assert.ErrorIs(t, err, repository.ErrSlotUnavailable)
	assert.Equal(t, after, statuses(t, svc, "career-expo"), "a rejected request must not mutate")
}

func TestRequestFailures(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	// Slot already reserved in fixture data.
	_, err := svc.Request(ctx, "career-expo", "A2", "demo@najah.edu")
	assert.ErrorIs(t, err, repository.ErrSlotUnavailable)

	// Slot id absent from the map.
	_, err = svc.Request(ctx, "career-expo", "Z9", "demo@najah.edu")
	assert.ErrorIs(t, err, repository.ErrSlotUnavailable)

	// Unknown event.
	_, err = svc.Request(ctx, "no-such-event", "A1", "demo@najah.edu")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestSelectionDoesNotSurviveStatusChange(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	// While available, the selection renders.
	view, err := svc.VenueView(ctx, "career-expo", "A1")
	require.NoError(t, err)
	assert.Equal(t, "A1", view.Selected)

	_, err = svc.Request(ctx, "career-expo", "A1", "demo@najah.edu")
	require.NoError(t, err)

	// Once pending, the stale selection is dropped from the view.
	view, err = svc.VenueView(ctx, "career-expo", "A1")
	require.NoError(t, err)
	assert.Empty(t, view.Selected)
}

func TestApprove(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	_, err := svc.Request(ctx, "tech-conf", "E1", "demo@najah.edu")
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, "tech-conf", "E1"))
	assert.Equal(t, model.SlotReserved, statuses(t, svc, "tech-conf")["E1"])

	// Nothing leaves reserved.
	assert.ErrorIs(t, svc.Approve(ctx, "tech-conf", "E1"), repository.ErrSlotUnavailable)

	// Only pending slots can be approved.
	assert.ErrorIs(t, svc.Approve(ctx, "tech-conf", "E2"), repository.ErrSlotUnavailable)
	assert.ErrorIs(t, svc.Approve(ctx, "tech-conf", "Z9"), repository.ErrNotFound)
	assert.ErrorIs(t, svc.Approve(ctx, "no-such-event", "E1"), ErrUnknownEvent)

	// The reservation log follows the slot.
	regs, err := svc.Reservations(ctx, "tech-conf")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, model.SlotReserved, regs[0].Status)
}

func TestReservationsLog(t *testing.T) {
	svc := newReservationService()
	ctx := context.Background()

	regs, err := svc.Reservations(ctx, "projects-fair")
	require.NoError(t, err)
	assert.Empty(t, regs)

	_, err = svc.Request(ctx, "projects-fair", "X1", "a@najah.edu")
	require.NoError(t, err)
	_, err = svc.Request(ctx, "projects-fair", "Y1", "b@najah.edu")
	require.NoError(t, err)

	regs, err = svc.Reservations(ctx, "projects-fair")
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.Equal(t, "X1", regs[0].SlotID)
	assert.Equal(t, "Y1", regs[1].SlotID)

	_, err = svc.Reservations(ctx, "no-such-event")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}
