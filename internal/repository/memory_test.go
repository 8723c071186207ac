package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/najah-dev/campus-events/internal/model"
)

func testVenues() map[string]model.Venue {
	return map[string]model.Venue{
		"career-expo": {
			EventID:   "career-expo",
			EventName: "Career Expo 2026",
			VenueName: "Main Hall",
			Slots: []model.Slot{
				{ID: "A1", Status: model.SlotAvailable},
				{ID: "A2", Status: model.SlotReserved},
				{ID: "A3", Status: model.SlotPending},
			},
		},
	}
}

func TestMemorySlotStoreSeedsInitialStatuses(t *testing.T) {
	store := NewMemorySlotStore(testVenues())

	statuses, err := store.Statuses(context.Background(), "career-expo")
	require.NoError(t, err)
	assert.Equal(t, map[string]model.SlotStatus{
		"A1": model.SlotAvailable,
		"A2": model.SlotReserved,
		"A3": model.SlotPending,
	}, statuses)

	_, err = store.Statuses(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySlotStoreStatusesReturnsCopy(t *testing.T) {
	store := NewMemorySlotStore(testVenues())
	ctx := context.Background()

	statuses, err := store.Statuses(ctx, "career-expo")
	require.NoError(t, err)
	statuses["A1"] = model.SlotReserved

	fresh, err := store.Statuses(ctx, "career-expo")
	require.NoError(t, err)
	assert.Equal(t, model.SlotAvailable, fresh["A1"], "callers must not be able to mutate the store")
}

func TestMemorySlotStoreRequestErrors(t *testing.T) {
	store := NewMemorySlotStore(testVenues())
	ctx := context.Background()

	_, err := store.Request(ctx, "career-expo", "A2", "a@najah.edu")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = store.Request(ctx, "career-expo", "Z9", "a@najah.edu")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Request(ctx, "unknown", "A1", "a@najah.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestMemorySlotStoreConcurrentRequests hammers one available slot from
// many goroutines: exactly one request may win the compare-and-swap.
func TestMemorySlotStoreConcurrentRequests(t *testing.T) {
	store := NewMemorySlotStore(testVenues())
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Request(ctx, "career-expo", "A1", "race@najah.edu")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "exactly one requester wins the slot")

	regs, err := store.ListReservations(ctx, "career-expo")
	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestMemorySlotStoreApprove(t *testing.T) {
	store := NewMemorySlotStore(testVenues())
	ctx := context.Background()

	// Fixture-pending slots are approvable even without a reservation row.
	require.NoError(t, store.Approve(ctx, "career-expo", "A3"))

	statuses, err := store.Statuses(ctx, "career-expo")
	require.NoError(t, err)
	assert.Equal(t, model.SlotReserved, statuses["A3"])

	assert.ErrorIs(t, store.Approve(ctx, "career-expo", "A3"), ErrSlotUnavailable)
	assert.ErrorIs(t, store.Approve(ctx, "career-expo", "A1"), ErrSlotUnavailable)
	assert.ErrorIs(t, store.Approve(ctx, "career-expo", "Z9"), ErrNotFound)
}

func TestMemoryUserStore(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	u := &model.User{Name: "Lina Hasan", Role: model.RoleStudent, Email: "lina@najah.edu", PasswordHash: "x"}
	require.NoError(t, store.Create(ctx, u))
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	dup := &model.User{Name: "Other", Role: model.RoleStudent, Email: "LINA@najah.edu", PasswordHash: "y"}
	assert.ErrorIs(t, store.Create(ctx, dup), ErrDuplicateEmail)

	got, err := store.GetByEmail(ctx, "Lina@Najah.edu")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = store.GetByEmail(ctx, "nobody@najah.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}
