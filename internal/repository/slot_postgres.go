package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/najah-dev/campus-events/internal/model"
)

// PostgresSlotStore persists slot statuses and reservations in Postgres.
//
// Status transitions use a guarded UPDATE (`... WHERE status = $expected`)
// instead of read-then-write: the row count tells us whether this request
// won the transition, so two concurrent requests for the same slot can never
// both succeed. The database serializes the writes per row, which is per
// slot and therefore per event.
type PostgresSlotStore struct {
	db *pgxpool.Pool
}

// NewPostgresSlotStore constructs a PostgresSlotStore.
func NewPostgresSlotStore(db *pgxpool.Pool) *PostgresSlotStore {
	return &PostgresSlotStore{db: db}
}

// Seed inserts the initial status of every fixture slot, skipping rows that
// already exist so live state survives restarts.
func (s *PostgresSlotStore) Seed(ctx context.Context, venues map[string]model.Venue) error {
	for eventID, venue := range venues {
		for _, slot := range venue.Slots {
			_, err := s.db.Exec(ctx,
				`INSERT INTO slot_status (event_id, slot_id, status)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (event_id, slot_id) DO NOTHING`,
				eventID, slot.ID, slot.Status,
			)
			if err != nil {
				return fmt.Errorf("seed slot %s/%s: %w", eventID, slot.ID, err)
			}
		}
	}
	return nil
}

// Statuses returns the current status of every slot of an event.
func (s *PostgresSlotStore) Statuses(ctx context.Context, eventID string) (map[string]model.SlotStatus, error) {
	rows, err := s.db.Query(ctx,
		`SELECT slot_id, status FROM slot_status WHERE event_id = $1`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list slot statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]model.SlotStatus)
	for rows.Next() {
		var slotID string
		var status model.SlotStatus
		if err := rows.Scan(&slotID, &status); err != nil {
			return nil, fmt.Errorf("scan slot status: %w", err)
		}
		statuses[slotID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, ErrNotFound
	}
	return statuses, nil
}

// Request performs the available → pending transition and records the
// reservation atomically.
func (s *PostgresSlotStore) Request(ctx context.Context, eventID, slotID, userEmail string) (*model.Reservation, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	// Always resolve the transaction; rollback after commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	// The compare-and-swap: only the request that flips the row wins.
	tag, err := tx.Exec(ctx,
		`UPDATE slot_status SET status = $1
		 WHERE event_id = $2 AND slot_id = $3 AND status = $4`,
		model.SlotPending, eventID, slotID, model.SlotAvailable,
	)
	if err != nil {
		return nil, fmt.Errorf("request slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, s.lostTransition(ctx, tx, eventID, slotID)
	}

	res := &model.Reservation{
		ID:        uuid.New().String(),
		EventID:   eventID,
		SlotID:    slotID,
		UserEmail: userEmail,
		Status:    model.SlotPending,
		CreatedAt: time.Now().UTC(),
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO reservations (id, event_id, slot_id, user_email, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		res.ID, res.EventID, res.SlotID, res.UserEmail, res.Status, res.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return res, nil
}

// Approve performs the pending → reserved transition and marks the open
// reservation approved.
func (s *PostgresSlotStore) Approve(ctx context.Context, eventID, slotID string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE slot_status SET status = $1
		 WHERE event_id = $2 AND slot_id = $3 AND status = $4`,
		model.SlotReserved, eventID, slotID, model.SlotPending,
	)
	if err != nil {
		return fmt.Errorf("approve slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return s.lostTransition(ctx, tx, eventID, slotID)
	}

	_, err = tx.Exec(ctx,
		`UPDATE reservations SET status = $1
		 WHERE event_id = $2 AND slot_id = $3 AND status = $4`,
		model.SlotReserved, eventID, slotID, model.SlotPending,
	)
	if err != nil {
		return fmt.Errorf("approve reservation: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lostTransition decides why a guarded UPDATE matched nothing: the slot is
// either missing entirely or in the wrong state.
func (s *PostgresSlotStore) lostTransition(ctx context.Context, tx pgx.Tx, eventID, slotID string) error {
	var status model.SlotStatus
	err := tx.QueryRow(ctx,
		`SELECT status FROM slot_status WHERE event_id = $1 AND slot_id = $2`,
		eventID, slotID,
	).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("inspect slot: %w", err)
	}
	return ErrSlotUnavailable
}

// ListReservations returns the reservation log for an event, oldest first.
func (s *PostgresSlotStore) ListReservations(ctx context.Context, eventID string) ([]model.Reservation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, event_id, slot_id, user_email, status, created_at
		 FROM reservations
		 WHERE event_id = $1
		 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var r model.Reservation
		if err := rows.Scan(&r.ID, &r.EventID, &r.SlotID, &r.UserEmail, &r.Status, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
