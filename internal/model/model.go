// Package model defines the core domain types for the campus events portal.
package model

import "time"

// Role identifies what kind of account a user registered as.
type Role string

const (
	RoleStudent   Role = "student"
	RoleFaculty   Role = "faculty"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// CanApprove reports whether the role may approve pending slot requests.
func (r Role) CanApprove() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

// User is an account in the user directory. Emails are unique
// case-insensitively; the stored hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category classifies a catalog event.
type Category string

const (
	CategoryExpo       Category = "expo"
	CategoryConference Category = "conference"
	CategoryWorkshop   Category = "workshop"
	CategoryFestival   Category = "festival"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryExpo, CategoryConference, CategoryWorkshop, CategoryFestival:
		return true
	}
	return false
}

// Event is one catalog entry. ID is the venue-map identifier; it is empty
// for events that do not support reservations yet. Date stays a raw
// ISO-8601 string because the catalog search matches against it verbatim.
type Event struct {
	ID       string   `json:"id,omitempty"`
	Title    string   `json:"title"`
	Venue    string   `json:"venue"`
	Date     string   `json:"date"`
	Category Category `json:"category"`
	ImageURL string   `json:"image_url"`
}

// Reservable reports whether the event has a venue slot map to reserve in.
func (e *Event) Reservable() bool {
	return e.ID != ""
}

// SlotStatus is the lifecycle state of a venue slot.
//
// The only transition a visitor can cause is available → pending (submitting
// a reservation request). pending → reserved happens through organizer
// approval. Nothing ever leaves reserved, and nothing moves back to
// available. Any of the three states may be a slot's initial state.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotPending   SlotStatus = "pending"
	SlotReserved  SlotStatus = "reserved"
)

// Valid reports whether s is one of the known statuses.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotPending, SlotReserved:
		return true
	}
	return false
}

// Slot is a reservable unit of space in a venue. Geometry is expressed in
// percentages relative to the venue image so clients can draw it at any size.
type Slot struct {
	ID     string     `json:"id"`
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Status SlotStatus `json:"status"`
}

// Venue is the fixed slot layout for one event, as declared in fixture data.
// Slot statuses in a Venue are the initial statuses; live statuses come from
// the slot store.
type Venue struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`
	VenueName string `json:"venue_name"`
	ImageURL  string `json:"image_url"`
	Slots     []Slot `json:"slots"`
}

// Reservation records one slot request and tracks it through approval.
type Reservation struct {
	ID        string     `json:"id"`
	EventID   string     `json:"event_id"`
	SlotID    string     `json:"slot_id"`
	UserEmail string     `json:"user_email"`
	Status    SlotStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// Request payloads.

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Confirm     string `json:"confirm"`
	AcceptTerms bool   `json:"accept_terms"`
}

// LoginRequest is the payload for starting a session. Remember selects the
// durable session scope instead of the tab-scoped one.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// ForgotRequest asks for a (simulated) password reset mail.
type ForgotRequest struct {
	Email string `json:"email"`
}

// SelectRequest marks one slot as the visitor's current selection.
type SelectRequest struct {
	SlotID string `json:"slot_id"`
}

// ReserveRequest submits the reservation form. SlotID is optional: when set
// it replaces the stored selection before submitting.
type ReserveRequest struct {
	SlotID string `json:"slot_id,omitempty"`
}

// Response shapes.

// SessionInfo describes the logged-in user to the client.
type SessionInfo struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CatalogEntry is one rendered event card.
type CatalogEntry struct {
	Event
	Reservable bool `json:"reservable"`
}

// CatalogPage is one visible page of the filtered catalog.
type CatalogPage struct {
	Events  []CatalogEntry `json:"events"`
	Total   int            `json:"total"`
	Visible int            `json:"visible"`
	HasMore bool           `json:"has_more"`
}

// SlotView is a slot as rendered to the reservation page: its live status
// plus whether the visitor may select it right now.
type SlotView struct {
	Slot
	Selectable bool `json:"selectable"`
}

// VenueView is the reservation page state for one event: the venue layout
// with live slot statuses and the visitor's current selection, if any.
type VenueView struct {
	EventID   string     `json:"event_id"`
	EventName string     `json:"event_name"`
	VenueName string     `json:"venue_name"`
	ImageURL  string     `json:"image_url"`
	Slots     []SlotView `json:"slots"`
	Selected  string     `json:"selected,omitempty"`
}

// ErrorResponse is a standard JSON error envelope. Fields carries per-field
// validation messages when the error is an input problem.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
