// Package fixture holds the compiled-in demo catalog and venue layouts.
//
// The data is returned as fresh copies so callers can treat it as injected,
// immutable configuration: every service (and every test) gets its own
// snapshot to mutate or not as it pleases.
package fixture

import "github.com/najah-dev/campus-events/internal/model"

// Catalog returns the demo event catalog in declaration order. Events with
// an ID have a venue slot map and support live reservation; the rest render
// as "coming soon".
func Catalog() []model.Event {
	return []model.Event{
		{
			ID:       "career-expo",
			Title:    "Career Expo 2026",
			Venue:    "Main Hall",
			Date:     "2026-03-12",
			Category: model.CategoryExpo,
			ImageURL: "https://images.unsplash.com/photo-1511578314322-379afb476865?auto=format&fit=crop&w=1200&q=60",
		},
		{
			ID:       "tech-conf",
			Title:    "Tech Conference",
			Venue:    "Engineering Hall",
			Date:     "2026-04-05",
			Category: model.CategoryConference,
			ImageURL: "https://images.unsplash.com/photo-1558008258-3256797b43f3?auto=format&fit=crop&w=1200&q=60",
		},
		{
			ID:       "projects-fair",
			Title:    "Projects Fair",
			Venue:    "Expo Hall",
			Date:     "2026-05-01",
			Category: model.CategoryExpo,
			ImageURL: "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Startup Pitch Night",
			Venue:    "Business Center",
			Date:     "2026-03-22",
			Category: model.CategoryConference,
			ImageURL: "https://images.unsplash.com/photo-1521737711867-e3b97375f902?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "AI Workshop",
			Venue:    "Lab A2",
			Date:     "2026-04-14",
			Category: model.CategoryWorkshop,
			ImageURL: "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Spring Festival",
			Venue:    "Outdoor Stage",
			Date:     "2026-04-20",
			Category: model.CategoryFestival,
			ImageURL: "https://images.unsplash.com/photo-1515165562835-c3b8b0b5f3ff?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Cybersecurity Day",
			Venue:    "IT Building",
			Date:     "2026-05-10",
			Category: model.CategoryConference,
			ImageURL: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Robotics Showcase",
			Venue:    "Engineering Hall",
			Date:     "2026-05-18",
			Category: model.CategoryExpo,
			ImageURL: "https://images.unsplash.com/photo-1531297484001-80022131f5a1?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Design Thinking Workshop",
			Venue:    "Innovation Hub",
			Date:     "2026-06-02",
			Category: model.CategoryWorkshop,
			ImageURL: "https://images.unsplash.com/photo-1552664730-d307ca884978?auto=format&fit=crop&w=1200&q=60",
		},
		{
			Title:    "Summer Culture Night",
			Venue:    "Main Auditorium",
			Date:     "2026-06-15",
			Category: model.CategoryFestival,
			ImageURL: "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?auto=format&fit=crop&w=1200&q=60",
		},
	}
}

// Venues returns the venue slot layouts keyed by event ID. Slot statuses
// here are the initial statuses a fresh deployment starts from; some slots
// begin reserved on purpose.
func Venues() map[string]model.Venue {
	return map[string]model.Venue{
		"career-expo": {
			EventID:   "career-expo",
			EventName: "Career Expo 2026",
			VenueName: "Main Hall",
			ImageURL:  "https://images.unsplash.com/photo-1515165562835-c3b8b0b5f3ff?auto=format&fit=crop&w=1400&q=60",
			Slots: []model.Slot{
				{ID: "A1", X: 8, Y: 18, Width: 14, Height: 16, Status: model.SlotAvailable},
				{ID: "A2", X: 26, Y: 18, Width: 14, Height: 16, Status: model.SlotReserved},
				{ID: "A3", X: 44, Y: 18, Width: 14, Height: 16, Status: model.SlotAvailable},
				{ID: "A4", X: 62, Y: 18, Width: 14, Height: 16, Status: model.SlotAvailable},
				{ID: "B1", X: 8, Y: 40, Width: 14, Height: 16, Status: model.SlotReserved},
				{ID: "B2", X: 26, Y: 40, Width: 14, Height: 16, Status: model.SlotAvailable},
				{ID: "B3", X: 44, Y: 40, Width: 14, Height: 16, Status: model.SlotAvailable},
				{ID: "B4", X: 62, Y: 40, Width: 14, Height: 16, Status: model.SlotReserved},
			},
		},
		"tech-conf": {
			EventID:   "tech-conf",
			EventName: "Tech Conference",
			VenueName: "Engineering Hall",
			ImageURL:  "https://images.unsplash.com/photo-1517457373958-b7bdd4587205?auto=format&fit=crop&w=1400&q=60",
			Slots: []model.Slot{
				{ID: "E1", X: 10, Y: 22, Width: 18, Height: 18, Status: model.SlotAvailable},
				{ID: "E2", X: 33, Y: 22, Width: 18, Height: 18, Status: model.SlotAvailable},
				{ID: "E3", X: 56, Y: 22, Width: 18, Height: 18, Status: model.SlotReserved},
				{ID: "F1", X: 10, Y: 48, Width: 18, Height: 18, Status: model.SlotAvailable},
				{ID: "F2", X: 33, Y: 48, Width: 18, Height: 18, Status: model.SlotReserved},
				{ID: "F3", X: 56, Y: 48, Width: 18, Height: 18, Status: model.SlotAvailable},
			},
		},
		"projects-fair": {
			EventID:   "projects-fair",
			EventName: "Projects Fair",
			VenueName: "Expo Hall",
			ImageURL:  "https://images.unsplash.com/photo-1521737604893-d14cc237f11d?auto=format&fit=crop&w=1400&q=60",
			Slots: []model.Slot{
				{ID: "X1", X: 12, Y: 26, Width: 16, Height: 16, Status: model.SlotAvailable},
				{ID: "X2", X: 32, Y: 26, Width: 16, Height: 16, Status: model.SlotAvailable},
				{ID: "X3", X: 52, Y: 26, Width: 16, Height: 16, Status: model.SlotReserved},
				{ID: "Y1", X: 12, Y: 50, Width: 16, Height: 16, Status: model.SlotAvailable},
				{ID: "Y2", X: 32, Y: 50, Width: 16, Height: 16, Status: model.SlotReserved},
				{ID: "Y3", X: 52, Y: 50, Width: 16, Height: 16, Status: model.SlotAvailable},
			},
		},
	}
}
