package service

import (
	"strings"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
)

// PageSize is how many event cards one "page" of the catalog shows. The
// load-more control grows the visible window by the same amount.
const PageSize = 6

// CategoryAll is the category filter value that matches every event.
const CategoryAll = "all"

// Catalog is the read-only event list. Construction takes the fixture slice
// so each instance owns an independent copy; declaration order is the only
// ordering the catalog ever has.
type Catalog struct {
	events []model.Event
}

// NewCatalog constructs a Catalog over the given events.
func NewCatalog(events []model.Event) *Catalog {
	return &Catalog{events: events}
}

// Get returns the reservable event with the given venue-map identifier, or
// repository.ErrNotFound. Events without an identifier are not addressable.
func (c *Catalog) Get(id string) (*model.Event, error) {
	if id == "" {
		return nil, repository.ErrNotFound
	}
	for i := range c.events {
		if c.events[i].ID == id {
			return &c.events[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

// Filter returns the ordered subsequence of events matching the free-text
// query and category. The query matches case-insensitively against title,
// venue, or the raw date string; category "all" (or empty) matches
// everything.
func (c *Catalog) Filter(query, category string) []model.Event {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []model.Event
	for _, ev := range c.events {
		if category != "" && category != CategoryAll && string(ev.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ev.Title), q) &&
			!strings.Contains(strings.ToLower(ev.Venue), q) &&
			!strings.Contains(ev.Date, q) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// View is one visitor's position in the filtered catalog: the current
// query, category, and how many cards are visible. Changing the query or
// category snaps the visible window back to the first page.
type View struct {
	catalog  *Catalog
	query    string
	category string
	visible  int
}

// NewView constructs a fresh view showing the first page of everything.
func NewView(c *Catalog) *View {
	return &View{catalog: c, category: CategoryAll, visible: PageSize}
}

// RestoreView rebuilds a view from previously saved state, clamping the
// cursor to something sane.
func RestoreView(c *Catalog, query, category string, visible int) *View {
	if category == "" {
		category = CategoryAll
	}
	if visible < PageSize {
		visible = PageSize
	}
	return &View{catalog: c, query: query, category: category, visible: visible}
}

// Query returns the current free-text query.
func (v *View) Query() string { return v.query }

// Category returns the current category filter.
func (v *View) Category() string { return v.category }

// Visible returns the current visible-count cursor.
func (v *View) Visible() int { return v.visible }

// SetQuery updates the free-text query. A change resets the cursor.
func (v *View) SetQuery(q string) {
	q = strings.TrimSpace(q)
	if q != v.query {
		v.query = q
		v.visible = PageSize
	}
}

// SetCategory updates the category filter. A change resets the cursor.
func (v *View) SetCategory(c string) {
	if c == "" {
		c = CategoryAll
	}
	if c != v.category {
		v.category = c
		v.visible = PageSize
	}
}

// LoadMore grows the visible window by one page.
func (v *View) LoadMore() {
	v.visible += PageSize
}

// Page renders the current page: at most Visible() cards, the total match
// count, and whether a load-more control should show.
func (v *View) Page() model.CatalogPage {
	filtered := v.catalog.Filter(v.query, v.category)

	n := v.visible
	if n > len(filtered) {
		n = len(filtered)
	}
	entries := make([]model.CatalogEntry, 0, n)
	for _, ev := range filtered[:n] {
		entries = append(entries, model.CatalogEntry{Event: ev, Reservable: ev.Reservable()})
	}

	return model.CatalogPage{
		Events:  entries,
		Total:   len(filtered),
		Visible: v.visible,
		HasMore: v.visible < len(filtered),
	}
}
