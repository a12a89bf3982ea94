package menu

import (
	"fmt"
	"strings"

	"restrofi/storefront-svc/internal/domain"
)

// Catalog is the immutable menu of one restaurant.
type Catalog struct {
	restaurantID string
	entries      []domain.MenuEntry
	byID         map[string]int
}

func NewCatalog(restaurantID string, entries []domain.MenuEntry) *Catalog {
	copied := make([]domain.MenuEntry, 0, len(entries))
	byID := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.RestaurantID != "" && e.RestaurantID != restaurantID {
			continue
		}
		if _, dup := byID[e.ID]; dup {
			continue
		}
		e.DietaryTags = append([]string(nil), e.DietaryTags...)
		byID[e.ID] = len(copied)
		copied = append(copied, e)
	}
	return &Catalog{restaurantID: restaurantID, entries: copied, byID: byID}
}

func (c *Catalog) RestaurantID() string {
	return c.restaurantID
}

// Entries returns the catalog in load order. Callers get a copy of the slice;
// the entries themselves are shared values.
func (c *Catalog) Entries() []domain.MenuEntry {
	return append([]domain.MenuEntry(nil), c.entries...)
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) Lookup(id string) (domain.MenuEntry, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.MenuEntry{}, false
	}
	return c.entries[idx], true
}

// Categories lists the distinct categories in first-seen order, led by the
// "all" sentinel.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, e := range c.entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	return out
}

// Summary renders one line per entry for the concierge prompt.
func (c *Catalog) Summary() string {
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s (%s, ₹%s): %s", e.Name, e.Category, e.Price.String(), e.Description)
		if len(e.DietaryTags) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(e.DietaryTags, ", "))
		}
	}
	return b.String()
}
