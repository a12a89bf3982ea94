package menu

import (
	"slices"
	"strings"

	"restrofi/storefront-svc/internal/domain"
)

const AllCategories = "all"

type FilterState struct {
	Category    string   `json:"category"`
	Search      string   `json:"search"`
	DietaryTags []string `json:"dietary"`
}

// DefaultFilter shows the whole catalog.
func DefaultFilter() FilterState {
	return FilterState{Category: AllCategories}
}

// ToggleTag adds tag when absent and removes it when present.
func (f FilterState) ToggleTag(tag string) FilterState {
	tags := append([]string(nil), f.DietaryTags...)
	if idx := slices.Index(tags, tag); idx >= 0 {
		f.DietaryTags = slices.Delete(tags, idx, idx+1)
		return f
	}
	f.DietaryTags = append(tags, tag)
	return f
}

// Narrowed reports whether any predicate beyond the category is active, which
// is how the UI tells "nothing matches" from "section is empty".
func (f FilterState) Narrowed() bool {
	return strings.TrimSpace(f.Search) != "" || len(f.DietaryTags) > 0
}

// VisibleItems narrows entries by category, then free text, then dietary
// tags. Every stage is an AND. It never mutates entries and returns an empty,
// non-nil slice when nothing matches.
func VisibleItems(entries []domain.MenuEntry, f FilterState) []domain.MenuEntry {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.MenuEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesCategory(e, f.Category) {
			continue
		}
		if query != "" && !matchesText(e, query) {
			continue
		}
		if !matchesTags(e, f.DietaryTags) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesCategory(e domain.MenuEntry, category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return e.Category == category
}

func matchesText(e domain.MenuEntry, query string) bool {
	return strings.Contains(strings.ToLower(e.Name), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}

// matchesTags requires the entry to carry every selected tag.
func matchesTags(e domain.MenuEntry, tags []string) bool {
	for _, tag := range tags {
		if !e.HasTag(tag) {
			return false
		}
	}
	return true
}
