package menu

import (
	"strings"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// NewSelection selects every category. It is called once per successful
// load.
func NewSelection(categories []string) model.Selection {
	sel := make(model.Selection, len(categories))
	for _, c := range categories {
		sel[c] = true
	}
	return sel
}

// Toggle returns a copy of sel with category flipped. A category missing
// from sel counts as unselected, so toggling it selects it.
func Toggle(sel model.Selection, category string) model.Selection {
	out := make(model.Selection, len(sel)+1)
	for k, v := range sel {
		out[k] = v
	}
	out[category] = !sel[category]
	return out
}

// Hide returns a copy of sel with the named categories unselected.
func Hide(sel model.Selection, categories ...string) model.Selection {
	out := make(model.Selection, len(sel))
	for k, v := range sel {
		out[k] = v
	}
	for _, c := range categories {
		out[c] = false
	}
	return out
}

// Matches reports whether item's category is selected and its title
// contains query, ignoring case. An empty query matches every title.
// Categories absent from sel are not selected.
func Matches(item model.MenuItem, query string, sel model.Selection) bool {
	if !sel[item.Category] {
		return false
	}
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), strings.ToLower(query))
}

// Filter returns the items that match query and sel, in input order.
func Filter(items []model.MenuItem, query string, sel model.Selection) []model.MenuItem {
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		if Matches(it, query, sel) {
			out = append(out, it)
		}
	}
	return out
}

// View filters items and projects the survivors into sections. It is
// rerun from scratch on every query or selection change.
func View(items []model.MenuItem, query string, sel model.Selection) []model.Section {
	return Project(Filter(items, query, sel))
}
