// Package menu holds the pure transforms behind the menu screen: grouping
// items into sections, discovering categories and filtering by search text
// and selected categories.
package menu

import "github.com/idilsaglam/littlelemon/internal/model"

// Project groups items by category in a single pass. Sections come out in
// the order their category first appears in items, and members keep their
// input order. Items are not deduplicated.
func Project(items []model.MenuItem) []model.Section {
	sections := []model.Section{}
	index := make(map[string]int)
	for _, it := range items {
		i, seen := index[it.Category]
		if !seen {
			i = len(sections)
			index[it.Category] = i
			sections = append(sections, model.Section{Title: it.Category})
		}
		sections[i].Items = append(sections[i].Items, it)
	}
	return sections
}

// Categories returns the distinct categories of items in first-seen order.
func Categories(items []model.MenuItem) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	return out
}

// Count returns the number of items in sections.
func Count(sections []model.Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Items)
	}
	return n
}
