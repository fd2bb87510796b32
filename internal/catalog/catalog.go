package catalog

import (
	"strings"

	"uihub-backend-go/internal/models"
)

// Merge concatenates remotely loaded components with the bundled seed set
// and removes duplicate ids, keeping the first occurrence. Remote records
// therefore take precedence over seed entries sharing an id. Pure function.
func Merge(remote []models.Component) []models.Component {
	merged := make([]models.Component, 0, len(remote)+len(Seed))
	merged = append(merged, remote...)
	merged = append(merged, Seed...)
	seen := make(map[string]bool, len(merged))
	items := merged[:0]
	for _, item := range merged {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items
}

// Apply narrows components to those matching the filter, preserving input
// order. A component matches when the lowercased search text is empty or a
// substring of its lowercased name, description, or any tag, and the
// category is the "All" sentinel or an exact, case-sensitive match.
//
// The technology field of FilterState is carried but not evaluated; it has
// always passed everything and keeping the no-op preserves observed
// behavior.
func Apply(components []models.Component, filter models.FilterState) []models.Component {
	query := strings.ToLower(filter.Search)
	items := make([]models.Component, 0, len(components))
	for _, component := range components {
		if !matchesSearch(component, query) {
			continue
		}
		if filter.Category != models.FilterAll && component.Category != filter.Category {
			continue
		}
		items = append(items, component)
	}
	return items
}

func matchesSearch(component models.Component, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(component.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(component.Description), query) {
		return true
	}
	for _, tag := range component.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
