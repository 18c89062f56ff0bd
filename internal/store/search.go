package store

import (
	"slices"
	"strings"
)

// Search filters summaries by a case-insensitive query, best matches
// first. An empty query returns the summaries unchanged. Ordering
// within a tier follows the input (name order for List results).
func Search(summaries []Summary, query string) []Summary {
	query = strings.ToLower(query)
	if query == "" {
		return summaries
	}

	var results []Summary
	for _, sum := range summaries {
		if scoreMatch(sum, query) > 0 {
			results = append(results, sum)
		}
	}

	slices.SortStableFunc(results, func(a, b Summary) int {
		return scoreMatch(b, query) - scoreMatch(a, query)
	})
	return results
}

// scoreMatch ranks how well a summary matches the query:
//
//	100: exact name match
//	 75: name starts with query
//	 50: name contains query
//	 25: only the description contains query
//	  0: no match
func scoreMatch(sum Summary, query string) int {
	name := strings.ToLower(sum.Name)
	desc := strings.ToLower(sum.Description)

	switch {
	case name == query:
		return 100
	case strings.HasPrefix(name, query):
		return 75
	case strings.Contains(name, query):
		return 50
	case strings.Contains(desc, query):
		return 25
	}
	return 0
}
