package services

import (
	"sort"

	"smartstore/internal/models"
)

// DefaultRelatedLimit bounds related-product results when the caller does
// not ask for a specific limit.
const DefaultRelatedLimit = 10

// RelatedProducts selects up to limit products to show alongside the
// product identified by excludeID. Candidates are every other product that
// either matches the reference category or is featured. Ordering is stable:
// category matches first, featured before non-featured within each group,
// newest first within that. Pure: no I/O, never fails.
func RelatedProducts(excludeID, category string, limit int, all []models.Product) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	candidates := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.ID == excludeID {
			continue
		}
		if p.Category == category || p.Featured {
			candidates = append(candidates, p)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aMatch, bMatch := a.Category == category, b.Category == category
		if aMatch != bMatch {
			return aMatch
		}
		if a.Featured != b.Featured {
			return a.Featured
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
