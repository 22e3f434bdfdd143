// README: Result ranking; sort directive stage plus preference scoring stage.
package discovery

import (
	"sort"
	"strings"

	"forkcast/internal/intent"
	"forkcast/internal/modules/prefs"
)

const (
	scoreFavorite     = 10
	scoreAvoid        = -20
	scoreCuisineMatch = 5
	scorePriceMatch   = 3
)

// SortByDirective orders restaurants by the extracted sort directive.
// The sort is stable so provider order survives among equals. Missing price
// levels sort last in both directions; missing ratings count as zero.
func SortByDirective(list []Restaurant, directive intent.SortDirective) {
	switch directive {
	case intent.SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return priceOrMissing(list[i], 999) < priceOrMissing(list[j], 999)
		})
	case intent.SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return priceOrMissing(list[i], 0) > priceOrMissing(list[j], 0)
		})
	case intent.SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return ratingOrZero(list[i]) > ratingOrZero(list[j])
		})
	}
}

// ApplyPreferences re-scores restaurants against a stored user preference
// record and returns the surviving list ordered by descending score. This
// supersedes the directive order. Restaurants scoring below zero (the
// avoid-list) are dropped entirely.
func ApplyPreferences(list []Restaurant, p *prefs.UserPreference) []Restaurant {
	if p == nil {
		return list
	}

	type scored struct {
		r     Restaurant
		score int
	}

	kept := make([]scored, 0, len(list))
	for _, r := range list {
		s := preferenceScore(r, p)
		if s < 0 {
			continue
		}
		kept = append(kept, scored{r: r, score: s})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	out := make([]Restaurant, len(kept))
	for i, s := range kept {
		out[i] = s.r
	}
	return out
}

func preferenceScore(r Restaurant, p *prefs.UserPreference) int {
	score := 0
	if containsFold(p.FavoriteRestaurantIDs, r.ID) {
		score += scoreFavorite
	}
	if containsFold(p.AvoidRestaurantIDs, r.ID) {
		score += scoreAvoid
	}
	for _, tag := range r.CuisineTags {
		if containsFold(p.CuisinePreferences, tag) {
			score += scoreCuisineMatch
		}
	}
	if r.PriceLevel != nil && p.PriceRange != nil && *r.PriceLevel == *p.PriceRange {
		score += scorePriceMatch
	}
	return score
}

func priceOrMissing(r Restaurant, missing int) int {
	if r.PriceLevel == nil {
		return missing
	}
	return *r.PriceLevel
}

func ratingOrZero(r Restaurant) float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
