// README: Pure decision function choosing between the two search providers.
package discovery

import "forkcast/internal/intent"

// SelectSource picks the provider for a query. Google is the default; Yelp
// is chosen only when it is configured AND the intent either pins down both
// cuisine and price, or signals a romantic occasion (date, ambiance,
// atmosphere). The heuristic is inherited behavior; do not tweak it without
// data.
func SelectSource(qi intent.QueryIntent, yelpAvailable bool) Source {
	if !yelpAvailable {
		return SourceGoogle
	}
	if qi.Cuisine != nil && qi.PricePreference != "" {
		return SourceYelp
	}
	if qi.Occasion == intent.OccasionRomantic {
		return SourceYelp
	}
	return SourceGoogle
}
