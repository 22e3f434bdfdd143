// README: Structured interpretation of a free-text food query.
package intent

// PricePreference buckets the user's price appetite.
type PricePreference string

const (
	PriceLow    PricePreference = "low"
	PriceMedium PricePreference = "medium"
	PriceHigh   PricePreference = "high"
)

// SortDirective drives the first ranking stage.
type SortDirective string

const (
	SortPriceAsc  SortDirective = "price_asc"
	SortPriceDesc SortDirective = "price_desc"
	SortRating    SortDirective = "rating"
)

// Occasion categories recognised by the extractor.
type Occasion string

const (
	OccasionRomantic    Occasion = "romantic"
	OccasionBusiness    Occasion = "business"
	OccasionFamily      Occasion = "family"
	OccasionCelebration Occasion = "celebration"
	OccasionCasual      Occasion = "casual"
)

// QueryIntent is the structured interpretation of one query. It is built
// fresh per request and never mutated afterwards.
type QueryIntent struct {
	Cuisine             *string
	PricePreference     PricePreference
	DietaryRestrictions []string
	Occasion            Occasion
	SortBy              SortDirective
	RewrittenQuery      string
	OriginalQuery       string
}
