// README: Restaurant record, search parameters, and provider contract.
package discovery

import (
	"context"

	"forkcast/internal/types"
)

// Source identifies which external search provider produced a result set.
type Source string

const (
	SourceGoogle Source = "google"
	SourceYelp   Source = "yelp"
)

// Restaurant is the normalized record shape both providers are mapped onto.
// Produced transiently per request; never persisted.
type Restaurant struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Address     string       `json:"address"`
	PriceLevel  *int         `json:"price_level,omitempty"` // 0-4 scale
	Rating      *float64     `json:"rating,omitempty"`
	RatingCount int          `json:"rating_count,omitempty"`
	IsOpen      *bool        `json:"is_open,omitempty"`
	Photos      []string     `json:"photos,omitempty"`
	Coordinates *types.Point `json:"coordinates,omitempty"`
	CuisineTags []string     `json:"cuisine_tags,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Website     string       `json:"website,omitempty"`
	Source      Source       `json:"source"`
}

// SearchParams are the provider-agnostic search inputs derived from a
// QueryIntent. Adapters clamp RadiusMeters to their own maximum.
type SearchParams struct {
	Term         string
	Location     string
	OpenNow      bool
	MinPrice     *int // 0-4 scale
	MaxPrice     *int // 0-4 scale
	RadiusMeters int
}

// Provider is one external restaurant-search service. Implementations make
// exactly one outbound call per Search and never retry.
type Provider interface {
	Search(ctx context.Context, p SearchParams) ([]Restaurant, error)
}
