// README: Provider A adapter; Google Places text search normalized to Restaurant records.
package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"googlemaps.github.io/maps"

	"forkcast/internal/modules/discovery"
	"forkcast/internal/types"
)

const (
	// Google Places caps text-search radius at 50km.
	maxRadiusMeters = 50000

	photoBaseURL  = "https://maps.googleapis.com/maps/api/place/photo"
	photoMaxWidth = 400
)

// genericTypes are Places API types that say nothing about cuisine.
var genericTypes = map[string]bool{
	"restaurant":        true,
	"food":              true,
	"point_of_interest": true,
	"establishment":     true,
	"meal_takeaway":     true,
	"meal_delivery":     true,
}

// Client handles interactions with the Google Places API.
type Client struct {
	client *maps.Client
	apiKey string
}

// NewClient creates a Places client with the given API key. The key is also
// retained for constructing signed photo URLs.
func NewClient(apiKey string) (*Client, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Client{client: c, apiKey: apiKey}, nil
}

// Search performs one text search and maps the response onto Restaurant
// records. No retry: any API error surfaces to the caller, which degrades
// to an empty result set.
func (c *Client) Search(ctx context.Context, p discovery.SearchParams) ([]discovery.Restaurant, error) {
	radius := p.RadiusMeters
	if radius <= 0 || radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	query := p.Term
	if p.Location != "" {
		query = fmt.Sprintf("%s in %s", p.Term, p.Location)
	}

	req := &maps.TextSearchRequest{
		Query:    query,
		Radius:   uint(radius),
		OpenNow:  p.OpenNow,
		Type:     maps.PlaceTypeRestaurant,
		MinPrice: toPriceLevel(p.MinPrice),
		MaxPrice: toPriceLevel(p.MaxPrice),
	}

	resp, err := c.client.TextSearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	results := make([]discovery.Restaurant, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, c.toRestaurant(r))
	}
	return results, nil
}

func (c *Client) toRestaurant(r maps.PlacesSearchResult) discovery.Restaurant {
	out := discovery.Restaurant{
		ID:          r.PlaceID,
		Name:        r.Name,
		Address:     r.FormattedAddress,
		RatingCount: r.UserRatingsTotal,
		Source:      discovery.SourceGoogle,
		Coordinates: &types.Point{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
	}

	if r.Rating > 0 {
		rating := float64(r.Rating)
		out.Rating = &rating
	}

	// The API omits price_level when unknown, which decodes as 0. Level 0
	// ("free") does not occur for restaurants, so 0 is treated as undefined.
	if r.PriceLevel > 0 && r.PriceLevel <= 4 {
		level := r.PriceLevel
		out.PriceLevel = &level
	}

	if r.OpeningHours != nil && r.OpeningHours.OpenNow != nil {
		open := *r.OpeningHours.OpenNow
		out.IsOpen = &open
	}

	for _, photo := range r.Photos {
		if photo.PhotoReference != "" {
			out.Photos = append(out.Photos, c.photoURL(photo.PhotoReference))
		}
	}

	for _, t := range r.Types {
		if !genericTypes[t] {
			out.CuisineTags = append(out.CuisineTags, t)
		}
	}

	return out
}

// photoURL builds the signed photo URL for a photo reference. Yelp returns
// direct image URLs; Google requires this base+reference+key template.
func (c *Client) photoURL(ref string) string {
	v := url.Values{}
	v.Set("maxwidth", strconv.Itoa(photoMaxWidth))
	v.Set("photoreference", ref)
	v.Set("key", c.apiKey)
	return photoBaseURL + "?" + v.Encode()
}

func toPriceLevel(level *int) maps.PriceLevel {
	if level == nil {
		return ""
	}
	switch *level {
	case 0:
		return maps.PriceLevelFree
	case 1:
		return maps.PriceLevelInexpensive
	case 2:
		return maps.PriceLevelModerate
	case 3:
		return maps.PriceLevelExpensive
	case 4:
		return maps.PriceLevelVeryExpensive
	default:
		return ""
	}
}
