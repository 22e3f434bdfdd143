// README: Provider B adapter; Yelp Fusion business search with provider-A fallback.
package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"forkcast/internal/modules/discovery"
	"forkcast/internal/types"
)

const (
	defaultBaseURL = "https://api.yelp.com/v3"

	// Yelp caps search radius at 40km.
	maxRadiusMeters = 40000

	searchLimit = 20
)

var ErrUnconfigured = errors.New("yelp: no api key configured")

// Client talks to the Yelp Fusion business search endpoint. Yelp has no Go
// SDK, so this is a plain REST adapter with an explicit request timeout.
// When the call fails (or no key is configured) the client falls back to the
// provider-A adapter so callers always get a best-effort result set.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	fallback discovery.Provider
}

// NewClient builds a Yelp client. fallback may be nil, in which case a
// failed Yelp call returns the error instead of degrading.
func NewClient(apiKey string, timeout time.Duration, fallback discovery.Provider) *Client {
	return &Client{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		http:     &http.Client{Timeout: timeout},
		fallback: fallback,
	}
}

// Available reports whether the client holds an API key.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// Search performs one business search. On any failure it logs and delegates
// to the fallback provider with the same parameters; no retry against Yelp.
func (c *Client) Search(ctx context.Context, p discovery.SearchParams) ([]discovery.Restaurant, error) {
	if !c.Available() {
		return c.degrade(ctx, p, ErrUnconfigured)
	}

	results, err := c.search(ctx, p)
	if err != nil {
		return c.degrade(ctx, p, err)
	}
	return results, nil
}

func (c *Client) degrade(ctx context.Context, p discovery.SearchParams, cause error) ([]discovery.Restaurant, error) {
	if c.fallback == nil {
		return nil, cause
	}
	log.Printf("yelp search failed, falling back to google: %v", cause)
	return c.fallback.Search(ctx, p)
}

func (c *Client) search(ctx context.Context, p discovery.SearchParams) ([]discovery.Restaurant, error) {
	radius := p.RadiusMeters
	if radius <= 0 || radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	q := url.Values{}
	q.Set("term", p.Term)
	q.Set("location", p.Location)
	q.Set("radius", strconv.Itoa(radius))
	q.Set("limit", strconv.Itoa(searchLimit))
	q.Set("categories", "restaurants")
	if p.OpenNow {
		q.Set("open_now", "true")
	}
	if tiers := priceTiers(p.MinPrice, p.MaxPrice); tiers != "" {
		q.Set("price", tiers)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/businesses/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yelp api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp api status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yelp response decode: %w", err)
	}

	results := make([]discovery.Restaurant, 0, len(body.Businesses))
	for _, b := range body.Businesses {
		results = append(results, toRestaurant(b))
	}
	return results, nil
}

type searchResponse struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	IsClosed    bool     `json:"is_closed"`
	ImageURL    string   `json:"image_url"`
	Phone       string   `json:"phone"`
	URL         string   `json:"url"`
	Location    struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Categories []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
}

func toRestaurant(b business) discovery.Restaurant {
	out := discovery.Restaurant{
		ID:          b.ID,
		Name:        b.Name,
		Address:     strings.Join(b.Location.DisplayAddress, ", "),
		RatingCount: b.ReviewCount,
		Phone:       b.Phone,
		Website:     b.URL,
		Source:      discovery.SourceYelp,
	}

	level := priceLevel(b.Price)
	out.PriceLevel = &level

	if b.Rating > 0 {
		rating := b.Rating
		out.Rating = &rating
	}

	open := !b.IsClosed
	out.IsOpen = &open

	if b.ImageURL != "" {
		out.Photos = []string{b.ImageURL}
	}

	if b.Coordinates.Latitude != 0 || b.Coordinates.Longitude != 0 {
		out.Coordinates = &types.Point{
			Lat: b.Coordinates.Latitude,
			Lng: b.Coordinates.Longitude,
		}
	}

	for _, cat := range b.Categories {
		out.CuisineTags = append(out.CuisineTags, cat.Alias)
	}

	return out
}

// priceLevel converts Yelp's count-of-symbol representation ("$$$") onto the
// internal 0-4 integer scale. Absent data defaults to 2 ("moderate").
func priceLevel(price string) int {
	if price == "" {
		return 2
	}
	n := strings.Count(price, "$")
	if n > 4 {
		n = 4
	}
	return n
}

// priceTiers maps the internal 0-4 bounds onto Yelp's comma-separated 1-4
// price tiers (e.g. "1,2").
func priceTiers(min, max *int) string {
	lo, hi := 1, 4
	if min != nil && *min > lo {
		lo = *min
	}
	if max != nil && *max < hi {
		hi = *max
	}
	if hi < 1 {
		hi = 1
	}
	if lo > hi {
		lo = hi
	}
	var tiers []string
	for t := lo; t <= hi; t++ {
		tiers = append(tiers, strconv.Itoa(t))
	}
	if len(tiers) == 4 {
		// Full range carries no information; omit the filter.
		return ""
	}
	return strings.Join(tiers, ",")
}
