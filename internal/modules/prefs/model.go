// README: Per-user dining preference record.
package prefs

import "time"

// UserPreference holds a user's stored dining preferences. Read by the
// discovery ranker, written through the preferences endpoints.
type UserPreference struct {
	UserID                string    `json:"user_id"`
	CuisinePreferences    []string  `json:"cuisine_preferences"`
	PriceRange            *int      `json:"price_range,omitempty"` // 0-4 scale
	FavoriteRestaurantIDs []string  `json:"favorite_restaurant_ids"`
	AvoidRestaurantIDs    []string  `json:"avoid_restaurant_ids"`
	UpdatedAt             time.Time `json:"updated_at"`
}
