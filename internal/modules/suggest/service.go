// README: Time-of-day meal suggestions seeded from stored preferences.
package suggest

import (
	"context"
	"fmt"
	"time"

	"forkcast/internal/modules/discovery"
)

const maxSuggestions = 5

// Searcher is the slice of the discovery service the suggester needs.
type Searcher interface {
	Search(ctx context.Context, query, location, userID string) (*discovery.Result, error)
}

type Service struct {
	search Searcher
	prefs  discovery.PreferenceReader
	now    func() time.Time
}

func NewService(search Searcher, prefReader discovery.PreferenceReader) *Service {
	return &Service{search: search, prefs: prefReader, now: time.Now}
}

// Suggestion is one proactive meal recommendation.
type Suggestion struct {
	MealSlot    string                 `json:"meal_slot"`
	Query       string                 `json:"query"`
	Restaurants []discovery.Restaurant `json:"restaurants"`
}

// mealSlot maps an hour of day to the meal being planned next.
func mealSlot(hour int) string {
	switch {
	case hour < 11:
		return "breakfast"
	case hour < 15:
		return "lunch"
	case hour < 21:
		return "dinner"
	default:
		return "late-night"
	}
}

// Suggest builds a meal suggestion for the given time of day, or the
// current time when at is zero. When the user has stored cuisine
// preferences the first one seeds the query.
func (s *Service) Suggest(ctx context.Context, userID, location string, at time.Time) (*Suggestion, error) {
	if at.IsZero() {
		at = s.now()
	}
	slot := mealSlot(at.Hour())
	query := s.seedQuery(ctx, slot, userID)

	result, err := s.search.Search(ctx, query, location, userID)
	if err != nil {
		return nil, err
	}

	restaurants := result.Restaurants
	if len(restaurants) > maxSuggestions {
		restaurants = restaurants[:maxSuggestions]
	}
	return &Suggestion{MealSlot: slot, Query: query, Restaurants: restaurants}, nil
}

func (s *Service) seedQuery(ctx context.Context, slot, userID string) string {
	cuisine := s.preferredCuisine(ctx, userID)
	switch {
	case cuisine != "" && slot == "late-night":
		return fmt.Sprintf("late night %s food", cuisine)
	case cuisine != "":
		return fmt.Sprintf("%s %s", cuisine, slot)
	case slot == "late-night":
		return "late night food"
	default:
		return slot + " spot"
	}
}

func (s *Service) preferredCuisine(ctx context.Context, userID string) string {
	if s.prefs == nil || userID == "" {
		return ""
	}
	p, err := s.prefs.Get(ctx, userID)
	if err != nil || p == nil || len(p.CuisinePreferences) == 0 {
		return ""
	}
	return p.CuisinePreferences[0]
}
