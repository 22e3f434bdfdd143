package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"forkcast/internal/modules/discovery"
	"forkcast/internal/modules/prefs"
)

type fakeSearcher struct {
	lastQuery string
	result    *discovery.Result
	err       error
}

func (f *fakeSearcher) Search(_ context.Context, query, _, _ string) (*discovery.Result, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &discovery.Result{}, nil
}

type fakePrefs struct {
	pref *prefs.UserPreference
	err  error
}

func (f *fakePrefs) Get(_ context.Context, _ string) (*prefs.UserPreference, error) {
	return f.pref, f.err
}

func atHour(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 10, hour, 30, 0, 0, time.UTC)
	}
}

func TestMealSlot(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{7, "breakfast"},
		{10, "breakfast"},
		{11, "lunch"},
		{14, "lunch"},
		{15, "dinner"},
		{20, "dinner"},
		{21, "late-night"},
		{23, "late-night"},
		{2, "breakfast"},
	}
	for _, tc := range cases {
		if got := mealSlot(tc.hour); got != tc.want {
			t.Errorf("mealSlot(%d) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestSuggestSeedsFromPreferences(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewService(searcher, &fakePrefs{pref: &prefs.UserPreference{
		UserID:             "u1",
		CuisinePreferences: []string{"thai", "mexican"},
	}})
	svc.now = atHour(12)

	got, err := svc.Suggest(context.Background(), "u1", "San Francisco", time.Time{})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.MealSlot != "lunch" {
		t.Errorf("slot = %q", got.MealSlot)
	}
	if searcher.lastQuery != "thai lunch" {
		t.Errorf("query = %q, want %q", searcher.lastQuery, "thai lunch")
	}
}

func TestSuggestWithoutPreferences(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewService(searcher, &fakePrefs{err: prefs.ErrNotFound})
	svc.now = atHour(19)

	got, err := svc.Suggest(context.Background(), "u1", "", time.Time{})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.MealSlot != "dinner" || searcher.lastQuery != "dinner spot" {
		t.Errorf("slot = %q, query = %q", got.MealSlot, searcher.lastQuery)
	}
}

func TestSuggestLateNight(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewService(searcher, &fakePrefs{pref: &prefs.UserPreference{
		UserID:             "u1",
		CuisinePreferences: []string{"korean"},
	}})
	svc.now = atHour(22)

	got, err := svc.Suggest(context.Background(), "u1", "", time.Time{})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if searcher.lastQuery != "late night korean food" {
		t.Errorf("query = %q", searcher.lastQuery)
	}
	if got.MealSlot != "late-night" {
		t.Errorf("slot = %q", got.MealSlot)
	}
}

func TestSuggestCapsResults(t *testing.T) {
	restaurants := make([]discovery.Restaurant, 8)
	for i := range restaurants {
		restaurants[i] = discovery.Restaurant{ID: string(rune('a' + i))}
	}
	searcher := &fakeSearcher{result: &discovery.Result{Restaurants: restaurants}}
	svc := NewService(searcher, nil)
	svc.now = atHour(9)

	got, err := svc.Suggest(context.Background(), "", "", time.Time{})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got.Restaurants) != maxSuggestions {
		t.Errorf("len = %d, want %d", len(got.Restaurants), maxSuggestions)
	}
}

// An explicit time overrides the service clock entirely.
func TestSuggestExplicitTime(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewService(searcher, nil)
	svc.now = atHour(23)

	at := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	got, err := svc.Suggest(context.Background(), "", "", at)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if got.MealSlot != "lunch" {
		t.Errorf("slot = %q, want lunch from the supplied time", got.MealSlot)
	}
}

func TestSuggestSearchError(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("down")}
	svc := NewService(searcher, nil)
	svc.now = atHour(9)

	if _, err := svc.Suggest(context.Background(), "", "", time.Time{}); err == nil {
		t.Error("expected search error to surface")
	}
}
