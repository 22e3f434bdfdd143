package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleWeatherBody = `{
	"name": "San Francisco",
	"main": {"temp": 14.2, "feels_like": 13.1, "humidity": 72},
	"weather": [{"main": "Rain", "description": "light rain"}],
	"wind": {"speed": 5.0}
}`

func TestClientCurrent(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sampleWeatherBody))
	}))
	defer srv.Close()

	c := NewClient("owm-key", 2*time.Second)
	c.baseURL = srv.URL

	report, err := c.Current(context.Background(), "San Francisco")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if report.Location != "San Francisco" {
		t.Errorf("location = %q", report.Location)
	}
	if report.TempC != 14.2 {
		t.Errorf("temp = %v", report.TempC)
	}
	if report.FeelsLikeC == nil || *report.FeelsLikeC != 13.1 {
		t.Errorf("feels_like = %v, want 13.1", report.FeelsLikeC)
	}
	if report.Condition != "Rain" {
		t.Errorf("condition = %q", report.Condition)
	}
	if report.WindKph != 18 { // 5 m/s
		t.Errorf("wind = %v kph", report.WindKph)
	}
	if !strings.Contains(gotQuery, "units=metric") || !strings.Contains(gotQuery, "appid=owm-key") {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestClientUnconfigured(t *testing.T) {
	c := NewClient("", time.Second)
	if _, err := c.Current(context.Background(), "Paris"); !errors.Is(err, ErrUnconfigured) {
		t.Errorf("err = %v, want ErrUnconfigured", err)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-key", time.Second)
	c.baseURL = srv.URL
	if _, err := c.Current(context.Background(), "Paris"); err == nil {
		t.Error("expected error on 401 response")
	}
}

type fakeFetcher struct {
	report *Report
	err    error
	calls  int
}

func (f *fakeFetcher) Current(_ context.Context, _ string) (*Report, error) {
	f.calls++
	return f.report, f.err
}

func TestServiceNoCacheFetchesEveryTime(t *testing.T) {
	f := &fakeFetcher{report: &Report{Location: "Tokyo", TempC: 22}}
	svc := NewService(f, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.Current(context.Background(), "Tokyo"); err != nil {
			t.Fatalf("Current: %v", err)
		}
	}
	if f.calls != 3 {
		t.Errorf("fetcher calls = %d, want 3 with cache disabled", f.calls)
	}
}

func TestServiceEmptyLocation(t *testing.T) {
	svc := NewService(&fakeFetcher{}, nil)
	if _, err := svc.Current(context.Background(), "  "); !errors.Is(err, ErrBadRequest) {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
}

func TestServiceFetchError(t *testing.T) {
	f := &fakeFetcher{err: errors.New("boom")}
	svc := NewService(f, nil)
	if _, err := svc.Current(context.Background(), "Tokyo"); err == nil {
		t.Error("expected fetch error to surface")
	}
}

func TestRecommendBands(t *testing.T) {
	cases := []struct {
		name     string
		report   Report
		wantItem string
	}{
		{"freezing", Report{TempC: -5}, "heavy winter coat"},
		{"cold", Report{TempC: 4}, "warm coat"},
		{"cool", Report{TempC: 13}, "light jacket or hoodie"},
		{"mild", Report{TempC: 20}, "long sleeves or a t-shirt"},
		{"warm", Report{TempC: 27}, "t-shirt"},
		{"hot", Report{TempC: 34}, "light breathable clothing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(tc.report)
			if !contains(rec.Clothing, tc.wantItem) {
				t.Errorf("clothing = %v, want item %q", rec.Clothing, tc.wantItem)
			}
			if rec.Reasoning == "" {
				t.Error("reasoning should not be empty")
			}
		})
	}
}

func TestRecommendAdjustments(t *testing.T) {
	rain := Recommend(Report{TempC: 15, Condition: "Rain"})
	if !contains(rain.Clothing, "umbrella") {
		t.Errorf("rain clothing = %v, want umbrella", rain.Clothing)
	}

	snow := Recommend(Report{TempC: -2, Condition: "Snow"})
	if !contains(snow.Clothing, "waterproof boots") {
		t.Errorf("snow clothing = %v, want boots", snow.Clothing)
	}

	windy := Recommend(Report{TempC: 15, WindKph: 40})
	if !contains(windy.Clothing, "windbreaker") {
		t.Errorf("windy clothing = %v, want windbreaker", windy.Clothing)
	}

	calm := Recommend(Report{TempC: 20, Condition: "Clear", WindKph: 10})
	if contains(calm.Clothing, "umbrella") || contains(calm.Clothing, "windbreaker") {
		t.Errorf("calm clothing = %v, want no adjustments", calm.Clothing)
	}
}

func floatPtr(v float64) *float64 { return &v }

// Feels-like overrides the measured temperature when present.
func TestRecommendUsesFeelsLike(t *testing.T) {
	rec := Recommend(Report{TempC: 12, FeelsLikeC: floatPtr(5)})
	if !contains(rec.Clothing, "warm coat") {
		t.Errorf("clothing = %v, want cold-band advice from feels-like", rec.Clothing)
	}

	// A feels-like of exactly zero is a real reading, not an absent one.
	freezing := Recommend(Report{TempC: 12, FeelsLikeC: floatPtr(-0.5)})
	if !contains(freezing.Clothing, "heavy winter coat") {
		t.Errorf("clothing = %v, want freezing-band advice", freezing.Clothing)
	}
	zero := Recommend(Report{TempC: 12, FeelsLikeC: floatPtr(0)})
	if !contains(zero.Clothing, "warm coat") {
		t.Errorf("clothing = %v, want cold-band advice from 0°C feels-like", zero.Clothing)
	}

	absent := Recommend(Report{TempC: 25})
	if !contains(absent.Clothing, "t-shirt") {
		t.Errorf("clothing = %v, want warm-band advice from measured temp", absent.Clothing)
	}
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
