// README: OpenWeatherMap current-weather REST adapter.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

var ErrUnconfigured = errors.New("weather: no api key configured")

// Fetcher retrieves a current-weather report for a location.
type Fetcher interface {
	Current(ctx context.Context, location string) (*Report, error)
}

// Client talks to the OpenWeatherMap current-weather endpoint. One outbound
// call per request, explicit timeout, no retry.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Current(ctx context.Context, location string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrUnconfigured
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api status %d", resp.StatusCode)
	}

	var body struct {
		Name string `json:"name"`
		Main struct {
			Temp      float64  `json:"temp"`
			FeelsLike *float64 `json:"feels_like"`
			Humidity  int      `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"` // m/s
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("weather response decode: %w", err)
	}

	report := &Report{
		Location:   body.Name,
		TempC:      body.Main.Temp,
		FeelsLikeC: body.Main.FeelsLike,
		Humidity:   body.Main.Humidity,
		WindKph:    body.Wind.Speed * 3.6,
	}
	if len(body.Weather) > 0 {
		report.Condition = body.Weather[0].Main
	}
	return report, nil
}
