// README: Weather service, cache-then-fetch with clothing advice.
package weather

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

var ErrBadRequest = errors.New("weather: bad request")

type Service struct {
	fetcher Fetcher
	cache   *cache
}

// NewService builds a weather service. rdb may be nil, in which case
// fetches go straight to the provider every time.
func NewService(fetcher Fetcher, rdb *redis.Client) *Service {
	return &Service{fetcher: fetcher, cache: &cache{rdb: rdb}}
}

// Current returns the weather report for a location, preferring a cached
// copy when one is fresh.
func (s *Service) Current(ctx context.Context, location string) (*Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrBadRequest
	}

	if cached := s.cache.get(ctx, location); cached != nil {
		return cached, nil
	}

	report, err := s.fetcher.Current(ctx, location)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, location, report)
	return report, nil
}

// Advise returns the report plus clothing recommendations.
func (s *Service) Advise(ctx context.Context, location string) (*Recommendation, error) {
	report, err := s.Current(ctx, location)
	if err != nil {
		return nil, err
	}
	rec := Recommend(*report)
	return &rec, nil
}
