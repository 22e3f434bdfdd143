// README: Preference service; validation over the store.
package prefs

import (
	"context"
	"errors"
	"strings"
)

var ErrBadRequest = errors.New("bad request")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID string) (*UserPreference, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, userID)
}

func (s *Service) Upsert(ctx context.Context, p *UserPreference) error {
	if p == nil || strings.TrimSpace(p.UserID) == "" {
		return ErrBadRequest
	}
	if p.PriceRange != nil && (*p.PriceRange < 0 || *p.PriceRange > 4) {
		return ErrBadRequest
	}
	for i, c := range p.CuisinePreferences {
		p.CuisinePreferences[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return s.store.Upsert(ctx, p)
}
