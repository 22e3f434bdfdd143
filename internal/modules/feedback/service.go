// README: Feedback service; validation over the store.
package feedback

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

func (s *Service) Submit(ctx context.Context, f *Feedback) error {
	if f == nil || strings.TrimSpace(f.UserID) == "" || strings.TrimSpace(f.RestaurantID) == "" {
		return ErrBadRequest
	}
	if f.Rating < 1 || f.Rating > 5 {
		return ErrBadRequest
	}
	return s.store.Insert(ctx, f)
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]Feedback, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Feedback, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}
