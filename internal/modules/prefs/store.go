// README: Preference store backed by PostgreSQL, with a no-op stand-in.
package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound    = errors.New("preference record not found")
	ErrUnavailable = errors.New("preference store not configured")
)

// Store abstracts preference persistence so the service runs with or
// without a database. Selected once at startup based on configuration.
type Store interface {
	Get(ctx context.Context, userID string) (*UserPreference, error)
	Upsert(ctx context.Context, p *UserPreference) error
}

type pgStore struct {
	db *pgxpool.Pool
}

// NewPgStore returns a Store backed by the given connection pool.
func NewPgStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (*UserPreference, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, cuisine_preferences, price_range,
		       favorite_restaurant_ids, avoid_restaurant_ids, updated_at
		FROM user_preferences
		WHERE user_id = $1`, userID,
	)

	var p UserPreference
	err := row.Scan(
		&p.UserID, &p.CuisinePreferences, &p.PriceRange,
		&p.FavoriteRestaurantIDs, &p.AvoidRestaurantIDs, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pgStore) Upsert(ctx context.Context, p *UserPreference) error {
	p.UpdatedAt = time.Now()
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_preferences (
			user_id, cuisine_preferences, price_range,
			favorite_restaurant_ids, avoid_restaurant_ids, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			cuisine_preferences = EXCLUDED.cuisine_preferences,
			price_range = EXCLUDED.price_range,
			favorite_restaurant_ids = EXCLUDED.favorite_restaurant_ids,
			avoid_restaurant_ids = EXCLUDED.avoid_restaurant_ids,
			updated_at = EXCLUDED.updated_at`,
		p.UserID, p.CuisinePreferences, p.PriceRange,
		p.FavoriteRestaurantIDs, p.AvoidRestaurantIDs, p.UpdatedAt,
	)
	return err
}

// noopStore stands in when no database is configured: reads always miss,
// writes are rejected.
type noopStore struct{}

// NewNoopStore returns a Store that always reports "not found".
func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) Get(ctx context.Context, userID string) (*UserPreference, error) {
	return nil, ErrNotFound
}

func (noopStore) Upsert(ctx context.Context, p *UserPreference) error {
	return ErrUnavailable
}
