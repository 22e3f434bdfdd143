// README: Feedback store backed by PostgreSQL, with a no-op stand-in.
package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnavailable = errors.New("feedback store not configured")

type Store interface {
	Insert(ctx context.Context, f *Feedback) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]Feedback, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Insert(ctx context.Context, f *Feedback) error {
	f.CreatedAt = time.Now()
	return s.db.QueryRow(ctx, `
		INSERT INTO feedback (user_id, restaurant_id, rating, liked, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		f.UserID, f.RestaurantID, f.Rating, f.Liked, f.Comment, f.CreatedAt,
	).Scan(&f.ID)
}

func (s *pgStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]Feedback, error) {
	return s.list(ctx, `
		SELECT id, user_id, restaurant_id, rating, liked, comment, created_at
		FROM feedback
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
		LIMIT `+limitClause, restaurantID)
}

func (s *pgStore) ListByUser(ctx context.Context, userID string) ([]Feedback, error) {
	return s.list(ctx, `
		SELECT id, user_id, restaurant_id, rating, liked, comment, created_at
		FROM feedback
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT `+limitClause, userID)
}

const limitClause = "50"

func (s *pgStore) list(ctx context.Context, query, arg string) ([]Feedback, error) {
	rows, err := s.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.RestaurantID, &f.Rating, &f.Liked, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// noopStore stands in when no database is configured.
type noopStore struct{}

func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) Insert(ctx context.Context, f *Feedback) error {
	return ErrUnavailable
}

func (noopStore) ListByRestaurant(ctx context.Context, restaurantID string) ([]Feedback, error) {
	return nil, nil
}

func (noopStore) ListByUser(ctx context.Context, userID string) ([]Feedback, error) {
	return nil, nil
}
