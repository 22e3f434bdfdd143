// README: User feedback record for a restaurant.
package feedback

import "time"

type Feedback struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"` // 1-5
	Liked        *bool     `json:"liked,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
