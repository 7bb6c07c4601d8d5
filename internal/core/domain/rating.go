package domain

import "time"

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating is a single user's evaluation of one store. At most one rating
// exists per (user, store) pair; updates rewrite Value in place, no history
// is kept.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Value     int       `json:"rating_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingAggregate is the derived per-store statistic: the arithmetic mean of
// all rating values rendered with one fractional digit ("0.0" when the store
// has no ratings) and the rating count.
type RatingAggregate struct {
	AverageRating string `json:"average_rating"`
	TotalRatings  int    `json:"total_ratings"`
}
