package domain

import "time"

// RoleCount is one bucket of the user role distribution.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// RatingActivity is one entry of the recent-activity feed: a rating joined
// with the names of the user and store involved.
type RatingActivity struct {
	RatingID  int64     `json:"id"`
	Value     int       `json:"rating_value"`
	UserName  string    `json:"user_name"`
	StoreName string    `json:"store_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RatedStore is a store ranked by its aggregate on the admin dashboard.
type RatedStore struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	AverageRating string `json:"average_rating"`
	TotalRatings  int    `json:"total_ratings"`
}

// AdminDashboard aggregates platform-wide statistics for administrators.
type AdminDashboard struct {
	TotalUsers     int              `json:"total_users"`
	TotalStores    int              `json:"total_stores"`
	TotalRatings   int              `json:"total_ratings"`
	RoleCounts     []RoleCount      `json:"user_distribution"`
	RecentActivity []RatingActivity `json:"recent_activity"`
	TopStores      []RatedStore     `json:"top_rated_stores"`
}

// ValueCount is one bucket of a store's rating histogram.
type ValueCount struct {
	Value int `json:"rating"`
	Count int `json:"count"`
}

// Rater is a user who rated the owner's store, as shown on the owner dashboard.
type Rater struct {
	UserID  int64     `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Value   int       `json:"rating_value"`
	RatedAt time.Time `json:"rated_at"`
	Updated time.Time `json:"updated_at"`
}

// OwnerDashboard aggregates statistics for a store owner's single store.
type OwnerDashboard struct {
	Store        Store           `json:"store"`
	Aggregate    RatingAggregate `json:"statistics"`
	Distribution []ValueCount    `json:"rating_distribution"`
	Raters       []Rater         `json:"raters"`
}
