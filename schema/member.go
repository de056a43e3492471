package schema

import "time"

const (
	MemberCollection = "members"
)

// Location is a latitude/longitude pair from a client.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoJSON is the mongo geospatial point format.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// RatingsBreakdown counts received ratings by star value.
type RatingsBreakdown struct {
	One   int64 `bson:"1" json:"1"`
	Two   int64 `bson:"2" json:"2"`
	Three int64 `bson:"3" json:"3"`
	Four  int64 `bson:"4" json:"4"`
	Five  int64 `bson:"5" json:"5"`
}

// Member is a community member document.
type Member struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Email    string   `bson:"email" json:"email"`
	Phone    string   `bson:"phone" json:"phone"`
	Avatar   string   `bson:"avatar" json:"avatar"`
	Role     string   `bson:"role" json:"role"`
	Verified bool     `bson:"verified" json:"verified"`
	Bio      string   `bson:"bio" json:"bio"`
	Skills   []string `bson:"skills" json:"skills"`

	Location *GeoJSON `bson:"location,omitempty" json:"location,omitempty"`
	Address  string   `bson:"address" json:"address"`

	TotalConnections int64     `bson:"total_connections" json:"total_connections"`
	TrustLevel       int       `bson:"trust_level" json:"trust_level"`
	XP               int64     `bson:"xp" json:"xp"`
	Badges           []string  `bson:"badges" json:"badges"`
	JoinedAt         time.Time `bson:"joined_at" json:"joined_at"`

	// Cooldown fields, unix milliseconds. CooldownExpiry is left to lapse
	// passively; readers derive the remaining window from it.
	LastRequestConfirmedAt int64 `bson:"last_request_confirmed_at,omitempty" json:"last_request_confirmed_at,omitempty"`
	CooldownExpiry         int64 `bson:"cooldown_expiry,omitempty" json:"cooldown_expiry,omitempty"`

	// Rating aggregates, maintained by the rating operations only.
	AverageRating        float64          `bson:"average_rating" json:"average_rating"`
	TotalRatingsReceived int64            `bson:"total_ratings_received" json:"total_ratings_received"`
	RatingsBreakdown     RatingsBreakdown `bson:"ratings_breakdown" json:"ratings_breakdown"`
}
