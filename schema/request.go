package schema

import (
	"time"
)

const (
	RequestCollection = "requests"
)

// RequestStatus tracks where a help request is in its lifecycle.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestConnected  RequestStatus = "connected"
	RequestInProgress RequestStatus = "in-progress"
	RequestEnroute    RequestStatus = "enroute"
	RequestFulfilled  RequestStatus = "fulfilled"
	RequestCancelled  RequestStatus = "cancelled"
)

// ActiveRequestStatuses are the statuses shown in live request lists and
// watched by the push feed.
var ActiveRequestStatuses = []RequestStatus{
	RequestOpen,
	RequestConnected,
	RequestInProgress,
	RequestEnroute,
}

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestOpen:       {RequestConnected, RequestCancelled},
	RequestConnected:  {RequestInProgress, RequestEnroute, RequestCancelled},
	RequestInProgress: {RequestEnroute, RequestFulfilled, RequestCancelled},
	RequestEnroute:    {RequestFulfilled},
}

// Terminal reports whether no further transition is allowed from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestFulfilled || s == RequestCancelled
}

// CanTransition reports whether a request may move from one status to
// another. Terminal statuses allow nothing.
func CanTransition(from, to RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// RequestLocation is where the help is needed.
type RequestLocation struct {
	Latitude  float64 `bson:"lat" json:"lat"`
	Longitude float64 `bson:"lng" json:"lng"`
	Address   string  `bson:"address" json:"address"`
}

// RequestRating is a rating a member left on a fulfilled request.
type RequestRating struct {
	Score   int       `bson:"score" json:"score"`
	Comment string    `bson:"comment,omitempty" json:"comment,omitempty"`
	RatedAt time.Time `bson:"rated_at" json:"rated_at"`
}

// HelpRequest is a member asking the community for help.
type HelpRequest struct {
	ID          string          `bson:"id" json:"id"`
	AskerID     string          `bson:"asker_id" json:"asker_id"`
	SupporterID string          `bson:"supporter_id" json:"supporter_id"`
	Status      RequestStatus   `bson:"status" json:"status"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description"`
	CategoryID  string          `bson:"category_id" json:"category_id"`
	Subcategory string          `bson:"subcategory" json:"subcategory"`
	Budget      float64         `bson:"budget" json:"budget"`
	Currency    string          `bson:"currency" json:"currency"`
	Urgent      bool            `bson:"urgent" json:"urgent"`
	Deliverable bool            `bson:"deliverable" json:"deliverable"`
	Location    RequestLocation `bson:"location" json:"location"`
	Images      []string        `bson:"images" json:"images"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`

	// ScheduledFor is an optional future time the asker wants the help at.
	ScheduledFor *time.Time `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`

	// StartedAt and EstimatedDuration drive the enroute countdown.
	// StartedAt is unix milliseconds; EstimatedDuration is minutes.
	StartedAt         int64 `bson:"started_at,omitempty" json:"started_at,omitempty"`
	EstimatedDuration int64 `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"`

	// FulfilledAt and CompletedAt are unix milliseconds, set together when
	// the request reaches the fulfilled status.
	FulfilledAt int64 `bson:"fulfilled_at,omitempty" json:"fulfilled_at,omitempty"`
	CompletedAt int64 `bson:"completed_at,omitempty" json:"completed_at,omitempty"`

	// Ratings maps the rated member id to the rating left on this request.
	Ratings map[string]RequestRating `bson:"ratings,omitempty" json:"ratings,omitempty"`
}
