package schema

import "time"

const (
	ActivityCollection = "activities"
)

// ActivityType classifies entries in the community feed.
type ActivityType string

const (
	ActivityRequestCreated   ActivityType = "request_created"
	ActivityRequestClaimed   ActivityType = "request_claimed"
	ActivityRequestFulfilled ActivityType = "request_fulfilled"
	ActivityRequestCancelled ActivityType = "request_cancelled"
	ActivityBadgeAwarded     ActivityType = "badge_awarded"
	ActivityRatingSubmitted  ActivityType = "rating_submitted"
	ActivityMemberJoined     ActivityType = "member_joined"
)

// Activity is a single community feed entry.
type Activity struct {
	ID             string       `bson:"id" json:"id"`
	Type           ActivityType `bson:"type" json:"type"`
	MemberID       string       `bson:"member_id" json:"member_id"`
	TargetMemberID string       `bson:"target_member_id,omitempty" json:"target_member_id,omitempty"`
	RequestID      string       `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Message        string       `bson:"message" json:"message"`
	Timestamp      time.Time    `bson:"ts" json:"timestamp"`
}
