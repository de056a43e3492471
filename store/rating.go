package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kizuna-community/kizuna-api/schema"
)

var (
	ErrInvalidRatingScore = fmt.Errorf("rating score must be between 1 and 5")
	ErrRatingNotFulfilled = fmt.Errorf("only fulfilled requests can be rated")
	ErrRatingNotInvolved  = fmt.Errorf("only participants of a request can rate it")
)

// RatingStore maintains per-member rating aggregates and stamps ratings
// onto the rated request.
type RatingStore interface {
	SubmitRating(requestID, raterID, ratedID string, score int, comment string) (*schema.Member, error)
	ListMemberRatings(memberID string) ([]MemberRating, error)
}

// MemberRating pairs a received rating with the request it was left on.
type MemberRating struct {
	RequestID    string    `json:"request_id"`
	RequestTitle string    `json:"request_title"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment,omitempty"`
	RatedAt      time.Time `json:"rated_at"`
}

var breakdownFields = map[int]string{
	1: "ratings_breakdown.1",
	2: "ratings_breakdown.2",
	3: "ratings_breakdown.3",
	4: "ratings_breakdown.4",
	5: "ratings_breakdown.5",
}

// SubmitRating records a star rating a participant leaves on a fulfilled
// request and recomputes the rated member's aggregates.
func (m *mongoDB) SubmitRating(requestID, raterID, ratedID string, score int, comment string) (*schema.Member, error) {
	field, ok := breakdownFields[score]
	if !ok {
		return nil, ErrInvalidRatingScore
	}

	request, err := m.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != schema.RequestFulfilled {
		return nil, ErrRatingNotFulfilled
	}
	if raterID != request.AskerID && raterID != request.SupporterID {
		return nil, ErrRatingNotInvolved
	}

	// ratings only flow between the two participants of the request
	if ratedID == request.AskerID {
		if raterID != request.SupporterID {
			return nil, ErrRatingNotInvolved
		}
	} else if ratedID == request.SupporterID {
		if raterID != request.AskerID {
			return nil, ErrRatingNotInvolved
		}
	} else {
		return nil, ErrRatingNotInvolved
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// stamp the rating onto the request first so a crash between the two
	// writes can be recovered by re-submitting
	ratingKey := fmt.Sprintf("ratings.%s", ratedID)
	if _, err := m.requestCollection().UpdateOne(ctx,
		bson.M{"id": requestID},
		bson.M{"$set": bson.M{ratingKey: schema.RequestRating{
			Score:   score,
			Comment: comment,
			RatedAt: time.Now().UTC(),
		}}},
	); err != nil {
		return nil, err
	}

	if err := m.updateMember(ratedID, bson.M{"$inc": bson.M{
		field:                    1,
		"total_ratings_received": 1,
	}}); err != nil {
		return nil, err
	}

	member, err := m.GetMember(ratedID)
	if err != nil {
		return nil, err
	}

	breakdown := member.RatingsBreakdown
	sum := breakdown.Five*5 + breakdown.Four*4 + breakdown.Three*3 + breakdown.Two*2 + breakdown.One
	average := 0.0
	if member.TotalRatingsReceived > 0 {
		average = float64(sum) / float64(member.TotalRatingsReceived)
	}

	if err := m.updateMember(ratedID, bson.M{"$set": bson.M{
		"average_rating": average,
		"trust_level":    memberTrustLevel(member, average),
	}}); err != nil {
		return nil, err
	}

	member.AverageRating = average
	member.TrustLevel = memberTrustLevel(member, average)
	return member, nil
}

// ListMemberRatings returns the ratings a member has received, newest first.
func (m *mongoDB) ListMemberRatings(memberID string) ([]MemberRating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	ratingKey := fmt.Sprintf("ratings.%s", memberID)

	cursor, err := m.requestCollection().Find(ctx,
		bson.M{ratingKey: bson.M{"$exists": true}},
	)
	if err != nil {
		return nil, err
	}

	ratings := make([]MemberRating, 0)
	for cursor.Next(ctx) {
		var request schema.HelpRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, err
		}

		rating, ok := request.Ratings[memberID]
		if !ok {
			continue
		}

		ratings = append(ratings, MemberRating{
			RequestID:    request.ID,
			RequestTitle: request.Title,
			Score:        rating.Score,
			Comment:      rating.Comment,
			RatedAt:      rating.RatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].RatedAt.After(ratings[j].RatedAt)
	})

	return ratings, nil
}
