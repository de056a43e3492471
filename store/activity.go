package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/schema"
)

// ActivityStore - the community activity feed
type ActivityStore interface {
	InsertActivity(activity schema.Activity) error
	ListActivities(limit int64) ([]schema.Activity, error)
	ListMemberActivities(memberID string, limit int64) ([]schema.Activity, error)
	ListRecentActivities(since time.Time) ([]schema.Activity, error)
}

func (m *mongoDB) activityCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.ActivityCollection)
}

// InsertActivity appends an entry to the community feed.
func (m *mongoDB) InsertActivity(activity schema.Activity) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}

	_, err := m.activityCollection().InsertOne(ctx, activity)
	return err
}

func (m *mongoDB) listActivities(query bson.M, limit int64) ([]schema.Activity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if limit <= 0 || limit > consts.ActivityFeedLimit {
		limit = consts.ActivityFeedLimit
	}
	opts := options.Find().SetSort(bson.M{"ts": -1}).SetLimit(limit)

	cursor, err := m.activityCollection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	activities := []schema.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	return activities, nil
}

// ListActivities returns the latest feed entries, newest first.
func (m *mongoDB) ListActivities(limit int64) ([]schema.Activity, error) {
	return m.listActivities(bson.M{}, limit)
}

// ListMemberActivities returns entries a member appears in, as actor or
// target.
func (m *mongoDB) ListMemberActivities(memberID string, limit int64) ([]schema.Activity, error) {
	return m.listActivities(bson.M{"$or": bson.A{
		bson.M{"member_id": memberID},
		bson.M{"target_member_id": memberID},
	}}, limit)
}

// ListRecentActivities returns entries newer than the given time.
func (m *mongoDB) ListRecentActivities(since time.Time) ([]schema.Activity, error) {
	return m.listActivities(bson.M{"ts": bson.M{"$gt": since}}, consts.ActivityFeedLimit)
}
