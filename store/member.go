package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/trust"
)

var (
	ErrMemberNotFound = fmt.Errorf("member not found")
)

// MemberProfileUpdate carries the profile fields a member may change
// themselves. Nil pointers leave the stored value untouched.
type MemberProfileUpdate struct {
	Name   *string
	Phone  *string
	Avatar *string
	Bio    *string
	Skills []string
}

// MemberStore - operations on member documents
type MemberStore interface {
	CreateMember(member schema.Member) (*schema.Member, error)
	GetMember(id string) (*schema.Member, error)
	DeleteMember(id string) error
	ListMembers(limit int64) ([]schema.Member, error)
	UpdateMemberProfile(id string, update MemberProfileUpdate) error
	UpdateMemberLocation(id string, latitude, longitude float64, address string) error
	VerifyMember(id string) error

	SetMemberCooldown(id string, confirmedAt time.Time, window time.Duration) error
	IncrementMemberConnections(id string) error
	NearbyMemberIDs(distance int, location schema.Location) ([]string, error)
}

func (m *mongoDB) memberCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.MemberCollection)
}

// CreateMember inserts a new member document.
func (m *mongoDB) CreateMember(member schema.Member) (*schema.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now().UTC()
	}
	if member.Badges == nil {
		member.Badges = []string{}
	}
	if member.Skills == nil {
		member.Skills = []string{}
	}
	if member.Role == "" {
		member.Role = "individual"
	}
	member.TrustLevel = trust.Level(&member)

	if _, err := m.memberCollection().InsertOne(ctx, member); err != nil {
		return nil, err
	}

	return &member, nil
}

// GetMember finds a member by id.
func (m *mongoDB) GetMember(id string) (*schema.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var member schema.Member
	if err := m.memberCollection().FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &member, nil
}

// DeleteMember removes a member document permanently. Removing a missing
// member is not an error so the credential and profile deletes stay
// retryable.
func (m *mongoDB) DeleteMember(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.memberCollection().DeleteOne(ctx, bson.M{"id": id})
	return err
}

// ListMembers returns members ordered by join time, newest first.
func (m *mongoDB) ListMembers(limit int64) ([]schema.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"joined_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := m.memberCollection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	members := []schema.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	return members, nil
}

// UpdateMemberProfile applies the supplied profile changes.
func (m *mongoDB) UpdateMemberProfile(id string, update MemberProfileUpdate) error {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Skills != nil {
		fields["skills"] = update.Skills
	}

	if len(fields) == 0 {
		return nil
	}

	return m.updateMember(id, bson.M{"$set": fields})
}

// UpdateMemberLocation stores the member's position as a geojson point so
// nearby queries can use the 2dsphere index.
func (m *mongoDB) UpdateMemberLocation(id string, latitude, longitude float64, address string) error {
	return m.updateMember(id, bson.M{"$set": bson.M{
		"location": schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{longitude, latitude},
		},
		"address": address,
	}})
}

// VerifyMember marks a member as identity-verified.
func (m *mongoDB) VerifyMember(id string) error {
	if err := m.updateMember(id, bson.M{"$set": bson.M{"verified": true}}); err != nil {
		return err
	}
	return m.refreshTrustLevel(id)
}

// SetMemberCooldown stamps a confirmation and schedules the cooldown to
// lapse. The expiry is never actively cleared; readers derive the remaining
// window from it.
func (m *mongoDB) SetMemberCooldown(id string, confirmedAt time.Time, window time.Duration) error {
	return m.updateMember(id, bson.M{"$set": bson.M{
		"last_request_confirmed_at": confirmedAt.UnixMilli(),
		"cooldown_expiry":           confirmedAt.Add(window).UnixMilli(),
	}})
}

// IncrementMemberConnections credits a completed connection and re-derives
// the trust level from the updated counters.
func (m *mongoDB) IncrementMemberConnections(id string) error {
	if err := m.updateMember(id, bson.M{"$inc": bson.M{"total_connections": 1}}); err != nil {
		return err
	}
	return m.refreshTrustLevel(id)
}

// NearbyMemberIDs returns ids of members within the given distance in
// meters, nearest first.
func (m *mongoDB) NearbyMemberIDs(distance int, location schema.Location) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{location.Longitude, location.Latitude},
				},
				"$maxDistance": distance,
			},
		},
	}

	cursor, err := m.memberCollection().Find(ctx, query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for cursor.Next(ctx) {
		var member schema.Member
		if err := cursor.Decode(&member); err != nil {
			return nil, err
		}
		ids = append(ids, member.ID)
	}

	return ids, nil
}

func (m *mongoDB) updateMember(id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.memberCollection().UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// memberTrustLevel derives the trust level a member would hold with the
// given average rating applied.
func memberTrustLevel(member *schema.Member, average float64) int {
	snapshot := *member
	snapshot.AverageRating = average
	return trust.Level(&snapshot)
}

func (m *mongoDB) refreshTrustLevel(id string) error {
	member, err := m.GetMember(id)
	if err != nil {
		return err
	}

	return m.updateMember(id, bson.M{"$set": bson.M{
		"trust_level": trust.Level(member),
	}})
}
