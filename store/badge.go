package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kizuna-community/kizuna-api/schema"
)

var (
	ErrBadgeNotFound = fmt.Errorf("badge not found")
)

// BadgeStore - badge catalog and per-member awards
type BadgeStore interface {
	CreateBadge(badge schema.Badge) error
	ListBadges() ([]schema.Badge, error)
	GetBadge(id string) (*schema.Badge, error)
	ListMemberBadges(memberID string) ([]schema.Badge, error)

	// AwardBadge grants a badge and its XP once; awarding a badge the
	// member already holds reports false without error.
	AwardBadge(memberID, badgeID string) (bool, error)
	CheckBadgeProgress(memberID string) (eligible, earned []schema.Badge, err error)
}

func (m *mongoDB) badgeCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.BadgeCollection)
}

func (m *mongoDB) CreateBadge(badge schema.Badge) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.badgeCollection().InsertOne(ctx, badge)
	return err
}

func (m *mongoDB) ListBadges() ([]schema.Badge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.badgeCollection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	badges := []schema.Badge{}
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, err
	}

	return badges, nil
}

func (m *mongoDB) GetBadge(id string) (*schema.Badge, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var badge schema.Badge
	if err := m.badgeCollection().FindOne(ctx, bson.M{"id": id}).Decode(&badge); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBadgeNotFound
		}
		return nil, err
	}

	return &badge, nil
}

// ListMemberBadges resolves a member's badge ids to their definitions.
func (m *mongoDB) ListMemberBadges(memberID string) ([]schema.Badge, error) {
	member, err := m.GetMember(memberID)
	if err != nil {
		return nil, err
	}
	if len(member.Badges) == 0 {
		return []schema.Badge{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.badgeCollection().Find(ctx, bson.M{"id": bson.M{"$in": member.Badges}})
	if err != nil {
		return nil, err
	}

	badges := []schema.Badge{}
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, err
	}

	return badges, nil
}

// AwardBadge grants a badge to a member. The conditional update only
// matches while the badge is absent, so a double award never double-pays
// the XP reward.
func (m *mongoDB) AwardBadge(memberID, badgeID string) (bool, error) {
	badge, err := m.GetBadge(badgeID)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.memberCollection().UpdateOne(ctx,
		bson.M{"id": memberID, "badges": bson.M{"$ne": badgeID}},
		bson.M{
			"$addToSet": bson.M{"badges": badgeID},
			"$inc":      bson.M{"xp": badge.XPReward},
		},
	)
	if err != nil {
		return false, err
	}

	if result.MatchedCount == 0 {
		// either the member is missing or the badge is already held
		if _, err := m.GetMember(memberID); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// CheckBadgeProgress reports the badges a member newly qualifies for along
// with the ones already earned.
func (m *mongoDB) CheckBadgeProgress(memberID string) ([]schema.Badge, []schema.Badge, error) {
	member, err := m.GetMember(memberID)
	if err != nil {
		return nil, nil, err
	}

	all, err := m.ListBadges()
	if err != nil {
		return nil, nil, err
	}

	held := make(map[string]bool, len(member.Badges))
	for _, id := range member.Badges {
		held[id] = true
	}

	eligible := []schema.Badge{}
	earned := []schema.Badge{}
	for _, badge := range all {
		if held[badge.ID] {
			earned = append(earned, badge)
			continue
		}

		if badge.RequiresVerified && !member.Verified {
			continue
		}
		if member.TotalConnections < badge.RequiredConnections {
			continue
		}
		if !badge.RequiresVerified && badge.RequiredConnections == 0 {
			// badge without an automatic rule, awarded manually
			continue
		}

		eligible = append(eligible, badge)
	}

	return eligible, earned, nil
}
