package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/schema"
)

type BadgeTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewBadgeTestSuite(connURI, dbName string) *BadgeTestSuite {
	return &BadgeTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *BadgeTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *BadgeTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.MemberCollection).InsertMany(ctx, []interface{}{
		schema.Member{
			ID:               "badge-newcomer",
			Name:             "Newcomer",
			Email:            "newcomer@test.kizuna",
			Badges:           []string{},
			TotalConnections: 0,
		},
		schema.Member{
			ID:               "badge-veteran",
			Name:             "Veteran",
			Email:            "veteran@test.kizuna",
			Verified:         true,
			Badges:           []string{"badge-first-connection"},
			TotalConnections: 12,
		},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.BadgeCollection).InsertMany(ctx, []interface{}{
		schema.Badge{
			ID:                  "badge-first-connection",
			Name:                "First Connection",
			Tier:                schema.BadgeTierBronze,
			XPReward:            50,
			RequiredConnections: 1,
		},
		schema.Badge{
			ID:                  "badge-ten-connections",
			Name:                "Ten Connections",
			Tier:                schema.BadgeTierSilver,
			XPReward:            200,
			RequiredConnections: 10,
		},
		schema.Badge{
			ID:               "badge-verified",
			Name:             "Verified Member",
			Tier:             schema.BadgeTierGold,
			XPReward:         100,
			RequiresVerified: true,
		},
		schema.Badge{
			ID:       "badge-community-pick",
			Name:     "Community Pick",
			Tier:     schema.BadgeTierPlatinum,
			XPReward: 500,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *BadgeTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *BadgeTestSuite) store() MongoStore {
	return NewMongoStore(s.mongoClient, s.testDBName)
}

func (s *BadgeTestSuite) TestAwardBadgeOnce() {
	store := s.store()

	granted, err := store.AwardBadge("badge-newcomer", "badge-community-pick")
	s.NoError(err)
	s.True(granted)

	member, err := store.GetMember("badge-newcomer")
	s.NoError(err)
	s.Contains(member.Badges, "badge-community-pick")
	s.Equal(int64(500), member.XP)

	// second award must not double-pay the XP
	granted, err = store.AwardBadge("badge-newcomer", "badge-community-pick")
	s.NoError(err)
	s.False(granted)

	member, err = store.GetMember("badge-newcomer")
	s.NoError(err)
	s.Equal(int64(500), member.XP)
}

func (s *BadgeTestSuite) TestAwardUnknownBadge() {
	_, err := s.store().AwardBadge("badge-newcomer", "no-such-badge")
	s.Equal(ErrBadgeNotFound, err)
}

func (s *BadgeTestSuite) TestAwardBadgeUnknownMember() {
	_, err := s.store().AwardBadge("no-such-member", "badge-verified")
	s.Equal(ErrMemberNotFound, err)
}

func (s *BadgeTestSuite) TestCheckBadgeProgress() {
	store := s.store()

	eligible, earned, err := store.CheckBadgeProgress("badge-veteran")
	s.NoError(err)

	earnedIDs := make([]string, 0, len(earned))
	for _, badge := range earned {
		earnedIDs = append(earnedIDs, badge.ID)
	}
	s.Contains(earnedIDs, "badge-first-connection")

	eligibleIDs := make([]string, 0, len(eligible))
	for _, badge := range eligible {
		eligibleIDs = append(eligibleIDs, badge.ID)
	}
	s.Contains(eligibleIDs, "badge-ten-connections")
	s.Contains(eligibleIDs, "badge-verified")
	// manually awarded badges never show up as eligible
	s.NotContains(eligibleIDs, "badge-community-pick")
}

func (s *BadgeTestSuite) TestCheckBadgeProgressUnqualified() {
	store := s.store()

	eligible, _, err := store.CheckBadgeProgress("badge-newcomer")
	s.NoError(err)

	for _, badge := range eligible {
		s.NotEqual("badge-ten-connections", badge.ID)
		s.NotEqual("badge-verified", badge.ID)
	}
}

func (s *BadgeTestSuite) TestListMemberBadges() {
	badges, err := s.store().ListMemberBadges("badge-veteran")
	s.NoError(err)
	s.Len(badges, 1)
	s.Equal("badge-first-connection", badges[0].ID)
}

func TestBadgeTestSuite(t *testing.T) {
	suite.Run(t, NewBadgeTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
