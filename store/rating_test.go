package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/schema"
)

type RatingTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRatingTestSuite(connURI, dbName string) *RatingTestSuite {
	return &RatingTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RatingTestSuite) SetupSuite() {
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
func (s *RatingTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	now := time.Now()

	if _, err := s.testDatabase.Collection(schema.MemberCollection).InsertMany(ctx, []interface{}{
		schema.Member{
			ID:    "rating-asker",
			Name:  "Rating Asker",
			Email: "rating-asker@test.kizuna",
		},
		schema.Member{
			ID:    "rating-supporter",
			Name:  "Rating Supporter",
			Email: "rating-supporter@test.kizuna",
		},
		schema.Member{
			ID:    "rating-bystander",
			Name:  "Bystander",
			Email: "bystander@test.kizuna",
		},
		schema.Member{
			ID:    "rating-listed-asker",
			Name:  "Listed Asker",
			Email: "listed-asker@test.kizuna",
		},
		schema.Member{
			ID:    "rating-listed-supporter",
			Name:  "Listed Supporter",
			Email: "listed-supporter@test.kizuna",
		},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.RequestCollection).InsertMany(ctx, []interface{}{
		schema.HelpRequest{
			ID:          "rating-request-fulfilled",
			AskerID:     "rating-asker",
			SupporterID: "rating-supporter",
			Status:      schema.RequestFulfilled,
			Title:       "fulfilled request",
			CategoryID:  "category-errands",
			Budget:      1000,
			Currency:    "UGX",
			FulfilledAt: now.UnixMilli(),
			CompletedAt: now.UnixMilli(),
			CreatedAt:   now.Add(-time.Hour),
		},
		schema.HelpRequest{
			ID:          "rating-request-listed",
			AskerID:     "rating-listed-asker",
			SupporterID: "rating-listed-supporter",
			Status:      schema.RequestFulfilled,
			Title:       "groceries run",
			CategoryID:  "category-errands",
			Budget:      2000,
			Currency:    "UGX",
			FulfilledAt: now.UnixMilli(),
			CompletedAt: now.UnixMilli(),
			CreatedAt:   now.Add(-2 * time.Hour),
		},
		schema.HelpRequest{
			ID:          "rating-request-open",
			AskerID:     "rating-asker",
			Status:      schema.RequestOpen,
			Title:       "still open",
			CategoryID:  "category-errands",
			Budget:      1000,
			Currency:    "UGX",
			CreatedAt:   now.Add(-time.Hour),
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *RatingTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RatingTestSuite) store() MongoStore {
	return NewMongoStore(s.mongoClient, s.testDBName)
}

func (s *RatingTestSuite) TestListMemberRatings() {
	store := s.store()

	ratings, err := store.ListMemberRatings("rating-listed-supporter")
	s.NoError(err)
	s.Len(ratings, 0)

	_, err = store.SubmitRating("rating-request-listed", "rating-listed-asker", "rating-listed-supporter", 3, "late but helpful")
	s.NoError(err)

	ratings, err = store.ListMemberRatings("rating-listed-supporter")
	s.NoError(err)
	s.Len(ratings, 1)
	s.Equal("rating-request-listed", ratings[0].RequestID)
	s.Equal("groceries run", ratings[0].RequestTitle)
	s.Equal(3, ratings[0].Score)
	s.Equal("late but helpful", ratings[0].Comment)
}

func (s *RatingTestSuite) TestSubmitRatingAggregates() {
	store := s.store()

	rated, err := store.SubmitRating("rating-request-fulfilled", "rating-asker", "rating-supporter", 5, "quick and kind")
	s.NoError(err)
	s.Equal(int64(1), rated.TotalRatingsReceived)
	s.Equal(int64(1), rated.RatingsBreakdown.Five)
	s.Equal(float64(5), rated.AverageRating)

	var request schema.HelpRequest
	err = s.testDatabase.Collection(schema.RequestCollection).FindOne(context.Background(), bson.M{
		"id": "rating-request-fulfilled",
	}).Decode(&request)
	s.NoError(err)

	rating, ok := request.Ratings["rating-supporter"]
	s.True(ok)
	s.Equal(5, rating.Score)
	s.Equal("quick and kind", rating.Comment)
}

func (s *RatingTestSuite) TestSubmitRatingAverageAcrossScores() {
	store := s.store()

	rated, err := store.SubmitRating("rating-request-fulfilled", "rating-supporter", "rating-asker", 4, "")
	s.NoError(err)
	s.Equal(float64(4), rated.AverageRating)

	asker, err := store.GetMember("rating-asker")
	s.NoError(err)
	s.Equal(int64(1), asker.RatingsBreakdown.Four)
	s.Equal(float64(4), asker.AverageRating)
}

func (s *RatingTestSuite) TestSubmitRatingInvalidScore() {
	store := s.store()

	_, err := store.SubmitRating("rating-request-fulfilled", "rating-asker", "rating-supporter", 0, "")
	s.Equal(ErrInvalidRatingScore, err)

	_, err = store.SubmitRating("rating-request-fulfilled", "rating-asker", "rating-supporter", 6, "")
	s.Equal(ErrInvalidRatingScore, err)
}

func (s *RatingTestSuite) TestSubmitRatingUnfulfilledRequest() {
	_, err := s.store().SubmitRating("rating-request-open", "rating-asker", "rating-supporter", 4, "")
	s.Equal(ErrRatingNotFulfilled, err)
}

func (s *RatingTestSuite) TestSubmitRatingNotParticipant() {
	_, err := s.store().SubmitRating("rating-request-fulfilled", "rating-bystander", "rating-supporter", 4, "")
	s.Equal(ErrRatingNotInvolved, err)
}

func (s *RatingTestSuite) TestSubmitRatingSelf() {
	_, err := s.store().SubmitRating("rating-request-fulfilled", "rating-asker", "rating-asker", 5, "")
	s.Equal(ErrRatingNotInvolved, err)
}

func (s *RatingTestSuite) TestSubmitRatingTargetOutsideRequest() {
	_, err := s.store().SubmitRating("rating-request-fulfilled", "rating-asker", "rating-bystander", 5, "")
	s.Equal(ErrRatingNotInvolved, err)
}

func TestRatingTestSuite(t *testing.T) {
	suite.Run(t, NewRatingTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
