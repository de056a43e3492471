package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/schema"
)

type RequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewRequestTestSuite(connURI, dbName string) *RequestTestSuite {
	return &RequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *RequestTestSuite) SetupSuite() {
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
func (s *RequestTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	now := time.Now()

	if _, err := s.testDatabase.Collection(schema.MemberCollection).InsertMany(ctx, []interface{}{
		schema.Member{
			ID:    "member-asker",
			Name:  "Asker",
			Email: "asker@test.kizuna",
		},
		schema.Member{
			ID:    "member-supporter",
			Name:  "Supporter",
			Email: "supporter@test.kizuna",
		},
		schema.Member{
			ID:    "member-rival",
			Name:  "Rival Supporter",
			Email: "rival@test.kizuna",
		},
		schema.Member{
			ID:                     "member-cooling",
			Name:                   "Cooling Supporter",
			Email:                  "cooling@test.kizuna",
			LastRequestConfirmedAt: now.Add(-10 * time.Minute).UnixMilli(),
			CooldownExpiry:         now.Add(20 * time.Minute).UnixMilli(),
		},
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.RequestCollection).InsertMany(ctx, []interface{}{
		schema.HelpRequest{
			ID:                "request-enroute-due",
			AskerID:           "member-asker",
			SupporterID:       "member-supporter",
			Status:            schema.RequestEnroute,
			Title:             "groceries run",
			CategoryID:        "category-errands",
			Budget:            10000,
			Currency:          "UGX",
			StartedAt:         now.Add(-2 * time.Hour).UnixMilli(),
			EstimatedDuration: 30,
			CreatedAt:         now.Add(-3 * time.Hour),
		},
		schema.HelpRequest{
			ID:                "request-enroute-running",
			AskerID:           "member-asker",
			SupporterID:       "member-supporter",
			Status:            schema.RequestEnroute,
			Title:             "pharmacy pickup",
			CategoryID:        "category-errands",
			Budget:            5000,
			Currency:          "UGX",
			StartedAt:         now.UnixMilli(),
			EstimatedDuration: 60,
			CreatedAt:         now.Add(-time.Hour),
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *RequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *RequestTestSuite) store() MongoStore {
	return NewMongoStore(s.mongoClient, s.testDBName)
}

func (s *RequestTestSuite) mustCreateRequest(askerID string) *schema.HelpRequest {
	request, err := s.store().CreateRequest(askerID, RequestParams{
		Title:      "fetch water",
		CategoryID: "category-errands",
		Budget:     2000,
	})
	s.Require().NoError(err)
	return request
}

func (s *RequestTestSuite) TestCreateRequestDefaults() {
	request := s.mustCreateRequest("member-asker")

	s.Equal(schema.RequestOpen, request.Status)
	s.Equal("member-asker", request.AskerID)
	s.Equal("", request.SupporterID)
	s.Equal("UGX", request.Currency)
	s.Zero(request.StartedAt)
	s.Zero(request.EstimatedDuration)
	s.False(request.CreatedAt.IsZero())
}

func (s *RequestTestSuite) TestCreateRequestMissingFields() {
	_, err := s.store().CreateRequest("member-asker", RequestParams{
		Title: "no category or budget",
	})
	s.Equal(ErrMissingRequestFields, err)

	_, err = s.store().CreateRequest("member-asker", RequestParams{
		CategoryID: "category-errands",
		Budget:     100,
	})
	s.Equal(ErrMissingRequestFields, err)
}

// TestRequestLifecycleHappyPath walks a request through the entire
// successful path and checks the supporter binding stays consistent with
// the status at every step.
func (s *RequestTestSuite) TestRequestLifecycleHappyPath() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	claimed, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)
	s.Equal(schema.RequestConnected, claimed.Status)
	s.Equal("member-supporter", claimed.SupporterID)

	started, err := store.StartRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestInProgress, started.Status)

	confirmed, err := store.ConfirmRequest(request.ID, 45)
	s.NoError(err)
	s.Equal(schema.RequestEnroute, confirmed.Status)
	s.True(confirmed.StartedAt > 0)
	s.Equal(int64(45), confirmed.EstimatedDuration)

	fulfilled, err := store.FulfillRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestFulfilled, fulfilled.Status)
	s.True(fulfilled.FulfilledAt > 0)
	s.True(fulfilled.CompletedAt > 0)
}

func (s *RequestTestSuite) TestClaimOwnRequest() {
	request := s.mustCreateRequest("member-asker")

	_, err := s.store().ClaimRequest(request.ID, "member-asker")
	s.Equal(ErrClaimOwnRequest, err)
}

// TestClaimRace makes sure the second claim on the same request loses with
// a distinct error instead of overwriting the first supporter.
func (s *RequestTestSuite) TestClaimRace() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)

	_, err = store.ClaimRequest(request.ID, "member-rival")
	s.Equal(ErrRequestAlreadyClaimed, err)

	current, err := store.GetRequest(request.ID)
	s.NoError(err)
	s.Equal("member-supporter", current.SupporterID)
}

func (s *RequestTestSuite) TestClaimOnCooldown() {
	request := s.mustCreateRequest("member-asker")

	_, err := s.store().ClaimRequest(request.ID, "member-cooling")
	s.Equal(ErrSupporterOnCooldown, err)
}

func (s *RequestTestSuite) TestClaimUnknownRequest() {
	_, err := s.store().ClaimRequest("no-such-request", "member-supporter")
	s.Equal(ErrRequestNotFound, err)
}

func (s *RequestTestSuite) TestStartFromOpenFails() {
	request := s.mustCreateRequest("member-asker")

	_, err := s.store().StartRequest(request.ID)
	s.Equal(ErrInvalidRequestState, err)
}

func (s *RequestTestSuite) TestConfirmSetsSupporterCooldown() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-rival")
	s.NoError(err)

	before := time.Now()
	_, err = store.ConfirmRequest(request.ID, 30)
	s.NoError(err)

	supporter, err := store.GetMember("member-rival")
	s.NoError(err)
	s.True(supporter.LastRequestConfirmedAt >= before.UnixMilli())

	expectedExpiry := supporter.LastRequestConfirmedAt + consts.CooldownWindow.Milliseconds()
	s.Equal(expectedExpiry, supporter.CooldownExpiry)
}

func (s *RequestTestSuite) TestConfirmInvalidDuration() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)

	_, err = store.ConfirmRequest(request.ID, 0)
	s.Equal(ErrInvalidDuration, err)

	_, err = store.ConfirmRequest(request.ID, -30)
	s.Equal(ErrInvalidDuration, err)
}

func (s *RequestTestSuite) TestConfirmFromOpenFails() {
	request := s.mustCreateRequest("member-asker")

	_, err := s.store().ConfirmRequest(request.ID, 30)
	s.Equal(ErrInvalidRequestState, err)
}

// TestFulfillIdempotent covers the manual completion racing the countdown
// expiry: the second fulfillment must succeed without changing anything.
func (s *RequestTestSuite) TestFulfillIdempotent() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)
	_, err = store.StartRequest(request.ID)
	s.NoError(err)

	first, err := store.FulfillRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestFulfilled, first.Status)

	second, err := store.FulfillRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestFulfilled, second.Status)
	s.Equal(first.FulfilledAt, second.FulfilledAt)
}

func (s *RequestTestSuite) TestFulfillCreditsSupporter() {
	store := s.store()

	supporterBefore, err := store.GetMember("member-supporter")
	s.NoError(err)

	request := s.mustCreateRequest("member-asker")
	_, err = store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)
	_, err = store.StartRequest(request.ID)
	s.NoError(err)
	_, err = store.FulfillRequest(request.ID)
	s.NoError(err)

	supporterAfter, err := store.GetMember("member-supporter")
	s.NoError(err)
	s.Equal(supporterBefore.TotalConnections+1, supporterAfter.TotalConnections)
}

func (s *RequestTestSuite) TestCancelOpenRequest() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	cancelled, err := store.CancelRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestCancelled, cancelled.Status)
	s.Equal("", cancelled.SupporterID)
}

func (s *RequestTestSuite) TestCancelConnectedReleasesSupporter() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)

	cancelled, err := store.CancelRequest(request.ID)
	s.NoError(err)
	s.Equal(schema.RequestCancelled, cancelled.Status)
	s.Equal("", cancelled.SupporterID)
}

// TestCancelEnrouteFails pins the state machine edge that a request with a
// running countdown can only finish, not cancel.
func (s *RequestTestSuite) TestCancelEnrouteFails() {
	store := s.store()
	request := s.mustCreateRequest("member-asker")

	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)
	_, err = store.ConfirmRequest(request.ID, 30)
	s.NoError(err)

	_, err = store.CancelRequest(request.ID)
	s.Equal(ErrInvalidRequestState, err)
}

// TestTerminalStatesAreImmutable drives every transition against fulfilled
// and cancelled requests.
func (s *RequestTestSuite) TestTerminalStatesAreImmutable() {
	store := s.store()

	request := s.mustCreateRequest("member-asker")
	_, err := store.ClaimRequest(request.ID, "member-supporter")
	s.NoError(err)
	_, err = store.StartRequest(request.ID)
	s.NoError(err)
	_, err = store.FulfillRequest(request.ID)
	s.NoError(err)

	_, err = store.ClaimRequest(request.ID, "member-rival")
	s.Equal(ErrInvalidRequestState, err)
	_, err = store.StartRequest(request.ID)
	s.Equal(ErrInvalidRequestState, err)
	_, err = store.ConfirmRequest(request.ID, 30)
	s.Equal(ErrInvalidRequestState, err)
	_, err = store.CancelRequest(request.ID)
	s.Equal(ErrInvalidRequestState, err)

	cancelled := s.mustCreateRequest("member-asker")
	_, err = store.CancelRequest(cancelled.ID)
	s.NoError(err)

	_, err = store.ClaimRequest(cancelled.ID, "member-rival")
	s.Equal(ErrInvalidRequestState, err)
	_, err = store.FulfillRequest(cancelled.ID)
	s.Equal(ErrInvalidRequestState, err)
}

func (s *RequestTestSuite) TestExpireEnrouteRequests() {
	store := s.store()

	expired, err := store.ExpireEnrouteRequests(time.Now())
	s.NoError(err)

	expiredIDs := make([]string, 0, len(expired))
	for _, request := range expired {
		s.Equal(schema.RequestFulfilled, request.Status)
		expiredIDs = append(expiredIDs, request.ID)
	}
	s.Contains(expiredIDs, "request-enroute-due")
	s.NotContains(expiredIDs, "request-enroute-running")

	running, err := store.GetRequest("request-enroute-running")
	s.NoError(err)
	s.Equal(schema.RequestEnroute, running.Status)
}

func (s *RequestTestSuite) TestListMemberRequests() {
	store := s.store()

	requests, err := store.ListMemberRequests("member-asker", 0)
	s.NoError(err)
	s.True(len(requests) > 0)
	for _, request := range requests {
		s.True(request.AskerID == "member-asker" || request.SupporterID == "member-asker")
	}
}

func TestRequestTestSuite(t *testing.T) {
	suite.Run(t, NewRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
