package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/countdown"
	"github.com/kizuna-community/kizuna-api/schema"
)

var (
	ErrRequestNotFound       = fmt.Errorf("request not found")
	ErrRequestAlreadyClaimed = fmt.Errorf("request was already accepted by another supporter")
	ErrInvalidRequestState   = fmt.Errorf("operation is not allowed in the current request state")
	ErrClaimOwnRequest       = fmt.Errorf("cannot support your own request")
	ErrSupporterOnCooldown   = fmt.Errorf("supporter is still on cooldown")
	ErrMissingRequestFields  = fmt.Errorf("title, budget and category are required")
	ErrInvalidDuration       = fmt.Errorf("estimated duration must be positive")
)

// RequestParams is the descriptive payload supplied when a request is
// created. The lifecycle treats it as opaque apart from the required-field
// validation.
type RequestParams struct {
	Title        string
	Description  string
	CategoryID   string
	Subcategory  string
	Budget       float64
	Currency     string
	Urgent       bool
	Deliverable  bool
	Location     schema.RequestLocation
	Images       []string
	ScheduledFor *time.Time
}

// HelpRequestStore owns the request lifecycle. Every transition is a single
// conditional update keyed on the current status, so racing writers resolve
// at the storage layer instead of last-write-wins.
type HelpRequestStore interface {
	CreateRequest(askerID string, params RequestParams) (*schema.HelpRequest, error)
	GetRequest(id string) (*schema.HelpRequest, error)
	ListActiveRequests(limit int64) ([]schema.HelpRequest, error)
	ListRequestsByStatus(status schema.RequestStatus, limit int64) ([]schema.HelpRequest, error)
	ListMemberRequests(memberID string, limit int64) ([]schema.HelpRequest, error)

	ClaimRequest(id, supporterID string) (*schema.HelpRequest, error)
	StartRequest(id string) (*schema.HelpRequest, error)
	ConfirmRequest(id string, estimatedMinutes int64) (*schema.HelpRequest, error)
	FulfillRequest(id string) (*schema.HelpRequest, error)
	CancelRequest(id string) (*schema.HelpRequest, error)

	ExpireEnrouteRequests(now time.Time) ([]schema.HelpRequest, error)
	WatchActiveRequests(ctx context.Context) (<-chan schema.HelpRequest, error)
}

func (m *mongoDB) requestCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.RequestCollection)
}

// CreateRequest inserts a new request in the open state.
func (m *mongoDB) CreateRequest(askerID string, params RequestParams) (*schema.HelpRequest, error) {
	if params.Title == "" || params.CategoryID == "" || params.Budget <= 0 {
		return nil, ErrMissingRequestFields
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	currency := params.Currency
	if currency == "" {
		currency = "UGX"
	}
	images := params.Images
	if images == nil {
		images = []string{}
	}

	request := schema.HelpRequest{
		ID:           uuid.New().String(),
		AskerID:      askerID,
		SupporterID:  "",
		Status:       schema.RequestOpen,
		Title:        params.Title,
		Description:  params.Description,
		CategoryID:   params.CategoryID,
		Subcategory:  params.Subcategory,
		Budget:       params.Budget,
		Currency:     currency,
		Urgent:       params.Urgent,
		Deliverable:  params.Deliverable,
		Location:     params.Location,
		Images:       images,
		CreatedAt:    time.Now().UTC(),
		ScheduledFor: params.ScheduledFor,
	}

	if _, err := m.requestCollection().InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

// GetRequest finds a request by its id.
func (m *mongoDB) GetRequest(id string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var request schema.HelpRequest
	if err := m.requestCollection().FindOne(ctx, bson.M{"id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

func (m *mongoDB) listRequests(query bson.M, limit int64) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := m.requestCollection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	requests := []schema.HelpRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListActiveRequests returns non-terminal requests, newest first.
func (m *mongoDB) ListActiveRequests(limit int64) ([]schema.HelpRequest, error) {
	return m.listRequests(bson.M{"status": bson.M{"$in": schema.ActiveRequestStatuses}}, limit)
}

// ListRequestsByStatus returns requests in a given status, newest first.
func (m *mongoDB) ListRequestsByStatus(status schema.RequestStatus, limit int64) ([]schema.HelpRequest, error) {
	return m.listRequests(bson.M{"status": status}, limit)
}

// ListMemberRequests returns the requests a member asked or supports.
func (m *mongoDB) ListMemberRequests(memberID string, limit int64) ([]schema.HelpRequest, error) {
	return m.listRequests(bson.M{"$or": bson.A{
		bson.M{"asker_id": memberID},
		bson.M{"supporter_id": memberID},
	}}, limit)
}

// transitionRequest performs a conditional status update and re-reads the
// document. A match count of zero means the precondition failed; the caller
// diagnoses why from the current document.
func (m *mongoDB) transitionRequest(id string, filter bson.M, update bson.M) (*schema.HelpRequest, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter["id"] = id

	result, err := m.requestCollection().UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, false, err
	}

	if result.MatchedCount == 0 {
		return nil, false, nil
	}

	request, err := m.GetRequest(id)
	return request, true, err
}

// invalidTransition diagnoses a conditional status update that matched no
// document: the request is either missing or its current status does not
// allow the move. Lifecycle violations are logged with both ends of the
// attempted move.
func (m *mongoDB) invalidTransition(id string, to schema.RequestStatus) error {
	current, err := m.GetRequest(id)
	if err != nil {
		return err
	}

	if !schema.CanTransition(current.Status, to) {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": id,
			"from":       current.Status,
			"to":         to,
		}).Warn("request transition not allowed")
	}

	return ErrInvalidRequestState
}

// ClaimRequest binds a supporter to an open request. The write succeeds only
// while the request is still open and unclaimed, so a lost race surfaces as
// ErrRequestAlreadyClaimed instead of silently overwriting the winner.
func (m *mongoDB) ClaimRequest(id, supporterID string) (*schema.HelpRequest, error) {
	supporter, err := m.GetMember(supporterID)
	if err != nil {
		return nil, err
	}
	if countdown.OnCooldown(supporter, time.Now()) {
		return nil, ErrSupporterOnCooldown
	}

	request, ok, err := m.transitionRequest(id,
		bson.M{
			"status":       schema.RequestOpen,
			"supporter_id": "",
			"asker_id":     bson.M{"$ne": supporterID},
		},
		bson.M{"$set": bson.M{
			"status":       schema.RequestConnected,
			"supporter_id": supporterID,
		}},
	)
	if err != nil {
		return nil, err
	}
	if ok {
		return request, nil
	}

	current, err := m.GetRequest(id)
	if err != nil {
		return nil, err
	}

	switch {
	case current.AskerID == supporterID:
		return nil, ErrClaimOwnRequest
	case current.SupporterID != "" && current.SupporterID != supporterID && !current.Status.Terminal():
		return nil, ErrRequestAlreadyClaimed
	default:
		return nil, ErrInvalidRequestState
	}
}

// StartRequest moves a connected request into in-progress.
func (m *mongoDB) StartRequest(id string) (*schema.HelpRequest, error) {
	request, ok, err := m.transitionRequest(id,
		bson.M{"status": schema.RequestConnected},
		bson.M{"$set": bson.M{"status": schema.RequestInProgress}},
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, m.invalidTransition(id, schema.RequestInProgress)
	}

	return request, nil
}

// ConfirmRequest starts the enroute countdown and puts the supporter on
// cooldown. Allowed from connected or in-progress only.
func (m *mongoDB) ConfirmRequest(id string, estimatedMinutes int64) (*schema.HelpRequest, error) {
	if estimatedMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()

	request, ok, err := m.transitionRequest(id,
		bson.M{
			"status":       bson.M{"$in": bson.A{schema.RequestConnected, schema.RequestInProgress}},
			"supporter_id": bson.M{"$ne": ""},
		},
		bson.M{"$set": bson.M{
			"status":             schema.RequestEnroute,
			"started_at":         now.UnixMilli(),
			"estimated_duration": estimatedMinutes,
		}},
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, m.invalidTransition(id, schema.RequestEnroute)
	}

	if err := m.SetMemberCooldown(request.SupporterID, now, consts.CooldownWindow); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": id,
			"supporter":  request.SupporterID,
			"error":      err,
		}).Error("set supporter cooldown")
		return nil, err
	}

	return request, nil
}

// FulfillRequest completes a request from in-progress or enroute. Fulfilling
// an already fulfilled request is a no-op success: the manual completion and
// the countdown expiry path may race and both must win.
func (m *mongoDB) FulfillRequest(id string) (*schema.HelpRequest, error) {
	nowMs := time.Now().UnixMilli()

	request, ok, err := m.transitionRequest(id,
		bson.M{"status": bson.M{"$in": bson.A{schema.RequestInProgress, schema.RequestEnroute}}},
		bson.M{"$set": bson.M{
			"status":       schema.RequestFulfilled,
			"fulfilled_at": nowMs,
			"completed_at": nowMs,
		}},
	)
	if err != nil {
		return nil, err
	}

	if !ok {
		current, err := m.GetRequest(id)
		if err != nil {
			return nil, err
		}
		if current.Status == schema.RequestFulfilled {
			return current, nil
		}
		return nil, m.invalidTransition(id, schema.RequestFulfilled)
	}

	if request.SupporterID != "" {
		if err := m.IncrementMemberConnections(request.SupporterID); err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"request_id": id,
				"supporter":  request.SupporterID,
				"error":      err,
			}).Error("credit supporter connection")
		}
	}

	return request, nil
}

// CancelRequest cancels a request that has not reached enroute or a terminal
// state, and releases the supporter binding.
func (m *mongoDB) CancelRequest(id string) (*schema.HelpRequest, error) {
	request, ok, err := m.transitionRequest(id,
		bson.M{"status": bson.M{"$in": bson.A{
			schema.RequestOpen,
			schema.RequestConnected,
			schema.RequestInProgress,
		}}},
		bson.M{"$set": bson.M{
			"status":       schema.RequestCancelled,
			"supporter_id": "",
		}},
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, m.invalidTransition(id, schema.RequestCancelled)
	}

	return request, nil
}

// ExpireEnrouteRequests fulfills every enroute request whose countdown has
// run out and returns the completed requests. Each expiry goes through the
// idempotent FulfillRequest, so a concurrent manual completion is harmless.
func (m *mongoDB) ExpireEnrouteRequests(now time.Time) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"status":     schema.RequestEnroute,
		"started_at": bson.M{"$gt": 0},
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{
					"$started_at",
					bson.M{"$multiply": bson.A{"$estimated_duration", 60000}},
				}},
				now.UnixMilli(),
			},
		},
	}

	cursor, err := m.requestCollection().Find(ctx, query)
	if err != nil {
		return nil, err
	}

	var due []schema.HelpRequest
	if err := cursor.All(ctx, &due); err != nil {
		return nil, err
	}

	expired := make([]schema.HelpRequest, 0, len(due))
	for _, request := range due {
		fulfilled, err := m.FulfillRequest(request.ID)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":     mongoLogPrefix,
				"request_id": request.ID,
				"error":      err,
			}).Error("expire enroute request")
			continue
		}
		expired = append(expired, *fulfilled)
	}

	return expired, nil
}

// WatchActiveRequests streams every change to a non-terminal request until
// the context is cancelled. Consumers treat this as the authoritative
// freshness source for request lists.
func (m *mongoDB) WatchActiveRequests(ctx context.Context) (<-chan schema.HelpRequest, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"fullDocument.status": bson.M{"$in": schema.ActiveRequestStatuses},
		}}},
	}

	stream, err := m.requestCollection().Watch(ctx, pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	updates := make(chan schema.HelpRequest)

	go func() {
		defer close(updates)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var event struct {
				FullDocument schema.HelpRequest `bson:"fullDocument"`
			}
			if err := stream.Decode(&event); err != nil {
				log.WithFields(log.Fields{
					"prefix": mongoLogPrefix,
					"error":  err,
				}).Error("decode request change event")
				continue
			}

			select {
			case updates <- event.FullDocument:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
