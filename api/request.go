package api

import (
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	ws "github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/push"
	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/store"
	"github.com/kizuna-community/kizuna-api/utils"
)

func currentMember(c *gin.Context) (*schema.Member, bool) {
	m := c.MustGet("member")
	member, ok := m.(*schema.Member)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return nil, false
	}
	return member, true
}

// createRequest is the API for posting a new help request
func (s *Server) createRequest(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	var params struct {
		Title        string                 `json:"title"`
		Description  string                 `json:"description"`
		CategoryID   string                 `json:"category_id"`
		Subcategory  string                 `json:"subcategory"`
		Budget       float64                `json:"budget"`
		Currency     string                 `json:"currency"`
		Urgent       bool                   `json:"urgent"`
		Deliverable  bool                   `json:"deliverable"`
		Location     schema.RequestLocation `json:"location"`
		Images       []string               `json:"images"`
		ScheduledFor *time.Time             `json:"scheduled_for"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Location.Address == "" && s.geoClient != nil &&
		(params.Location.Latitude != 0 || params.Location.Longitude != 0) {
		address, err := s.geoClient.ReverseGeocode(schema.Location{
			Latitude:  params.Location.Latitude,
			Longitude: params.Location.Longitude,
		})
		if err != nil {
			log.WithError(err).Warn("reverse geocode request location")
		} else {
			params.Location.Address = address
		}
	}

	request, err := s.mongoStore.CreateRequest(member.ID, store.RequestParams{
		Title:        params.Title,
		Description:  params.Description,
		CategoryID:   params.CategoryID,
		Subcategory:  params.Subcategory,
		Budget:       params.Budget,
		Currency:     params.Currency,
		Urgent:       params.Urgent,
		Deliverable:  params.Deliverable,
		Location:     params.Location,
		Images:       params.Images,
		ScheduledFor: params.ScheduledFor,
	})
	if err != nil {
		if err == store.ErrMissingRequestFields {
			abortWithEncoding(c, http.StatusBadRequest, errorMissingFields, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.recordActivity(schema.Activity{
		Type:      schema.ActivityRequestCreated,
		MemberID:  member.ID,
		RequestID: request.ID,
		Message:   request.Title,
	})

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "broadcast_request",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue broadcast task")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// listRequests is the API for browsing requests. Without a status filter it
// returns every non-terminal request.
func (s *Server) listRequests(c *gin.Context) {
	status := c.Query("status")

	var requests []schema.HelpRequest
	var err error

	if status == "" {
		requests, err = s.mongoStore.ListActiveRequests(0)
	} else {
		requests, err = s.mongoStore.ListRequestsByStatus(schema.RequestStatus(status), 0)
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// getRequest is the API for fetching a single request
func (s *Server) getRequest(c *gin.Context) {
	request, err := s.mongoStore.GetRequest(c.Param("requestID"))
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// claimRequest is the API for a supporter claiming an open request
func (s *Server) claimRequest(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}
	id := c.Param("requestID")

	request, err := s.mongoStore.ClaimRequest(id, member.ID)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		case store.ErrRequestAlreadyClaimed:
			abortWithEncoding(c, http.StatusConflict, errorAlreadyClaimed, err)
		case store.ErrClaimOwnRequest:
			abortWithEncoding(c, http.StatusForbidden, errorClaimOwnRequest, err)
		case store.ErrSupporterOnCooldown:
			abortWithEncoding(c, http.StatusTooManyRequests, errorSupporterOnCooldown, err)
		case store.ErrInvalidRequestState:
			abortWithEncoding(c, http.StatusConflict, errorInvalidRequestState, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.recordActivity(schema.Activity{
		Type:           schema.ActivityRequestClaimed,
		MemberID:       member.ID,
		TargetMemberID: request.AskerID,
		RequestID:      request.ID,
		Message:        request.Title,
	})

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_claimed",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID},
				{Type: "string", Value: request.AskerID},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue claim notification task")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// startRequest is the API for moving a connected request into in-progress
func (s *Server) startRequest(c *gin.Context) {
	request, err := s.mongoStore.StartRequest(c.Param("requestID"))
	if err != nil {
		s.abortRequestTransition(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// confirmRequest is the API for a supporter confirming they are on the way.
// It starts the delivery countdown and the supporter's cooldown.
func (s *Server) confirmRequest(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	var params struct {
		EstimatedDuration *int64 `json:"estimated_duration"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// a supporter who gives no estimation gets the default window
	estimatedDuration := int64(consts.DefaultEstimatedDuration)
	if params.EstimatedDuration != nil {
		estimatedDuration = *params.EstimatedDuration
	}

	request, err := s.mongoStore.ConfirmRequest(c.Param("requestID"), estimatedDuration)
	if err != nil {
		if err == store.ErrInvalidDuration {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDuration, err)
			return
		}
		s.abortRequestTransition(c, err)
		return
	}

	if s.cadenceClient != nil {
		if err := utils.TriggerRequestCountdown(s.cadenceClient, c, request.ID); err != nil {
			log.WithError(err).Error("trigger request countdown workflow")
		}
		if err := utils.TriggerCooldownNudge(s.cadenceClient, c, []string{member.ID}); err != nil {
			log.WithError(err).Error("trigger cooldown nudge workflow")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// fulfillRequest is the API for completing a request
func (s *Server) fulfillRequest(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	request, err := s.mongoStore.FulfillRequest(c.Param("requestID"))
	if err != nil {
		s.abortRequestTransition(c, err)
		return
	}

	s.recordActivity(schema.Activity{
		Type:           schema.ActivityRequestFulfilled,
		MemberID:       member.ID,
		TargetMemberID: request.SupporterID,
		RequestID:      request.ID,
		Message:        request.Title,
	})

	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_fulfilled",
			Args: []tasks.Arg{
				{Type: "string", Value: request.ID},
			},
		}); err != nil {
			log.WithError(err).Error("enqueue fulfillment notification task")
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// cancelRequest is the API for cancelling a request before it is enroute
func (s *Server) cancelRequest(c *gin.Context) {
	member, ok := currentMember(c)
	if !ok {
		return
	}

	request, err := s.mongoStore.CancelRequest(c.Param("requestID"))
	if err != nil {
		s.abortRequestTransition(c, err)
		return
	}

	s.recordActivity(schema.Activity{
		Type:      schema.ActivityRequestCancelled,
		MemberID:  member.ID,
		RequestID: request.ID,
		Message:   request.Title,
	})

	c.JSON(http.StatusOK, gin.H{"result": request})
}

// subscribeRequests upgrades the connection to a websocket fed by the
// request change stream.
func (s *Server) subscribeRequests(c *gin.Context) {
	conn, err := ws.Accept(c.Writer, c.Request, &ws.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.WithError(err).Error("websocket accept")
		return
	}

	client := push.NewClient(s.pushHub, conn)
	client.Run(c.Request.Context())
}

func (s *Server) abortRequestTransition(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case store.ErrInvalidRequestState:
		abortWithEncoding(c, http.StatusConflict, errorInvalidRequestState, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func (s *Server) recordActivity(activity schema.Activity) {
	if err := s.mongoStore.InsertActivity(activity); err != nil {
		log.WithError(err).Warn("record activity")
	}
}
