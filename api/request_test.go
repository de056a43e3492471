package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/mocks"
	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/store"
)

func testRouter(s *Server, memberID string, register func(r *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", memberID)
	})
	router.Use(s.recognizeMemberMiddleware())
	register(router.Group("/"))
	return router
}

func TestClaimRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-supporter").Return(&schema.Member{
		ID:   "member-supporter",
		Name: "Supporter",
	}, nil).Times(1)

	m.EXPECT().ClaimRequest("request-1", "member-supporter").Return(&schema.HelpRequest{
		ID:          "request-1",
		AskerID:     "member-asker",
		SupporterID: "member-supporter",
		Status:      schema.RequestConnected,
		Title:       "groceries run",
	}, nil).Times(1)

	m.EXPECT().InsertActivity(gomock.Any()).Return(nil).Times(1)

	router := testRouter(&s, "member-supporter", func(r *gin.RouterGroup) {
		r.PATCH("/requests/:requestID/claim", s.claimRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/request-1/claim", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.HelpRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, schema.RequestConnected, resp.Result.Status)
	assert.Equal(t, "member-supporter", resp.Result.SupporterID)
}

func TestClaimRequestAlreadyClaimed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-rival").Return(&schema.Member{
		ID: "member-rival",
	}, nil).Times(1)

	m.EXPECT().ClaimRequest("request-1", "member-rival").Return(nil, store.ErrRequestAlreadyClaimed).Times(1)

	router := testRouter(&s, "member-rival", func(r *gin.RouterGroup) {
		r.PATCH("/requests/:requestID/claim", s.claimRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/request-1/claim", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1211), resp.Code)
}

func TestClaimRequestOnCooldown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-cooling").Return(&schema.Member{
		ID: "member-cooling",
	}, nil).Times(1)

	m.EXPECT().ClaimRequest("request-1", "member-cooling").Return(nil, store.ErrSupporterOnCooldown).Times(1)

	router := testRouter(&s, "member-cooling", func(r *gin.RouterGroup) {
		r.PATCH("/requests/:requestID/claim", s.claimRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/request-1/claim", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1212), resp.Code)
}

func TestConfirmRequestInvalidDuration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-supporter").Return(&schema.Member{
		ID: "member-supporter",
	}, nil).Times(1)

	m.EXPECT().ConfirmRequest("request-1", int64(0)).Return(nil, store.ErrInvalidDuration).Times(1)

	router := testRouter(&s, "member-supporter", func(r *gin.RouterGroup) {
		r.PATCH("/requests/:requestID/confirm", s.confirmRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/request-1/confirm",
		strings.NewReader(`{"estimated_duration": 0}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(1214), resp.Code)
}

func TestConfirmRequestDefaultDuration(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-supporter").Return(&schema.Member{
		ID: "member-supporter",
	}, nil).Times(1)

	m.EXPECT().ConfirmRequest("request-1", int64(consts.DefaultEstimatedDuration)).Return(&schema.HelpRequest{
		ID:                "request-1",
		SupporterID:       "member-supporter",
		Status:            schema.RequestEnroute,
		EstimatedDuration: consts.DefaultEstimatedDuration,
	}, nil).Times(1)

	router := testRouter(&s, "member-supporter", func(r *gin.RouterGroup) {
		r.PATCH("/requests/:requestID/confirm", s.confirmRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/request-1/confirm",
		strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.HelpRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, int64(consts.DefaultEstimatedDuration), resp.Result.EstimatedDuration)
}

func TestGetRequestNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetMember("member-supporter").Return(&schema.Member{
		ID: "member-supporter",
	}, nil).Times(1)

	m.EXPECT().GetRequest("no-such-request").Return(nil, store.ErrRequestNotFound).Times(1)

	router := testRouter(&s, "member-supporter", func(r *gin.RouterGroup) {
		r.GET("/requests/:requestID", s.getRequest)
	})

	req := httptest.NewRequest("GET", "/requests/no-such-request", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
