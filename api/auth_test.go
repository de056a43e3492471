package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"

	"github.com/kizuna-community/kizuna-api/mocks"
	"github.com/kizuna-community/kizuna-api/schema"
	"github.com/kizuna-community/kizuna-api/store"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockKizunaCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: core, mongoStore: m}

	// the credential row rejects the email before any member document is
	// written
	core.EXPECT().
		CreateAccount("taken@kizuna.community", gomock.Any(), gomock.Any()).
		Return(nil, store.ErrAccountTaken).
		Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", s.accountRegister)

	body := `{"email":"taken@kizuna.community","password":"secret-pass","name":"Dup"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"code":1100`)
}

func TestRegisterRemovesAccountWhenMemberCreationFails(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockKizunaCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: core, mongoStore: m}

	core.EXPECT().
		CreateAccount("new@kizuna.community", gomock.Any(), gomock.Any()).
		Return(&schema.Account{
			AccountNumber: "account-1",
			Email:         "new@kizuna.community",
		}, nil).
		Times(1)

	m.EXPECT().
		CreateMember(gomock.Any()).
		Return(nil, assert.AnError).
		Times(1)

	core.EXPECT().DeleteAccount("account-1").Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", s.accountRegister)

	body := `{"email":"new@kizuna.community","password":"secret-pass","name":"New Member"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
}

func TestAccountDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockKizunaCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: core, mongoStore: m}

	m.EXPECT().GetMember("member-leaving").Return(&schema.Member{
		ID:    "member-leaving",
		Email: "bye@kizuna.community",
	}, nil).Times(1)

	core.EXPECT().
		GetAccountByEmail("bye@kizuna.community").
		Return(&schema.Account{
			AccountNumber: "account-1",
			Email:         "bye@kizuna.community",
			MemberID:      "member-leaving",
		}, nil).
		Times(1)

	core.EXPECT().DeleteAccount("account-1").Return(nil).Times(1)
	m.EXPECT().DeleteMember("member-leaving").Return(nil).Times(1)

	router := testRouter(&s, "member-leaving", func(r *gin.RouterGroup) {
		r.DELETE("/account", s.accountDelete)
	})

	req := httptest.NewRequest("DELETE", "/account", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAccountDeleteMissingCredential(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	core := mocks.NewMockKizunaCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: core, mongoStore: m}

	m.EXPECT().GetMember("member-ghost").Return(&schema.Member{
		ID:    "member-ghost",
		Email: "ghost@kizuna.community",
	}, nil).Times(1)

	core.EXPECT().
		GetAccountByEmail("ghost@kizuna.community").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	router := testRouter(&s, "member-ghost", func(r *gin.RouterGroup) {
		r.DELETE("/account", s.accountDelete)
	})

	req := httptest.NewRequest("DELETE", "/account", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Contains(t, w.Body.String(), `"code":1101`)
}
