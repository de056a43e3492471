package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RichardKnop/machinery/v1"

	"github.com/kizuna-community/kizuna-api/external/cadence"
	"github.com/kizuna-community/kizuna-api/external/geoinfo"
	"github.com/kizuna-community/kizuna-api/external/onesignal"
	"github.com/kizuna-community/kizuna-api/logmodule"
	"github.com/kizuna-community/kizuna-api/push"
	"github.com/kizuna-community/kizuna-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.KizunaCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	oneSignalClient *onesignal.OneSignalClient
	cadenceClient   *cadence.CadenceClient
	geoClient       geoinfo.GeoInfo

	// http client for calling external services
	httpClient *http.Client

	// job pool enqueuer
	background *machinery.Server

	// websocket fan-out of request changes
	pushHub *push.Hub
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtKey *rsa.PrivateKey,
	backgroundEnqueuer *machinery.Server,
	cadenceClient *cadence.CadenceClient,
	geoClient geoinfo.GeoInfo) *Server {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
	}

	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &Server{
		store:           store.NewKizunaStore(ormDB),
		mongoStore:      mongoStore,
		jwtPrivateKey:   jwtKey,
		httpClient:      httpClient,
		oneSignalClient: onesignal.NewClient(httpClient),
		cadenceClient:   cadenceClient,
		geoClient:       geoClient,
		background:      backgroundEnqueuer,
		pushHub:         push.NewHub(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	streamCtx, cancelStream := context.WithCancel(context.Background())
	defer cancelStream()

	go func() {
		if err := push.StreamRequests(streamCtx, s.mongoStore, s.pushHub); err != nil && err != context.Canceled {
			log.WithError(err).Error("request change stream stopped")
		}
	}()

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.accountRegister)
		authRoute.POST("/login", s.accountLogin)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeMemberMiddleware())

	accountRoute := apiRoute.Group("/account")
	{
		accountRoute.DELETE("", s.accountDelete)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/ws", s.subscribeRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID/claim", s.claimRequest)
		requestRoute.PATCH("/:requestID/start", s.startRequest)
		requestRoute.PATCH("/:requestID/confirm", s.confirmRequest)
		requestRoute.PATCH("/:requestID/fulfill", s.fulfillRequest)
		requestRoute.PATCH("/:requestID/cancel", s.cancelRequest)
	}

	memberRoute := apiRoute.Group("/members")
	{
		// "me" resolves to the authenticated member in the handlers
		memberRoute.GET("/:memberID", s.memberProfile)
		memberRoute.PATCH("/:memberID", s.memberUpdateProfile)
		memberRoute.PUT("/:memberID/location", s.memberUpdateLocation)
		memberRoute.GET("/:memberID/cooldown", s.memberCooldown)
		memberRoute.GET("/:memberID/badges", s.memberBadges)
		memberRoute.GET("/:memberID/activities", s.memberActivities)
		memberRoute.GET("/:memberID/requests", s.memberRequests)
		memberRoute.GET("/:memberID/ratings", s.memberRatings)
	}

	ratingRoute := apiRoute.Group("/ratings")
	{
		ratingRoute.POST("", s.submitRating)
	}

	badgeRoute := apiRoute.Group("/badges")
	{
		badgeRoute.GET("", s.listBadges)
		badgeRoute.GET("/progress", s.badgeProgress)
		badgeRoute.GET("/:badgeID", s.getBadge)
	}

	categoryRoute := apiRoute.Group("/categories")
	{
		categoryRoute.GET("", s.listCategories)
	}

	activityRoute := apiRoute.Group("/activities")
	{
		activityRoute.GET("", s.listActivities)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/badges", s.createBadge)
		secretRoute.POST("/categories", s.createCategory)
		secretRoute.POST("/expire-requests", s.adminExpireRequests)
		secretRoute.GET("/members", s.adminListMembers)
		secretRoute.POST("/members/:memberID/verify", s.adminVerifyMember)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/ws-clients", s.metricPushClients)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "Kizuna 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func (s *Server) metricPushClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected_clients": s.pushHub.ClientCount(),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
