package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kizuna-community/kizuna-api/external/onesignal"
	"github.com/kizuna-community/kizuna-api/store"
)

// BackgroundManager is a struct for kizuna background manager
type BackgroundManager struct {
	Background

	store store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		Background: Background{Onesignal: o},
		store:      mongoStore,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("kizuna-worker", 5)
	return m.worker.Launch()
}
