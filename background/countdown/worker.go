package countdown

import (
	"net/http"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/kizuna-community/kizuna-api/background"
	cadenceClient "github.com/kizuna-community/kizuna-api/external/cadence"
	"github.com/kizuna-community/kizuna-api/external/onesignal"
	"github.com/kizuna-community/kizuna-api/store"
)

const TaskListName = "kizuna-countdown-tasks"

// CountdownWorker runs the per-request delivery countdown and the supporter
// cooldown nudge workflows.
type CountdownWorker struct {
	background.Background
	domain string
	mongo  store.MongoStore
}

func NewCountdownWorker(domain string, mongo store.MongoStore) *CountdownWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Onesignal: o}
	return &CountdownWorker{
		Background: b,
		domain:     domain,
		mongo:      mongo,
	}
}

func (w *CountdownWorker) Register() {
	workflow.RegisterWithOptions(w.RequestCountdownWorkflow, workflow.RegisterOptions{Name: "RequestCountdownWorkflow"})
	workflow.RegisterWithOptions(w.CooldownNudgeWorkflow, workflow.RegisterOptions{Name: "CooldownNudgeWorkflow"})

	activity.RegisterWithOptions(w.RequestRemainingActivity, activity.RegisterOptions{Name: "RequestRemainingActivity"})
	activity.RegisterWithOptions(w.FinalizeRequestActivity, activity.RegisterOptions{Name: "FinalizeRequestActivity"})
	activity.RegisterWithOptions(w.CooldownRemainingActivity, activity.RegisterOptions{Name: "CooldownRemainingActivity"})
	activity.RegisterWithOptions(w.NotifyCooldownEndedActivity, activity.RegisterOptions{Name: "NotifyCooldownEndedActivity"})
}

func (w *CountdownWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// the converter must match the trigger side or arguments will not decode
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadenceClient.NewMessagePackConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
