package cadence

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "kizuna-worker"
	CadenceService = "cadence-frontend"
)

// CadenceClient wraps the generated cadence client with the msgpack
// converter already installed, so callers only deal with workflow triggers.
type CadenceClient struct {
	client client.Client
}

// NewWorkflowServiceClient dials the cadence frontend over tchannel and
// returns the raw workflow service client workers register against.
func NewWorkflowServiceClient(hostPort string) (workflowserviceclient.Interface, error) {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		return nil, fmt.Errorf("setup tchannel transport: %w", err)
	}

	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("start yarpc dispatcher: %w", err)
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService)), nil
}

// NewClient builds a domain-scoped client from config (cadence.conn,
// cadence.domain).
func NewClient() (*CadenceClient, error) {
	service, err := NewWorkflowServiceClient(viper.GetString("cadence.conn"))
	if err != nil {
		return nil, err
	}

	return &CadenceClient{
		client: client.NewClient(
			service,
			viper.GetString("cadence.domain"),
			&client.Options{
				MetricsScope:  tally.NoopScope,
				DataConverter: NewMessagePackConverter(),
			},
		),
	}, nil
}

func (c *CadenceClient) StartWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error) {
	return c.client.StartWorkflow(ctx, options, workflow, args...)
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflow, workflowArgs...)
}
