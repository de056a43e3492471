package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/kizuna-community/kizuna-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/kizuna-community/kizuna-api/background/countdown`
const TaskListName = "kizuna-countdown-tasks"

// TriggerRequestCountdown is a helper function to send a signal that starts
// (or refreshes) the delivery countdown workflow for a request.
func TriggerRequestCountdown(client *cadence.CadenceClient, c context.Context, requestID string) error {
	_, err := client.SignalWithStartWorkflow(c,
		fmt.Sprintf("request-countdown-%s", requestID), "requestConfirmedSignal", nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           fmt.Sprintf("request-countdown-%s", requestID),
			TaskList:                     TaskListName,
			ExecutionStartToCloseTimeout: 24 * time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, "RequestCountdownWorkflow", requestID)
	return err
}

// TriggerCooldownNudge is a helper function to send a signal that schedules
// a cooldown-ended notification for each supporter.
func TriggerCooldownNudge(client *cadence.CadenceClient, c context.Context, memberIDs []string) error {
	for _, id := range memberIDs {
		if _, err := client.SignalWithStartWorkflow(c,
			fmt.Sprintf("member-cooldown-%s", id), "cooldownStartedSignal", nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           fmt.Sprintf("member-cooldown-%s", id),
				TaskList:                     TaskListName,
				ExecutionStartToCloseTimeout: time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, "CooldownNudgeWorkflow", id); err != nil {
			return err
		}
	}
	return nil
}
