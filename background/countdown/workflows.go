package countdown

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/kizuna-community/kizuna-api/background"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// RequestCountdownWorkflow sleeps until a confirmed request's delivery
// window elapses and then finalizes it. After the timer fires the remaining
// time is re-checked, so a countdown that was restarted with a new estimate
// simply sleeps again instead of firing early.
func (w *CountdownWorker) RequestCountdownWorkflow(ctx workflow.Context, requestID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	var remaining time.Duration
	err := workflow.ExecuteActivity(ctx, w.RequestRemainingActivity, requestID).Get(ctx, &remaining)
	if err != nil {
		if err.Error() == background.ErrStopRenewWorkflow.Error() {
			logger.Info("Request countdown is no longer needed", zap.String("requestID", requestID))
			return nil
		}
		logger.Error("Fail to check remaining delivery time", zap.Error(err), zap.String("requestID", requestID))
		sentry.CaptureException(err)
		return err
	}

	if remaining > 0 {
		logger.Info("Waiting for delivery window to elapse",
			zap.String("requestID", requestID),
			zap.Duration("remaining", remaining))

		if err := workflow.NewTimer(ctx, remaining).Get(ctx, nil); err != nil {
			return err
		}

		// the estimate may have been refreshed while we slept
		return workflow.NewContinueAsNewError(ctx, w.RequestCountdownWorkflow, requestID)
	}

	logger.Info("Delivery window elapsed, finalizing request", zap.String("requestID", requestID))
	if err := workflow.ExecuteActivity(ctx, w.FinalizeRequestActivity, requestID).Get(ctx, nil); err != nil {
		logger.Error("Fail to finalize request", zap.Error(err), zap.String("requestID", requestID))
		sentry.CaptureException(err)
		return err
	}

	return nil
}

// CooldownNudgeWorkflow sleeps through a supporter's cooldown window and
// notifies them when they can claim requests again.
func (w *CountdownWorker) CooldownNudgeWorkflow(ctx workflow.Context, memberID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	var remaining time.Duration
	err := workflow.ExecuteActivity(ctx, w.CooldownRemainingActivity, memberID).Get(ctx, &remaining)
	if err != nil {
		logger.Error("Fail to check remaining cooldown", zap.Error(err), zap.String("memberID", memberID))
		sentry.CaptureException(err)
		return err
	}

	if remaining > 0 {
		if err := workflow.NewTimer(ctx, remaining).Get(ctx, nil); err != nil {
			return err
		}

		// another confirmation may have extended the cooldown meanwhile
		return workflow.NewContinueAsNewError(ctx, w.CooldownNudgeWorkflow, memberID)
	}

	if err := workflow.ExecuteActivity(ctx, w.NotifyCooldownEndedActivity, memberID).Get(ctx, nil); err != nil {
		logger.Error("Fail to notify cooldown ended", zap.Error(err), zap.String("memberID", memberID))
		sentry.CaptureException(err)
		return err
	}

	return nil
}
