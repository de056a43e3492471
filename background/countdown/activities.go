package countdown

import (
	"context"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/kizuna-community/kizuna-api/background"
	countdownEngine "github.com/kizuna-community/kizuna-api/countdown"
	"github.com/kizuna-community/kizuna-api/external/onesignal"
	"github.com/kizuna-community/kizuna-api/schema"
)

// now is alias of `time.Now`. `time.Now` is widely used for checking countdown
// deadlines and is hard to mock up. After adding this alias, we can easily mock
// the time.Now function. Please make sure not to run test cases in parallel.
var now = time.Now

// RequestRemainingActivity returns how long is left on a request's delivery
// countdown. It returns ErrStopRenewWorkflow when the request no longer has
// a running countdown (cancelled, fulfilled, or never confirmed).
func (w *CountdownWorker) RequestRemainingActivity(ctx context.Context, requestID string) (time.Duration, error) {
	logger := activity.GetLogger(ctx)

	request, err := w.mongo.GetRequest(requestID)
	if err != nil {
		return 0, err
	}

	if request.Status != schema.RequestEnroute {
		logger.Info("Request has no running countdown",
			zap.String("requestID", requestID),
			zap.String("status", string(request.Status)))
		return 0, background.ErrStopRenewWorkflow
	}

	remaining, _ := countdownEngine.RemainingDelivery(request, now())
	return remaining, nil
}

// FinalizeRequestActivity fulfills a request whose delivery window has
// elapsed and notifies both participants. Fulfillment is idempotent, so a
// manual completion racing the countdown is harmless.
func (w *CountdownWorker) FinalizeRequestActivity(ctx context.Context, requestID string) error {
	logger := activity.GetLogger(ctx)

	request, err := w.mongo.FulfillRequest(requestID)
	if err != nil {
		return err
	}

	logger.Info("Request finalized by countdown", zap.String("requestID", requestID))

	headings, contents, err := background.RequestMessage("request_fulfilled", map[string]interface{}{
		"Title": request.Title,
	})
	if err != nil {
		logger.Error("can not build fulfillment message", zap.Error(err))
		return err
	}

	receivers := []string{request.AskerID}
	if request.SupporterID != "" {
		receivers = append(receivers, request.SupporterID)
	}

	for _, memberID := range receivers {
		if err := w.Background.NotifyMemberByText(memberID,
			headings, contents,
			map[string]interface{}{
				"notification_type": "NOTIFY_REQUEST_FULFILLED",
				"request_id":        requestID,
			},
		); err != nil {
			if !onesignal.IsErrAllPlayersNotSubscribed(err) {
				return err
			}
			logger.Warn("member is not subscribed in onesignal", zap.String("memberID", memberID))
		}
	}

	return nil
}

// CooldownRemainingActivity returns how long is left on a supporter's
// claim cooldown.
func (w *CountdownWorker) CooldownRemainingActivity(ctx context.Context, memberID string) (time.Duration, error) {
	member, err := w.mongo.GetMember(memberID)
	if err != nil {
		return 0, err
	}

	return countdownEngine.RemainingCooldown(member, now()), nil
}

// NotifyCooldownEndedActivity tells a supporter that their cooldown window
// is over and they may claim requests again.
func (w *CountdownWorker) NotifyCooldownEndedActivity(ctx context.Context, memberID string) error {
	logger := activity.GetLogger(ctx)

	headings, contents, err := background.RequestMessage("cooldown_ended", nil)
	if err != nil {
		logger.Error("can not build cooldown message", zap.Error(err))
		return err
	}

	if err := w.Background.NotifyMemberByText(memberID,
		headings, contents,
		map[string]interface{}{
			"notification_type": "NOTIFY_COOLDOWN_ENDED",
		},
	); err != nil {
		if !onesignal.IsErrAllPlayersNotSubscribed(err) {
			return err
		}
		logger.Warn("member is not subscribed in onesignal", zap.String("memberID", memberID))
	}

	return nil
}
