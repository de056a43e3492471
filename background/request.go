package background

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kizuna-community/kizuna-api/consts"
	"github.com/kizuna-community/kizuna-api/schema"
)

const (
	BROADCAST_NEW_REQUEST    = "6f1c9a4e-58db-4c41-9a77-2f30c8f0be21"
	NOTIFY_REQUEST_CLAIMED   = "b2c417d8-90aa-45f3-bd0c-64c88a9e5a0d"
	NOTIFY_REQUEST_FULFILLED = "13a6e2d7-7c55-4b08-8f92-d41e0b6c7a39"
	NOTIFY_COOLDOWN_ENDED    = "8d0f92b4-3e16-4d6a-a2c5-9b87f1e04c52"
)

// BroadcastNewRequest is a background job to notify nearby members when a
// new help request is posted.
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	memberIDs, err := m.store.NearbyMemberIDs(consts.BroadcastDistanceRange, schema.Location{
		Latitude:  request.Location.Latitude,
		Longitude: request.Location.Longitude,
	})
	if err != nil {
		return err
	}

	// the asker does not need a push for their own request
	receivers := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		if id != request.AskerID {
			receivers = append(receivers, id)
		}
	}

	if len(receivers) == 0 {
		return nil
	}

	return m.NotifyMembersByTemplate(receivers, BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
	})
}

// NotifyRequestClaimed is a background job to tell an asker that a supporter
// has claimed their request.
func (m *BackgroundManager) NotifyRequestClaimed(requestID string, askerID string) error {
	return m.NotifyMembersByTemplate([]string{askerID}, NOTIFY_REQUEST_CLAIMED, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_CLAIMED",
		"request_id":        requestID,
	})
}

// NotifyRequestFulfilled is a background job to tell both participants that
// a request reached the fulfilled state.
func (m *BackgroundManager) NotifyRequestFulfilled(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	receivers := []string{request.AskerID}
	if request.SupporterID != "" {
		receivers = append(receivers, request.SupporterID)
	}

	return m.NotifyMembersByTemplate(receivers, NOTIFY_REQUEST_FULFILLED, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_FULFILLED",
		"request_id":        requestID,
	})
}

// ExpireEnrouteRequests is a background job that sweeps enroute requests
// whose delivery window has elapsed and finalizes them. It is the backstop
// for the per-request countdown workflow: both paths converge on the same
// idempotent fulfillment.
func (m *BackgroundManager) ExpireEnrouteRequests() error {
	expired, err := m.store.ExpireEnrouteRequests(time.Now())
	if err != nil {
		return err
	}

	for _, request := range expired {
		log.WithFields(log.Fields{
			"prefix":     "background",
			"request_id": request.ID,
		}).Info("auto-fulfilled expired request")

		if err := m.NotifyRequestFulfilled(request.ID); err != nil {
			log.WithField("prefix", "background").WithError(err).Warn("notify fulfilled request")
		}
	}

	return nil
}
