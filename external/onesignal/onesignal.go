package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix   = "onesignal"
	apiEndpoint = "https://onesignal.com/api/v1"
)

const errAllPlayersNotSubscribed = "All included players are not subscribed"

// ErrorResponse is the error body returned by onesignal for rejected requests.
type ErrorResponse struct {
	Errors []string `json:"errors"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("onesignal: %v", e.Errors)
}

// IsErrAllPlayersNotSubscribed reports whether an error is the onesignal
// rejection for recipients without any subscribed device. Workers treat it
// as a warning rather than a failure.
func IsErrAllPlayersNotSubscribed(err error) bool {
	resp, ok := err.(*ErrorResponse)
	if !ok {
		return false
	}
	for _, e := range resp.Errors {
		if e == errAllPlayersNotSubscribed {
			return true
		}
	}
	return false
}

// NotificationRequest is a onesignal notification creation request.
type NotificationRequest struct {
	AppID            string                 `json:"app_id"`
	TemplateID       string                 `json:"template_id,omitempty"`
	Filters          []map[string]string    `json:"filters,omitempty"`
	Data             map[string]interface{} `json:"data,omitempty"`
	Headings         map[string]string      `json:"headings,omitempty"`
	Contents         map[string]string      `json:"contents,omitempty"`
	LocalChannelID   string                 `json:"android_channel_id,omitempty"`
	IncludedSegments []string               `json:"included_segments,omitempty"`
}

// OneSignalClient is a client for the onesignal notification service.
type OneSignalClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		endpoint:   apiEndpoint,
		apiKey:     viper.GetString("onesignal.key"),
		httpClient: client,
	}
}

// SendNotification submits a notification request. Delivery itself is
// asynchronous on the onesignal side; an accepted request only means it
// was queued.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/notifications", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"status": resp.StatusCode,
		}).Error("send notification")

		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && len(errResp.Errors) > 0 {
			return &errResp
		}
		return fmt.Errorf("onesignal responded with status %d", resp.StatusCode)
	}

	// a 200 can still carry per-recipient errors
	var result struct {
		ID     string   `json:"id"`
		Errors []string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && len(result.Errors) > 0 {
		return &ErrorResponse{Errors: result.Errors}
	}

	return nil
}
