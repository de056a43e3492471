package push

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/kizuna-community/kizuna-api/schema"
)

// RequestWatcher exposes the change-stream subscription the streamer needs.
type RequestWatcher interface {
	WatchActiveRequests(ctx context.Context) (<-chan schema.HelpRequest, error)
}

// StreamRequests subscribes to the request change stream and broadcasts
// every update through the hub. It blocks until the context is cancelled
// or the stream closes.
func StreamRequests(ctx context.Context, watcher RequestWatcher, hub *Hub) error {
	updates, err := watcher.WatchActiveRequests(ctx)
	if err != nil {
		return err
	}

	log.WithField("prefix", pushLogPrefix).Info("request change stream started")

	for {
		select {
		case req, ok := <-updates:
			if !ok {
				log.WithField("prefix", pushLogPrefix).Warn("request change stream closed")
				return nil
			}
			hub.Broadcast(NewEvent("request", "updated", req.ID, req))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
