package background

import (
	"errors"

	"github.com/kizuna-community/kizuna-api/external/onesignal"
)

// ErrStopRenewWorkflow tells a self-renewing workflow to end instead of
// continuing as new.
var ErrStopRenewWorkflow = errors.New("stop renewing workflow")

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	Onesignal *onesignal.OneSignalClient
}
