package consts

import "time"

const (
	// CooldownWindow is how long a supporter has to wait after confirming
	// a request before being allowed to accept another one.
	CooldownWindow = 30 * time.Minute

	// DefaultEstimatedDuration is the delivery estimation (in minutes)
	// assumed when a supporter confirms without providing one.
	DefaultEstimatedDuration = 30

	// ActivityFeedLimit caps how many entries the community feed keeps.
	ActivityFeedLimit = 50

	// BroadcastDistanceRange is the radius (in meters) used to find nearby
	// members when a new request is announced.
	BroadcastDistanceRange = 50000
)
