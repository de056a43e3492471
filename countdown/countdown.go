// Package countdown derives the ephemeral timer values shown next to
// requests and members from the absolute timestamps stored on them. All
// functions are pure; callers re-invoke them on every tick instead of
// persisting derived state.
package countdown

import (
	"time"

	"github.com/kizuna-community/kizuna-api/schema"
)

// hasTimer reports whether a request carries a well-formed countdown.
// Absent or nonsensical timer fields count as "no timer active".
func hasTimer(request *schema.HelpRequest) bool {
	return request != nil &&
		request.Status == schema.RequestEnroute &&
		request.StartedAt > 0 &&
		request.EstimatedDuration > 0
}

// Deadline returns the absolute time an enroute request is due, or the zero
// time when no countdown is active.
func Deadline(request *schema.HelpRequest) time.Time {
	if !hasTimer(request) {
		return time.Time{}
	}
	return time.UnixMilli(request.StartedAt).
		Add(time.Duration(request.EstimatedDuration) * time.Minute)
}

// RemainingDelivery returns how much of the enroute countdown is left and
// the elapsed progress in percent, clamped to [0, 100]. Both are zero when
// the request carries no active countdown.
func RemainingDelivery(request *schema.HelpRequest, now time.Time) (time.Duration, float64) {
	if !hasTimer(request) {
		return 0, 0
	}

	total := time.Duration(request.EstimatedDuration) * time.Minute
	elapsed := now.Sub(time.UnixMilli(request.StartedAt))

	remaining := total - elapsed
	if remaining < 0 {
		remaining = 0
	}

	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return remaining, progress
}

// RemainingCooldown returns how long a member has to wait before accepting
// another request. It is exactly zero the instant the expiry is reached and
// zero for members not on cooldown.
func RemainingCooldown(member *schema.Member, now time.Time) time.Duration {
	if member == nil || member.CooldownExpiry <= 0 {
		return 0
	}

	remaining := time.UnixMilli(member.CooldownExpiry).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// OnCooldown reports whether a member is still inside the cooldown window.
func OnCooldown(member *schema.Member, now time.Time) bool {
	return RemainingCooldown(member, now) > 0
}

// IsExpired reports whether an enroute request has run out its countdown
// and is due for automatic fulfillment.
func IsExpired(request *schema.HelpRequest, now time.Time) bool {
	if !hasTimer(request) {
		return false
	}
	remaining, _ := RemainingDelivery(request, now)
	return remaining == 0
}
