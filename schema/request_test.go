package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to RequestStatus }{
		{RequestOpen, RequestConnected},
		{RequestOpen, RequestCancelled},
		{RequestConnected, RequestInProgress},
		{RequestConnected, RequestEnroute},
		{RequestConnected, RequestCancelled},
		{RequestInProgress, RequestEnroute},
		{RequestInProgress, RequestFulfilled},
		{RequestInProgress, RequestCancelled},
		{RequestEnroute, RequestFulfilled},
	}

	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to RequestStatus }{
		{RequestOpen, RequestInProgress},
		{RequestOpen, RequestEnroute},
		{RequestOpen, RequestFulfilled},
		{RequestConnected, RequestFulfilled},
		// enroute is past the point of no return for cancellation
		{RequestEnroute, RequestCancelled},
		{RequestEnroute, RequestInProgress},
	}

	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}

	// terminal statuses allow nothing
	for _, terminal := range []RequestStatus{RequestFulfilled, RequestCancelled} {
		assert.True(t, terminal.Terminal())
		for _, to := range []RequestStatus{RequestOpen, RequestConnected, RequestInProgress, RequestEnroute, RequestFulfilled, RequestCancelled} {
			assert.False(t, CanTransition(terminal, to), "%s -> %s should be denied", terminal, to)
		}
	}
}
