package testx

import (
	"context"
	"testing"
)

// Context returns a context bound to the test deadline.
func Context(t *testing.T) (context.Context, context.CancelFunc) {
	if deadline, ok := t.Deadline(); ok {
		return context.WithDeadline(context.Background(), deadline)
	}

	return context.WithCancel(context.Background())
}
