package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherFansOutToAllSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventLeavesUpdated, func(_ context.Context, e Event) error {
		got = append(got, "first")
		return nil
	})
	d.Subscribe(EventLeavesUpdated, func(_ context.Context, e Event) error {
		got = append(got, "second")
		return nil
	})
	d.Subscribe(EventEnquiryResolved, func(context.Context, Event) error {
		got = append(got, "other-type")
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "e1",
		Type:      EventLeavesUpdated,
		Timestamp: time.Now(),
		Payload:   LeavesUpdatedPayload{Matched: 1, Modified: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got)
}

// Broadcast is fire-and-forget: a handler error or panic must not surface
// to the publisher and must not stop later handlers.
func TestDispatcherSwallowsHandlerFailures(t *testing.T) {
	d := NewInMemoryDispatcher()

	reached := false
	d.Subscribe(EventEmployeeStatusChanged, func(context.Context, Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventEmployeeStatusChanged, func(context.Context, Event) error {
		panic("handler panicked")
	})
	d.Subscribe(EventEmployeeStatusChanged, func(context.Context, Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventEmployeeStatusChanged})

	require.NoError(t, err)
	assert.True(t, reached, "failing handlers must not block the rest")
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventLoginRecorded}))
}
