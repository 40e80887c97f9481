package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
)

func newTestRoster(fake *fakeCollaborator, dispatcher events.Dispatcher) *Roster {
	tokens := NewTokenCache(fake, &MemoryTokenStore{}, "admin@abcit.com", "admin123")
	return NewRoster(fake, tokens, dispatcher, zap.NewNop())
}

func directory() []EmployeeRecord {
	return []EmployeeRecord{
		{ID: "id-1", EmpID: "EMP-1", Name: "Alice", Email: "alice@example.com", Status: "Active"},
		{ID: "id-2", EmpID: "EMP-2", Name: "Bob", Email: "bob@example.com", Status: "Active"},
	}
}

func TestRosterFetchesOnFirstRead(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, term string) ([]EmployeeRecord, error) {
			assert.Empty(t, term)
			return directory(), nil
		},
	}
	roster := newTestRoster(fake, events.NewInMemoryDispatcher())

	entries, err := roster.Entries(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = roster.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fake.searchCalls, "second read must hit the cache")
}

func TestRosterPatchesOnStatusEvent(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, _ string) ([]EmployeeRecord, error) { return directory(), nil },
	}
	dispatcher := events.NewInMemoryDispatcher()
	roster := newTestRoster(fake, dispatcher)

	_, err := roster.Entries(context.Background())
	require.NoError(t, err)

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeStatusChanged,
		Timestamp: time.Now(),
		Payload:   events.EmployeeStatusChangedPayload{Email: "bob@example.com", Status: domain.EmployeeStatusInactive},
	}))

	entries, err := roster.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Inactive", entries[1].Status)
	assert.Equal(t, 1, fake.searchCalls, "known subject must patch in place, not refetch")
}

func TestRosterRefetchesOnUnknownSubject(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, _ string) ([]EmployeeRecord, error) { return directory(), nil },
	}
	dispatcher := events.NewInMemoryDispatcher()
	roster := newTestRoster(fake, dispatcher)

	_, err := roster.Entries(context.Background())
	require.NoError(t, err)

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventEmployeeStatusChanged,
		Timestamp: time.Now(),
		Payload:   events.EmployeeStatusChangedPayload{Email: "carol@example.com", Status: domain.EmployeeStatusActive},
	}))

	assert.Equal(t, 2, fake.searchCalls, "unknown subject must trigger a refetch")
}

func TestRosterSetStatusUpdatesCache(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, _ string) ([]EmployeeRecord, error) { return directory(), nil },
		setStatusFn: func(_, id, status string) (EmployeeRecord, error) {
			assert.Equal(t, "id-1", id)
			return EmployeeRecord{ID: id, Email: "alice@example.com", Status: status}, nil
		},
	}
	roster := newTestRoster(fake, events.NewInMemoryDispatcher())

	updated, err := roster.SetStatus(context.Background(), "alice@example.com", "Inactive")
	require.NoError(t, err)
	assert.Equal(t, "Inactive", updated.Status)

	entries, err := roster.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Inactive", entries[0].Status)
}

// A failed update restores the entry to the exact status it held before the
// optimistic write.
func TestRosterSetStatusRollsBackOnFailure(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, _ string) ([]EmployeeRecord, error) { return directory(), nil },
		setStatusFn: func(_, _, _ string) (EmployeeRecord, error) {
			return EmployeeRecord{}, &RemoteError{StatusCode: 500, Message: "update failed"}
		},
	}
	roster := newTestRoster(fake, events.NewInMemoryDispatcher())

	_, err := roster.SetStatus(context.Background(), "alice@example.com", "Inactive")
	require.Error(t, err)

	entries, readErr := roster.Entries(context.Background())
	require.NoError(t, readErr)
	assert.Equal(t, "Active", entries[0].Status, "failed update must roll the cache back")
}

func TestRosterSetStatusUnknownEmail(t *testing.T) {
	fake := &fakeCollaborator{
		searchFn: func(_, _ string) ([]EmployeeRecord, error) { return directory(), nil },
	}
	roster := newTestRoster(fake, events.NewInMemoryDispatcher())

	_, err := roster.SetStatus(context.Background(), "nobody@example.com", "Inactive")
	require.Error(t, err)
	assert.Zero(t, fake.setStatusCalls)
	assert.Equal(t, 2, fake.searchCalls, "unknown email triggers one refetch before giving up")
}
