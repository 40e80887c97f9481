package assistant

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/events"
)

// Roster keeps a local copy of the employee directory. It patches entries
// in place when a status-changed event names someone it already holds and
// refetches the whole list when the subject is unknown.
type Roster struct {
	client     Collaborator
	tokens     *TokenCache
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu      sync.Mutex
	entries []EmployeeRecord
	loaded  bool
}

// NewRoster builds a roster and subscribes it to status-change broadcasts.
func NewRoster(client Collaborator, tokens *TokenCache, dispatcher events.Dispatcher, logger *zap.Logger) *Roster {
	r := &Roster{
		client:     client,
		tokens:     tokens,
		dispatcher: dispatcher,
		logger:     logger,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(events.EventEmployeeStatusChanged, r.onStatusChanged)
	}
	return r
}

// Refresh replaces the cached directory with a fresh fetch.
func (r *Roster) Refresh(ctx context.Context) error {
	token, err := r.tokens.Acquire(ctx, false)
	if err != nil {
		return err
	}
	list, err := r.client.SearchEmployees(ctx, token, "")
	if IsUnauthorized(err) {
		r.tokens.Invalidate()
		if token, err = r.tokens.Acquire(ctx, true); err != nil {
			return err
		}
		list, err = r.client.SearchEmployees(ctx, token, "")
	}
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.entries = list
	r.loaded = true
	r.mu.Unlock()
	return nil
}

// Entries returns a copy of the cached directory, fetching it on first use.
func (r *Roster) Entries(ctx context.Context) ([]EmployeeRecord, error) {
	r.mu.Lock()
	loaded := r.loaded
	r.mu.Unlock()

	if !loaded {
		if err := r.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EmployeeRecord, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// SetStatus flips an employee's status through the portal. The cached entry
// is updated optimistically before the call and restored to its previous
// value if the call fails.
func (r *Roster) SetStatus(ctx context.Context, email, status string) (EmployeeRecord, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return EmployeeRecord{}, err
	}

	var subject *EmployeeRecord
	for i := range entries {
		if strings.EqualFold(entries[i].Email, email) {
			subject = &entries[i]
			break
		}
	}
	if subject == nil {
		if err := r.Refresh(ctx); err != nil {
			return EmployeeRecord{}, err
		}
		entries, _ = r.Entries(ctx)
		for i := range entries {
			if strings.EqualFold(entries[i].Email, email) {
				subject = &entries[i]
				break
			}
		}
	}
	if subject == nil {
		return EmployeeRecord{}, &RemoteError{StatusCode: 404, Message: "employee not found"}
	}

	previous := subject.Status
	r.patch(subject.Email, status)

	token, err := r.tokens.Acquire(ctx, false)
	if err != nil {
		r.patch(subject.Email, previous)
		return EmployeeRecord{}, err
	}
	updated, err := r.client.SetEmployeeStatus(ctx, token, subject.ID, status)
	if IsUnauthorized(err) {
		r.tokens.Invalidate()
		token, err = r.tokens.Acquire(ctx, true)
		if err == nil {
			updated, err = r.client.SetEmployeeStatus(ctx, token, subject.ID, status)
		}
	}
	if err != nil {
		r.patch(subject.Email, previous)
		return EmployeeRecord{}, err
	}

	if updated.Status != "" {
		r.patch(subject.Email, updated.Status)
	}
	return updated, nil
}

// onStatusChanged reconciles the cache against a broadcast. Unknown
// subjects trigger a refetch so the next read sees the new entry.
func (r *Roster) onStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeStatusChangedPayload)
	if !ok {
		return nil
	}

	r.mu.Lock()
	known := false
	for i := range r.entries {
		if strings.EqualFold(r.entries[i].Email, payload.Email) {
			r.entries[i].Status = string(payload.Status)
			known = true
			break
		}
	}
	loaded := r.loaded
	r.mu.Unlock()

	if !known && loaded {
		if err := r.Refresh(ctx); err != nil && r.logger != nil {
			r.logger.Warn("roster refresh after status event failed", zap.Error(err))
		}
	}
	return nil
}

func (r *Roster) patch(email, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if strings.EqualFold(r.entries[i].Email, email) {
			r.entries[i].Status = status
			return
		}
	}
}
