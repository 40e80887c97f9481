package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
)

// Executor carries out one intent against the portal, using the token cache
// for credentials and a uniform retry-once-after-reauth policy on 401.
type Executor struct {
	client     Collaborator
	tokens     *TokenCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewExecutor builds the executor.
func NewExecutor(client Collaborator, tokens *TokenCache, dispatcher events.Dispatcher, logger *zap.Logger) *Executor {
	return &Executor{client: client, tokens: tokens, dispatcher: dispatcher, logger: logger}
}

// Execute runs the intent and returns the single terminal message for the
// transcript. Errors never escape: transport failures and panics are
// converted to a generic message.
func (e *Executor) Execute(ctx context.Context, intent Intent) (message string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("executor panic", zap.Any("panic", r))
			message = "Request failed."
		}
	}()

	switch v := intent.(type) {
	case BulkApproveLeaves:
		return e.approveLeaves(ctx, "")
	case ApproveLeavesFor:
		return e.approveLeaves(ctx, v.Email)
	case SetEmployeeStatus:
		return e.setEmployeeStatus(ctx, v.Email, v.Status)
	case Unrecognized:
		return HelpText
	default:
		return HelpText
	}
}

// authorizedCall issues the call with the cached credential, and on a 401
// invalidates the cache, forces a fresh acquisition and retries exactly
// once. A second 401 or an acquisition failure is terminal; the retry's
// error is the one reported. A failed initial acquisition lets the call
// proceed unauthenticated so the server decides.
func (e *Executor) authorizedCall(ctx context.Context, call func(token string) error) error {
	token, err := e.tokens.Acquire(ctx, false)
	if err != nil {
		token = ""
	}

	callErr := call(token)
	if !IsUnauthorized(callErr) {
		return callErr
	}

	e.tokens.Invalidate()
	token, err = e.tokens.Acquire(ctx, true)
	if err != nil {
		return err
	}
	return call(token)
}

func (e *Executor) approveLeaves(ctx context.Context, email string) string {
	var result ApproveLeavesResult
	err := e.authorizedCall(ctx, func(token string) error {
		var callErr error
		result, callErr = e.client.ApproveLeaves(ctx, token, email)
		return callErr
	})
	if err != nil {
		return failureMessage(err)
	}

	e.broadcast(ctx, events.EventLeavesUpdated, events.LeavesUpdatedPayload{
		Email:    email,
		Matched:  result.Matched,
		Modified: result.Modified,
	})

	message := result.Message
	if message == "" {
		message = "Auto-approve completed"
	}
	return fmt.Sprintf("✅ %s. Matched: %d, Modified: %d", message, result.Matched, result.Modified)
}

func (e *Executor) setEmployeeStatus(ctx context.Context, email, status string) string {
	var candidates []EmployeeRecord
	err := e.authorizedCall(ctx, func(token string) error {
		var callErr error
		candidates, callErr = e.client.SearchEmployees(ctx, token, email)
		return callErr
	})
	if err != nil {
		if re, ok := err.(*RemoteError); ok {
			return "Failed to lookup employee: " + re.Message
		}
		if af, ok := err.(*AuthFailure); ok {
			return "⚠️ " + af.Error()
		}
		return "Failed to change status."
	}

	// The search is a substring match; the target must match the email
	// field exactly, case-insensitively.
	var found *EmployeeRecord
	for i := range candidates {
		if strings.EqualFold(candidates[i].Email, email) {
			found = &candidates[i]
			break
		}
	}
	if found == nil {
		return "❌ No employee found with email " + email
	}

	var updated EmployeeRecord
	err = e.authorizedCall(ctx, func(token string) error {
		var callErr error
		updated, callErr = e.client.SetEmployeeStatus(ctx, token, found.ID, status)
		return callErr
	})
	if err != nil {
		if re, ok := err.(*RemoteError); ok {
			return "Error updating employee: " + re.Message
		}
		if af, ok := err.(*AuthFailure); ok {
			return "⚠️ " + af.Error()
		}
		return "Failed to change status."
	}

	canonical := updated.Email
	if canonical == "" {
		canonical = found.Email
	}
	e.broadcast(ctx, events.EventEmployeeStatusChanged, events.EmployeeStatusChangedPayload{
		Email:  canonical,
		Status: statusOf(updated, status),
	})
	return "✅ Updated " + canonical + " → " + status
}

// broadcast is fire-and-forget; dispatch problems never affect the command
// outcome.
func (e *Executor) broadcast(ctx context.Context, eventType events.EventType, payload any) {
	if e.dispatcher == nil {
		return
	}
	_ = e.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func failureMessage(err error) string {
	switch v := err.(type) {
	case *RemoteError:
		return "Error: " + v.Message
	case *AuthFailure:
		return "⚠️ " + v.Error()
	default:
		return "Request failed."
	}
}

func statusOf(updated EmployeeRecord, requested string) domain.EmployeeStatus {
	if updated.Status != "" {
		return domain.EmployeeStatus(updated.Status)
	}
	return domain.EmployeeStatus(requested)
}
