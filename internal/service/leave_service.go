package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// LeaveService manages leave requests and the auto-approval operation.
type LeaveService struct {
	leaves     repository.LeaveRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewLeaveService builds the service.
func NewLeaveService(leaves repository.LeaveRepository, dispatcher events.Dispatcher, logger *zap.Logger) *LeaveService {
	return &LeaveService{leaves: leaves, dispatcher: dispatcher, logger: logger}
}

// File records a new pending leave request.
func (s *LeaveService) File(ctx context.Context, leave *domain.LeaveRequest) error {
	leave.EmployeeEmail = strings.ToLower(strings.TrimSpace(leave.EmployeeEmail))
	if leave.EmployeeEmail == "" {
		return apperrors.NewValidationError("employee email required", nil)
	}
	if leave.ToDate.Before(leave.FromDate) {
		return apperrors.NewValidationError("to date precedes from date", nil)
	}
	if leave.Days <= 0 {
		leave.Days = int(leave.ToDate.Sub(leave.FromDate).Hours()/24) + 1
	}
	leave.Status = domain.LeaveStatusPending
	return s.leaves.Create(ctx, leave)
}

// List returns leave requests, optionally filtered by email.
func (s *LeaveService) List(ctx context.Context, email string, limit, offset int) ([]domain.LeaveRequest, error) {
	return s.leaves.List(ctx, repository.LeaveFilter{Email: strings.ToLower(email), Limit: limit, Offset: offset})
}

// AutoApprove flips all pending requests matching the optional email filter
// to approved and broadcasts the result. The update is treated as atomic;
// there is no compensating action on partial failure.
func (s *LeaveService) AutoApprove(ctx context.Context, email string) (matched, modified int64, err error) {
	email = strings.ToLower(strings.TrimSpace(email))
	matched, modified, err = s.leaves.ApprovePending(ctx, email)
	if err != nil {
		return 0, 0, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLeavesUpdated,
			Timestamp: time.Now(),
			Payload: events.LeavesUpdatedPayload{
				Email:    email,
				Matched:  matched,
				Modified: modified,
			},
		})
	}

	s.logger.Info("leaves auto-approved",
		zap.String("email", email),
		zap.Int64("matched", matched),
		zap.Int64("modified", modified))
	return matched, modified, nil
}

// Approve transitions one request from pending to approved through the
// workflow table.
func (s *LeaveService) Approve(ctx context.Context, id string) error {
	leave, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !domain.CanTransitionLeave(leave.Status, domain.LeaveStatusApproved) {
		return apperrors.NewValidationError("leave is not pending", map[string]any{"status": string(leave.Status)})
	}
	if err := s.leaves.UpdateStatus(ctx, id, domain.LeaveStatusApproved); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLeavesUpdated,
			Timestamp: time.Now(),
			Payload: events.LeavesUpdatedPayload{
				Email:    leave.EmployeeEmail,
				Matched:  1,
				Modified: 1,
			},
		})
	}
	return nil
}
