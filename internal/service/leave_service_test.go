package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

type fakeLeaveRepo struct {
	created        []*domain.LeaveRequest
	byID           map[string]*domain.LeaveRequest
	statusUpdates  map[string]domain.LeaveStatus
	approveMatched int64
	approveModded  int64
	approveEmail   string
	approveErr     error
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		byID:          map[string]*domain.LeaveRequest{},
		statusUpdates: map[string]domain.LeaveStatus{},
	}
}

func (f *fakeLeaveRepo) Create(_ context.Context, leave *domain.LeaveRequest) error {
	f.created = append(f.created, leave)
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	leave, ok := f.byID[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return leave, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, _ repository.LeaveFilter) ([]domain.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) ApprovePending(_ context.Context, email string) (int64, int64, error) {
	f.approveEmail = email
	return f.approveMatched, f.approveModded, f.approveErr
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status domain.LeaveStatus) error {
	f.statusUpdates[id] = status
	return nil
}

func collectLeaveEvents(d events.Dispatcher) *[]events.Event {
	var got []events.Event
	d.Subscribe(events.EventLeavesUpdated, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})
	return &got
}

func TestAutoApproveBroadcastsCounts(t *testing.T) {
	repo := newFakeLeaveRepo()
	repo.approveMatched = 5
	repo.approveModded = 3

	dispatcher := events.NewInMemoryDispatcher()
	got := collectLeaveEvents(dispatcher)
	svc := NewLeaveService(repo, dispatcher, zap.NewNop())

	matched, modified, err := svc.AutoApprove(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), matched)
	assert.Equal(t, int64(3), modified)

	require.Len(t, *got, 1)
	payload := (*got)[0].Payload.(events.LeavesUpdatedPayload)
	assert.Equal(t, int64(5), payload.Matched)
	assert.Equal(t, int64(3), payload.Modified)
	assert.Empty(t, payload.Email)
}

func TestAutoApproveScopedByEmail(t *testing.T) {
	repo := newFakeLeaveRepo()
	repo.approveMatched = 2
	repo.approveModded = 2

	svc := NewLeaveService(repo, events.NewInMemoryDispatcher(), zap.NewNop())

	_, _, err := svc.AutoApprove(context.Background(), "  Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", repo.approveEmail)
}

func TestAutoApproveFailureSkipsBroadcast(t *testing.T) {
	repo := newFakeLeaveRepo()
	repo.approveErr = errors.New("db down")

	dispatcher := events.NewInMemoryDispatcher()
	got := collectLeaveEvents(dispatcher)
	svc := NewLeaveService(repo, dispatcher, zap.NewNop())

	_, _, err := svc.AutoApprove(context.Background(), "")
	require.Error(t, err)
	assert.Empty(t, *got)
}

func TestFileLeaveDefaults(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, events.NewInMemoryDispatcher(), zap.NewNop())

	from := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	leave := &domain.LeaveRequest{EmployeeEmail: "Alice@Example.com", FromDate: from, ToDate: to}

	require.NoError(t, svc.File(context.Background(), leave))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "alice@example.com", leave.EmployeeEmail)
	assert.Equal(t, domain.LeaveStatusPending, leave.Status)
	assert.Equal(t, 3, leave.Days)
}

func TestFileLeaveRejectsInvertedRange(t *testing.T) {
	svc := NewLeaveService(newFakeLeaveRepo(), events.NewInMemoryDispatcher(), zap.NewNop())

	leave := &domain.LeaveRequest{
		EmployeeEmail: "alice@example.com",
		FromDate:      time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
		ToDate:        time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	}

	err := svc.File(context.Background(), leave)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestApproveSingleLeave(t *testing.T) {
	repo := newFakeLeaveRepo()
	repo.byID["leave-1"] = &domain.LeaveRequest{
		ID:            "leave-1",
		EmployeeEmail: "alice@example.com",
		Status:        domain.LeaveStatusPending,
	}

	dispatcher := events.NewInMemoryDispatcher()
	got := collectLeaveEvents(dispatcher)
	svc := NewLeaveService(repo, dispatcher, zap.NewNop())

	require.NoError(t, svc.Approve(context.Background(), "leave-1"))
	assert.Equal(t, domain.LeaveStatusApproved, repo.statusUpdates["leave-1"])
	require.Len(t, *got, 1)
}

func TestApproveRejectsNonPending(t *testing.T) {
	repo := newFakeLeaveRepo()
	repo.byID["leave-1"] = &domain.LeaveRequest{
		ID:            "leave-1",
		EmployeeEmail: "alice@example.com",
		Status:        domain.LeaveStatusApproved,
	}

	svc := NewLeaveService(repo, events.NewInMemoryDispatcher(), zap.NewNop())

	err := svc.Approve(context.Background(), "leave-1")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Empty(t, repo.statusUpdates, "rejected transition must not touch storage")
}
