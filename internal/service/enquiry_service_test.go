package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

type fakeEnquiryRepo struct {
	byID          map[string]*domain.Enquiry
	created       []*domain.Enquiry
	statusUpdates map[string]domain.EnquiryStatus
}

func newFakeEnquiryRepo() *fakeEnquiryRepo {
	return &fakeEnquiryRepo{
		byID:          map[string]*domain.Enquiry{},
		statusUpdates: map[string]domain.EnquiryStatus{},
	}
}

func (f *fakeEnquiryRepo) Create(_ context.Context, e *domain.Enquiry) error {
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEnquiryRepo) GetByID(_ context.Context, id string) (*domain.Enquiry, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEnquiryRepo) List(_ context.Context, _, _ int) ([]domain.Enquiry, error) {
	return nil, nil
}

func (f *fakeEnquiryRepo) UpdateStatus(_ context.Context, id string, status domain.EnquiryStatus) error {
	f.statusUpdates[id] = status
	return nil
}

func TestSubmitEnquiryDefaultsToOpen(t *testing.T) {
	repo := newFakeEnquiryRepo()
	svc := NewEnquiryService(repo, events.NewInMemoryDispatcher(), zap.NewNop())

	enquiry := &domain.Enquiry{Name: "Carol", Email: "carol@example.com", Message: "need a quote"}
	require.NoError(t, svc.Submit(context.Background(), enquiry))
	assert.Equal(t, domain.EnquiryStatusOpen, enquiry.Status)
	require.Len(t, repo.created, 1)
}

func TestSubmitEnquiryRequiresNameAndMessage(t *testing.T) {
	svc := NewEnquiryService(newFakeEnquiryRepo(), events.NewInMemoryDispatcher(), zap.NewNop())

	err := svc.Submit(context.Background(), &domain.Enquiry{Name: "Carol"})
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestResolveEnquiryBroadcasts(t *testing.T) {
	repo := newFakeEnquiryRepo()
	repo.byID["enq-1"] = &domain.Enquiry{ID: "enq-1", Email: "carol@example.com", Status: domain.EnquiryStatusOpen}

	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	dispatcher.Subscribe(events.EventEnquiryResolved, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})
	svc := NewEnquiryService(repo, dispatcher, zap.NewNop())

	enquiry, err := svc.Resolve(context.Background(), "enq-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryStatusResolved, enquiry.Status)
	assert.Equal(t, domain.EnquiryStatusResolved, repo.statusUpdates["enq-1"])

	require.Len(t, got, 1)
	payload := got[0].Payload.(events.EnquiryResolvedPayload)
	assert.Equal(t, "enq-1", payload.EnquiryID)
}

// Resolution is one-way; a second resolve is rejected without a write.
func TestResolveEnquiryTwiceRejected(t *testing.T) {
	repo := newFakeEnquiryRepo()
	repo.byID["enq-1"] = &domain.Enquiry{ID: "enq-1", Status: domain.EnquiryStatusResolved}
	svc := NewEnquiryService(repo, events.NewInMemoryDispatcher(), zap.NewNop())

	_, err := svc.Resolve(context.Background(), "enq-1")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Empty(t, repo.statusUpdates)
}
