package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// EnquiryService manages customer enquiries and their one-way resolution.
type EnquiryService struct {
	enquiries  repository.EnquiryRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewEnquiryService builds the service.
func NewEnquiryService(enquiries repository.EnquiryRepository, dispatcher events.Dispatcher, logger *zap.Logger) *EnquiryService {
	return &EnquiryService{enquiries: enquiries, dispatcher: dispatcher, logger: logger}
}

// Submit stores a new open enquiry.
func (s *EnquiryService) Submit(ctx context.Context, enquiry *domain.Enquiry) error {
	if enquiry.Name == "" || enquiry.Message == "" {
		return apperrors.NewValidationError("name and message required", nil)
	}
	enquiry.Status = domain.EnquiryStatusOpen
	return s.enquiries.Create(ctx, enquiry)
}

// List returns enquiries newest first.
func (s *EnquiryService) List(ctx context.Context, limit, offset int) ([]domain.Enquiry, error) {
	return s.enquiries.List(ctx, limit, offset)
}

// Resolve marks an enquiry Resolved. Resolution is one-way; resolving an
// already resolved enquiry is rejected and leaves the row untouched.
func (s *EnquiryService) Resolve(ctx context.Context, id string) (*domain.Enquiry, error) {
	enquiry, err := s.enquiries.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if !domain.CanTransitionEnquiry(enquiry.Status, domain.EnquiryStatusResolved) {
		return nil, apperrors.NewValidationError("enquiry already resolved", map[string]any{"status": string(enquiry.Status)})
	}
	if err := s.enquiries.UpdateStatus(ctx, id, domain.EnquiryStatusResolved); err != nil {
		return nil, err
	}
	enquiry.Status = domain.EnquiryStatusResolved

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEnquiryResolved,
			Timestamp: time.Now(),
			Payload:   events.EnquiryResolvedPayload{EnquiryID: enquiry.ID, Email: enquiry.Email},
		})
	}
	s.logger.Info("enquiry resolved", zap.String("enquiry_id", enquiry.ID))
	return enquiry, nil
}
