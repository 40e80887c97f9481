package service

import (
	"context"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// IntakeService handles the public-facing forms that need no workflow:
// quotation requests and job applications.
type IntakeService struct {
	quotations   repository.QuotationRepository
	applications repository.ApplicationRepository
}

// NewIntakeService builds the service.
func NewIntakeService(quotations repository.QuotationRepository, applications repository.ApplicationRepository) *IntakeService {
	return &IntakeService{quotations: quotations, applications: applications}
}

// SubmitQuotation stores a new quotation request.
func (s *IntakeService) SubmitQuotation(ctx context.Context, quotation *domain.Quotation) error {
	if quotation.Name == "" || quotation.Message == "" {
		return apperrors.NewValidationError("name and message required", nil)
	}
	if quotation.Status == "" {
		quotation.Status = "new"
	}
	return s.quotations.Create(ctx, quotation)
}

// ListQuotations returns quotation requests newest first.
func (s *IntakeService) ListQuotations(ctx context.Context, limit, offset int) ([]domain.Quotation, error) {
	return s.quotations.List(ctx, limit, offset)
}

// SubmitApplication stores a new job application.
func (s *IntakeService) SubmitApplication(ctx context.Context, application *domain.Application) error {
	if application.Name == "" || application.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}
	return s.applications.Create(ctx, application)
}

// ListApplications returns applications newest first.
func (s *IntakeService) ListApplications(ctx context.Context, limit, offset int) ([]domain.Application, error) {
	return s.applications.List(ctx, limit, offset)
}

// DeleteApplication removes an application.
func (s *IntakeService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.applications.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
