package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/auth"
	"github.com/spec-kit/ops-portal/internal/config"
	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

// LoginContext carries transport metadata recorded with each attempt.
type LoginContext struct {
	IP        string
	UserAgent string
}

// AuthService coordinates login, throttling and audit recording.
type AuthService struct {
	employees  repository.EmployeeRepository
	activities repository.LoginActivityRepository
	tokenMgr   *auth.TokenManager
	throttle   *auth.LoginThrottle
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	EmployeeRepo      repository.EmployeeRepository
	LoginActivityRepo repository.LoginActivityRepository
	Throttle          *auth.LoginThrottle
	Dispatcher        events.Dispatcher
	Logger            *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		employees:  deps.EmployeeRepo,
		activities: deps.LoginActivityRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		throttle:   deps.Throttle,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Login authenticates an employee by email and password, records the attempt
// and returns a role-bearing token on success.
func (s *AuthService) Login(ctx context.Context, email, password string, lc LoginContext) (*domain.Employee, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !s.throttle.Allow(ctx, email, lc.IP) {
		s.recordActivity(ctx, email, false, lc, "too many failed attempts")
		return nil, "", time.Time{}, apperrors.NewTooManyAttempts("too many failed attempts, try again later")
	}

	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			s.failLogin(ctx, email, lc, "unknown email")
			return nil, "", time.Time{}, apperrors.NewAuthenticationFailed("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if employee.Status != domain.EmployeeStatusActive {
		s.failLogin(ctx, email, lc, "account inactive")
		return nil, "", time.Time{}, apperrors.NewAuthenticationFailed("account inactive")
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		s.failLogin(ctx, email, lc, "wrong password")
		return nil, "", time.Time{}, apperrors.NewAuthenticationFailed("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(employee.ID, employee.Email, employee.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.throttle.RecordSuccess(ctx, email, lc.IP)
	s.recordActivity(ctx, email, true, lc, "")
	return employee, token, exp, nil
}

// ListActivities returns the login audit trail, optionally filtered by email.
func (s *AuthService) ListActivities(ctx context.Context, email string, limit int) ([]domain.LoginActivity, error) {
	return s.activities.List(ctx, email, limit)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) failLogin(ctx context.Context, email string, lc LoginContext, reason string) {
	s.throttle.RecordFailure(ctx, email, lc.IP)
	s.recordActivity(ctx, email, false, lc, reason)
}

func (s *AuthService) recordActivity(ctx context.Context, email string, success bool, lc LoginContext, reason string) {
	activity := &domain.LoginActivity{
		Email:     email,
		Success:   success,
		IP:        lc.IP,
		UserAgent: lc.UserAgent,
		Reason:    reason,
	}
	if err := s.activities.Record(ctx, activity); err != nil {
		s.logger.Warn("failed to record login activity", zap.String("email", email), zap.Error(err))
		return
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLoginRecorded,
			Timestamp: time.Now(),
			Payload:   events.LoginRecordedPayload{Email: email, Success: success, Reason: reason},
		})
	}
}
