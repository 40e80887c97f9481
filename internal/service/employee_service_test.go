package service

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ops-portal/internal/domain"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/repository"
	apperrors "github.com/spec-kit/ops-portal/pkg/util"
)

type fakeEmployeeRepo struct {
	byID    map[string]*domain.Employee
	byEmail map[string]*domain.Employee

	created       []*domain.Employee
	statusUpdates map[string]domain.EmployeeStatus
	passwordByID  map[string]string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:          map[string]*domain.Employee{},
		byEmail:       map[string]*domain.Employee{},
		statusUpdates: map[string]domain.EmployeeStatus{},
		passwordByID:  map[string]string{},
	}
}

func (f *fakeEmployeeRepo) add(e *domain.Employee) {
	f.byID[e.ID] = e
	f.byEmail[strings.ToLower(e.Email)] = e
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	f.created = append(f.created, e)
	f.add(e)
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	f.add(e)
	return nil
}

func (f *fakeEmployeeRepo) UpdateStatus(_ context.Context, id string, status domain.EmployeeStatus) error {
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(_ context.Context, id, hash string) error {
	f.passwordByID[id] = hash
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	e, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Search(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range f.byID {
		if filter.Term == "" || strings.Contains(strings.ToLower(e.Email), strings.ToLower(filter.Term)) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func newEmployeeService(repo *fakeEmployeeRepo, dispatcher events.Dispatcher) *EmployeeService {
	return NewEmployeeService(repo, dispatcher, zap.NewNop(), bcrypt.MinCost)
}

func TestCreateEmployeeDefaults(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newEmployeeService(repo, events.NewInMemoryDispatcher())

	employee, err := svc.Create(context.Background(), CreateEmployeeInput{
		Name:     "Alice",
		Email:    " Alice@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", employee.Email)
	assert.Equal(t, domain.EmployeeStatusActive, employee.Status)
	assert.Equal(t, domain.RoleEmployee, employee.Role)
	assert.True(t, strings.HasPrefix(employee.EmpID, "EMP-"))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("secret")))
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&domain.Employee{ID: "id-1", Email: "alice@example.com"})
	svc := newEmployeeService(repo, events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), CreateEmployeeInput{
		Name:  "Alice",
		Email: "ALICE@example.com",
	})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Empty(t, repo.created)
}

func TestUpdateStatusBroadcasts(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&domain.Employee{ID: "id-1", Email: "alice@example.com", Status: domain.EmployeeStatusActive})

	dispatcher := events.NewInMemoryDispatcher()
	var got []events.Event
	dispatcher.Subscribe(events.EventEmployeeStatusChanged, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})
	svc := newEmployeeService(repo, dispatcher)

	status := domain.EmployeeStatusInactive
	employee, err := svc.Update(context.Background(), "id-1", Patch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.EmployeeStatusInactive, employee.Status)
	assert.Equal(t, domain.EmployeeStatusInactive, repo.statusUpdates["id-1"])
	require.Len(t, got, 1)
	payload := got[0].Payload.(events.EmployeeStatusChangedPayload)
	assert.Equal(t, "alice@example.com", payload.Email)
	assert.Equal(t, domain.EmployeeStatusInactive, payload.Status)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&domain.Employee{ID: "id-1", Email: "alice@example.com", Status: domain.EmployeeStatusActive})
	svc := newEmployeeService(repo, events.NewInMemoryDispatcher())

	status := domain.EmployeeStatus("Retired")
	_, err := svc.Update(context.Background(), "id-1", Patch{Status: &status})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Empty(t, repo.statusUpdates, "rejected transition must leave the record untouched")
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := newEmployeeService(newFakeEmployeeRepo(), events.NewInMemoryDispatcher())

	status := domain.EmployeeStatusInactive
	_, err := svc.Update(context.Background(), "missing", Patch{Status: &status})

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUpdatePasswordOnly(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(&domain.Employee{ID: "id-1", Email: "alice@example.com", Status: domain.EmployeeStatusActive})
	svc := newEmployeeService(repo, events.NewInMemoryDispatcher())

	password := "new-secret"
	employee, err := svc.Update(context.Background(), "id-1", Patch{Password: &password})
	require.NoError(t, err)

	hash, ok := repo.passwordByID["id-1"]
	require.True(t, ok)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
	assert.Equal(t, domain.EmployeeStatusActive, employee.Status)
	assert.Empty(t, repo.statusUpdates)
}
