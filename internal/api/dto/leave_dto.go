package dto

import (
	"time"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// FileLeaveRequest payload for POST /api/leaves.
type FileLeaveRequest struct {
	EmployeeName  string `json:"employeeName"`
	EmployeeEmail string `json:"employeeEmail"`
	FromDate      string `json:"fromDate"`
	ToDate        string `json:"toDate"`
	Days          int    `json:"days"`
	Reason        string `json:"reason"`
	Type          string `json:"type"`
}

// AutoApproveRequest payload for POST /api/leaves/auto-approve. Email is
// optional; empty approves every pending request.
type AutoApproveRequest struct {
	Email string `json:"email"`
}

// AutoApproveResponse mirrors the counts the assistant parses.
type AutoApproveResponse struct {
	Message  string `json:"message"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}

// LeaveResponse serializes a leave request.
type LeaveResponse struct {
	ID                   string    `json:"_id"`
	EmployeeName         string    `json:"employeeName"`
	EmployeeEmail        string    `json:"employeeEmail"`
	FromDate             time.Time `json:"fromDate"`
	ToDate               time.Time `json:"toDate"`
	Days                 int       `json:"days"`
	Reason               string    `json:"reason"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	MonthlyQuota         int       `json:"monthlyQuota"`
	LeavesTakenThisMonth int       `json:"leavesTakenThisMonth"`
	CreatedAt            time.Time `json:"createdAt"`
}

// NewLeaveResponse maps the domain entity.
func NewLeaveResponse(l *domain.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:                   l.ID,
		EmployeeName:         l.EmployeeName,
		EmployeeEmail:        l.EmployeeEmail,
		FromDate:             l.FromDate,
		ToDate:               l.ToDate,
		Days:                 l.Days,
		Reason:               l.Reason,
		Type:                 l.Type,
		Status:               string(l.Status),
		MonthlyQuota:         l.MonthlyQuota,
		LeavesTakenThisMonth: l.LeavesTakenThisMonth,
		CreatedAt:            l.CreatedAt,
	}
}
