package domain

import "time"

// LeaveStatus enumerates lifecycle states for leave requests.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest models one request for time off, correlated to an employee
// by email rather than a foreign key.
type LeaveRequest struct {
	ID                   string
	EmployeeName         string
	EmployeeEmail        string
	FromDate             time.Time
	ToDate               time.Time
	Days                 int
	Reason               string
	Type                 string
	Status               LeaveStatus
	MonthlyQuota         int
	LeavesTakenThisMonth int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
