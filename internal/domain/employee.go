package domain

import "time"

// EmployeeStatus enumerates lifecycle states for an employee record.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

// Role enumerates portal access levels.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Employee is the aggregate for staff records. Email is stored lowercased
// and is the lookup key used by every cross-service correlation.
type Employee struct {
	ID           string
	EmpID        string
	Name         string
	Email        string
	PasswordHash string
	Designation  string
	JoinDate     *time.Time
	Status       EmployeeStatus
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
