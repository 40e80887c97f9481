package domain

import "time"

// SalarySlip is a monthly payroll statement for one employee.
type SalarySlip struct {
	ID              string
	EmployeeName    string
	EmpID           string
	Email           string
	Designation     string
	Month           string
	Year            string
	Basic           float64
	HRA             float64
	Allowances      float64
	PF              float64
	Tax             float64
	OtherDeductions float64
	TotalEarnings   float64
	TotalDeductions float64
	NetPay          float64
	PDFPath         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ComputeTotals derives earnings, deductions and net pay from the component
// amounts, overwriting whatever the caller supplied.
func (s *SalarySlip) ComputeTotals() {
	s.TotalEarnings = s.Basic + s.HRA + s.Allowances
	s.TotalDeductions = s.PF + s.Tax + s.OtherDeductions
	s.NetPay = s.TotalEarnings - s.TotalDeductions
}
