package dto

import (
	"time"

	"github.com/spec-kit/ops-portal/internal/domain"
)

// EnquiryRequest payload for POST /api/enquiries.
type EnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Message string `json:"message"`
}

// EnquiryStatusRequest payload for PUT /api/enquiries/:id.
type EnquiryStatusRequest struct {
	Status string `json:"status"`
}

// EnquiryResponse serializes an enquiry.
type EnquiryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone_number"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEnquiryResponse maps the domain entity.
func NewEnquiryResponse(e *domain.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Message:   e.Message,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

// QuotationRequest payload for POST /api/quotations.
type QuotationRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone_number"`
	Message string `json:"message"`
}

// QuotationResponse serializes a quotation.
type QuotationResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone_number"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ApplicationRequest payload for POST /api/applications.
type ApplicationRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	ResumePath      string `json:"resumePath"`
	CoverLetterPath string `json:"coverLetterPath"`
}

// ApplicationResponse serializes a job application.
type ApplicationResponse struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	ResumePath      string    `json:"resumePath"`
	CoverLetterPath string    `json:"coverLetterPath"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SalarySlipRequest payload for POST /api/salary-slips.
type SalarySlipRequest struct {
	Email           string  `json:"email"`
	Month           string  `json:"month"`
	Year            string  `json:"year"`
	Basic           float64 `json:"basic"`
	HRA             float64 `json:"hra"`
	Allowances      float64 `json:"allowances"`
	PF              float64 `json:"pf"`
	Tax             float64 `json:"tax"`
	OtherDeductions float64 `json:"otherDeductions"`
	PDFPath         string  `json:"pdfPath"`
}

// SalarySlipRequestRequest payload for POST /api/salary-slip-request.
type SalarySlipRequestRequest struct {
	Email string `json:"email"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// SalarySlipResponse serializes a payroll statement.
type SalarySlipResponse struct {
	ID              string    `json:"_id"`
	EmployeeName    string    `json:"employeeName"`
	EmpID           string    `json:"empId"`
	Email           string    `json:"email"`
	Designation     string    `json:"designation"`
	Month           string    `json:"month"`
	Year            string    `json:"year"`
	Basic           float64   `json:"basic"`
	HRA             float64   `json:"hra"`
	Allowances      float64   `json:"allowances"`
	PF              float64   `json:"pf"`
	Tax             float64   `json:"tax"`
	OtherDeductions float64   `json:"otherDeductions"`
	TotalEarnings   float64   `json:"totalEarnings"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPay          float64   `json:"netPay"`
	PDFPath         string    `json:"pdfPath"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewSalarySlipResponse maps the domain entity.
func NewSalarySlipResponse(s *domain.SalarySlip) SalarySlipResponse {
	return SalarySlipResponse{
		ID:              s.ID,
		EmployeeName:    s.EmployeeName,
		EmpID:           s.EmpID,
		Email:           s.Email,
		Designation:     s.Designation,
		Month:           s.Month,
		Year:            s.Year,
		Basic:           s.Basic,
		HRA:             s.HRA,
		Allowances:      s.Allowances,
		PF:              s.PF,
		Tax:             s.Tax,
		OtherDeductions: s.OtherDeductions,
		TotalEarnings:   s.TotalEarnings,
		TotalDeductions: s.TotalDeductions,
		NetPay:          s.NetPay,
		PDFPath:         s.PDFPath,
		CreatedAt:       s.CreatedAt,
	}
}
