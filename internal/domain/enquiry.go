package domain

import "time"

// EnquiryStatus enumerates lifecycle states for customer enquiries.
type EnquiryStatus string

const (
	EnquiryStatusOpen     EnquiryStatus = "open"
	EnquiryStatusResolved EnquiryStatus = "Resolved"
)

// Enquiry is a customer contact request handled by operators.
type Enquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    EnquiryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quotation is a pricing request; it carries a free-form status and no
// workflow of its own.
type Quotation struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
