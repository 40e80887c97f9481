package domain

// Status transition rules. Services validate every status mutation against
// these tables before touching storage; a rejected transition leaves the
// stored value untouched.

// CanTransitionLeave reports whether a leave request may move between the
// given states. Approval is one-way: nothing leaves approved or rejected.
func CanTransitionLeave(from, to LeaveStatus) bool {
	return from == LeaveStatusPending && to == LeaveStatusApproved
}

// CanTransitionEmployee reports whether an employee status change is legal.
// Active and Inactive are freely interchangeable.
func CanTransitionEmployee(from, to EmployeeStatus) bool {
	if to != EmployeeStatusActive && to != EmployeeStatusInactive {
		return false
	}
	return from == EmployeeStatusActive || from == EmployeeStatusInactive
}

// CanTransitionEnquiry reports whether an enquiry status change is legal.
// Resolution is one-way.
func CanTransitionEnquiry(from, to EnquiryStatus) bool {
	return from == EnquiryStatusOpen && to == EnquiryStatusResolved
}
