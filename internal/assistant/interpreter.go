package assistant

import (
	"regexp"
	"strings"
)

// Intent is the structured form of one parsed operator command.
type Intent interface {
	isIntent()
}

// BulkApproveLeaves approves every pending leave request.
type BulkApproveLeaves struct{}

// ApproveLeavesFor approves pending leave requests for one employee.
type ApproveLeavesFor struct {
	Email string
}

// SetEmployeeStatus changes one employee's status.
type SetEmployeeStatus struct {
	Email  string
	Status string
}

// Unrecognized carries input no rule matched.
type Unrecognized struct {
	Raw string
}

func (BulkApproveLeaves) isIntent() {}
func (ApproveLeavesFor) isIntent()  {}
func (SetEmployeeStatus) isIntent() {}
func (Unrecognized) isIntent()      {}

// HelpText is the fixed response for unrecognized input.
const HelpText = "I didn't understand. Try: 'approve all', 'approve for alice@example.com', or 'set status for alice@example.com to inactive'"

var (
	approveForRe  = regexp.MustCompile(`approve .*for (\S+@\S+)`)
	approveAnyRe  = regexp.MustCompile(`approve .* (\S+@\S+)`)
	setStatusFor  = regexp.MustCompile(`(?:set status|set) .* for (\S+@\S+) to (active|inactive)`)
	setStatusBare = regexp.MustCompile(`(?:set status|set) (\S+@\S+) to (active|inactive)`)
	emailStatus   = regexp.MustCompile(`(\S+@\S+) (active|inactive)`)
)

// rule pairs a matcher with an intent constructor. Rules are evaluated in
// order and the first match wins; the ordering is load-bearing and must not
// be rearranged.
type rule func(lower string) (Intent, bool)

var rules = []rule{
	func(lower string) (Intent, bool) {
		switch lower {
		case "approve all", "approve all leaves", "auto approve all":
			return BulkApproveLeaves{}, true
		}
		return nil, false
	},
	func(lower string) (Intent, bool) {
		m := approveForRe.FindStringSubmatch(lower)
		if m == nil {
			m = approveAnyRe.FindStringSubmatch(lower)
		}
		if m != nil {
			return ApproveLeavesFor{Email: m[1]}, true
		}
		return nil, false
	},
	func(lower string) (Intent, bool) {
		m := setStatusFor.FindStringSubmatch(lower)
		if m == nil {
			m = setStatusBare.FindStringSubmatch(lower)
		}
		if m == nil {
			m = emailStatus.FindStringSubmatch(lower)
		}
		if m != nil {
			return SetEmployeeStatus{Email: m[1], Status: capitalize(m[2])}, true
		}
		return nil, false
	},
}

// Interpret maps one line of operator input to exactly one intent. Matching
// is case-insensitive; the regex alternation is the sole validation gate for
// the status word.
func Interpret(input string) Intent {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, r := range rules {
		if intent, ok := r(lower); ok {
			return intent
		}
	}
	return Unrecognized{Raw: input}
}

// Acknowledgment is the progress message appended before a recognized
// intent executes.
func Acknowledgment(intent Intent) (string, bool) {
	switch v := intent.(type) {
	case BulkApproveLeaves:
		return "Approving all pending leaves...", true
	case ApproveLeavesFor:
		return "Approving pending leaves for " + v.Email + "...", true
	case SetEmployeeStatus:
		return "Setting status for " + v.Email + " → " + v.Status + "...", true
	default:
		return "", false
	}
}

// capitalize upper-cases the first letter and lower-cases the rest,
// matching how the status word is forwarded to the directory service.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
