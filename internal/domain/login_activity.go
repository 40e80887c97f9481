package domain

import "time"

// LoginActivity records one authentication attempt, successful or not.
type LoginActivity struct {
	ID        string
	Email     string
	Success   bool
	IP        string
	UserAgent string
	Reason    string
	CreatedAt time.Time
}
