package domain

import "time"

// Application is a job application. Resume and cover letter paths are stored
// verbatim; file storage itself lives outside this service.
type Application struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Role            string
	ResumePath      string
	CoverLetterPath string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
