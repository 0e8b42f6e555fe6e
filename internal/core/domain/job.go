package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a job application.
type JobStatus string

const (
	StatusSaved        JobStatus = "SAVED"
	StatusApplied      JobStatus = "APPLIED"
	StatusInterviewing JobStatus = "INTERVIEWING"
	StatusOffer        JobStatus = "OFFER"
	StatusRejected     JobStatus = "REJECTED"
)

// MaxNotesLength bounds the free-text notes field.
const MaxNotesLength = 2000

var ErrJobNotFound = errors.New("job not found")
var ErrInvalidJob = errors.New("invalid job fields")

var validStatuses = map[JobStatus]struct{}{
	StatusSaved:        {},
	StatusApplied:      {},
	StatusInterviewing: {},
	StatusOffer:        {},
	StatusRejected:     {},
}

// IsValid reports whether s belongs to the closed status set.
func (s JobStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Job is an application record owned by exactly one user. OwnerID is set
// on creation and never changes; every query against jobs carries an
// owner_id filter so records are invisible outside their tenant.
type Job struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Status    JobStatus `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
