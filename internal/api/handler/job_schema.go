package handler

import (
	"time"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

// --- Request / Response types ---

type createJobRequest struct {
	Company string `json:"company" validate:"required"`
	Role    string `json:"role"    validate:"required"`
	Status  string `json:"status"  validate:"omitempty,oneof=SAVED APPLIED INTERVIEWING OFFER REJECTED"`
	Notes   string `json:"notes"   validate:"omitempty,max=2000"`
}

// updateJobRequest uses pointers so an absent field and an explicitly
// empty one can be told apart: only supplied fields are merged.
type updateJobRequest struct {
	Company *string `json:"company" validate:"omitempty,min=1"`
	Role    *string `json:"role"    validate:"omitempty,min=1"`
	Status  *string `json:"status"  validate:"omitempty,oneof=SAVED APPLIED INTERVIEWING OFFER REJECTED"`
	Notes   *string `json:"notes"   validate:"omitempty,max=2000"`
}

// jobResponse is the outward job view, owned by the transport layer so
// the JSON contract is not coupled to internal domain changes.
type jobResponse struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type jobEnvelope struct {
	Job jobResponse `json:"job"`
}

type listJobsResponse struct {
	Jobs []jobResponse `json:"jobs"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:        j.ID,
		Company:   j.Company,
		Role:      j.Role,
		Status:    string(j.Status),
		Notes:     j.Notes,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
