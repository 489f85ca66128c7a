package response

import (
	"time"

	"quickgigs/internal/domain/entities"
)

type ApplicationResponse struct {
	ID            string    `json:"id"`
	GigID         string    `json:"gig_id"`
	ApplicantID   string    `json:"applicant_id"`
	CoverLetter   string    `json:"cover_letter"`
	ProposedRate  *string   `json:"proposed_rate,omitempty"`
	Status        string    `json:"status"`
	EmployerNotes string    `json:"employer_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromApplication(a entities.Application) ApplicationResponse {
	out := ApplicationResponse{
		ID:            a.ID,
		GigID:         a.GigID,
		ApplicantID:   a.ApplicantID,
		CoverLetter:   a.CoverLetter,
		Status:        string(a.Status),
		EmployerNotes: a.EmployerNotes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.ProposedRate != nil {
		r := a.ProposedRate.StringFixed(2)
		out.ProposedRate = &r
	}
	return out
}

func FromApplications(apps []entities.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
