package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the lifecycle of a freelancer's application.
//
// Allowed paths:
//   - pending  -> reviewed | accepted | rejected   (employer)
//   - reviewed -> accepted | rejected              (employer)
//   - pending  -> withdrawn                        (applicant)
//
// accepted, rejected and withdrawn are terminal and kept for audit.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

const MinCoverLetterLength = 50

var employerTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:  {ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewed: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

// CanEmployerMove reports whether the employer may move an application from
// one status to another.
func CanEmployerMove(from, to ApplicationStatus) bool {
	for _, next := range employerTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanWithdraw reports whether the applicant may withdraw from the given status.
// Only pending applications may be withdrawn.
func CanWithdraw(from ApplicationStatus) bool {
	return from == ApplicationStatusPending
}

// Application is one freelancer's submission to one gig. The pair
// (gig_id, applicant_id) is unique in the store.
type Application struct {
	ID            string            `json:"id"`
	GigID         string            `json:"gig_id"`
	ApplicantID   string            `json:"applicant_id"`
	CoverLetter   string            `json:"cover_letter"`
	ProposedRate  *decimal.Decimal  `json:"proposed_rate,omitempty"`
	Status        ApplicationStatus `json:"status"`
	EmployerNotes string            `json:"employer_notes"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ApplicationTransition is a compare-and-set request against one application
// row: the write only happens while the stored status still equals From.
type ApplicationTransition struct {
	ApplicationID string
	From          ApplicationStatus
	To            ApplicationStatus
	EmployerNotes *string
}
