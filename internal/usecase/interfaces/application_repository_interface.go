package interfaces

import (
	"context"

	"quickgigs/internal/domain/entities"
)

// IApplicationRepository abstracts persistence for Application.
//
// Create returns ErrDuplicateKey when the (gig, applicant) pair already exists.
// CompareAndSetStatus writes only while the stored status equals t.From and
// reports applied=false otherwise.
type IApplicationRepository interface {
	Create(ctx context.Context, a entities.Application) (entities.Application, error)
	GetByID(ctx context.Context, id string) (entities.Application, error)
	FindByGigAndApplicant(ctx context.Context, gigID, applicantID string) (entities.Application, error)
	ListByGig(ctx context.Context, gigID string) ([]entities.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error)
	CompareAndSetStatus(ctx context.Context, t entities.ApplicationTransition) (entities.Application, bool, error)
}
