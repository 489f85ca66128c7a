package interfaces

import (
	"context"
	"time"

	"quickgigs/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for Payment and its history.
//
// Transition is the only way a payment status changes. It applies the status
// compare-and-set, the gig featured projection and the history entry as one
// atomic unit and reports applied=false when the stored status no longer
// equals t.From.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error)
	LatestPendingForGig(ctx context.Context, gigID string, paymentType entities.PaymentType) (entities.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Payment, error)
	ListHistory(ctx context.Context, paymentID string) ([]entities.PaymentHistory, error)
	Transition(ctx context.Context, t entities.PaymentTransition) (entities.Payment, bool, error)
	ListStalePending(ctx context.Context, createdBefore time.Time) ([]entities.Payment, error)
	// ListFeaturedDrift returns featured gigs with no completed featured_gig payment.
	ListFeaturedDrift(ctx context.Context) ([]entities.Gig, error)
	ClearFeatured(ctx context.Context, gigID string) (bool, error)
}
