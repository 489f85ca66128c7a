package interfaces

import (
	"context"

	"quickgigs/internal/domain/entities"
)

// GigFilter narrows gig listings. Zero values mean "no filter".
type GigFilter struct {
	Category        entities.GigCategory
	EmployerID      string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// IGigRepository abstracts persistence for Gig.
//
// The store must be able to:
//   - cascade delete applications and clear payment gig references on Delete
//   - return listings ordered featured first, newest first, id descending
//
// Update never writes is_featured; that flag moves only with a payment transition.
type IGigRepository interface {
	Create(ctx context.Context, g entities.Gig) (entities.Gig, error)
	GetByID(ctx context.Context, id string) (entities.Gig, error)
	Update(ctx context.Context, g entities.Gig) (entities.Gig, error)
	SetActive(ctx context.Context, id string, active bool) (entities.Gig, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter GigFilter) ([]entities.Gig, int64, error)
	CountFeaturedActive(ctx context.Context) (int64, error)
}
