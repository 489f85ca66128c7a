package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultGigPageSize = 12
	MaxGigPageSize     = 50
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// GigInput carries the employer-editable fields of a gig.
type GigInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"required"`
	Budget      decimal.Decimal
	Location    string `validate:"max=100"`
	Category    entities.GigCategory
	Deadline    *time.Time
}

type GigListQuery struct {
	Category        entities.GigCategory
	EmployerID      string
	IncludeInactive bool
	Page            int
	PageSize        int
}

type GigListResult struct {
	Gigs     []entities.Gig
	Total    int64
	Page     int
	PageSize int
}

type GigStats struct {
	FeaturedActive int64
}

// IGigUseCase manages gigs. Mutations are owner-only; is_featured is never
// writable through this use case.
type IGigUseCase interface {
	Create(ctx context.Context, employerID string, in GigInput) (entities.Gig, error)
	Get(ctx context.Context, id string) (entities.Gig, error)
	Update(ctx context.Context, actorID, id string, in GigInput) (entities.Gig, error)
	ToggleActive(ctx context.Context, actorID, id string) (entities.Gig, error)
	Delete(ctx context.Context, actorID, id string) error
	List(ctx context.Context, q GigListQuery) (GigListResult, error)
	Stats(ctx context.Context) (GigStats, error)
}

type GigUseCase struct {
	repo interfaces.IGigRepository
	now  func() time.Time
}

var _ IGigUseCase = (*GigUseCase)(nil)

func NewGigUseCase(repo interfaces.IGigRepository) *GigUseCase {
	return &GigUseCase{repo: repo, now: time.Now}
}

func (u *GigUseCase) Create(ctx context.Context, employerID string, in GigInput) (entities.Gig, error) {
	if strings.TrimSpace(employerID) == "" {
		return entities.Gig{}, ErrNotAuthorized
	}
	in, err := normalizeGigInput(in)
	if err != nil {
		return entities.Gig{}, err
	}

	now := u.now().UTC()
	g := entities.Gig{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		EmployerID:  employerID,
		Budget:      in.Budget,
		Location:    in.Location,
		Category:    in.Category,
		Deadline:    in.Deadline,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, g)
	if err != nil {
		return entities.Gig{}, err
	}
	log.WithFields(log.Fields{"gig_id": created.ID, "employer_id": employerID}).Info("[gig][usecase] created")
	return created, nil
}

func (u *GigUseCase) Get(ctx context.Context, id string) (entities.Gig, error) {
	return u.load(ctx, id)
}

func (u *GigUseCase) Update(ctx context.Context, actorID, id string, in GigInput) (entities.Gig, error) {
	g, err := u.load(ctx, id)
	if err != nil {
		return entities.Gig{}, err
	}
	if err := requireOwner(actorID, g); err != nil {
		return entities.Gig{}, err
	}
	in, err = normalizeGigInput(in)
	if err != nil {
		return entities.Gig{}, err
	}

	g.Title = in.Title
	g.Description = in.Description
	g.Budget = in.Budget
	g.Location = in.Location
	g.Category = in.Category
	g.Deadline = in.Deadline
	g.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, g)
	if err != nil {
		return entities.Gig{}, err
	}
	if updated.ID == "" {
		return entities.Gig{}, ErrGigNotFound
	}
	return updated, nil
}

func (u *GigUseCase) ToggleActive(ctx context.Context, actorID, id string) (entities.Gig, error) {
	g, err := u.load(ctx, id)
	if err != nil {
		return entities.Gig{}, err
	}
	if err := requireOwner(actorID, g); err != nil {
		return entities.Gig{}, err
	}
	updated, err := u.repo.SetActive(ctx, id, !g.IsActive)
	if err != nil {
		return entities.Gig{}, err
	}
	if updated.ID == "" {
		return entities.Gig{}, ErrGigNotFound
	}
	log.WithFields(log.Fields{"gig_id": id, "is_active": updated.IsActive}).Info("[gig][usecase] toggled")
	return updated, nil
}

func (u *GigUseCase) Delete(ctx context.Context, actorID, id string) error {
	g, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(actorID, g); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.WithField("gig_id", id).Info("[gig][usecase] deleted")
	return nil
}

func (u *GigUseCase) List(ctx context.Context, q GigListQuery) (GigListResult, error) {
	if q.Category != "" && !q.Category.Valid() {
		return GigListResult{}, &ValidationError{Field: "category", Message: "unknown category"}
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = DefaultGigPageSize
	}
	if size > MaxGigPageSize {
		size = MaxGigPageSize
	}

	gigs, total, err := u.repo.List(ctx, interfaces.GigFilter{
		Category:        q.Category,
		EmployerID:      q.EmployerID,
		IncludeInactive: q.IncludeInactive,
		Limit:           size,
		Offset:          (page - 1) * size,
	})
	if err != nil {
		return GigListResult{}, err
	}
	return GigListResult{Gigs: gigs, Total: total, Page: page, PageSize: size}, nil
}

func (u *GigUseCase) Stats(ctx context.Context) (GigStats, error) {
	n, err := u.repo.CountFeaturedActive(ctx)
	if err != nil {
		return GigStats{}, err
	}
	return GigStats{FeaturedActive: n}, nil
}

func (u *GigUseCase) load(ctx context.Context, id string) (entities.Gig, error) {
	return loadGig(ctx, u.repo, id)
}

func normalizeGigInput(in GigInput) (GigInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	if in.Location == "" {
		in.Location = entities.DefaultGigLocation
	}
	if in.Category == "" {
		in.Category = entities.GigCategoryOther
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return in, &ValidationError{Field: strings.ToLower(fe.Field()), Message: validationMessage(fe)}
		}
		return in, &ValidationError{Field: "gig", Message: err.Error()}
	}
	if !in.Budget.IsPositive() {
		return in, &ValidationError{Field: "budget", Message: "must be greater than zero"}
	}
	if !in.Category.Valid() {
		return in, &ValidationError{Field: "category", Message: "unknown category"}
	}
	return in, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}
