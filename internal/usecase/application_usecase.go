package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// maxTransitionAttempts bounds the compare-and-set retries when another
// writer changed the status between our read and our write.
const maxTransitionAttempts = 3

type SubmitApplicationInput struct {
	CoverLetter  string
	ProposedRate *decimal.Decimal
}

// IApplicationUseCase is the application lifecycle manager.
//
// Requested behavior:
//   - one application per (gig, applicant), never overwritten
//   - employer moves pending/reviewed applications forward
//   - applicant withdraws only while pending
type IApplicationUseCase interface {
	Submit(ctx context.Context, applicantID, gigID string, in SubmitApplicationInput) (entities.Application, error)
	UpdateStatus(ctx context.Context, actorID, applicationID string, status entities.ApplicationStatus, notes *string) (entities.Application, error)
	Withdraw(ctx context.Context, actorID, applicationID string) (entities.Application, error)
	Get(ctx context.Context, actorID, applicationID string) (entities.Application, error)
	ListForGig(ctx context.Context, actorID, gigID string) ([]entities.Application, error)
	ListMine(ctx context.Context, applicantID string) ([]entities.Application, error)
}

type ApplicationUseCase struct {
	repo    interfaces.IApplicationRepository
	gigRepo interfaces.IGigRepository
	now     func() time.Time
}

var _ IApplicationUseCase = (*ApplicationUseCase)(nil)

func NewApplicationUseCase(repo interfaces.IApplicationRepository, gigRepo interfaces.IGigRepository) *ApplicationUseCase {
	return &ApplicationUseCase{repo: repo, gigRepo: gigRepo, now: time.Now}
}

func (u *ApplicationUseCase) Submit(ctx context.Context, applicantID, gigID string, in SubmitApplicationInput) (entities.Application, error) {
	fields := log.Fields{"gig_id": gigID, "applicant_id": applicantID}
	log.WithFields(fields).Debug("[application][usecase] submit start")

	if strings.TrimSpace(applicantID) == "" {
		return entities.Application{}, ErrNotAuthorized
	}
	coverLetter := strings.TrimSpace(in.CoverLetter)
	if utf8.RuneCountInString(coverLetter) < entities.MinCoverLetterLength {
		return entities.Application{}, &ValidationError{Field: "cover_letter", Message: "must be at least 50 characters"}
	}
	if in.ProposedRate != nil && !in.ProposedRate.IsPositive() {
		return entities.Application{}, &ValidationError{Field: "proposed_rate", Message: "must be greater than zero"}
	}

	gig, err := loadGig(ctx, u.gigRepo, gigID)
	if err != nil {
		return entities.Application{}, err
	}
	if gig.EmployerID == applicantID {
		log.WithFields(fields).Info("[application][usecase] self application rejected")
		return entities.Application{}, ErrSelfApplication
	}
	now := u.now().UTC()
	if !gig.IsAvailable(now) {
		return entities.Application{}, ErrGigUnavailable
	}

	existing, err := u.repo.FindByGigAndApplicant(ctx, gig.ID, applicantID)
	if err != nil {
		return entities.Application{}, err
	}
	if existing.ID != "" {
		return entities.Application{}, ErrDuplicateApplication
	}

	a := entities.Application{
		ID:           uuid.NewString(),
		GigID:        gig.ID,
		ApplicantID:  applicantID,
		CoverLetter:  coverLetter,
		ProposedRate: in.ProposedRate,
		Status:       entities.ApplicationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		// The pre-check above can race with a concurrent submit; the store's
		// unique (gig, applicant) index decides.
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Application{}, ErrDuplicateApplication
		}
		return entities.Application{}, err
	}
	log.WithFields(fields).WithField("application_id", created.ID).Info("[application][usecase] submitted")
	return created, nil
}

func (u *ApplicationUseCase) UpdateStatus(ctx context.Context, actorID, applicationID string, status entities.ApplicationStatus, notes *string) (entities.Application, error) {
	app, gig, err := u.loadWithGig(ctx, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if !IsGigEmployer(actorID, app, gig) {
		return entities.Application{}, ErrNotAuthorized
	}
	if !status.Valid() {
		return entities.Application{}, &ValidationError{Field: "status", Message: "unknown status"}
	}
	return u.transition(ctx, app, status, notes, entities.CanEmployerMove, "")
}

func (u *ApplicationUseCase) Withdraw(ctx context.Context, actorID, applicationID string) (entities.Application, error) {
	app, err := u.loadApplication(ctx, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if !IsApplicant(actorID, app) {
		return entities.Application{}, ErrNotAuthorized
	}
	canWithdraw := func(from, _ entities.ApplicationStatus) bool { return entities.CanWithdraw(from) }
	return u.transition(ctx, app, entities.ApplicationStatusWithdrawn, nil, canWithdraw, "only pending applications may be withdrawn")
}

func (u *ApplicationUseCase) Get(ctx context.Context, actorID, applicationID string) (entities.Application, error) {
	app, gig, err := u.loadWithGig(ctx, applicationID)
	if err != nil {
		return entities.Application{}, err
	}
	if !IsApplicant(actorID, app) && !IsGigEmployer(actorID, app, gig) {
		return entities.Application{}, ErrNotAuthorized
	}
	return app, nil
}

func (u *ApplicationUseCase) ListForGig(ctx context.Context, actorID, gigID string) ([]entities.Application, error) {
	gig, err := loadGig(ctx, u.gigRepo, gigID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actorID, gig); err != nil {
		return nil, err
	}
	return u.repo.ListByGig(ctx, gig.ID)
}

func (u *ApplicationUseCase) ListMine(ctx context.Context, applicantID string) ([]entities.Application, error) {
	if strings.TrimSpace(applicantID) == "" {
		return nil, ErrNotAuthorized
	}
	return u.repo.ListByApplicant(ctx, applicantID)
}

// transition applies a compare-and-set status change, re-reading and
// re-checking legality when a concurrent writer moved the row first.
func (u *ApplicationUseCase) transition(
	ctx context.Context,
	app entities.Application,
	to entities.ApplicationStatus,
	notes *string,
	allowed func(from, to entities.ApplicationStatus) bool,
	reason string,
) (entities.Application, error) {
	fields := log.Fields{"application_id": app.ID, "to": to}
	for attempt := 0; attempt < maxTransitionAttempts; attempt++ {
		if !allowed(app.Status, to) {
			log.WithFields(fields).WithField("from", app.Status).Info("[application][usecase] transition rejected")
			return entities.Application{}, &InvalidTransitionError{From: app.Status, To: to, Reason: reason}
		}
		updated, applied, err := u.repo.CompareAndSetStatus(ctx, entities.ApplicationTransition{
			ApplicationID: app.ID,
			From:          app.Status,
			To:            to,
			EmployerNotes: notes,
		})
		if err != nil {
			return entities.Application{}, err
		}
		if applied {
			log.WithFields(fields).WithField("from", app.Status).Info("[application][usecase] transitioned")
			return updated, nil
		}
		if updated.ID == "" {
			return entities.Application{}, ErrApplicationNotFound
		}
		log.WithFields(fields).WithField("observed", updated.Status).Debug("[application][usecase] concurrent status change")
		app = updated
	}
	return entities.Application{}, &InvalidTransitionError{From: app.Status, To: to, Reason: "status changed concurrently"}
}

func (u *ApplicationUseCase) loadApplication(ctx context.Context, id string) (entities.Application, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	app, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if app.ID == "" {
		return entities.Application{}, ErrApplicationNotFound
	}
	return app, nil
}

func (u *ApplicationUseCase) loadWithGig(ctx context.Context, id string) (entities.Application, entities.Gig, error) {
	app, err := u.loadApplication(ctx, id)
	if err != nil {
		return entities.Application{}, entities.Gig{}, err
	}
	gig, err := loadGig(ctx, u.gigRepo, app.GigID)
	if err != nil {
		return entities.Application{}, entities.Gig{}, err
	}
	return app, gig, nil
}

func loadGig(ctx context.Context, repo interfaces.IGigRepository, id string) (entities.Gig, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Gig{}, ErrGigNotFound
	}
	g, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Gig{}, err
	}
	if g.ID == "" {
		return entities.Gig{}, ErrGigNotFound
	}
	return g, nil
}
