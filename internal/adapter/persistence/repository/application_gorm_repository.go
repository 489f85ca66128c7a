package repository

import (
	"context"
	"errors"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ApplicationGormRepository persists Application entities. The unique index
// idx_applications_gig_applicant enforces one application per pair.
type ApplicationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IApplicationRepository = (*ApplicationGormRepository)(nil)

func NewApplicationGormRepository(db *gorm.DB) *ApplicationGormRepository {
	return &ApplicationGormRepository{db: db}
}

func (r *ApplicationGormRepository) Create(ctx context.Context, a entities.Application) (entities.Application, error) {
	rec := toApplicationRecord(a)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Application{}, translateWriteError(err)
	}
	return fromApplicationRecord(rec), nil
}

func (r *ApplicationGormRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *ApplicationGormRepository) FindByGigAndApplicant(ctx context.Context, gigID, applicantID string) (entities.Application, error) {
	return r.first(r.db.WithContext(ctx).Where("gig_id = ? AND applicant_id = ?", gigID, applicantID))
}

func (r *ApplicationGormRepository) ListByGig(ctx context.Context, gigID string) ([]entities.Application, error) {
	return r.list(r.db.WithContext(ctx).Where("gig_id = ?", gigID))
}

func (r *ApplicationGormRepository) ListByApplicant(ctx context.Context, applicantID string) ([]entities.Application, error) {
	return r.list(r.db.WithContext(ctx).Where("applicant_id = ?", applicantID))
}

// CompareAndSetStatus writes the new status only while the row still carries
// t.From. When nothing was written it returns the current row, or a zero
// value if the application does not exist.
func (r *ApplicationGormRepository) CompareAndSetStatus(ctx context.Context, t entities.ApplicationTransition) (entities.Application, bool, error) {
	updates := map[string]any{
		"status":     string(t.To),
		"updated_at": nowUTC(),
	}
	if t.EmployerNotes != nil {
		updates["employer_notes"] = *t.EmployerNotes
	}

	res := r.db.WithContext(ctx).Model(&applicationRecord{}).
		Where("id = ? AND status = ?", t.ApplicationID, string(t.From)).
		Updates(updates)
	if res.Error != nil {
		return entities.Application{}, false, res.Error
	}

	current, err := r.GetByID(ctx, t.ApplicationID)
	if err != nil {
		return entities.Application{}, false, err
	}
	return current, res.RowsAffected > 0, nil
}

func (r *ApplicationGormRepository) first(q *gorm.DB) (entities.Application, error) {
	var rec applicationRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}
	return fromApplicationRecord(rec), nil
}

func (r *ApplicationGormRepository) list(q *gorm.DB) ([]entities.Application, error) {
	var recs []applicationRecord
	if err := q.Order("created_at DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Application, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromApplicationRecord(rec))
	}
	return out, nil
}
