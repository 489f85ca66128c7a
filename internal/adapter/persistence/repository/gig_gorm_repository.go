package repository

import (
	"context"
	"errors"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"gorm.io/gorm"
)

const gigListingOrder = "is_featured DESC, created_at DESC, id DESC"

// GigGormRepository persists Gig entities in a relational database.
type GigGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IGigRepository = (*GigGormRepository)(nil)

func NewGigGormRepository(db *gorm.DB) *GigGormRepository {
	return &GigGormRepository{db: db}
}

func (r *GigGormRepository) Create(ctx context.Context, g entities.Gig) (entities.Gig, error) {
	rec := toGigRecord(g)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Gig{}, translateWriteError(err)
	}
	return fromGigRecord(rec), nil
}

func (r *GigGormRepository) GetByID(ctx context.Context, id string) (entities.Gig, error) {
	return findGig(r.db.WithContext(ctx), id)
}

func (r *GigGormRepository) Update(ctx context.Context, g entities.Gig) (entities.Gig, error) {
	res := r.db.WithContext(ctx).Model(&gigRecord{}).Where("id = ?", g.ID).Updates(map[string]any{
		"title":       g.Title,
		"description": g.Description,
		"budget":      g.Budget,
		"location":    g.Location,
		"category":    string(g.Category),
		"deadline":    utcPtr(g.Deadline),
		"updated_at":  g.UpdatedAt.UTC(),
	})
	if res.Error != nil {
		return entities.Gig{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Gig{}, nil
	}
	return r.GetByID(ctx, g.ID)
}

func (r *GigGormRepository) SetActive(ctx context.Context, id string, active bool) (entities.Gig, error) {
	res := r.db.WithContext(ctx).Model(&gigRecord{}).Where("id = ?", id).Updates(map[string]any{
		"is_active":  active,
		"updated_at": nowUTC(),
	})
	if res.Error != nil {
		return entities.Gig{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Gig{}, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes the gig and its applications and clears the gig reference of
// its payments, in one transaction.
func (r *GigGormRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gig_id = ?", id).Delete(&applicationRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&paymentRecord{}).Where("gig_id = ?", id).Update("gig_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&gigRecord{}).Error
	})
}

func (r *GigGormRepository) List(ctx context.Context, filter interfaces.GigFilter) ([]entities.Gig, int64, error) {
	q := r.db.WithContext(ctx).Model(&gigRecord{})
	if !filter.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}
	if filter.EmployerID != "" {
		q = q.Where("employer_id = ?", filter.EmployerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []gigRecord
	q = q.Order(gigListingOrder)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	gigs := make([]entities.Gig, 0, len(recs))
	for _, rec := range recs {
		gigs = append(gigs, fromGigRecord(rec))
	}
	return gigs, total, nil
}

func (r *GigGormRepository) CountFeaturedActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&gigRecord{}).
		Where("is_featured = ? AND is_active = ?", true, true).
		Count(&n).Error
	return n, err
}

func findGig(db *gorm.DB, id string) (entities.Gig, error) {
	var rec gigRecord
	if err := db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Gig{}, nil
		}
		return entities.Gig{}, err
	}
	return fromGigRecord(rec), nil
}
