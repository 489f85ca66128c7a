package repository

import (
	"context"
	"errors"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errTransitionNotApplied = errors.New("payment transition not applied")

// completedFeaturedPaymentExists matches gigs backed by a completed
// featured_gig payment. Used with the gigs table in scope.
const completedFeaturedPaymentExists = `EXISTS (SELECT 1 FROM payments p WHERE p.gig_id = gigs.id AND p.payment_type = ? AND p.status = ?)`

// PaymentGormRepository persists payments, their history and the gig
// featured projection that moves with them.
type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	rec := toPaymentRecord(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Payment{}, translateWriteError(err)
	}
	return fromPaymentRecord(rec), nil
}

func (r *PaymentGormRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	return firstPayment(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *PaymentGormRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	return firstPayment(r.db.WithContext(ctx).Where("external_session_id = ?", sessionID))
}

func (r *PaymentGormRepository) LatestPendingForGig(ctx context.Context, gigID string, paymentType entities.PaymentType) (entities.Payment, error) {
	var recs []paymentRecord
	err := r.db.WithContext(ctx).
		Where("gig_id = ? AND payment_type = ? AND status = ?", gigID, string(paymentType), string(entities.PaymentStatusPending)).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return entities.Payment{}, err
	}
	if len(recs) == 0 {
		return entities.Payment{}, nil
	}
	return fromPaymentRecord(recs[0]), nil
}

func (r *PaymentGormRepository) ListByUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	return listPayments(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC"))
}

func (r *PaymentGormRepository) ListHistory(ctx context.Context, paymentID string) ([]entities.PaymentHistory, error) {
	var recs []paymentHistoryRecord
	if err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).Order("created_at ASC, id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.PaymentHistory, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromHistoryRecord(rec))
	}
	return out, nil
}

// Transition applies the status compare-and-set, the featured projection and
// the history row in a single transaction.
func (r *PaymentGormRepository) Transition(ctx context.Context, t entities.PaymentTransition) (entities.Payment, bool, error) {
	at := t.At.UTC()
	if t.At.IsZero() {
		at = nowUTC()
	}

	var out paymentRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&paymentRecord{}).
			Where("id = ? AND status = ?", t.PaymentID, string(t.From)).
			Updates(map[string]any{"status": string(t.To), "updated_at": at})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errTransitionNotApplied
		}
		if err := tx.Where("id = ?", t.PaymentID).First(&out).Error; err != nil {
			return err
		}

		if out.GigID != nil && out.PaymentType == string(entities.PaymentTypeFeaturedGig) {
			if err := applyFeaturedEffect(tx, *out.GigID, t.Featured, at); err != nil {
				return err
			}
		}

		hist := toHistoryRecord(t.NewHistoryEntry(uuid.NewString()))
		hist.CreatedAt = at
		return tx.Create(&hist).Error
	})
	if errors.Is(err, errTransitionNotApplied) {
		current, gerr := r.GetByID(ctx, t.PaymentID)
		return current, false, gerr
	}
	if err != nil {
		return entities.Payment{}, false, err
	}
	return fromPaymentRecord(out), true, nil
}

func applyFeaturedEffect(tx *gorm.DB, gigID string, effect entities.FeaturedEffect, at time.Time) error {
	switch effect {
	case entities.FeaturedSet:
		return tx.Model(&gigRecord{}).Where("id = ?", gigID).
			Updates(map[string]any{"is_featured": true, "updated_at": at}).Error
	case entities.FeaturedClear:
		return tx.Model(&gigRecord{}).
			Where("id = ? AND NOT "+completedFeaturedPaymentExists, gigID, string(entities.PaymentTypeFeaturedGig), string(entities.PaymentStatusCompleted)).
			Updates(map[string]any{"is_featured": false, "updated_at": at}).Error
	}
	return nil
}

func (r *PaymentGormRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]entities.Payment, error) {
	return listPayments(r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.PaymentStatusPending), createdBefore.UTC()).
		Order("created_at ASC, id ASC"))
}

func (r *PaymentGormRepository) ListFeaturedDrift(ctx context.Context) ([]entities.Gig, error) {
	var recs []gigRecord
	err := r.db.WithContext(ctx).
		Where("is_featured = ? AND NOT "+completedFeaturedPaymentExists, true, string(entities.PaymentTypeFeaturedGig), string(entities.PaymentStatusCompleted)).
		Order("id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Gig, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromGigRecord(rec))
	}
	return out, nil
}

// ClearFeatured un-features the gig unless a completed featured payment backs
// it at write time.
func (r *PaymentGormRepository) ClearFeatured(ctx context.Context, gigID string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&gigRecord{}).
		Where("id = ? AND is_featured = ? AND NOT "+completedFeaturedPaymentExists, gigID, true, string(entities.PaymentTypeFeaturedGig), string(entities.PaymentStatusCompleted)).
		Updates(map[string]any{"is_featured": false, "updated_at": nowUTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func firstPayment(q *gorm.DB) (entities.Payment, error) {
	var rec paymentRecord
	if err := q.First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return fromPaymentRecord(rec), nil
}

func listPayments(q *gorm.DB) ([]entities.Payment, error) {
	var recs []paymentRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromPaymentRecord(rec))
	}
	return out, nil
}
