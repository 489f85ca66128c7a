package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickgigs/internal/adapter/persistence/repository/sqlitetest"
	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newGig(id, employer string, createdAt time.Time) entities.Gig {
	return entities.Gig{
		ID:          id,
		Title:       "Build a landing page",
		Description: "Static page with a contact form",
		EmployerID:  employer,
		Budget:      decimal.RequireFromString("500.00"),
		Location:    entities.DefaultGigLocation,
		Category:    entities.GigCategoryWebDev,
		IsActive:    true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func newPendingPayment(id, userID, gigID, session string, createdAt time.Time) entities.Payment {
	return entities.Payment{
		ID:                id,
		UserID:            userID,
		GigID:             &gigID,
		Amount:            decimal.RequireFromString("9.99"),
		Currency:          "usd",
		ExternalSessionID: &session,
		Provider:          "sandbox",
		Type:              entities.PaymentTypeFeaturedGig,
		Status:            entities.PaymentStatusPending,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

func TestGigGormRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t, Models()...)
	gigs := NewGigGormRepository(db)
	apps := NewApplicationGormRepository(db)
	payments := NewPaymentGormRepository(db)

	t.Run("listing order and filters", func(t *testing.T) {
		for _, g := range []entities.Gig{
			newGig("g-a", "emp-1", baseTime),
			newGig("g-b", "emp-1", baseTime.Add(time.Hour)),
			newGig("g-c", "emp-2", baseTime),
		} {
			_, err := gigs.Create(ctx, g)
			require.NoError(t, err)
		}
		require.NoError(t, db.Model(&gigRecord{}).Where("id = ?", "g-c").Update("is_featured", true).Error)
		_, err := gigs.SetActive(ctx, "g-a", false)
		require.NoError(t, err)

		list, total, err := gigs.List(ctx, interfaces.GigFilter{})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Equal(t, "g-c", list[0].ID)
		require.Equal(t, "g-b", list[1].ID)

		list, total, err = gigs.List(ctx, interfaces.GigFilter{IncludeInactive: true, EmployerID: "emp-1"})
		require.NoError(t, err)
		require.EqualValues(t, 2, total)
		require.Equal(t, []string{"g-b", "g-a"}, []string{list[0].ID, list[1].ID})

		list, _, err = gigs.List(ctx, interfaces.GigFilter{IncludeInactive: true, Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "g-b", list[0].ID)

		n, err := gigs.CountFeaturedActive(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("update never touches featured flag", func(t *testing.T) {
		g, err := gigs.GetByID(ctx, "g-c")
		require.NoError(t, err)
		g.IsFeatured = false
		g.Title = "Renamed"
		updated, err := gigs.Update(ctx, g)
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Title)
		require.True(t, updated.IsFeatured)
	})

	t.Run("missing gig", func(t *testing.T) {
		g, err := gigs.GetByID(ctx, "nope")
		require.NoError(t, err)
		require.Empty(t, g.ID)
		g, err = gigs.SetActive(ctx, "nope", true)
		require.NoError(t, err)
		require.Empty(t, g.ID)
	})

	t.Run("delete cascades applications and clears payment gig", func(t *testing.T) {
		_, err := gigs.Create(ctx, newGig("g-del", "emp-1", baseTime))
		require.NoError(t, err)
		_, err = apps.Create(ctx, entities.Application{ID: "a-del", GigID: "g-del", ApplicantID: "free-1", Status: entities.ApplicationStatusPending, CreatedAt: baseTime, UpdatedAt: baseTime})
		require.NoError(t, err)
		_, err = payments.Create(ctx, newPendingPayment("p-del", "emp-1", "g-del", "cs_del", baseTime))
		require.NoError(t, err)

		require.NoError(t, gigs.Delete(ctx, "g-del"))

		a, err := apps.GetByID(ctx, "a-del")
		require.NoError(t, err)
		require.Empty(t, a.ID)
		p, err := payments.GetByID(ctx, "p-del")
		require.NoError(t, err)
		require.Equal(t, "p-del", p.ID)
		require.Nil(t, p.GigID)
	})
}

func TestApplicationGormRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t, Models()...)
	repo := NewApplicationGormRepository(db)

	app := entities.Application{
		ID:          "a-1",
		GigID:       "g-1",
		ApplicantID: "free-1",
		CoverLetter: "I have shipped many landing pages and can start tomorrow morning.",
		Status:      entities.ApplicationStatusPending,
		CreatedAt:   baseTime,
		UpdatedAt:   baseTime,
	}

	t.Run("pair is unique", func(t *testing.T) {
		_, err := repo.Create(ctx, app)
		require.NoError(t, err)

		dup := app
		dup.ID = "a-2"
		_, err = repo.Create(ctx, dup)
		require.True(t, errors.Is(err, interfaces.ErrDuplicateKey), "got %v", err)

		found, err := repo.FindByGigAndApplicant(ctx, "g-1", "free-1")
		require.NoError(t, err)
		require.Equal(t, "a-1", found.ID)
	})

	t.Run("compare and set", func(t *testing.T) {
		notes := "great fit"
		updated, applied, err := repo.CompareAndSetStatus(ctx, entities.ApplicationTransition{
			ApplicationID: "a-1", From: entities.ApplicationStatusPending, To: entities.ApplicationStatusAccepted, EmployerNotes: &notes,
		})
		require.NoError(t, err)
		require.True(t, applied)
		require.Equal(t, entities.ApplicationStatusAccepted, updated.Status)
		require.Equal(t, "great fit", updated.EmployerNotes)

		current, applied, err := repo.CompareAndSetStatus(ctx, entities.ApplicationTransition{
			ApplicationID: "a-1", From: entities.ApplicationStatusPending, To: entities.ApplicationStatusWithdrawn,
		})
		require.NoError(t, err)
		require.False(t, applied)
		require.Equal(t, entities.ApplicationStatusAccepted, current.Status)
	})

	t.Run("listing", func(t *testing.T) {
		list, err := repo.ListByApplicant(ctx, "free-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		list, err = repo.ListByGig(ctx, "g-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
	})
}

func TestPaymentGormRepository_Transition(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t, Models()...)
	gigs := NewGigGormRepository(db)
	payments := NewPaymentGormRepository(db)

	_, err := gigs.Create(ctx, newGig("g-1", "emp-1", baseTime))
	require.NoError(t, err)
	_, err = gigs.Create(ctx, newGig("g-2", "emp-1", baseTime))
	require.NoError(t, err)
	_, err = payments.Create(ctx, newPendingPayment("p-1", "emp-1", "g-1", "cs_1", baseTime))
	require.NoError(t, err)

	t.Run("session id is unique", func(t *testing.T) {
		_, err := payments.Create(ctx, newPendingPayment("p-dup", "emp-1", "g-1", "cs_1", baseTime))
		require.True(t, errors.Is(err, interfaces.ErrDuplicateKey), "got %v", err)
	})

	t.Run("one pending featured payment per gig", func(t *testing.T) {
		_, err := payments.Create(ctx, newPendingPayment("p-race", "emp-1", "g-1", "cs_race", baseTime))
		require.True(t, errors.Is(err, interfaces.ErrDuplicateKey), "got %v", err)

		_, err = payments.Create(ctx, newPendingPayment("p-0", "emp-1", "g-2", "cs_0", baseTime.Add(-time.Hour)))
		require.NoError(t, err)
	})

	t.Run("latest pending", func(t *testing.T) {
		p, err := payments.LatestPendingForGig(ctx, "g-1", entities.PaymentTypeFeaturedGig)
		require.NoError(t, err)
		require.Equal(t, "p-1", p.ID)
	})

	t.Run("completion sets featured and writes history", func(t *testing.T) {
		updated, applied, err := payments.Transition(ctx, entities.PaymentTransition{
			PaymentID: "p-1", From: entities.PaymentStatusPending, To: entities.PaymentStatusCompleted,
			Featured: entities.FeaturedSet, Actor: "gateway:webhook", At: baseTime.Add(time.Minute),
		})
		require.NoError(t, err)
		require.True(t, applied)
		require.Equal(t, entities.PaymentStatusCompleted, updated.Status)

		g, err := gigs.GetByID(ctx, "g-1")
		require.NoError(t, err)
		require.True(t, g.IsFeatured)

		hist, err := payments.ListHistory(ctx, "p-1")
		require.NoError(t, err)
		require.Len(t, hist, 1)
		require.Equal(t, entities.PaymentStatusPending, hist[0].OldStatus)
		require.Equal(t, entities.PaymentStatusCompleted, hist[0].NewStatus)
		require.Equal(t, "gateway:webhook", hist[0].Actor)
	})

	t.Run("second completion is not applied", func(t *testing.T) {
		current, applied, err := payments.Transition(ctx, entities.PaymentTransition{
			PaymentID: "p-1", From: entities.PaymentStatusPending, To: entities.PaymentStatusCompleted, Featured: entities.FeaturedSet,
		})
		require.NoError(t, err)
		require.False(t, applied)
		require.Equal(t, entities.PaymentStatusCompleted, current.Status)

		hist, err := payments.ListHistory(ctx, "p-1")
		require.NoError(t, err)
		require.Len(t, hist, 1)
	})

	t.Run("no drift while backed", func(t *testing.T) {
		drift, err := payments.ListFeaturedDrift(ctx)
		require.NoError(t, err)
		require.Empty(t, drift)
		cleared, err := payments.ClearFeatured(ctx, "g-1")
		require.NoError(t, err)
		require.False(t, cleared)
	})

	t.Run("refund clears featured", func(t *testing.T) {
		_, applied, err := payments.Transition(ctx, entities.PaymentTransition{
			PaymentID: "p-1", From: entities.PaymentStatusCompleted, To: entities.PaymentStatusRefunded, Featured: entities.FeaturedClear,
		})
		require.NoError(t, err)
		require.True(t, applied)
		g, err := gigs.GetByID(ctx, "g-1")
		require.NoError(t, err)
		require.False(t, g.IsFeatured)
	})

	t.Run("stale pending", func(t *testing.T) {
		stale, err := payments.ListStalePending(ctx, baseTime)
		require.NoError(t, err)
		require.Len(t, stale, 1)
		require.Equal(t, "p-0", stale[0].ID)
	})

	t.Run("drift detection", func(t *testing.T) {
		require.NoError(t, db.Model(&gigRecord{}).Where("id = ?", "g-1").Update("is_featured", true).Error)
		drift, err := payments.ListFeaturedDrift(ctx)
		require.NoError(t, err)
		require.Len(t, drift, 1)
		cleared, err := payments.ClearFeatured(ctx, "g-1")
		require.NoError(t, err)
		require.True(t, cleared)
	})

	t.Run("history by user", func(t *testing.T) {
		list, err := payments.ListByUser(ctx, "emp-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "p-1", list[0].ID)
	})

	t.Run("settled payment frees the pending slot", func(t *testing.T) {
		_, err := payments.Create(ctx, newPendingPayment("p-2", "emp-1", "g-1", "cs_2", baseTime.Add(time.Hour)))
		require.NoError(t, err)
		p, err := payments.LatestPendingForGig(ctx, "g-1", entities.PaymentTypeFeaturedGig)
		require.NoError(t, err)
		require.Equal(t, "p-2", p.ID)
	})
}

func TestWebhookEventGormRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t, Models()...)
	repo := NewWebhookEventGormRepository(db)

	ev := entities.WebhookEvent{ID: "w-1", Provider: "stripe", ProviderEventID: "evt_1", EventType: "checkout.session.completed", CreatedAt: baseTime}
	stored, created, err := repo.RecordIfNotExists(ctx, ev)
	require.NoError(t, err)
	require.True(t, created)
	require.False(t, stored.Processed())

	require.NoError(t, repo.MarkProcessed(ctx, "w-1", "boom"))
	again, created, err := repo.RecordIfNotExists(ctx, entities.WebhookEvent{ID: "w-2", Provider: "stripe", ProviderEventID: "evt_1", CreatedAt: baseTime})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "w-1", again.ID)
	require.False(t, again.Processed())
	require.Equal(t, "boom", again.ProcessingError)

	require.NoError(t, repo.MarkProcessed(ctx, "w-1", ""))
	again, _, err = repo.RecordIfNotExists(ctx, entities.WebhookEvent{ID: "w-3", Provider: "stripe", ProviderEventID: "evt_1", CreatedAt: baseTime})
	require.NoError(t, err)
	require.True(t, again.Processed())
}
