package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"quickgigs/internal/adapter/persistence/repository"
	"quickgigs/internal/adapter/persistence/repository/sqlitetest"
	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"
	mock_interfaces "quickgigs/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type featuringFixture struct {
	uc       *FeaturingUseCase
	gateway  *mock_interfaces.MockIPaymentGateway
	gigs     *repository.GigGormRepository
	payments *repository.PaymentGormRepository
	gig      entities.Gig
}

func newFeaturingFixture(t *testing.T) *featuringFixture {
	t.Helper()
	db := sqlitetest.Open(t, repository.Models()...)
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().Provider().Return("stripe").AnyTimes()
	signer := mock_interfaces.NewMockICallbackSigner(ctrl)
	signer.EXPECT().SignCallback(gomock.Any(), gomock.Any(), 45*time.Minute).DoAndReturn(
		func(userID, gigID string, _ time.Duration) (string, error) {
			return "st-" + userID + "-" + gigID, nil
		}).AnyTimes()

	fx := &featuringFixture{
		gateway:  gateway,
		gigs:     repository.NewGigGormRepository(db),
		payments: repository.NewPaymentGormRepository(db),
	}
	fx.uc = NewFeaturingUseCase(fx.gigs, fx.payments, repository.NewWebhookEventGormRepository(db), gateway, signer, FeaturingConfig{
		Price:          decimal.RequireFromString("9.99"),
		Currency:       "usd",
		ProductName:    "Featured Gig",
		SessionTTL:     30 * time.Minute,
		GatewayTimeout: time.Second,
		PublicBaseURL:  "https://jobs.example/",
	}, nil)

	now := time.Now().UTC()
	gig, err := fx.gigs.Create(context.Background(), entities.Gig{
		ID: "gig-1", Title: "Logo design", Description: "d", EmployerID: "emp-1",
		Budget: decimal.NewFromInt(80), Location: "Remote", Category: entities.GigCategoryDesign,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	fx.gig = gig
	return fx
}

func (fx *featuringFixture) expectCheckout(sessionID string) {
	fx.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{
		SessionID:   sessionID,
		RedirectURL: "https://checkout.example/" + sessionID,
		Raw:         json.RawMessage(`{"id":"` + sessionID + `"}`),
	}, nil)
}

func (fx *featuringFixture) request(t *testing.T) FeaturingResult {
	t.Helper()
	res, err := fx.uc.RequestFeaturing(context.Background(), "emp-1", fx.gig.ID)
	require.NoError(t, err)
	return res
}

func (fx *featuringFixture) reloadGig(t *testing.T) entities.Gig {
	t.Helper()
	g, err := fx.gigs.GetByID(context.Background(), fx.gig.ID)
	require.NoError(t, err)
	return g
}

func (fx *featuringFixture) webhook(kind interfaces.WebhookEventKind, eventID, sessionID string) {
	fx.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(interfaces.GatewayEvent{
		ID:        eventID,
		Type:      "checkout.session." + string(kind),
		Kind:      kind,
		SessionID: sessionID,
	}, nil)
}

func TestFeaturing_RequestCreatesPendingPayment(t *testing.T) {
	fx := newFeaturingFixture(t)

	var got interfaces.CheckoutSessionRequest
	fx.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
			got = req
			return interfaces.CheckoutSession{SessionID: "cs_1", RedirectURL: "https://checkout.example/cs_1"}, nil
		})

	res := fx.request(t)

	assert.Equal(t, "https://checkout.example/cs_1", res.RedirectURL)
	assert.Equal(t, entities.PaymentStatusPending, res.Payment.Status)
	assert.Equal(t, "cs_1", res.Payment.SessionID())
	assert.True(t, res.Payment.Amount.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, "https://jobs.example/v1/payments/success/gig-1?state=st-emp-1-gig-1", got.SuccessURL)
	assert.Equal(t, "https://jobs.example/v1/payments/cancel/gig-1?state=st-emp-1-gig-1", got.CancelURL)
	assert.Equal(t, "featured_gig", got.Metadata["payment_type"])
	assert.Equal(t, "emp-1", got.Metadata["user_id"])
	assert.Equal(t, "gig-1", got.Metadata["gig_id"])
	assert.False(t, fx.reloadGig(t).IsFeatured)
}

func TestFeaturing_RequestReusesOpenSession(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")

	first := fx.request(t)
	second := fx.request(t)

	assert.True(t, second.Reused)
	assert.Equal(t, first.Payment.ID, second.Payment.ID)
	payments, err := fx.uc.PaymentHistory(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestFeaturing_RequestRejections(t *testing.T) {
	fx := newFeaturingFixture(t)

	_, err := fx.uc.RequestFeaturing(context.Background(), "stranger", fx.gig.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = fx.uc.RequestFeaturing(context.Background(), "emp-1", "missing")
	assert.ErrorIs(t, err, ErrGigNotFound)

	fx.expectCheckout("cs_1")
	fx.request(t)
	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	_, err = fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`{}`)})
	require.NoError(t, err)

	_, err = fx.uc.RequestFeaturing(context.Background(), "emp-1", fx.gig.ID)
	assert.ErrorIs(t, err, ErrAlreadyFeatured)
}

func TestFeaturing_GatewayTimeoutLeavesNoPayment(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.uc.cfg.GatewayTimeout = 20 * time.Millisecond
	fx.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
			<-ctx.Done()
			return interfaces.CheckoutSession{}, ctx.Err()
		})

	_, err := fx.uc.RequestFeaturing(context.Background(), "emp-1", fx.gig.ID)

	require.ErrorIs(t, err, ErrPaymentGateway)
	var gerr *PaymentGatewayError
	require.True(t, errors.As(err, &gerr))
	assert.True(t, gerr.Timeout)
	payments, err := fx.uc.PaymentHistory(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Empty(t, payments)
	assert.False(t, fx.reloadGig(t).IsFeatured)
}

func TestFeaturing_DuplicateWebhookAppliesOnce(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	pending := fx.request(t)

	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	payload := []byte(`{"id":"evt_1"}`)

	first, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	require.NoError(t, err)
	second, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	require.NoError(t, err)

	assert.True(t, first.Applied)
	assert.True(t, second.Duplicate)
	assert.False(t, second.Applied)
	assert.True(t, fx.reloadGig(t).IsFeatured)

	history, err := fx.uc.PaymentTransitions(context.Background(), "emp-1", pending.Payment.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entities.PaymentStatusPending, history[0].OldStatus)
	assert.Equal(t, entities.PaymentStatusCompleted, history[0].NewStatus)
	assert.Equal(t, ActorWebhook, history[0].Actor)
}

func TestFeaturing_DistinctEventsForSameSessionAreNoops(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)

	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	fx.webhook(interfaces.WebhookCompleted, "evt_2", "cs_1")

	_, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`a`)})
	require.NoError(t, err)
	res, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`b`)})
	require.NoError(t, err)

	assert.False(t, res.Duplicate)
	assert.False(t, res.Applied)
}

func TestFeaturing_InvalidSignatureHasNoSideEffects(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	pending := fx.request(t)
	fx.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature)

	_, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`{"id":"evt_1"}`), Signature: "bad"})

	assert.ErrorIs(t, err, ErrInvalidSignature)
	p, err := fx.payments.GetByID(context.Background(), pending.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPending, p.Status)
	assert.False(t, fx.reloadGig(t).IsFeatured)
}

func TestFeaturing_WebhookWithoutEventIDDedupesOnPayload(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)
	fx.webhook(interfaces.WebhookCompleted, "", "cs_1")
	fx.webhook(interfaces.WebhookCompleted, "", "cs_1")
	payload := []byte(`{"session":"cs_1"}`)

	first, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	require.NoError(t, err)
	second, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.EventID, "hash:"))
	assert.Equal(t, first.EventID, second.EventID)
	assert.True(t, second.Duplicate)
}

func TestFeaturing_WebhookForUnknownSessionIsNoop(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.webhook(interfaces.WebhookCompleted, "evt_9", "cs_unknown")

	res, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`{}`)})
	require.NoError(t, err)
	assert.False(t, res.Applied)
}

func TestFeaturing_ConfirmSuccessVerifiesWithGateway(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)

	fx.gateway.EXPECT().VerifySession(gomock.Any(), interfaces.SessionLookup{SessionID: "cs_1"}).
		Return(interfaces.SessionStatus{SessionID: "cs_1", Paid: false}, nil)
	res, err := fx.uc.ConfirmSuccess(context.Background(), "emp-1", fx.gig.ID, interfaces.SessionLookup{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.False(t, fx.reloadGig(t).IsFeatured)

	fx.gateway.EXPECT().VerifySession(gomock.Any(), interfaces.SessionLookup{SessionID: "cs_1"}).
		Return(interfaces.SessionStatus{SessionID: "cs_1", Paid: true}, nil)
	res, err = fx.uc.ConfirmSuccess(context.Background(), "emp-1", fx.gig.ID, interfaces.SessionLookup{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, entities.PaymentStatusCompleted, res.Payment.Status)
	assert.True(t, fx.reloadGig(t).IsFeatured)

	again, err := fx.uc.ConfirmSuccess(context.Background(), "emp-1", fx.gig.ID, interfaces.SessionLookup{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.False(t, again.Applied)
	assert.Equal(t, OutcomeNoop, again.Outcome)
}

func TestFeaturing_ConfirmSuccessWithoutSessionUsesLatestPending(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)
	fx.gateway.EXPECT().VerifySession(gomock.Any(), interfaces.SessionLookup{SessionID: "cs_1"}).
		Return(interfaces.SessionStatus{SessionID: "cs_1", Paid: true}, nil)

	res, err := fx.uc.ConfirmSuccess(context.Background(), "emp-1", fx.gig.ID, interfaces.SessionLookup{})
	require.NoError(t, err)
	assert.True(t, res.Applied)
}

func TestFeaturing_ConfirmSuccessVerifyErrorWaitsForWebhook(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)
	fx.gateway.EXPECT().VerifySession(gomock.Any(), gomock.Any()).Return(interfaces.SessionStatus{}, errors.New("boom"))

	res, err := fx.uc.ConfirmSuccess(context.Background(), "emp-1", fx.gig.ID, interfaces.SessionLookup{SessionID: "cs_1"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoop, res.Outcome)
	assert.Equal(t, entities.PaymentStatusPending, res.Payment.Status)
}

func TestFeaturing_ConfirmSuccessRequiresOwner(t *testing.T) {
	fx := newFeaturingFixture(t)
	_, err := fx.uc.ConfirmSuccess(context.Background(), "stranger", fx.gig.ID, interfaces.SessionLookup{SessionID: "cs_1"})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestFeaturing_ConfirmCancelFailsPayment(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)

	res, err := fx.uc.ConfirmCancel(context.Background(), "emp-1", fx.gig.ID, "cs_1")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, entities.PaymentStatusFailed, res.Payment.Status)
	assert.False(t, fx.reloadGig(t).IsFeatured)

	fx.webhook(interfaces.WebhookCompleted, "evt_late", "cs_1")
	late, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`{}`)})
	require.NoError(t, err)
	assert.False(t, late.Applied)
	assert.False(t, fx.reloadGig(t).IsFeatured)
}

func TestFeaturing_RefundClearsFeatured(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)
	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	_, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`1`)})
	require.NoError(t, err)
	require.True(t, fx.reloadGig(t).IsFeatured)

	fx.webhook(interfaces.WebhookRefunded, "evt_2", "cs_1")
	res, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`2`)})
	require.NoError(t, err)

	assert.True(t, res.Applied)
	assert.False(t, fx.reloadGig(t).IsFeatured)
	p, err := fx.payments.GetBySessionID(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusRefunded, p.Status)
}

func TestFeaturing_RefundOfPendingIsNoop(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)

	res, err := fx.uc.RecordRefund(context.Background(), "cs_1", "")
	require.NoError(t, err)
	assert.False(t, res.Applied)
}

func TestFeaturing_SweeperFailsStalePending(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	fx.request(t)

	n, err := fx.uc.SweepStalePayments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	fx.uc.now = func() time.Time { return time.Now().Add(time.Hour) }
	n, err = fx.uc.SweepStalePayments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	p, err := fx.payments.GetBySessionID(context.Background(), "cs_1")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusFailed, p.Status)

	history, err := fx.payments.ListHistory(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ActorSweeper, history[0].Actor)
	assert.Nil(t, history[0].ChangedBy)
}

func TestFeaturing_ExpiredSessionIsNotReused(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	first := fx.request(t)

	fx.uc.now = func() time.Time { return time.Now().Add(time.Hour) }
	fx.expectCheckout("cs_2")
	second := fx.request(t)

	assert.False(t, second.Reused)
	assert.NotEqual(t, first.Payment.ID, second.Payment.ID)

	old, err := fx.payments.GetByID(context.Background(), first.Payment.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusFailed, old.Status)
	history, err := fx.payments.ListHistory(context.Background(), old.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, ActorUser, history[0].Actor)
	require.NotNil(t, history[0].ChangedBy)
	assert.Equal(t, "emp-1", *history[0].ChangedBy)
}

func TestFeaturing_ConcurrentRequestsKeepOnePendingPayment(t *testing.T) {
	fx := newFeaturingFixture(t)

	var arrived sync.WaitGroup
	arrived.Add(2)
	var calls atomic.Int32
	fx.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
			// Both requests pass the reuse check before either persists.
			arrived.Done()
			arrived.Wait()
			id := fmt.Sprintf("cs_%d", calls.Add(1))
			return interfaces.CheckoutSession{SessionID: id, RedirectURL: "https://checkout.example/" + id}, nil
		}).Times(2)

	results := make([]FeaturingResult, 2)
	errs := make([]error, 2)
	var done sync.WaitGroup
	for i := range results {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			results[i], errs[i] = fx.uc.RequestFeaturing(context.Background(), "emp-1", fx.gig.ID)
		}(i)
	}
	done.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, results[0].Payment.ID, results[1].Payment.ID)
	assert.Equal(t, results[0].RedirectURL, results[1].RedirectURL)
	assert.True(t, results[0].Reused != results[1].Reused)

	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	fx.webhook(interfaces.WebhookCompleted, "evt_2", "cs_2")
	for _, payload := range []string{`{"id":"evt_1"}`, `{"id":"evt_2"}`} {
		_, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(payload)})
		require.NoError(t, err)
	}

	payments, err := fx.uc.PaymentHistory(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, entities.PaymentStatusCompleted, payments[0].Status)
	assert.True(t, fx.reloadGig(t).IsFeatured)
}

func TestFeaturing_RepairFeaturedDrift(t *testing.T) {
	fx := newFeaturingFixture(t)
	now := time.Now().UTC()
	_, err := fx.gigs.Create(context.Background(), entities.Gig{
		ID: "gig-drift", Title: "t", Description: "d", EmployerID: "emp-2",
		Budget: decimal.NewFromInt(5), Location: "Remote", Category: entities.GigCategoryOther,
		IsActive: true, IsFeatured: true, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	n, err := fx.uc.RepairFeaturedDrift(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	g, err := fx.gigs.GetByID(context.Background(), "gig-drift")
	require.NoError(t, err)
	assert.False(t, g.IsFeatured)
}

func TestFeaturing_PaymentTransitionsOwnerOnly(t *testing.T) {
	fx := newFeaturingFixture(t)
	fx.expectCheckout("cs_1")
	res := fx.request(t)

	_, err := fx.uc.PaymentTransitions(context.Background(), "stranger", res.Payment.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	_, err = fx.uc.PaymentTransitions(context.Background(), "emp-1", "missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestFeaturing_MetricsObserved(t *testing.T) {
	fx := newFeaturingFixture(t)
	ctrl := gomock.NewController(t)
	metrics := mock_interfaces.NewMockIFeaturingMetrics(ctrl)
	fx.uc.metrics = metrics

	metrics.EXPECT().ObserveGatewayCall("create_checkout_session", gomock.Any(), nil)
	fx.expectCheckout("cs_1")
	fx.request(t)

	metrics.EXPECT().ObserveGatewayCall("parse_webhook", gomock.Any(), nil)
	metrics.EXPECT().ObserveReconciliation(ActorWebhook, string(entities.PaymentStatusCompleted))
	metrics.EXPECT().ObserveWebhook("stripe", string(interfaces.WebhookCompleted))
	fx.webhook(interfaces.WebhookCompleted, "evt_1", "cs_1")
	_, err := fx.uc.HandleWebhook(context.Background(), interfaces.WebhookRequest{Payload: []byte(`{}`)})
	require.NoError(t, err)
}
