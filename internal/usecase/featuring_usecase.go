package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Actors recorded in payment history when no user drives the change.
const (
	ActorUser     = "user"
	ActorRedirect = "gateway:redirect"
	ActorWebhook  = "gateway:webhook"
	ActorSweeper  = "system:sweeper"
)

const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeRefunded  = "refunded"
	OutcomeNoop      = "noop"
)

const (
	defaultGatewayTimeout = 10 * time.Second
	defaultCallbackTTL    = time.Hour
	// callbackGrace lets a buyer who paid near the end of the session still
	// land on the success route with a valid state.
	callbackGrace = 15 * time.Minute
)

// FeaturingConfig is the fixed-fee featuring offer and gateway call policy.
type FeaturingConfig struct {
	Price          decimal.Decimal
	Currency       string
	ProductName    string
	SessionTTL     time.Duration
	GatewayTimeout time.Duration
	PublicBaseURL  string
}

type FeaturingResult struct {
	Payment     entities.Payment
	RedirectURL string
	Reused      bool
}

type ReconcileResult struct {
	Payment entities.Payment
	Applied bool
	Outcome string
}

type WebhookResult struct {
	EventID   string
	Kind      interfaces.WebhookEventKind
	Duplicate bool
	Applied   bool
}

// IFeaturingUseCase is the payment reconciliation engine for featured gigs.
//
// Requested behavior:
//   - open one checkout session per featuring request, persisting the payment only after the gateway answered
//   - reconcile success/cancel/webhook outcomes idempotently
//   - keep gig.is_featured in step with completed featured_gig payments
type IFeaturingUseCase interface {
	RequestFeaturing(ctx context.Context, actorID, gigID string) (FeaturingResult, error)
	ConfirmSuccess(ctx context.Context, actorID, gigID string, lookup interfaces.SessionLookup) (ReconcileResult, error)
	ConfirmCancel(ctx context.Context, actorID, gigID, sessionID string) (ReconcileResult, error)
	HandleWebhook(ctx context.Context, req interfaces.WebhookRequest) (WebhookResult, error)
	RecordRefund(ctx context.Context, sessionID, actor string) (ReconcileResult, error)
	PaymentHistory(ctx context.Context, userID string) ([]entities.Payment, error)
	PaymentTransitions(ctx context.Context, actorID, paymentID string) ([]entities.PaymentHistory, error)
	SweepStalePayments(ctx context.Context) (int, error)
	RepairFeaturedDrift(ctx context.Context) (int, error)
}

type FeaturingUseCase struct {
	gigs     interfaces.IGigRepository
	payments interfaces.IPaymentRepository
	events   interfaces.IWebhookEventRepository
	gateway   interfaces.IPaymentGateway
	callbacks interfaces.ICallbackSigner
	metrics   interfaces.IFeaturingMetrics
	cfg       FeaturingConfig
	now       func() time.Time
}

var _ IFeaturingUseCase = (*FeaturingUseCase)(nil)

func NewFeaturingUseCase(
	gigs interfaces.IGigRepository,
	payments interfaces.IPaymentRepository,
	events interfaces.IWebhookEventRepository,
	gateway interfaces.IPaymentGateway,
	callbacks interfaces.ICallbackSigner,
	cfg FeaturingConfig,
	metrics interfaces.IFeaturingMetrics,
) *FeaturingUseCase {
	if cfg.GatewayTimeout <= 0 {
		cfg.GatewayTimeout = defaultGatewayTimeout
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &FeaturingUseCase{
		gigs:     gigs,
		payments: payments,
		events:   events,
		gateway:   gateway,
		callbacks: callbacks,
		metrics:   metrics,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (u *FeaturingUseCase) RequestFeaturing(ctx context.Context, actorID, gigID string) (FeaturingResult, error) {
	fields := log.Fields{"gig_id": gigID, "user_id": actorID}
	log.WithFields(fields).Info("[featuring][usecase] request start")

	gig, err := loadGig(ctx, u.gigs, gigID)
	if err != nil {
		return FeaturingResult{}, err
	}
	if err := requireOwner(actorID, gig); err != nil {
		return FeaturingResult{}, err
	}
	if gig.IsFeatured {
		log.WithFields(fields).Warn("[featuring][usecase] gig already featured")
		return FeaturingResult{}, ErrAlreadyFeatured
	}

	now := u.now().UTC()
	pending, err := u.payments.LatestPendingForGig(ctx, gig.ID, entities.PaymentTypeFeaturedGig)
	if err != nil {
		return FeaturingResult{}, err
	}
	if pending.ID != "" {
		if pending.CheckoutURL != "" && u.sessionStillValid(pending, now) {
			log.WithFields(fields).WithField("payment_id", pending.ID).Info("[featuring][usecase] reusing pending checkout session")
			return FeaturingResult{Payment: pending, RedirectURL: pending.CheckoutURL, Reused: true}, nil
		}
		// The store admits one pending featured payment per gig, so the stale
		// one is closed before a new session is opened.
		if _, err := u.apply(ctx, pending, entities.PaymentStatusFailed, entities.FeaturedUnchanged, &actorID, ActorUser, "superseded by a new checkout session"); err != nil {
			return FeaturingResult{}, err
		}
	}

	if u.gateway == nil {
		return FeaturingResult{}, &PaymentGatewayError{Op: "create_checkout_session", Err: errors.New("payment gateway not configured")}
	}
	state, err := u.callbackState(actorID, gig.ID)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("[featuring][usecase] signing callback state failed")
		return FeaturingResult{}, err
	}

	reference := uuid.NewString()
	req := interfaces.CheckoutSessionRequest{
		Reference:   reference,
		Amount:      u.cfg.Price,
		Currency:    u.cfg.Currency,
		Description: u.description(gig),
		SuccessURL:  u.callbackURL("success", gig.ID, state),
		CancelURL:   u.callbackURL("cancel", gig.ID, state),
		Metadata: map[string]string{
			"gig_id":       gig.ID,
			"user_id":      actorID,
			"payment_type": string(entities.PaymentTypeFeaturedGig),
			"reference":    reference,
		},
	}

	var session interfaces.CheckoutSession
	err = u.callGateway(ctx, "create_checkout_session", func(ctx context.Context) error {
		var gerr error
		session, gerr = u.gateway.CreateCheckoutSession(ctx, req)
		return gerr
	})
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("[featuring][usecase] checkout session failed")
		return FeaturingResult{}, err
	}
	if session.SessionID == "" || session.RedirectURL == "" {
		return FeaturingResult{}, &PaymentGatewayError{Op: "create_checkout_session", Err: errors.New("gateway returned an empty session")}
	}

	sessionID := session.SessionID
	gigRef := gig.ID
	p := entities.Payment{
		ID:                uuid.NewString(),
		UserID:            actorID,
		GigID:             &gigRef,
		Amount:            u.cfg.Price,
		Currency:          u.cfg.Currency,
		ExternalSessionID: &sessionID,
		Provider:          u.gateway.Provider(),
		CheckoutURL:       session.RedirectURL,
		Type:              entities.PaymentTypeFeaturedGig,
		Status:            entities.PaymentStatusPending,
		Description:       req.Description,
		GatewayPayloadRaw: session.Raw,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.payments.Create(ctx, p)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		// A concurrent request for the same gig persisted its session first.
		winner, lerr := u.payments.LatestPendingForGig(ctx, gig.ID, entities.PaymentTypeFeaturedGig)
		if lerr == nil && winner.ID != "" && winner.CheckoutURL != "" {
			log.WithFields(fields).WithFields(log.Fields{"payment_id": winner.ID, "dropped_session_id": sessionID}).Info("[featuring][usecase] concurrent request won; reusing its checkout session")
			return FeaturingResult{Payment: winner, RedirectURL: winner.CheckoutURL, Reused: true}, nil
		}
	}
	if err != nil {
		// The session exists at the gateway without a local row; it grants
		// nothing until a payment for it is reconciled.
		log.WithFields(fields).WithField("session_id", sessionID).WithError(err).Error("[featuring][usecase] persisting pending payment failed")
		return FeaturingResult{}, err
	}
	log.WithFields(fields).WithFields(log.Fields{"payment_id": created.ID, "session_id": sessionID}).Info("[featuring][usecase] checkout session created")
	return FeaturingResult{Payment: created, RedirectURL: session.RedirectURL}, nil
}

// ConfirmSuccess handles the browser returning from checkout. The redirect is
// only a hint: the gateway must report the session as paid before anything
// changes.
func (u *FeaturingUseCase) ConfirmSuccess(ctx context.Context, actorID, gigID string, lookup interfaces.SessionLookup) (ReconcileResult, error) {
	gig, err := loadGig(ctx, u.gigs, gigID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if err := requireOwner(actorID, gig); err != nil {
		return ReconcileResult{}, err
	}

	p, err := u.findPendingForGig(ctx, gig.ID, lookup.SessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if p.ID == "" || p.Status != entities.PaymentStatusPending {
		u.metrics.ObserveReconciliation(ActorRedirect, OutcomeNoop)
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}

	fields := log.Fields{"gig_id": gig.ID, "payment_id": p.ID, "session_id": p.SessionID()}
	if u.gateway == nil {
		log.WithFields(fields).Warn("[featuring][usecase] no gateway to verify session; waiting for webhook")
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}

	var status interfaces.SessionStatus
	verify := interfaces.SessionLookup{SessionID: p.SessionID(), ProviderPaymentID: lookup.ProviderPaymentID}
	err = u.callGateway(ctx, "verify_session", func(ctx context.Context) error {
		var gerr error
		status, gerr = u.gateway.VerifySession(ctx, verify)
		return gerr
	})
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("[featuring][usecase] session verification failed; waiting for webhook")
		u.metrics.ObserveReconciliation(ActorRedirect, OutcomeNoop)
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}
	if !status.Paid {
		log.WithFields(fields).Info("[featuring][usecase] session not paid yet")
		u.metrics.ObserveReconciliation(ActorRedirect, OutcomeNoop)
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}

	return u.apply(ctx, p, entities.PaymentStatusCompleted, entities.FeaturedSet, &actorID, ActorRedirect, "payment confirmed by success redirect")
}

func (u *FeaturingUseCase) ConfirmCancel(ctx context.Context, actorID, gigID, sessionID string) (ReconcileResult, error) {
	gig, err := loadGig(ctx, u.gigs, gigID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if err := requireOwner(actorID, gig); err != nil {
		return ReconcileResult{}, err
	}

	p, err := u.findPendingForGig(ctx, gig.ID, sessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if p.ID == "" || p.Status != entities.PaymentStatusPending {
		u.metrics.ObserveReconciliation(ActorRedirect, OutcomeNoop)
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}
	return u.apply(ctx, p, entities.PaymentStatusFailed, entities.FeaturedUnchanged, &actorID, ActorRedirect, "checkout cancelled by user")
}

func (u *FeaturingUseCase) HandleWebhook(ctx context.Context, req interfaces.WebhookRequest) (WebhookResult, error) {
	if u.gateway == nil {
		return WebhookResult{}, ErrInvalidSignature
	}
	provider := u.gateway.Provider()

	var ev interfaces.GatewayEvent
	err := u.callGateway(ctx, "parse_webhook", func(ctx context.Context) error {
		var gerr error
		ev, gerr = u.gateway.ParseWebhook(ctx, req)
		return gerr
	})
	if err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			log.WithField("provider", provider).Warn("[featuring][webhook] signature rejected")
			u.metrics.ObserveWebhook(provider, "invalid_signature")
			return WebhookResult{}, ErrInvalidSignature
		}
		u.metrics.ObserveWebhook(provider, "gateway_error")
		return WebhookResult{}, err
	}

	eventID := strings.TrimSpace(ev.ID)
	if eventID == "" {
		sum := sha256.Sum256(req.Payload)
		eventID = "hash:" + hex.EncodeToString(sum[:])
	}
	fields := log.Fields{"provider": provider, "event_id": eventID, "event_type": ev.Type, "session_id": ev.SessionID}

	rec, created, err := u.events.RecordIfNotExists(ctx, entities.WebhookEvent{
		ID:              uuid.NewString(),
		Provider:        provider,
		ProviderEventID: eventID,
		EventType:       ev.Type,
		SessionID:       ev.SessionID,
		PayloadJSON:     string(req.Payload),
		CreatedAt:       u.now().UTC(),
	})
	if err != nil {
		return WebhookResult{}, err
	}
	result := WebhookResult{EventID: eventID, Kind: ev.Kind}
	if !created && rec.Processed() {
		log.WithFields(fields).Info("[featuring][webhook] duplicate delivery ignored")
		u.metrics.ObserveWebhook(provider, "duplicate")
		result.Duplicate = true
		return result, nil
	}

	var rr ReconcileResult
	var procErr error
	switch ev.Kind {
	case interfaces.WebhookCompleted:
		rr, procErr = u.reconcileSession(ctx, ev.SessionID, entities.PaymentStatusPending, entities.PaymentStatusCompleted, entities.FeaturedSet, "payment completed by gateway webhook")
	case interfaces.WebhookFailed:
		rr, procErr = u.reconcileSession(ctx, ev.SessionID, entities.PaymentStatusPending, entities.PaymentStatusFailed, entities.FeaturedUnchanged, "payment failed by gateway webhook")
	case interfaces.WebhookRefunded:
		rr, procErr = u.RecordRefund(ctx, ev.SessionID, ActorWebhook)
	default:
		log.WithFields(fields).Debug("[featuring][webhook] event ignored")
	}

	processingError := ""
	if procErr != nil {
		processingError = procErr.Error()
	}
	if err := u.events.MarkProcessed(ctx, rec.ID, processingError); err != nil {
		log.WithFields(fields).WithError(err).Error("[featuring][webhook] mark processed failed")
	}
	if procErr != nil {
		u.metrics.ObserveWebhook(provider, "error")
		return result, procErr
	}

	result.Applied = rr.Applied
	u.metrics.ObserveWebhook(provider, string(ev.Kind))
	log.WithFields(fields).WithField("applied", rr.Applied).Info("[featuring][webhook] processed")
	return result, nil
}

// RecordRefund moves a completed payment to refunded. The gig loses its
// featured flag unless another completed featured payment still backs it.
func (u *FeaturingUseCase) RecordRefund(ctx context.Context, sessionID, actor string) (ReconcileResult, error) {
	if actor == "" {
		actor = ActorWebhook
	}
	return u.reconcileSessionAs(ctx, sessionID, entities.PaymentStatusCompleted, entities.PaymentStatusRefunded, entities.FeaturedClear, actor, "payment refunded")
}

func (u *FeaturingUseCase) PaymentHistory(ctx context.Context, userID string) ([]entities.Payment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrNotAuthorized
	}
	return u.payments.ListByUser(ctx, userID)
}

func (u *FeaturingUseCase) PaymentTransitions(ctx context.Context, actorID, paymentID string) ([]entities.PaymentHistory, error) {
	p, err := u.payments.GetByID(ctx, strings.TrimSpace(paymentID))
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrPaymentNotFound
	}
	if actorID == "" || p.UserID != actorID {
		return nil, ErrNotAuthorized
	}
	return u.payments.ListHistory(ctx, p.ID)
}

// SweepStalePayments fails pending payments whose checkout session outlived
// the configured TTL.
func (u *FeaturingUseCase) SweepStalePayments(ctx context.Context) (int, error) {
	if u.cfg.SessionTTL <= 0 {
		return 0, nil
	}
	cutoff := u.now().UTC().Add(-u.cfg.SessionTTL)
	stale, err := u.payments.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range stale {
		rr, err := u.apply(ctx, p, entities.PaymentStatusFailed, entities.FeaturedUnchanged, nil, ActorSweeper, "checkout session expired")
		if err != nil {
			return n, err
		}
		if rr.Applied {
			n++
		}
	}
	if n > 0 {
		log.WithField("count", n).Info("[featuring][sweeper] expired pending payments")
	}
	return n, nil
}

// RepairFeaturedDrift clears is_featured on gigs that no completed
// featured_gig payment backs.
func (u *FeaturingUseCase) RepairFeaturedDrift(ctx context.Context) (int, error) {
	drifted, err := u.payments.ListFeaturedDrift(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, g := range drifted {
		cleared, err := u.payments.ClearFeatured(ctx, g.ID)
		if err != nil {
			return n, err
		}
		if cleared {
			log.WithField("gig_id", g.ID).Warn("[featuring][sweeper] cleared unbacked featured flag")
			u.metrics.ObserveReconciliation(ActorSweeper, "drift_repaired")
			n++
		}
	}
	return n, nil
}

func (u *FeaturingUseCase) reconcileSession(ctx context.Context, sessionID string, from, to entities.PaymentStatus, effect entities.FeaturedEffect, note string) (ReconcileResult, error) {
	return u.reconcileSessionAs(ctx, sessionID, from, to, effect, ActorWebhook, note)
}

func (u *FeaturingUseCase) reconcileSessionAs(ctx context.Context, sessionID string, from, to entities.PaymentStatus, effect entities.FeaturedEffect, actor, note string) (ReconcileResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ReconcileResult{Outcome: OutcomeNoop}, nil
	}
	p, err := u.payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if p.ID == "" {
		log.WithField("session_id", sessionID).Warn("[featuring][usecase] no payment for session")
		u.metrics.ObserveReconciliation(actor, OutcomeNoop)
		return ReconcileResult{Outcome: OutcomeNoop}, nil
	}
	if p.Status != from {
		log.WithFields(log.Fields{"payment_id": p.ID, "status": p.Status, "to": to}).Info("[featuring][usecase] payment already reconciled")
		u.metrics.ObserveReconciliation(actor, OutcomeNoop)
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}
	return u.apply(ctx, p, to, effect, nil, actor, note)
}

// apply runs one payment transition. Losing the compare-and-set to a
// concurrent reconciler is reported as a no-op.
func (u *FeaturingUseCase) apply(ctx context.Context, p entities.Payment, to entities.PaymentStatus, effect entities.FeaturedEffect, actorID *string, actor, note string) (ReconcileResult, error) {
	if !entities.CanMovePayment(p.Status, to) {
		return ReconcileResult{Payment: p, Outcome: OutcomeNoop}, nil
	}
	if p.Type != entities.PaymentTypeFeaturedGig || p.GigID == nil {
		effect = entities.FeaturedUnchanged
	}
	updated, applied, err := u.payments.Transition(ctx, entities.PaymentTransition{
		PaymentID: p.ID,
		From:      p.Status,
		To:        to,
		Featured:  effect,
		ActorID:   actorID,
		Actor:     actor,
		Note:      note,
		At:        u.now().UTC(),
	})
	if err != nil {
		log.WithField("payment_id", p.ID).WithError(err).Error("[featuring][usecase] transition failed")
		return ReconcileResult{}, err
	}
	if !applied {
		u.metrics.ObserveReconciliation(actor, OutcomeNoop)
		return ReconcileResult{Payment: updated, Outcome: OutcomeNoop}, nil
	}
	u.metrics.ObserveReconciliation(actor, string(to))
	log.WithFields(log.Fields{"payment_id": p.ID, "from": p.Status, "to": to, "actor": actor}).Info("[featuring][usecase] payment transitioned")
	return ReconcileResult{Payment: updated, Applied: true, Outcome: string(to)}, nil
}

func (u *FeaturingUseCase) findPendingForGig(ctx context.Context, gigID, sessionID string) (entities.Payment, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return u.payments.LatestPendingForGig(ctx, gigID, entities.PaymentTypeFeaturedGig)
	}
	p, err := u.payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" || p.GigID == nil || *p.GigID != gigID || p.Type != entities.PaymentTypeFeaturedGig {
		return entities.Payment{}, nil
	}
	return p, nil
}

func (u *FeaturingUseCase) callGateway(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()

	start := time.Now()
	err := fn(cctx)
	u.metrics.ObserveGatewayCall(op, time.Since(start), err)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidSignature) {
		return err
	}
	timeout := errors.Is(err, context.DeadlineExceeded) || errors.Is(cctx.Err(), context.DeadlineExceeded)
	return &PaymentGatewayError{Op: op, Timeout: timeout, Err: err}
}

func (u *FeaturingUseCase) sessionStillValid(p entities.Payment, now time.Time) bool {
	if u.cfg.SessionTTL <= 0 {
		return true
	}
	return p.CreatedAt.Add(u.cfg.SessionTTL).After(now)
}

func (u *FeaturingUseCase) callbackState(actorID, gigID string) (string, error) {
	if u.callbacks == nil {
		return "", nil
	}
	ttl := u.cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultCallbackTTL
	}
	return u.callbacks.SignCallback(actorID, gigID, ttl+callbackGrace)
}

func (u *FeaturingUseCase) callbackURL(kind, gigID, state string) string {
	base := strings.TrimRight(u.cfg.PublicBaseURL, "/")
	raw := fmt.Sprintf("%s/v1/payments/%s/%s", base, kind, gigID)
	if state == "" {
		return raw
	}
	return raw + "?state=" + url.QueryEscape(state)
}

func (u *FeaturingUseCase) description(g entities.Gig) string {
	name := u.cfg.ProductName
	if name == "" {
		name = "Featured Gig"
	}
	return fmt.Sprintf("%s: %s", name, g.Title)
}

type noopMetrics struct{}

func (noopMetrics) ObserveGatewayCall(string, time.Duration, error) {}
func (noopMetrics) ObserveReconciliation(string, string)            {}
func (noopMetrics) ObserveWebhook(string, string)                   {}
