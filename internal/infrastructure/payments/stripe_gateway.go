package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"quickgigs/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const ProviderStripe = "stripe"

var (
	ErrMissingStripeSecretKey     = errors.New("missing STRIPE_SECRET_KEY")
	ErrMissingStripeWebhookSecret = errors.New("missing STRIPE_WEBHOOK_SECRET")
)

var centsPerUnit = decimal.NewFromInt(100)

// StripeGateway opens hosted Checkout sessions and verifies Stripe-Signature
// webhooks.
type StripeGateway struct {
	sc            *client.API
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string, timeout time.Duration) (*StripeGateway, error) {
	if secretKey == "" {
		return nil, ErrMissingStripeSecretKey
	}
	if webhookSecret == "" {
		return nil, ErrMissingStripeWebhookSecret
	}
	httpClient := &http.Client{Timeout: timeout}
	log.Printf("[payment][gateway] Stripe client initialized")
	return &StripeGateway{
		sc:            client.New(secretKey, stripe.NewBackends(httpClient)),
		webhookSecret: webhookSecret,
	}, nil
}

func (g *StripeGateway) Provider() string { return ProviderStripe }

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	successURL := req.SuccessURL
	if !strings.Contains(successURL, "{CHECKOUT_SESSION_ID}") {
		sep := "?"
		if strings.Contains(successURL, "?") {
			sep = "&"
		}
		successURL += sep + "session_id={CHECKOUT_SESSION_ID}"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	log.Printf("[payment][gateway] stripe create session start reference=%s", req.Reference)
	s, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] stripe create session failed reference=%s err=%v", req.Reference, err)
		return interfaces.CheckoutSession{}, err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] stripe create session success session_id=%s", s.ID)
	return interfaces.CheckoutSession{SessionID: s.ID, RedirectURL: s.URL, Raw: raw}, nil
}

func (g *StripeGateway) VerifySession(ctx context.Context, lookup interfaces.SessionLookup) (interfaces.SessionStatus, error) {
	if lookup.SessionID == "" {
		return interfaces.SessionStatus{}, nil
	}
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := g.sc.CheckoutSessions.Get(lookup.SessionID, params)
	if err != nil {
		return interfaces.SessionStatus{}, err
	}
	return interfaces.SessionStatus{
		SessionID: s.ID,
		Paid:      s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}, nil
}

func (g *StripeGateway) ParseWebhook(_ context.Context, req interfaces.WebhookRequest) (interfaces.GatewayEvent, error) {
	event, err := webhook.ConstructEventWithOptions(req.Payload, req.Signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Printf("[payment][gateway] stripe webhook rejected err=%v", err)
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}

	ev := interfaces.GatewayEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Kind: interfaces.WebhookIgnored,
		Raw:  json.RawMessage(req.Payload),
	}
	if event.Data == nil || !strings.HasPrefix(ev.Type, "checkout.session.") {
		return ev, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}
	ev.SessionID = session.ID
	ev.Kind = stripeEventKind(ev.Type, string(session.PaymentStatus))
	return ev, nil
}

// stripeEventKind maps Checkout event types to reconciliation outcomes. A
// completed session that is still unpaid (delayed methods) waits for the
// async_payment_* follow-up.
func stripeEventKind(eventType, paymentStatus string) interfaces.WebhookEventKind {
	switch eventType {
	case "checkout.session.completed":
		if paymentStatus == "" || paymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid) {
			return interfaces.WebhookCompleted
		}
	case "checkout.session.async_payment_succeeded":
		return interfaces.WebhookCompleted
	case "checkout.session.expired", "checkout.session.async_payment_failed":
		return interfaces.WebhookFailed
	}
	return interfaces.WebhookIgnored
}

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(centsPerUnit).Round(0).IntPart()
}
