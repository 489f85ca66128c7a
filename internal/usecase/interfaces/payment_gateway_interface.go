package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidSignature is returned by ParseWebhook when the payload does not
// verify against the shared secret or cannot be parsed.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type CheckoutSessionRequest struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

type CheckoutSession struct {
	SessionID   string
	RedirectURL string
	Raw         json.RawMessage
}

type SessionLookup struct {
	SessionID         string
	ProviderPaymentID string
}

type SessionStatus struct {
	SessionID string
	Paid      bool
}

type WebhookRequest struct {
	Payload   []byte
	Signature string
	RequestID string
}

type WebhookEventKind string

const (
	WebhookCompleted WebhookEventKind = "completed"
	WebhookFailed    WebhookEventKind = "failed"
	WebhookRefunded  WebhookEventKind = "refunded"
	WebhookIgnored   WebhookEventKind = "ignored"
)

type GatewayEvent struct {
	ID        string
	Type      string
	Kind      WebhookEventKind
	SessionID string
	Raw       json.RawMessage
}

// IPaymentGateway abstracts hosted checkout providers (Stripe, Mercado Pago or
// the local sandbox).
type IPaymentGateway interface {
	Provider() string
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSession, error)
	VerifySession(ctx context.Context, lookup SessionLookup) (SessionStatus, error)
	ParseWebhook(ctx context.Context, req WebhookRequest) (GatewayEvent, error)
}
