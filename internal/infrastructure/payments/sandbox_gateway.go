package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"quickgigs/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const ProviderSandbox = "sandbox"

// SandboxGateway is the local mock gateway: sessions are always paid and
// webhooks are signed with a hex HMAC-SHA256 of the raw body.
type SandboxGateway struct {
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*SandboxGateway)(nil)

func NewSandboxGateway(webhookSecret string) *SandboxGateway {
	log.Printf("[payment][gateway] sandbox mode enabled")
	return &SandboxGateway{webhookSecret: webhookSecret}
}

func (g *SandboxGateway) Provider() string { return ProviderSandbox }

func (g *SandboxGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.CheckoutSession{}, err
	}
	if !req.Amount.IsPositive() {
		return interfaces.CheckoutSession{}, fmt.Errorf("sandbox: amount must be positive")
	}

	id := "cs_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	redirect, err := withQuery(req.SuccessURL, "session_id", id)
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	raw, err := json.Marshal(map[string]any{
		"id":                  id,
		"object":              "checkout.session",
		"amount_total":        req.Amount.Mul(centsPerUnit).IntPart(),
		"currency":            req.Currency,
		"client_reference_id": req.Reference,
		"metadata":            req.Metadata,
		"url":                 redirect,
	})
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}
	log.Printf("[payment][gateway] sandbox session created session_id=%s", id)
	return interfaces.CheckoutSession{SessionID: id, RedirectURL: redirect, Raw: raw}, nil
}

func (g *SandboxGateway) VerifySession(ctx context.Context, lookup interfaces.SessionLookup) (interfaces.SessionStatus, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.SessionStatus{}, err
	}
	return interfaces.SessionStatus{SessionID: lookup.SessionID, Paid: lookup.SessionID != ""}, nil
}

func (g *SandboxGateway) ParseWebhook(_ context.Context, req interfaces.WebhookRequest) (interfaces.GatewayEvent, error) {
	if g.webhookSecret == "" || !equalHex(hmacHex(g.webhookSecret, req.Payload), req.Signature) {
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}
	if !gjson.ValidBytes(req.Payload) {
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}

	body := gjson.ParseBytes(req.Payload)
	ev := interfaces.GatewayEvent{
		ID:        body.Get("id").String(),
		Type:      body.Get("type").String(),
		SessionID: body.Get("data.object.id").String(),
		Raw:       json.RawMessage(req.Payload),
	}
	ev.Kind = sandboxEventKind(ev.Type, body.Get("data.object.payment_status").String())
	return ev, nil
}

// sandboxEventKind accepts Checkout event types plus charge.refunded, whose
// data.object.id carries the session id so local refunds can be replayed.
func sandboxEventKind(eventType, paymentStatus string) interfaces.WebhookEventKind {
	if eventType == "charge.refunded" {
		return interfaces.WebhookRefunded
	}
	return stripeEventKind(eventType, paymentStatus)
}

// SignSandboxPayload produces the signature SandboxGateway expects.
func SignSandboxPayload(secret string, payload []byte) string {
	return hmacHex(secret, payload)
}

func withQuery(raw, key, value string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
