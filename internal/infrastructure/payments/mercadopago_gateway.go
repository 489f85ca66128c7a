package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"quickgigs/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const ProviderMercadoPago = "mercadopago"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMissingMercadoPagoWebhookSecret = errors.New("missing MERCADOPAGO_WEBHOOK_SECRET")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway opens Checkout Pro preferences. The preference's
// external_reference doubles as the session id so that redirects and
// payment notifications resolve to the same local payment.
type MercadoPagoGateway struct {
	preferences   preferenceCreator
	payments      paymentFetcher
	webhookSecret string
	sandbox       bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, webhookSecret string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	if webhookSecret == "" {
		return nil, ErrMissingMercadoPagoWebhookSecret
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences:   preference.NewClient(cfg),
		payments:      payment.NewClient(cfg),
		webhookSecret: webhookSecret,
		sandbox:       strings.HasPrefix(accessToken, "TEST-"),
	}, nil
}

func (g *MercadoPagoGateway) Provider() string { return ProviderMercadoPago }

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSession, error) {
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create preference start reference=%s", req.Reference)

	unitPrice, _ := req.Amount.Float64()
	metadata := map[string]any{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	payload, err := json.Marshal(map[string]any{
		"items": []map[string]any{{
			"id":          req.Reference,
			"title":       req.Description,
			"quantity":    1,
			"unit_price":  unitPrice,
			"currency_id": strings.ToUpper(req.Currency),
		}},
		"back_urls": map[string]string{
			"success": req.SuccessURL,
			"failure": req.CancelURL,
			"pending": req.CancelURL,
		},
		"auto_return":        "approved",
		"external_reference": req.Reference,
		"metadata":           metadata,
	})
	if err != nil {
		return interfaces.CheckoutSession{}, err
	}

	var pref preference.Request
	if err := json.Unmarshal(payload, &pref); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	resp, err := g.preferences.Create(ctx, pref)
	if err != nil {
		log.Printf("[payment][gateway] sdk create preference failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}
	redirect := gjson.GetBytes(b, "init_point").String()
	if g.sandbox {
		if s := gjson.GetBytes(b, "sandbox_init_point").String(); s != "" {
			redirect = s
		}
	}
	log.Printf("[payment][gateway] create preference success reference=%s preference_id=%s",
		req.Reference, gjson.GetBytes(b, "id").String())

	return interfaces.CheckoutSession{SessionID: req.Reference, RedirectURL: redirect, Raw: b}, nil
}

// VerifySession needs the payment id Mercado Pago appends to back_urls; a
// redirect without one is never treated as paid.
func (g *MercadoPagoGateway) VerifySession(ctx context.Context, lookup interfaces.SessionLookup) (interfaces.SessionStatus, error) {
	status := interfaces.SessionStatus{SessionID: lookup.SessionID}
	if lookup.ProviderPaymentID == "" {
		return status, nil
	}
	p, err := g.fetchPayment(ctx, lookup.ProviderPaymentID)
	if err != nil {
		return status, err
	}
	if p.Get("external_reference").String() != lookup.SessionID {
		log.Printf("[payment][gateway] payment %s does not belong to session %s", lookup.ProviderPaymentID, lookup.SessionID)
		return status, nil
	}
	status.Paid = p.Get("status").String() == "approved"
	return status, nil
}

// ParseWebhook checks the x-signature header (ts and v1 HMAC over the
// notification manifest) and then fetches the payment to learn its state.
func (g *MercadoPagoGateway) ParseWebhook(ctx context.Context, req interfaces.WebhookRequest) (interfaces.GatewayEvent, error) {
	if !gjson.ValidBytes(req.Payload) {
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}
	body := gjson.ParseBytes(req.Payload)
	dataID := strings.ToLower(body.Get("data.id").String())

	if !g.validSignature(req.Signature, req.RequestID, dataID) {
		log.Printf("[payment][gateway] webhook signature mismatch request_id=%s", req.RequestID)
		return interfaces.GatewayEvent{}, interfaces.ErrInvalidSignature
	}

	ev := interfaces.GatewayEvent{
		ID:   body.Get("id").String(),
		Type: body.Get("type").String(),
		Kind: interfaces.WebhookIgnored,
		Raw:  json.RawMessage(req.Payload),
	}
	if ev.Type == "" {
		ev.Type = body.Get("topic").String()
	}
	if ev.Type != "payment" || dataID == "" {
		return ev, nil
	}

	p, err := g.fetchPayment(ctx, dataID)
	if err != nil {
		return interfaces.GatewayEvent{}, err
	}
	ev.SessionID = p.Get("external_reference").String()
	ev.Kind = mercadoPagoKind(p.Get("status").String())
	return ev, nil
}

func (g *MercadoPagoGateway) validSignature(header, requestID, dataID string) bool {
	parts := headerParts(header)
	ts, v1 := parts["ts"], parts["v1"]
	if g.webhookSecret == "" || ts == "" || v1 == "" {
		return false
	}
	return equalHex(hmacHex(g.webhookSecret, []byte(signatureManifest(dataID, requestID, ts))), v1)
}

func (g *MercadoPagoGateway) fetchPayment(ctx context.Context, rawID string) (gjson.Result, error) {
	if g == nil || g.payments == nil {
		return gjson.Result{}, ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return gjson.Result{}, err
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get payment failed id=%d err=%v", id, err)
		return gjson.Result{}, err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(b), nil
}

func signatureManifest(dataID, requestID, ts string) string {
	var sb strings.Builder
	if dataID != "" {
		sb.WriteString("id:" + dataID + ";")
	}
	if requestID != "" {
		sb.WriteString("request-id:" + requestID + ";")
	}
	sb.WriteString("ts:" + ts + ";")
	return sb.String()
}

func mercadoPagoKind(status string) interfaces.WebhookEventKind {
	switch status {
	case "approved":
		return interfaces.WebhookCompleted
	case "rejected", "cancelled":
		return interfaces.WebhookFailed
	case "refunded", "charged_back":
		return interfaces.WebhookRefunded
	}
	return interfaces.WebhookIgnored
}
