package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"quickgigs/internal/infrastructure/config"
	"quickgigs/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRequest() interfaces.CheckoutSessionRequest {
	return interfaces.CheckoutSessionRequest{
		Reference:   "ref-1",
		Amount:      decimal.RequireFromString("9.99"),
		Currency:    "usd",
		Description: "Featured Gig",
		SuccessURL:  "https://jobs.example/v1/payments/success/gig-1",
		CancelURL:   "https://jobs.example/v1/payments/cancel/gig-1",
		Metadata:    map[string]string{"gig_id": "gig-1"},
	}
}

func TestSandboxGateway_CheckoutRedirectsToSuccessWithSession(t *testing.T) {
	g := NewSandboxGateway("whsec")

	s, err := g.CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.SessionID, "cs_"))

	u, err := url.Parse(s.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/payments/success/gig-1", u.Path)
	assert.Equal(t, s.SessionID, u.Query().Get("session_id"))
	assert.Contains(t, string(s.Raw), `"amount_total":999`)

	status, err := g.VerifySession(context.Background(), interfaces.SessionLookup{SessionID: s.SessionID})
	require.NoError(t, err)
	assert.True(t, status.Paid)
}

func TestSandboxGateway_ParseWebhook(t *testing.T) {
	g := NewSandboxGateway("whsec")
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid"}}}`)

	ev, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: SignSandboxPayload("whsec", payload),
	})
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, "cs_1", ev.SessionID)
	assert.Equal(t, interfaces.WebhookCompleted, ev.Kind)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: SignSandboxPayload("other", payload),
	})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)
}

func TestSandboxGateway_ParseWebhookRejectsTamperedBody(t *testing.T) {
	g := NewSandboxGateway("whsec")
	signed := []byte(`{"id":"evt_1","type":"checkout.session.expired","data":{"object":{"id":"cs_1"}}}`)
	tampered := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)

	_, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   tampered,
		Signature: SignSandboxPayload("whsec", signed),
	})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)
}

func TestSandboxGateway_ParseWebhookRefund(t *testing.T) {
	g := NewSandboxGateway("whsec")
	payload := []byte(`{"id":"evt_9","type":"charge.refunded","data":{"object":{"id":"cs_1"}}}`)

	ev, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: SignSandboxPayload("whsec", payload),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_1", ev.SessionID)
	assert.Equal(t, interfaces.WebhookRefunded, ev.Kind)
}

func TestSandboxGateway_CheckoutKeepsCallbackState(t *testing.T) {
	g := NewSandboxGateway("whsec")
	req := checkoutRequest()
	req.SuccessURL += "?state=abc"

	s, err := g.CreateCheckoutSession(context.Background(), req)
	require.NoError(t, err)

	u, err := url.Parse(s.RedirectURL)
	require.NoError(t, err)
	assert.Equal(t, "abc", u.Query().Get("state"))
	assert.Equal(t, s.SessionID, u.Query().Get("session_id"))
}

func stripeSignature(secret string, payload []byte, ts int64) string {
	return fmt.Sprintf("t=%d,v1=%s", ts, hmacHex(secret, []byte(fmt.Sprintf("%d.%s", ts, payload))))
}

func TestStripeGateway_ParseWebhook(t *testing.T) {
	g, err := NewStripeGateway("sk_test_123", "whsec_test", 5*time.Second)
	require.NoError(t, err)

	cases := []struct {
		name    string
		payload string
		kind    interfaces.WebhookEventKind
		session string
	}{
		{
			name:    "completed and paid",
			payload: `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","object":"checkout.session","payment_status":"paid"}}}`,
			kind:    interfaces.WebhookCompleted,
			session: "cs_1",
		},
		{
			name:    "completed but unpaid",
			payload: `{"id":"evt_2","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_2","object":"checkout.session","payment_status":"unpaid"}}}`,
			kind:    interfaces.WebhookIgnored,
			session: "cs_2",
		},
		{
			name:    "expired",
			payload: `{"id":"evt_3","object":"event","type":"checkout.session.expired","data":{"object":{"id":"cs_3","object":"checkout.session","payment_status":"unpaid"}}}`,
			kind:    interfaces.WebhookFailed,
			session: "cs_3",
		},
		{
			name:    "unrelated event",
			payload: `{"id":"evt_4","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`,
			kind:    interfaces.WebhookIgnored,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := []byte(tc.payload)
			ev, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
				Payload:   payload,
				Signature: stripeSignature("whsec_test", payload, time.Now().Unix()),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.kind, ev.Kind)
			assert.Equal(t, tc.session, ev.SessionID)
		})
	}
}

func TestStripeGateway_ParseWebhookInvalidSignature(t *testing.T) {
	g, err := NewStripeGateway("sk_test_123", "whsec_test", 5*time.Second)
	require.NoError(t, err)
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: stripeSignature("whsec_wrong", payload, time.Now().Unix()),
	})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)
}

func TestNewStripeGateway_RequiresSecrets(t *testing.T) {
	_, err := NewStripeGateway("", "whsec", time.Second)
	assert.ErrorIs(t, err, ErrMissingStripeSecretKey)
	_, err = NewStripeGateway("sk", "", time.Second)
	assert.ErrorIs(t, err, ErrMissingStripeWebhookSecret)
}

func TestStripeEventKind_AsyncOutcomes(t *testing.T) {
	assert.Equal(t, interfaces.WebhookCompleted, stripeEventKind("checkout.session.async_payment_succeeded", "paid"))
	assert.Equal(t, interfaces.WebhookFailed, stripeEventKind("checkout.session.async_payment_failed", "unpaid"))
	assert.Equal(t, interfaces.WebhookIgnored, stripeEventKind("charge.refunded", ""))
}

type fakePreferences struct {
	got  preference.Request
	resp *preference.Response
	err  error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	return f.resp, f.err
}

type fakePayments struct {
	byID map[int]*payment.Response
	err  error
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, errors.New("not found")
}

func mercadoPagoSignature(secret, dataID, requestID, ts string) string {
	return "ts=" + ts + ",v1=" + hmacHex(secret, []byte(signatureManifest(dataID, requestID, ts)))
}

func TestMercadoPagoGateway_CreateCheckoutSession(t *testing.T) {
	prefs := &fakePreferences{resp: &preference.Response{
		ID:               "pref-1",
		InitPoint:        "https://mp.example/init",
		SandboxInitPoint: "https://sandbox.mp.example/init",
	}}
	g := &MercadoPagoGateway{preferences: prefs, sandbox: true}

	s, err := g.CreateCheckoutSession(context.Background(), checkoutRequest())
	require.NoError(t, err)
	assert.Equal(t, "ref-1", s.SessionID)
	assert.Equal(t, "https://sandbox.mp.example/init", s.RedirectURL)
	assert.Equal(t, "ref-1", prefs.got.ExternalReference)
}

func TestMercadoPagoGateway_ParseWebhook(t *testing.T) {
	pays := &fakePayments{byID: map[int]*payment.Response{
		123: {ID: 123, Status: "approved", ExternalReference: "ref-1"},
		456: {ID: 456, Status: "rejected", ExternalReference: "ref-2"},
	}}
	g := &MercadoPagoGateway{payments: pays, webhookSecret: "mp-secret"}

	payload := []byte(`{"id":98765,"type":"payment","action":"payment.updated","data":{"id":"123"}}`)
	ev, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: mercadoPagoSignature("mp-secret", "123", "req-1", "1700000000"),
		RequestID: "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "98765", ev.ID)
	assert.Equal(t, "ref-1", ev.SessionID)
	assert.Equal(t, interfaces.WebhookCompleted, ev.Kind)

	payload = []byte(`{"id":98766,"type":"payment","data":{"id":"456"}}`)
	ev, err = g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: mercadoPagoSignature("mp-secret", "456", "req-2", "1700000001"),
		RequestID: "req-2",
	})
	require.NoError(t, err)
	assert.Equal(t, interfaces.WebhookFailed, ev.Kind)
}

func TestMercadoPagoGateway_ParseWebhookInvalidSignature(t *testing.T) {
	g := &MercadoPagoGateway{payments: &fakePayments{}, webhookSecret: "mp-secret"}
	payload := []byte(`{"id":1,"type":"payment","data":{"id":"123"}}`)

	_, err := g.ParseWebhook(context.Background(), interfaces.WebhookRequest{
		Payload:   payload,
		Signature: mercadoPagoSignature("mp-secret", "999", "req-1", "1700000000"),
		RequestID: "req-1",
	})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)

	_, err = g.ParseWebhook(context.Background(), interfaces.WebhookRequest{Payload: payload})
	assert.ErrorIs(t, err, interfaces.ErrInvalidSignature)
}

func TestMercadoPagoGateway_VerifySession(t *testing.T) {
	pays := &fakePayments{byID: map[int]*payment.Response{
		123: {ID: 123, Status: "approved", ExternalReference: "ref-1"},
	}}
	g := &MercadoPagoGateway{payments: pays, webhookSecret: "mp-secret"}

	status, err := g.VerifySession(context.Background(), interfaces.SessionLookup{SessionID: "ref-1", ProviderPaymentID: "123"})
	require.NoError(t, err)
	assert.True(t, status.Paid)

	status, err = g.VerifySession(context.Background(), interfaces.SessionLookup{SessionID: "ref-other", ProviderPaymentID: "123"})
	require.NoError(t, err)
	assert.False(t, status.Paid)

	status, err = g.VerifySession(context.Background(), interfaces.SessionLookup{SessionID: "ref-1"})
	require.NoError(t, err)
	assert.False(t, status.Paid)
}

func TestNewGateway_SelectsProvider(t *testing.T) {
	g, err := NewGateway(config.GatewayConfig{Provider: config.GatewaySandbox, SandboxWebhookSecret: "s"})
	require.NoError(t, err)
	assert.Equal(t, ProviderSandbox, g.Provider())

	_, err = NewGateway(config.GatewayConfig{Provider: "paypal"})
	assert.Error(t, err)
}
