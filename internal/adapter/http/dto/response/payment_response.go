package response

import (
	"encoding/json"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase"
)

type PaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	UserID            string    `json:"user_id"`
	GigID             *string   `json:"gig_id,omitempty"`
	Amount            string    `json:"amount"`
	Currency          string    `json:"currency"`
	SessionID         string    `json:"session_id,omitempty"`
	Provider          string    `json:"provider,omitempty"`
	PaymentType       string    `json:"payment_type"`
	Status            string    `json:"status"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	GatewayPayloadRaw string    `json:"gateway_payload_raw,omitempty"`
	GatewayPayload    any       `json:"gateway_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	out := PaymentResponse{
		PaymentID:   p.ID,
		UserID:      p.UserID,
		GigID:       p.GigID,
		Amount:      p.Amount.StringFixed(2),
		Currency:    p.Currency,
		SessionID:   p.SessionID(),
		Provider:    p.Provider,
		PaymentType: string(p.Type),
		Status:      string(p.Status),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.GatewayPayloadRaw) > 0 {
		out.GatewayPayloadRaw = string(p.GatewayPayloadRaw)
		var decoded any
		if err := json.Unmarshal(p.GatewayPayloadRaw, &decoded); err == nil {
			out.GatewayPayload = decoded
		}
	}
	return out
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type PaymentHistoryResponse struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"payment_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy *string   `json:"changed_by,omitempty"`
	Actor     string    `json:"actor"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPaymentHistory(hs []entities.PaymentHistory) []PaymentHistoryResponse {
	out := make([]PaymentHistoryResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, PaymentHistoryResponse{
			ID:        h.ID,
			PaymentID: h.PaymentID,
			OldStatus: string(h.OldStatus),
			NewStatus: string(h.NewStatus),
			ChangedBy: h.ChangedBy,
			Actor:     h.Actor,
			Notes:     h.Notes,
			CreatedAt: h.CreatedAt,
		})
	}
	return out
}

type FeaturingResponse struct {
	Payment     PaymentResponse `json:"payment"`
	CheckoutURL string          `json:"checkout_url"`
	Reused      bool            `json:"reused"`
}

func FromFeaturingResult(r usecase.FeaturingResult) FeaturingResponse {
	return FeaturingResponse{Payment: FromPayment(r.Payment), CheckoutURL: r.RedirectURL, Reused: r.Reused}
}

type ReconcileResponse struct {
	Applied bool             `json:"applied"`
	Outcome string           `json:"outcome"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	out := ReconcileResponse{Applied: r.Applied, Outcome: r.Outcome}
	if r.Payment.ID != "" {
		p := FromPayment(r.Payment)
		out.Payment = &p
	}
	return out
}

type WebhookResponse struct {
	Received  bool   `json:"received"`
	EventID   string `json:"event_id"`
	Duplicate bool   `json:"duplicate"`
	Applied   bool   `json:"applied"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookResponse {
	return WebhookResponse{Received: true, EventID: r.EventID, Duplicate: r.Duplicate, Applied: r.Applied}
}

// WarningResponse is a 200 body for requests that changed nothing.
type WarningResponse struct {
	Warning string `json:"warning"`
	Message string `json:"message"`
}
