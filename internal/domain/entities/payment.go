package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeGigPosting       PaymentType = "gig_posting"
	PaymentTypeFeaturedGig      PaymentType = "featured_gig"
	PaymentTypePremiumProfile   PaymentType = "premium_profile"
	PaymentTypeApplicationBoost PaymentType = "application_boost"
)

// PaymentStatus is the reconciliation state of one payment.
//
// pending -> completed | failed, completed -> refunded. failed and refunded
// are terminal.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// CanMovePayment reports whether a payment may move between two statuses.
func CanMovePayment(from, to PaymentStatus) bool {
	switch from {
	case PaymentStatusPending:
		return to == PaymentStatusCompleted || to == PaymentStatusFailed
	case PaymentStatusCompleted:
		return to == PaymentStatusRefunded
	}
	return false
}

// Payment is one monetary transaction tied to a user and optionally a gig.
//
// Storage model:
//   - PK: id
//   - external_session_id unique when present
//   - gig_id is a weak back-reference cleared (not cascaded) when the gig is deleted
//
// Amount is fixed at creation. GatewayPayloadRaw keeps the gateway response for audit.
type Payment struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	GigID             *string         `json:"gig_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	ExternalSessionID *string         `json:"external_session_id,omitempty"`
	Provider          string          `json:"provider"`
	CheckoutURL       string          `json:"checkout_url,omitempty"`
	Type              PaymentType     `json:"payment_type"`
	Status            PaymentStatus   `json:"status"`
	Description       string          `json:"description"`
	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// SessionID returns the external session id or "".
func (p Payment) SessionID() string {
	if p.ExternalSessionID == nil {
		return ""
	}
	return *p.ExternalSessionID
}

// FeaturedEffect is the write a payment transition applies to its gig in the
// same atomic unit.
type FeaturedEffect int

const (
	FeaturedUnchanged FeaturedEffect = iota
	FeaturedSet
	// FeaturedClear clears the flag unless another completed featured_gig
	// payment still backs it.
	FeaturedClear
)

// PaymentTransition is a compare-and-set on a payment row plus the optional
// gig projection write and the history entry, all applied or none.
type PaymentTransition struct {
	PaymentID string
	From      PaymentStatus
	To        PaymentStatus
	Featured  FeaturedEffect
	ActorID   *string
	Actor     string
	Note      string
	At        time.Time
}

// PaymentHistory is an append-only log entry for a payment status change.
type PaymentHistory struct {
	ID        string        `json:"id"`
	PaymentID string        `json:"payment_id"`
	OldStatus PaymentStatus `json:"old_status"`
	NewStatus PaymentStatus `json:"new_status"`
	ChangedBy *string       `json:"changed_by,omitempty"`
	Actor     string        `json:"actor"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewHistoryEntry builds the history row recorded with a transition.
func (t PaymentTransition) NewHistoryEntry(id string) PaymentHistory {
	return PaymentHistory{
		ID:        id,
		PaymentID: t.PaymentID,
		OldStatus: t.From,
		NewStatus: t.To,
		ChangedBy: t.ActorID,
		Actor:     t.Actor,
		Notes:     t.Note,
		CreatedAt: t.At,
	}
}
