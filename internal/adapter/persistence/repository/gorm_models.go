package repository

import (
	"encoding/json"
	"time"

	"quickgigs/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type gigRecord struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Title       string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null"`
	EmployerID  string          `gorm:"size:64;not null;index"`
	Budget      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Location    string          `gorm:"size:100;not null"`
	Category    string          `gorm:"size:20;not null;index"`
	Deadline    *time.Time
	IsActive    bool      `gorm:"not null;index"`
	IsFeatured  bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (gigRecord) TableName() string { return "gigs" }

type applicationRecord struct {
	ID            string           `gorm:"primaryKey;size:36"`
	GigID         string           `gorm:"size:36;not null;uniqueIndex:idx_applications_gig_applicant"`
	ApplicantID   string           `gorm:"size:64;not null;uniqueIndex:idx_applications_gig_applicant;index"`
	CoverLetter   string           `gorm:"type:text;not null"`
	ProposedRate  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Status        string           `gorm:"size:20;not null;index"`
	EmployerNotes string           `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

func (applicationRecord) TableName() string { return "applications" }

type paymentRecord struct {
	ID                string          `gorm:"primaryKey;size:36"`
	UserID            string          `gorm:"size:64;not null;index"`
	GigID             *string         `gorm:"size:36;index;uniqueIndex:idx_payments_one_pending_per_gig,where:status = 'pending'"`
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency          string          `gorm:"size:3;not null"`
	ExternalSessionID *string         `gorm:"size:255;uniqueIndex"`
	Provider          string          `gorm:"size:32"`
	CheckoutURL       string          `gorm:"type:text"`
	PaymentType       string          `gorm:"size:20;not null;index;uniqueIndex:idx_payments_one_pending_per_gig,where:status = 'pending'"`
	Status            string          `gorm:"size:20;not null;index"`
	Description       string          `gorm:"type:text"`
	GatewayPayloadRaw string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null;index"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

func (paymentRecord) TableName() string { return "payments" }

type paymentHistoryRecord struct {
	ID        string    `gorm:"primaryKey;size:36"`
	PaymentID string    `gorm:"size:36;not null;index"`
	OldStatus string    `gorm:"size:20;not null"`
	NewStatus string    `gorm:"size:20;not null"`
	ChangedBy *string   `gorm:"size:64"`
	Actor     string    `gorm:"size:32;not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (paymentHistoryRecord) TableName() string { return "payment_history" }

type webhookEventRecord struct {
	ID              string `gorm:"primaryKey;size:36"`
	Provider        string `gorm:"size:32;not null;uniqueIndex:idx_webhook_provider_event"`
	ProviderEventID string `gorm:"size:191;not null;uniqueIndex:idx_webhook_provider_event"`
	EventType       string `gorm:"size:64"`
	SessionID       string `gorm:"size:255;index"`
	PayloadJSON     string `gorm:"type:text"`
	ProcessedAt     *time.Time
	ProcessingError string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (webhookEventRecord) TableName() string { return "webhook_events" }

// Models lists every table owned by the ledger, in migration order.
func Models() []any {
	return []any{
		&gigRecord{},
		&applicationRecord{},
		&paymentRecord{},
		&paymentHistoryRecord{},
		&webhookEventRecord{},
	}
}

func toGigRecord(g entities.Gig) gigRecord {
	return gigRecord{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		EmployerID:  g.EmployerID,
		Budget:      g.Budget,
		Location:    g.Location,
		Category:    string(g.Category),
		Deadline:    utcPtr(g.Deadline),
		IsActive:    g.IsActive,
		IsFeatured:  g.IsFeatured,
		CreatedAt:   g.CreatedAt.UTC(),
		UpdatedAt:   g.UpdatedAt.UTC(),
	}
}

func fromGigRecord(r gigRecord) entities.Gig {
	return entities.Gig{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		EmployerID:  r.EmployerID,
		Budget:      r.Budget,
		Location:    r.Location,
		Category:    entities.GigCategory(r.Category),
		Deadline:    utcPtr(r.Deadline),
		IsActive:    r.IsActive,
		IsFeatured:  r.IsFeatured,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toApplicationRecord(a entities.Application) applicationRecord {
	return applicationRecord{
		ID:            a.ID,
		GigID:         a.GigID,
		ApplicantID:   a.ApplicantID,
		CoverLetter:   a.CoverLetter,
		ProposedRate:  a.ProposedRate,
		Status:        string(a.Status),
		EmployerNotes: a.EmployerNotes,
		CreatedAt:     a.CreatedAt.UTC(),
		UpdatedAt:     a.UpdatedAt.UTC(),
	}
}

func fromApplicationRecord(r applicationRecord) entities.Application {
	return entities.Application{
		ID:            r.ID,
		GigID:         r.GigID,
		ApplicantID:   r.ApplicantID,
		CoverLetter:   r.CoverLetter,
		ProposedRate:  r.ProposedRate,
		Status:        entities.ApplicationStatus(r.Status),
		EmployerNotes: r.EmployerNotes,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}
}

func toPaymentRecord(p entities.Payment) paymentRecord {
	return paymentRecord{
		ID:                p.ID,
		UserID:            p.UserID,
		GigID:             p.GigID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		ExternalSessionID: p.ExternalSessionID,
		Provider:          p.Provider,
		CheckoutURL:       p.CheckoutURL,
		PaymentType:       string(p.Type),
		Status:            string(p.Status),
		Description:       p.Description,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	}
}

func fromPaymentRecord(r paymentRecord) entities.Payment {
	var raw json.RawMessage
	if r.GatewayPayloadRaw != "" {
		raw = json.RawMessage(r.GatewayPayloadRaw)
	}
	return entities.Payment{
		ID:                r.ID,
		UserID:            r.UserID,
		GigID:             r.GigID,
		Amount:            r.Amount,
		Currency:          r.Currency,
		ExternalSessionID: r.ExternalSessionID,
		Provider:          r.Provider,
		CheckoutURL:       r.CheckoutURL,
		Type:              entities.PaymentType(r.PaymentType),
		Status:            entities.PaymentStatus(r.Status),
		Description:       r.Description,
		GatewayPayloadRaw: raw,
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
	}
}

func toHistoryRecord(h entities.PaymentHistory) paymentHistoryRecord {
	return paymentHistoryRecord{
		ID:        h.ID,
		PaymentID: h.PaymentID,
		OldStatus: string(h.OldStatus),
		NewStatus: string(h.NewStatus),
		ChangedBy: h.ChangedBy,
		Actor:     h.Actor,
		Notes:     h.Notes,
		CreatedAt: h.CreatedAt.UTC(),
	}
}

func fromHistoryRecord(r paymentHistoryRecord) entities.PaymentHistory {
	return entities.PaymentHistory{
		ID:        r.ID,
		PaymentID: r.PaymentID,
		OldStatus: entities.PaymentStatus(r.OldStatus),
		NewStatus: entities.PaymentStatus(r.NewStatus),
		ChangedBy: r.ChangedBy,
		Actor:     r.Actor,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toWebhookEventRecord(e entities.WebhookEvent) webhookEventRecord {
	return webhookEventRecord{
		ID:              e.ID,
		Provider:        e.Provider,
		ProviderEventID: e.ProviderEventID,
		EventType:       e.EventType,
		SessionID:       e.SessionID,
		PayloadJSON:     e.PayloadJSON,
		ProcessedAt:     utcPtr(e.ProcessedAt),
		ProcessingError: e.ProcessingError,
		CreatedAt:       e.CreatedAt.UTC(),
	}
}

func fromWebhookEventRecord(r webhookEventRecord) entities.WebhookEvent {
	return entities.WebhookEvent{
		ID:              r.ID,
		Provider:        r.Provider,
		ProviderEventID: r.ProviderEventID,
		EventType:       r.EventType,
		SessionID:       r.SessionID,
		PayloadJSON:     r.PayloadJSON,
		ProcessedAt:     utcPtr(r.ProcessedAt),
		ProcessingError: r.ProcessingError,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
