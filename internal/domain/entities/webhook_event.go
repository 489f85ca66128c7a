package entities

import "time"

// WebhookEvent records a verified gateway event once per (provider, event id)
// so that redelivered events are recognised and skipped.
type WebhookEvent struct {
	ID              string     `json:"id"`
	Provider        string     `json:"provider"`
	ProviderEventID string     `json:"provider_event_id"`
	EventType       string     `json:"event_type"`
	SessionID       string     `json:"session_id"`
	PayloadJSON     string     `json:"payload_json"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	ProcessingError string     `json:"processing_error"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (e WebhookEvent) Processed() bool {
	return e.ProcessedAt != nil
}
