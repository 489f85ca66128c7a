package interfaces

import "time"

// IFeaturingMetrics receives reconciliation outcomes. Implementations must be
// safe for concurrent use.
type IFeaturingMetrics interface {
	ObserveGatewayCall(op string, took time.Duration, err error)
	ObserveReconciliation(source, outcome string)
	ObserveWebhook(provider, outcome string)
}
