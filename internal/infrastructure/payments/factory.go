package payments

import (
	"fmt"

	"quickgigs/internal/infrastructure/config"
	"quickgigs/internal/usecase/interfaces"
)

// NewGateway builds the configured payment provider.
func NewGateway(cfg config.GatewayConfig) (interfaces.IPaymentGateway, error) {
	switch cfg.Provider {
	case config.GatewayStripe:
		return NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret, cfg.Timeout)
	case config.GatewayMercadoPago:
		return NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.MercadoPagoWebhookSecret)
	case config.GatewaySandbox:
		return NewSandboxGateway(cfg.SandboxWebhookSecret), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.Provider)
	}
}
