package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with sandbox gateway", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "sandbox")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "9.99", cfg.Featuring.Price.StringFixed(2))
		require.Equal(t, "usd", cfg.Featuring.Currency)
		require.Equal(t, 24*time.Hour, cfg.Featuring.SessionTTL)
		require.Equal(t, 10*time.Second, cfg.Gateway.Timeout)
		require.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
		require.Equal(t, "@every 15m", cfg.Jobs.SweepSchedule)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("PAYMENT_GATEWAY", "sandbox")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("stripe requires credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "stripe")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		t.Setenv("STRIPE_SECRET_KEY", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("mock flag forces sandbox", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "stripe")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, GatewaySandbox, cfg.Gateway.Provider)
	})

	t.Run("non positive price", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PAYMENT_GATEWAY", "sandbox")
		t.Setenv("FEATURED_GIG_PRICE", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("origins list", func(t *testing.T) {
		require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	})
}
