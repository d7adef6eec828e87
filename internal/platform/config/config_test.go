package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/ledger")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, pgx.RepeatableRead, cfg.TxIsolation)
	assert.Equal(t, int32(2), cfg.CurrencyPlaces)
	assert.Equal(t, "4", cfg.RevenueAccountPrefix)
	assert.Equal(t, "5", cfg.ExpenseAccountPrefix)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.ServerReadTimeout)
	assert.Empty(t, cfg.ClosureChecklistSteps)
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Setenv("TX_ISOLATION", "serializable")
	t.Setenv("CURRENCY_PLACES", "3")
	t.Setenv("CLOSURE_CHECKLIST_STEPS", "Inventory count; Bank reconciliation, main account ;")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SERVER_WRITE_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, pgx.Serializable, cfg.TxIsolation)
	assert.Equal(t, int32(3), cfg.CurrencyPlaces)
	assert.Equal(t, []string{"Inventory count", "Bank reconciliation, main account"}, cfg.ClosureChecklistSteps)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ServerWriteTimeout)
}

func TestLoadConfig_InvalidIsolationFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("TX_ISOLATION", "EVENTUAL")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, pgx.RepeatableRead, cfg.TxIsolation)
}
