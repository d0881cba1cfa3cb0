package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/safar/go-retail-store/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "reports", cfg.Report.Dir)
	require.False(t, cfg.Seed.DemoCatalog)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("REPORT_DIR", "/tmp/order-reports")
	t.Setenv("SEED_DEMO_CATALOG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "/tmp/order-reports", cfg.Report.Dir)
	require.True(t, cfg.Seed.DemoCatalog)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SERVER_WRITE_TIMEOUT", "not-a-duration")
	t.Setenv("SEED_DEMO_CATALOG", "not-a-bool")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	require.False(t, cfg.Seed.DemoCatalog)
}
