//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"slot-booking-web/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://localhost:7009/api", cfg.SlotAPI.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.SlotAPI.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
		assert.Equal(t, 4*time.Second, cfg.UI.ToastDuration)
		assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.AllowMethods)
	})

	t.Run("server and slot api timeouts are independent", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SERVER_READ_HEADER_TIMEOUT", "3s")
		t.Setenv("SLOT_API_TIMEOUT", "45s")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.Server.ReadHeaderTimeout)
		assert.Equal(t, 45*time.Second, cfg.SlotAPI.Timeout)
	})

	t.Run("missing port", func(t *testing.T) {
		t.Setenv("PORT", "")
		require.NoError(t, os.Unsetenv("PORT"))

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("non http base url", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("SLOT_API_BASE_URL", "ftp://slots")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "SLOT_API_BASE_URL")
	})

	t.Run("unknown time zone", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("UI_TIMEZONE", "Mars/Olympus")

		_, err := config.LoadConfig()
		assert.ErrorContains(t, err, "UI_TIMEZONE")
	})
}

func TestUIConfig_Location(t *testing.T) {
	loc, err := config.UIConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = config.UIConfig{TimeZone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
