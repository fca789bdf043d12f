package config

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	gt.NoError(t, err)

	gt.Equal(t, cfg.Backend.BaseURL, "http://localhost:8000")
	gt.False(t, cfg.Backend.UseMock)
	gt.Equal(t, cfg.Backend.Timeout, 10*time.Second)
	gt.Equal(t, cfg.Alerts.NegativeSpikeThreshold, 5)
	gt.Equal(t, cfg.Alerts.VolumeThreshold, 50)
	gt.Equal(t, cfg.App.DefaultBrand, "TechStart Inc")
	gt.Equal(t, cfg.Kafka.Topic, "insight.alerts.derived")
	gt.False(t, cfg.Redis.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://analytics:9000/")
	t.Setenv("BACKEND_USE_MOCK", "true")
	t.Setenv("ALERTS_VOLUME_THRESHOLD", "120")

	cfg, err := Load()
	gt.NoError(t, err)
	gt.Equal(t, cfg.Backend.BaseURL, "http://analytics:9000")
	gt.True(t, cfg.Backend.UseMock)
	gt.Equal(t, cfg.Alerts.VolumeThreshold, 120)
}

func TestValidate(t *testing.T) {
	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("HTTP_SERVER_PORT", "0")
		_, err := Load()
		gt.Error(t, err)
	})

	t.Run("negative threshold", func(t *testing.T) {
		t.Setenv("ALERTS_NEGATIVE_SPIKE_THRESHOLD", "-1")
		_, err := Load()
		gt.Error(t, err)
	})
}
