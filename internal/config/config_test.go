package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORDER_SERVICE_ADDR", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("HTTP_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, ":8082", cfg.OrderSvcAddr)
	assert.Equal(t, "bolt", cfg.StorageDriver)
	assert.Equal(t, "@cafezinho", cfg.StorageNamespace)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORDER_SERVICE_ADDR", ":9999")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("HTTP_TIMEOUT", "250ms")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.OrderSvcAddr)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, 250*time.Millisecond, cfg.HTTPTimeout)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	assert.Equal(t, 5*time.Second, Load().HTTPTimeout)
}
