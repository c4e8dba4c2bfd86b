package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/gateway_client/pkg/config"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIToken = "0123456789abcdef-api"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AUTH_KEY", "merchant")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("API_TOKEN", testAPIToken)

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "merchant", cfg.AuthKey)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.True(t, cfg.GatewaySandbox)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "120-M", cfg.CallbackRateLimit)
	assert.False(t, cfg.IsProduction)
	assert.Empty(t, cfg.GatewayURL)
	assert.Equal(t, testAPIToken, cfg.APIToken)
	assert.Equal(t, "600-M", cfg.APIRateLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("AUTH_KEY", "merchant")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("API_TOKEN", testAPIToken)
	t.Setenv("GATEWAY_SANDBOX", "false")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("CALLBACK_RATE_LIMIT", "10-S")
	t.Setenv("API_RATE_LIMIT", "30-S")
	t.Setenv("GATEWAY_URL", "https://gateway.internal.example")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal.example", cfg.GatewayURL)
	assert.False(t, cfg.GatewaySandbox)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "10-S", cfg.CallbackRateLimit)
	assert.Equal(t, "30-S", cfg.APIRateLimit)
}

func TestLoadConfig_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("AUTH_KEY", "merchant")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("API_TOKEN", testAPIToken)
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("AUTH_KEY", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("API_TOKEN", "")

	_, err := config.LoadConfig()

	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Len(t, validationErrs, 3)
}

func TestLoadConfig_ShortAPIToken(t *testing.T) {
	t.Setenv("AUTH_KEY", "merchant")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("API_TOKEN", "short")

	_, err := config.LoadConfig()

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "APIToken", validationErrs[0].Field())
}

func TestLoadConfig_InvalidGatewayURL(t *testing.T) {
	t.Setenv("AUTH_KEY", "merchant")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("API_TOKEN", testAPIToken)
	t.Setenv("GATEWAY_URL", "gateway without scheme")

	_, err := config.LoadConfig()

	require.Error(t, err)
}
