package gateway_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/gateway_client/internal/adapters/gateway"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest_LogsClaimedExpiry(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testKey,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login" {
			fmt.Fprintf(w, `{"access_token":%q}`, accessToken)
			return
		}
		calls++
		if calls == 1 {
			writeExpired(w)
			return
		}
		fmt.Fprint(w, `{"data":{"id":1}}`)
	}))
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := gateway.NewSession(testKey, testSecret, gateway.NewEndpointsWithBase(server.URL), server.Client(), logger)

	_, err = s.SendRequest(context.Background(), http.MethodGet, server.URL+"/api/v1/pay/bills/1", domain.RequestParams{})
	require.NoError(t, err)

	var expired map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "Gateway access token expired" {
			expired = entry
		}
	}
	require.NotNil(t, expired, "expiry must be logged")

	loggedAt, err := time.Parse(time.RFC3339, expired["expires_at"].(string))
	require.NoError(t, err)
	assert.True(t, expiresAt.Equal(loggedAt), "logged %s, want %s", loggedAt, expiresAt)
	assert.Contains(t, expired, "remaining")
	assert.EqualValues(t, 1, expired["attempt"])
}

func TestSendRequest_OpaqueTokenExpiryHasNoClaim(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	g := newFakeGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer tok-1" {
			writeExpired(w)
			return
		}
		fmt.Fprint(w, `{"data":{}}`)
	})
	s := gateway.NewSession(testKey, testSecret, gateway.NewEndpointsWithBase(g.server.URL), g.server.Client(), logger)

	_, err := s.SendRequest(context.Background(), http.MethodGet, g.url("/api/v1/pay/bills"), domain.RequestParams{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Gateway access token expired")
	assert.NotContains(t, buf.String(), "expires_at")
}
