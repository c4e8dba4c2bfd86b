// Package gateway talks to the payment gateway HTTP API: URL catalogue, bearer
// session, response classification and callback signatures.
package gateway

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/SscSPs/gateway_client/internal/core/ports"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/utils"
)

// maxAttempts bounds SendRequest: the first call plus one retry after a token refresh.
const maxAttempts = 2

// Session owns the gateway credentials and the cached bearer token.
type Session struct {
	authKey    string
	authSecret string
	endpoints  Endpoints
	requests   requester
	logger     *slog.Logger

	mu    sync.Mutex
	token domain.SessionToken
}

var _ portssvc.SessionSvcFacade = (*Session)(nil)

// NewSession creates a session. client is usually an *http.Client with a timeout set.
func NewSession(authKey, authSecret string, endpoints Endpoints, client ports.HTTPDoer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		authKey:    authKey,
		authSecret: authSecret,
		endpoints:  endpoints,
		requests:   requester{client: client},
		logger:     logger,
	}
}

func (s *Session) Endpoints() Endpoints { return s.endpoints }

func (s *Session) AuthBasic() string {
	return base64.StdEncoding.EncodeToString([]byte(s.authKey + ":" + s.authSecret))
}

func (s *Session) AccessToken(ctx context.Context) (string, error) {
	token, err := s.currentToken(ctx)
	if err != nil {
		return "", err
	}
	return token.Value, nil
}

// SendRequest performs an authenticated call. When the gateway reports the token as
// expired, the token is dropped, re-acquired and the call is retried once. A second
// expiry is returned to the caller as a plain server error.
func (s *Session) SendRequest(ctx context.Context, method, url string, params domain.RequestParams) (*domain.Envelope, error) {
	var res result
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		token, err := s.currentToken(ctx)
		if err != nil {
			return nil, err
		}

		res = s.requests.send(ctx, token.Value, method, url, params)
		if res.outcome != outcomeTokenExpired {
			break
		}

		s.logger.Info("Gateway access token expired", expiryAttrs(token, url, attempt)...)
		s.invalidate(token.Value)
	}

	if res.outcome != outcomeOK {
		return nil, res.err
	}
	return res.envelope, nil
}

func (s *Session) SignString(signTime string) string {
	return s.authKey + ":" + s.authSecret + ":" + signTime
}

// VerifySign checks a callback hash against the bcrypt of SignString(signTime).
func (s *Session) VerifySign(signTime, hash string) bool {
	return utils.CheckSignHash(s.SignString(signTime), hash)
}

// HashSign produces a callback signature the way the gateway does.
func (s *Session) HashSign(signTime string) (string, error) {
	return utils.HashSign(s.SignString(signTime))
}

// currentToken returns the cached token or logs in. Login runs under the lock so
// concurrent callers share one refresh.
func (s *Session) currentToken(ctx context.Context) (domain.SessionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.token.IsZero() {
		return s.token, nil
	}

	token, err := s.requests.token(ctx, s.AuthBasic(), s.endpoints.Login())
	if err != nil {
		return domain.SessionToken{}, fmt.Errorf("gateway login: %w", err)
	}
	s.token = token

	attrs := []any{}
	if !token.ExpiresAt.IsZero() {
		attrs = append(attrs, slog.Time("expires_at", token.ExpiresAt))
	}
	s.logger.Debug("Gateway access token acquired", attrs...)
	return token, nil
}

// expiryAttrs describes an expired token. When the token carries an exp claim the
// log shows how early (positive remaining) or late the gateway revoked it.
func expiryAttrs(token domain.SessionToken, url string, attempt int) []any {
	attrs := []any{slog.String("url", url), slog.Int("attempt", attempt)}
	if !token.ExpiresAt.IsZero() {
		attrs = append(attrs,
			slog.Time("expires_at", token.ExpiresAt),
			slog.Duration("remaining", time.Until(token.ExpiresAt).Round(time.Second)),
		)
	}
	return attrs
}

// invalidate drops the cached token only if it is still the one that expired.
func (s *Session) invalidate(used string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token.Value == used {
		s.token = domain.SessionToken{}
	}
}
