package services

import (
	"context"

	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// SessionAuthSvc covers credentials and the cached bearer token
type SessionAuthSvc interface {
	// AuthBasic returns base64("key:secret") for the login call.
	AuthBasic() string

	// AccessToken returns the cached bearer token, logging in first if there is none.
	AccessToken(ctx context.Context) (string, error)
}

// SessionRequestSvc issues authenticated gateway calls
type SessionRequestSvc interface {
	// SendRequest performs the call, refreshing the token and retrying once if the
	// gateway reports it expired.
	SendRequest(ctx context.Context, method, url string, params domain.RequestParams) (*domain.Envelope, error)
}

// SessionSignSvc produces and verifies callback signatures
type SessionSignSvc interface {
	SignString(time string) string
	VerifySign(time, hash string) bool
}

// SessionSvcFacade combines all session interfaces
type SessionSvcFacade interface {
	SessionAuthSvc
	SessionRequestSvc
	SessionSignSvc
}
