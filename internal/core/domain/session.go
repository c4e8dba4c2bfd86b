package domain

import "time"

// SessionToken is the bearer token issued by the gateway login endpoint.
type SessionToken struct {
	Value string
	// ExpiresAt comes from the unverified "exp" claim when the token is a JWT. Zero when unknown.
	// Diagnostic only: it is logged on login and on expiry, but refresh is driven by the server's
	// expiry signal, never by this value.
	ExpiresAt time.Time
}

// IsZero reports whether no token has been acquired.
func (t SessionToken) IsZero() bool { return t.Value == "" }
