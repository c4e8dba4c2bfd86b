package ports

import "net/http"

// HTTPDoer is the HTTP transport collaborator used by the gateway session.
// *http.Client satisfies it; its timeout surfaces as a connection failure.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
