package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/SscSPs/gateway_client/internal/core/ports"
	"github.com/SscSPs/gateway_client/internal/utils"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// The gateway's "access token expired" envelope.
const (
	tokenExpiredCode  = "-240"
	tokenExpiredError = "RESULT_TOKEN_ERROR_EXPIRED"
)

type outcome int

const (
	outcomeOK outcome = iota
	outcomeTokenExpired
	outcomeFailed
)

// result is the classified response of one HTTP call. err is set unless outcome is outcomeOK;
// for outcomeTokenExpired it holds the server error to surface if no retry is left.
type result struct {
	outcome  outcome
	envelope *domain.Envelope
	err      error
}

func failed(err error) result {
	return result{outcome: outcomeFailed, err: err}
}

type requester struct {
	client ports.HTTPDoer
}

// send performs a bearer-authenticated call.
func (r requester) send(ctx context.Context, token, method, rawURL string, params domain.RequestParams) result {
	return r.execute(ctx, method, rawURL, params, "Bearer "+token)
}

// token performs the login call and extracts access_token.
func (r requester) token(ctx context.Context, authBasic, rawURL string) (domain.SessionToken, error) {
	res := r.execute(ctx, http.MethodGet, rawURL, domain.RequestParams{}, "Basic "+authBasic)
	if res.outcome != outcomeOK {
		return domain.SessionToken{}, res.err
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(res.envelope.Body, &login); err != nil || login.AccessToken == "" {
		return domain.SessionToken{}, fmt.Errorf("%w: no access_token from %s", apperrors.ErrEmptyResponse, rawURL)
	}

	return domain.SessionToken{
		Value:     login.AccessToken,
		ExpiresAt: utils.TokenExpiry(login.AccessToken),
	}, nil
}

func (r requester) execute(ctx context.Context, method, rawURL string, params domain.RequestParams, authorization string) result {
	req, err := newRequest(ctx, method, rawURL, params)
	if err != nil {
		return failed(err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := r.client.Do(req)
	if err != nil {
		return failed(fmt.Errorf("%w: %s %s: %v", apperrors.ErrConnectionFailure, req.Method, rawURL, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failed(fmt.Errorf("%w: reading %s: %v", apperrors.ErrConnectionFailure, rawURL, err))
	}

	envelope, err := decodeEnvelope(body)
	if err != nil {
		return failed(fmt.Errorf("%w: %s", err, rawURL))
	}
	envelope.Status = resp.StatusCode

	if envelope.Error != "" {
		serverErr := &apperrors.ServerError{
			Code:    envelope.Code.String(),
			Message: envelope.Error,
			Status:  resp.StatusCode,
		}
		if serverErr.Code == tokenExpiredCode && serverErr.Message == tokenExpiredError {
			return result{outcome: outcomeTokenExpired, envelope: envelope, err: serverErr}
		}
		return result{outcome: outcomeFailed, envelope: envelope, err: serverErr}
	}

	return result{outcome: outcomeOK, envelope: envelope}
}

func newRequest(ctx context.Context, method, rawURL string, params domain.RequestParams) (*http.Request, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url %q: %v", apperrors.ErrValidation, rawURL, err)
	}
	if len(params.Query) > 0 {
		q := u.Query()
		for key, values := range params.Query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if len(params.Form) > 0 {
		body = strings.NewReader(params.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrValidation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req, nil
}

// decodeEnvelope accepts only a JSON object; anything else counts as an empty response.
func decodeEnvelope(body []byte) (*domain.Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, apperrors.ErrEmptyResponse
	}

	var envelope domain.Envelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrEmptyResponse, err)
	}
	envelope.Body = json.RawMessage(trimmed)
	return &envelope, nil
}
