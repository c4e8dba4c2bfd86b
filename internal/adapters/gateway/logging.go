package gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
)

type loggingSession struct {
	portssvc.SessionSvcFacade
	logger *slog.Logger
}

// NewLoggingSession wraps a session so every gateway call is logged with its duration.
func NewLoggingSession(logger *slog.Logger, next portssvc.SessionSvcFacade) portssvc.SessionSvcFacade {
	return &loggingSession{SessionSvcFacade: next, logger: logger}
}

func (l *loggingSession) SendRequest(ctx context.Context, method, url string, params domain.RequestParams) (env *domain.Envelope, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			slog.String("method", method),
			slog.String("url", url),
			slog.Duration("took", time.Since(begin)),
		}
		if err != nil {
			l.logger.Error("Gateway request failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		l.logger.Info("Gateway request", append(attrs, slog.Int("status", env.Status))...)
	}(time.Now())
	return l.SessionSvcFacade.SendRequest(ctx, method, url, params)
}

func (l *loggingSession) AccessToken(ctx context.Context) (token string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Error("Gateway login failed", slog.Duration("took", time.Since(begin)), slog.String("error", err.Error()))
		}
	}(time.Now())
	return l.SessionSvcFacade.AccessToken(ctx)
}
