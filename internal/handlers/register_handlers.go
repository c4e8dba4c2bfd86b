package handlers

import (
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/middleware"
	"github.com/SscSPs/gateway_client/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// An empty rate limit in cfg disables limiting for that surface.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Callbacks authenticate by their bcrypt signature, not the API token
	callbackMiddleware, err := rateLimited(cfg.CallbackRateLimit)
	if err != nil {
		return err
	}
	registerCallbackRoutes(r, services.Callback, callbackMiddleware...)

	return setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group behind the rate limiter and API token check.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	v1Middleware, err := rateLimited(cfg.APIRateLimit)
	if err != nil {
		return err
	}
	v1Middleware = append(v1Middleware, middleware.APITokenAuth(cfg.APIToken))

	v1 := r.Group("/api/v1", v1Middleware...)
	registerConversionRoutes(v1, services.Conversion, services.Gateway)
	registerCurrencyRoutes(v1, services.Currency)
	registerGatewayRoutes(v1, services.Gateway)
	return nil
}

func rateLimited(formatted string) ([]gin.HandlerFunc, error) {
	if formatted == "" {
		return nil, nil
	}
	limiterInstance, err := middleware.NewMemoryLimiter(formatted)
	if err != nil {
		return nil, err
	}
	return []gin.HandlerFunc{middleware.RateLimit(limiterInstance)}, nil
}
