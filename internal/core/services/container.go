package services

import (
	portsrepo "github.com/SscSPs/gateway_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	currencies portssvc.CurrencySvcFacade,
	session portssvc.SessionSvcFacade,
	endpoints portssvc.GatewayEndpoints,
	callbacks portsrepo.CallbackRepositoryFacade,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Currency: currencies}

	// The gateway service is the live rate source for conversions
	gateway := NewGatewayService(session, endpoints, currencies)
	container.Gateway = gateway
	container.Conversion = NewConversionService(currencies, gateway)
	container.Callback = NewCallbackService(session, callbacks)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ConversionSvc    = (*ConversionService)(nil)
	_ portssvc.GatewaySvcFacade = (*GatewayService)(nil)
	_ portssvc.CallbackSvc      = (*CallbackService)(nil)
)
