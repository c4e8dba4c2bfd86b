package services

import "github.com/SscSPs/gateway_client/internal/core/domain"

// CurrencyLookupSvc resolves currency codes and precisions.
// Implementations must be safe for concurrent readers.
type CurrencyLookupSvc interface {
	Alpha(iso int) (string, error)
	ISO(code string) (int, error)
	Precision(iso int) (int, error)
	MaxPrecision() int
}

// CurrencyDirectorySvc exposes the descriptive side of the directory
type CurrencyDirectorySvc interface {
	Name(iso int) (string, error)
	Currency(iso int) (domain.Currency, error)
	List() []domain.Currency
}

// CurrencySvcFacade combines all currency-related interfaces
type CurrencySvcFacade interface {
	CurrencyLookupSvc
	CurrencyDirectorySvc
}
