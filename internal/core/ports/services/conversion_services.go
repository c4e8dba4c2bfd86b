package services

import (
	"context"

	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// RateSource fetches the live rate table for a source currency
type RateSource interface {
	GetRates(ctx context.Context, currency string, rateType domain.RateType) ([]domain.Rate, error)
}

// ConversionSvc performs currency-aware arithmetic on human decimal strings
type ConversionSvc interface {
	// ConvertCurrency converts sum from one currency to another. A nil rate table is
	// fetched from the RateSource; an empty one is used as given.
	ConvertCurrency(ctx context.Context, sum, from, to string, rates []domain.Rate) (string, error)

	// AddMarkup adds percent to sum, rounded up to the currency precision.
	AddMarkup(sum, currency string, percent int) (string, error)

	// WireAmount returns the integer-scaled {amount, pow} pair for sum in currency.
	WireAmount(sum, currency string) (domain.WireAmount, error)
}
