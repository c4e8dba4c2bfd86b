package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/money"
)

// ConversionService converts, marks up and rescales amounts between currencies.
type ConversionService struct {
	BaseService
	currencies portssvc.CurrencyLookupSvc
	amounts    *money.Factory
	rates      portssvc.RateSource
}

// NewConversionService creates a ConversionService. rates may be nil, in which case
// ConvertCurrency requires an explicit rate table.
func NewConversionService(currencies portssvc.CurrencyLookupSvc, rates portssvc.RateSource) *ConversionService {
	return &ConversionService{
		currencies: currencies,
		amounts:    money.NewFactory(currencies),
		rates:      rates,
	}
}

// ConvertCurrency converts sum from one currency to another using the first rate
// entry whose target matches. Identical currencies return the input rounded to its
// own precision without looking at the rates.
func (s *ConversionService) ConvertCurrency(ctx context.Context, sum, from, to string, rates []domain.Rate) (string, error) {
	isoFrom, err := s.currencies.ISO(from)
	if err != nil {
		return "", err
	}
	isoTo, err := s.currencies.ISO(to)
	if err != nil {
		return "", err
	}

	input, err := s.amounts.Create(sum, isoFrom, 0)
	if err != nil {
		return "", err
	}

	if isoFrom == isoTo {
		return input.Value(), nil
	}

	if rates == nil {
		if s.rates == nil {
			return "", fmt.Errorf("%w: no rate table and no rate source", apperrors.ErrIncorrectRates)
		}
		rates, err = s.rates.GetRates(ctx, from, domain.RateTypeDeposit)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch rates", "currency", from)
			return "", fmt.Errorf("fetching %s rates: %w", from, err)
		}
	}

	entry, ok := findRate(rates, isoTo)
	if !ok {
		return "", fmt.Errorf("%w: no rate from %s to %s", apperrors.ErrIncorrectRates, from, to)
	}

	rate, err := s.amounts.Create(entry.Rate.String(), 0, entry.Pow)
	if err != nil {
		return "", fmt.Errorf("%w: rate to %s: %v", apperrors.ErrIncorrectRates, to, err)
	}

	precision, err := s.currencies.Precision(isoTo)
	if err != nil {
		return "", err
	}

	return input.Convert(rate, precision).Value(), nil
}

// AddMarkup adds percent to sum and rounds up to the currency precision.
func (s *ConversionService) AddMarkup(sum, currency string, percent int) (string, error) {
	amount, err := s.bound(sum, currency)
	if err != nil {
		return "", err
	}
	return amount.Percentage(percent).Value(), nil
}

// WireAmount returns the {amount, pow} pair for sum in currency.
func (s *ConversionService) WireAmount(sum, currency string) (domain.WireAmount, error) {
	amount, err := s.bound(sum, currency)
	if err != nil {
		return domain.WireAmount{}, err
	}
	return amount.Wire(), nil
}

func (s *ConversionService) bound(sum, currency string) (money.Amount, error) {
	iso, err := s.currencies.ISO(currency)
	if err != nil {
		return money.Amount{}, err
	}
	return s.amounts.Create(sum, iso, 0)
}

func findRate(rates []domain.Rate, isoTo int) (domain.Rate, bool) {
	for _, r := range rates {
		if r.To.ISO == isoTo {
			return r, true
		}
	}
	return domain.Rate{}, false
}
