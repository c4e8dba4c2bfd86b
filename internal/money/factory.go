package money

import (
	"fmt"
	"strings"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Factory builds amounts bound to a currency registry. It holds no other state
// and may be shared between goroutines.
type Factory struct {
	currencies portssvc.CurrencyLookupSvc
}

func NewFactory(currencies portssvc.CurrencyLookupSvc) *Factory {
	return &Factory{currencies: currencies}
}

// Create parses sum into an Amount.
//
// iso binds the amount to that currency's precision; 0 leaves it unbound.
// pow marks sum as scaled (value = sum / 10^pow, no digits dropped); 0 means sum
// is already a human decimal.
func (f *Factory) Create(sum string, iso int, pow int) (Amount, error) {
	trimmed := strings.TrimSpace(sum)
	if trimmed == "" {
		return Amount{}, fmt.Errorf("%w: empty amount", apperrors.ErrValidation)
	}
	if pow < 0 {
		return Amount{}, fmt.Errorf("%w: negative scaling power %d", apperrors.ErrValidation, pow)
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: invalid amount %q: %v", apperrors.ErrValidation, sum, err)
	}

	var precision int
	if iso != 0 {
		precision, err = f.currencies.Precision(iso)
		if err != nil {
			return Amount{}, err
		}
	}

	scale := CalcScale(trimmed)
	if pow != 0 {
		return Amount{
			value:     parsed.Shift(int32(-pow)),
			scale:     pow + scale,
			precision: precision,
		}, nil
	}

	if maxPrecision := f.currencies.MaxPrecision(); maxPrecision > scale {
		scale = maxPrecision
	}
	return Amount{value: parsed, scale: scale, precision: precision}, nil
}
