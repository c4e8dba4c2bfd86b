// Package money implements currency-aware decimal amounts.
//
// An Amount is an immutable value: Convert and Percentage return new amounts and
// never touch the receiver. Rounding is always up (away from zero) to the bound
// currency precision.
package money

import (
	"strings"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amount is a decimal value optionally bound to a currency precision.
// A zero precision means no currency binding and no rounding.
type Amount struct {
	value     decimal.Decimal
	scale     int
	precision int
}

// Value returns the amount rounded up to its precision and printed with exactly
// that many fractional digits. Unbound amounts print the raw value with at least
// the working scale.
func (a Amount) Value() string {
	if a.precision != 0 {
		return a.value.RoundUp(int32(a.precision)).StringFixed(int32(a.precision))
	}
	digits := a.scale
	if exp := int(-a.value.Exponent()); exp > digits {
		digits = exp
	}
	return a.value.StringFixed(int32(digits))
}

// Powered returns ceil(value * 10^precision) as an integer string.
func (a Amount) Powered() string {
	return a.value.Shift(int32(a.precision)).RoundUp(0).String()
}

// Precision returns the bound currency precision, 0 when unbound.
func (a Amount) Precision() int {
	return a.precision
}

// Decimal returns the unrounded value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Wire returns the integer-scaled pair the gateway expects in monetary fields.
func (a Amount) Wire() domain.WireAmount {
	return domain.WireAmount{Amount: a.Powered(), Pow: a.precision}
}

// Convert multiplies the amount by rate and binds the result to newPrecision.
// A bound rate contributes its rounded Value.
func (a Amount) Convert(rate Amount, newPrecision int) Amount {
	return Amount{
		value:     a.value.Mul(rate.rounded()),
		scale:     a.scale,
		precision: newPrecision,
	}
}

// Percentage returns value + value*percent/100 at the same precision.
func (a Amount) Percentage(percent int) Amount {
	markup := a.value.Mul(decimal.New(int64(percent), -2))
	return Amount{
		value:     a.value.Add(markup),
		scale:     a.scale,
		precision: a.precision,
	}
}

func (a Amount) String() string {
	return a.Value()
}

func (a Amount) rounded() decimal.Decimal {
	if a.precision != 0 {
		return a.value.RoundUp(int32(a.precision))
	}
	return a.value
}

// CalcScale returns the number of digits after the decimal point in sum.
func CalcScale(sum string) int {
	sum = strings.TrimSpace(sum)
	i := strings.IndexByte(sum, '.')
	if i < 0 {
		return 0
	}
	return len(sum) - i - 1
}
