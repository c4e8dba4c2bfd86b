// Package currency holds the gateway currency directory.
package currency

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
)

// MaxPrecision is the largest fractional precision of any gateway currency.
// It is also the minimum working scale for parsing human-entered sums.
const MaxPrecision = 18

// Registry is an immutable currency directory keyed by ISO code.
// It is built once and is safe for unlimited concurrent readers.
type Registry struct {
	byISO  map[int]domain.Currency
	byCode map[string]int // upper-cased alpha and node aliases
	isos   []int
}

// NewRegistry builds a registry, rejecting duplicate ISO codes, ambiguous aliases
// and precisions outside [0, MaxPrecision].
func NewRegistry(currencies []domain.Currency) (*Registry, error) {
	r := &Registry{
		byISO:  make(map[int]domain.Currency, len(currencies)),
		byCode: make(map[string]int, len(currencies)*2),
		isos:   make([]int, 0, len(currencies)),
	}

	for _, c := range currencies {
		if c.ISO <= 0 {
			return nil, fmt.Errorf("%w: currency %q has invalid iso %d", apperrors.ErrValidation, c.Alpha, c.ISO)
		}
		if c.Precision < 0 || c.Precision > MaxPrecision {
			return nil, fmt.Errorf("%w: currency %d precision %d out of range", apperrors.ErrValidation, c.ISO, c.Precision)
		}
		if _, exists := r.byISO[c.ISO]; exists {
			return nil, fmt.Errorf("%w: duplicate iso %d", apperrors.ErrValidation, c.ISO)
		}

		// Copy nodes so later mutation of the input slice cannot leak in.
		nodes := append([]string(nil), c.Nodes...)
		c.Nodes = nodes
		r.byISO[c.ISO] = c
		r.isos = append(r.isos, c.ISO)

		codes := append([]string{c.Alpha}, nodes...)
		for _, code := range codes {
			key := strings.ToUpper(strings.TrimSpace(code))
			if key == "" {
				return nil, fmt.Errorf("%w: currency %d has an empty code", apperrors.ErrValidation, c.ISO)
			}
			if other, exists := r.byCode[key]; exists && other != c.ISO {
				return nil, fmt.Errorf("%w: code %q maps to both %d and %d", apperrors.ErrValidation, key, other, c.ISO)
			}
			r.byCode[key] = c.ISO
		}
	}

	sort.Ints(r.isos)
	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid table.
func MustNewRegistry(currencies []domain.Currency) *Registry {
	r, err := NewRegistry(currencies)
	if err != nil {
		panic(err)
	}
	return r
}

// Alpha returns the ticker for an ISO code.
func (r *Registry) Alpha(iso int) (string, error) {
	c, err := r.lookup(iso)
	if err != nil {
		return "", err
	}
	return c.Alpha, nil
}

// ISO resolves a ticker or node alias (case-insensitive) to its ISO code.
func (r *Registry) ISO(code string) (int, error) {
	iso, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, code)
	}
	return iso, nil
}

// Precision returns the number of fractional digits for an ISO code.
func (r *Registry) Precision(iso int) (int, error) {
	c, err := r.lookup(iso)
	if err != nil {
		return 0, err
	}
	return c.Precision, nil
}

// Name returns the display name for an ISO code.
func (r *Registry) Name(iso int) (string, error) {
	c, err := r.lookup(iso)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

// Currency returns a copy of the full descriptor for an ISO code.
func (r *Registry) Currency(iso int) (domain.Currency, error) {
	c, err := r.lookup(iso)
	if err != nil {
		return domain.Currency{}, err
	}
	c.Nodes = append([]string(nil), c.Nodes...)
	return c, nil
}

// MaxPrecision returns the ceiling used for scale inference.
func (r *Registry) MaxPrecision() int { return MaxPrecision }

// List returns all descriptors ordered by ISO code.
func (r *Registry) List() []domain.Currency {
	out := make([]domain.Currency, 0, len(r.isos))
	for _, iso := range r.isos {
		c := r.byISO[iso]
		c.Nodes = append([]string(nil), c.Nodes...)
		out = append(out, c)
	}
	return out
}

func (r *Registry) lookup(iso int) (domain.Currency, error) {
	c, ok := r.byISO[iso]
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: iso %d", apperrors.ErrUnknownCurrency, iso)
	}
	return c, nil
}
