package domain

import (
	"fmt"

	"golang.org/x/text/currency"
)

// Price is an amount in an ISO-4217 currency.
type Price struct {
	Currency currency.Unit
	Value    float64
}

// NewPrice parses code case-insensitively.
func NewPrice(code string, value float64) (Price, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Price{}, fmt.Errorf("invalid currency code %q: %w", code, err)
	}
	return Price{Currency: unit, Value: value}, nil
}

// MustPrice is like NewPrice but panics on an unknown code.
func MustPrice(code string, value float64) Price {
	p, err := NewPrice(code, value)
	if err != nil {
		panic(err)
	}
	return p
}

// CurrencyCode returns the uppercase ISO code.
func (p Price) CurrencyCode() string {
	return p.Currency.String()
}

// EncodeFields renders the price as sibling currency and value fields.
func (p Price) EncodeFields() Fields {
	return Fields{}.
		Set("currency", p.CurrencyCode()).
		Set("value", p.Value)
}
