package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
)

// BRLPerUSD is the fixed rate applied to Brazilian orders.
const BRLPerUSD = "3.08"

var exchangeRates = map[Currency]decimal.Decimal{
	CurrencyUSD: decimal.NewFromInt(1),
	CurrencyBRL: decimal.RequireFromString(BRLPerUSD),
}

// Convert turns a USD amount into the given currency, rounded to cents.
func Convert(usd decimal.Decimal, to Currency) (decimal.Decimal, error) {
	rate, ok := exchangeRates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}
	return usd.Mul(rate).Round(2), nil
}
