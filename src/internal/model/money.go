package model

import "github.com/shopspring/decimal"

// Money renders as a JSON number with two decimals, e.g. 270.00.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func NullMoney(d decimal.NullDecimal) *Money {
	if !d.Valid {
		return nil
	}
	m := NewMoney(d.Decimal)
	return &m
}
