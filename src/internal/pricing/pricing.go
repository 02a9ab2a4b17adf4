// Package pricing computes what a customer pays for a package detail.
package pricing

import (
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
)

type Quote struct {
	Price       decimal.Decimal
	OldPrice    decimal.NullDecimal
	HasDiscount bool
}

// IsDiscountActive is true when discount is in (0, 100] and start <= asOf <= end.
// Missing or inverted windows count as no discount.
func IsDiscountActive(pkg entity.Package, asOf time.Time) bool {
	if !pkg.Discount.Valid {
		return false
	}
	d := pkg.Discount.Decimal
	if !d.IsPositive() || d.GreaterThan(hundred) {
		return false
	}
	if pkg.StartDiscountDate == nil || pkg.EndDiscountDate == nil {
		return false
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	return !asOf.Before(*pkg.StartDiscountDate) && !asOf.After(*pkg.EndDiscountDate)
}

func ComputeUnitPrice(detail entity.PackageDetail, pkg entity.Package, asOf time.Time) Quote {
	if !IsDiscountActive(pkg, asOf) {
		return Quote{Price: detail.Price}
	}
	factor := decimal.NewFromInt(1).Sub(pkg.Discount.Decimal.Div(hundred))
	return Quote{
		Price:       detail.Price.Mul(factor).Round(2),
		OldPrice:    decimal.NullDecimal{Decimal: detail.Price, Valid: true},
		HasDiscount: true,
	}
}

func ComputeOrderTotals(unitPrice decimal.Decimal, participants int) (decimal.Decimal, error) {
	if participants <= 0 {
		return decimal.Zero, model.ErrInvalidQuantity
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(participants))), nil
}
