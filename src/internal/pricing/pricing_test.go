package pricing

import (
	"testing"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

func discounted(percent string, start, end *time.Time) entity.Package {
	return entity.Package{
		ID:                1,
		Discount:          decimal.NullDecimal{Decimal: decimal.RequireFromString(percent), Valid: true},
		StartDiscountDate: start,
		EndDiscountDate:   end,
	}
}

func TestComputeUnitPrice(t *testing.T) {
	detail := entity.PackageDetail{ID: 7, PackageID: 1, Price: decimal.NewFromInt(300)}
	before := ptrTime(now.Add(-24 * time.Hour))
	after := ptrTime(now.Add(24 * time.Hour))

	testCases := []struct {
		name         string
		pkg          entity.Package
		wantPrice    string
		wantDiscount bool
	}{
		{name: "active 10 percent", pkg: discounted("10", before, after), wantPrice: "270", wantDiscount: true},
		{name: "window starts now", pkg: discounted("10", ptrTime(now), after), wantPrice: "270", wantDiscount: true},
		{name: "window ends now", pkg: discounted("10", before, ptrTime(now)), wantPrice: "270", wantDiscount: true},
		{name: "window in future", pkg: discounted("10", after, ptrTime(now.Add(48*time.Hour))), wantPrice: "300"},
		{name: "window in past", pkg: discounted("10", ptrTime(now.Add(-48*time.Hour)), before), wantPrice: "300"},
		{name: "inverted window", pkg: discounted("10", after, before), wantPrice: "300"},
		{name: "missing end date", pkg: discounted("10", before, nil), wantPrice: "300"},
		{name: "zero discount", pkg: discounted("0", before, after), wantPrice: "300"},
		{name: "over one hundred", pkg: discounted("150", before, after), wantPrice: "300"},
		{name: "no discount", pkg: entity.Package{ID: 1}, wantPrice: "300"},
		{name: "full discount", pkg: discounted("100", before, after), wantPrice: "0", wantDiscount: true},
		{name: "rounded to cents", pkg: discounted("7.777", before, after), wantPrice: "276.67", wantDiscount: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := ComputeUnitPrice(detail, tc.pkg, now)
			assert.True(t, decimal.RequireFromString(tc.wantPrice).Equal(q.Price), "price %s", q.Price)
			assert.Equal(t, tc.wantDiscount, q.HasDiscount)
			if tc.wantDiscount {
				require.True(t, q.OldPrice.Valid)
				assert.True(t, q.OldPrice.Decimal.Equal(detail.Price))
			} else {
				assert.False(t, q.OldPrice.Valid)
			}
		})
	}
}

func TestComputeOrderTotals(t *testing.T) {
	total, err := ComputeOrderTotals(decimal.RequireFromString("270.00"), 5)
	require.NoError(t, err)
	assert.Equal(t, "1350.00", total.StringFixed(2))

	total, err = ComputeOrderTotals(decimal.RequireFromString("19.99"), 3)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("59.97").Equal(total))

	for _, p := range []int{0, -1} {
		_, err := ComputeOrderTotals(decimal.NewFromInt(10), p)
		assert.ErrorIs(t, err, model.ErrInvalidQuantity)
	}
}
