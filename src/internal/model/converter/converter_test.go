package converter

import (
	"testing"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/rating"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageToResponse(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	start, end := now.Add(-time.Hour), now.Add(time.Hour)
	pkg := &entity.Package{
		ID:                3,
		Name:              "Wedding",
		Discount:          decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		StartDiscountDate: &start,
		EndDiscountDate:   &end,
		Details: []entity.PackageDetail{
			{ID: 1, PackageID: 3, Name: "Gold", Price: decimal.NewFromInt(300)},
		},
	}

	res := PackageToResponse(pkg, now)
	require.Len(t, res.PackageDetails, 1)
	d := res.PackageDetails[0]
	assert.True(t, d.HasDiscount)
	assert.Equal(t, "270.00", d.Price.StringFixed(2))
	require.NotNil(t, d.OldPrice)
	assert.Equal(t, "300.00", d.OldPrice.StringFixed(2))
	assert.True(t, res.DiscountActive)
	require.NotNil(t, res.Discount)
	assert.Equal(t, 10.0, *res.Discount)

	later := PackageToResponse(pkg, now.Add(2*time.Hour))
	assert.False(t, later.PackageDetails[0].HasDiscount)
	assert.Nil(t, later.PackageDetails[0].OldPrice)
	assert.Equal(t, "300.00", later.PackageDetails[0].Price.StringFixed(2))
}

func TestRestaurantToResponse(t *testing.T) {
	r := &entity.Restaurant{
		ID:             1,
		Name:           "Baan",
		MainCategories: []entity.Category{{RestaurantID: 1, ID: 2, Name: "Thai"}},
		Images:         []entity.RestaurantImage{{ID: 9, RestaurantID: 1, URL: "https://img/1.png"}},
	}
	res := RestaurantToResponse(r, rating.Summary{})
	assert.Equal(t, []model.CategoryResponse{{ID: 2, Name: "Thai"}}, res.MainCategories)
	assert.NotNil(t, res.FoodCategories)
	assert.Empty(t, res.FoodCategories)
	assert.Equal(t, "https://img/1.png", res.Images[0].URL)
	assert.Nil(t, res.AvgRating)
	assert.Equal(t, 0, res.TotalReview)
}

func TestOrderToEvent(t *testing.T) {
	o := &entity.Order{ID: 42, UserID: "u1", Status: entity.OrderStatusPreparing, TotalPrice: decimal.NewFromInt(100)}
	ev := OrderToEvent(o, model.EventOrderStatusChanged, entity.OrderStatusPending)
	assert.Equal(t, "42", ev.GetId())
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "preparing", ev.Status)
	assert.Equal(t, "pending", ev.PreviousStatus)
}
