package rating

import (
	"marketplace-service/src/internal/entity"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalReview int      `json:"totalReview"`
	AvgRating   *float64 `json:"avgRating"`
}

// Aggregate ignores reviews without a rating. AvgRating stays nil for an empty set.
func Aggregate(reviews []entity.Review) Summary {
	sum := decimal.Zero
	count := 0
	for _, r := range reviews {
		if !r.Rating.Valid {
			continue
		}
		sum = sum.Add(r.Rating.Decimal)
		count++
	}
	if count == 0 {
		return Summary{}
	}
	avg, _ := sum.Div(decimal.NewFromInt(int64(count))).Float64()
	return Summary{TotalReview: count, AvgRating: &avg}
}
