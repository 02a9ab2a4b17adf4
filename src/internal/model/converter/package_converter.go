package converter

import (
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/pricing"
)

// PackageToResponse prices every detail against the package discount as of asOf.
func PackageToResponse(pkg *entity.Package, asOf time.Time) *model.PackageResponse {
	details := make([]model.PackageDetailResponse, 0, len(pkg.Details))
	for _, d := range pkg.Details {
		quote := pricing.ComputeUnitPrice(d, *pkg, asOf)
		details = append(details, model.PackageDetailResponse{
			ID:          d.ID,
			PackageID:   d.PackageID,
			Name:        d.Name,
			Description: d.Description,
			Price:       model.NewMoney(quote.Price),
			OldPrice:    model.NullMoney(quote.OldPrice),
			HasDiscount: quote.HasDiscount,
		})
	}

	var discount *float64
	if pkg.Discount.Valid {
		f := pkg.Discount.Decimal.InexactFloat64()
		discount = &f
	}

	return &model.PackageResponse{
		ID:                pkg.ID,
		CategoryID:        pkg.CategoryID,
		RestaurantID:      pkg.RestaurantID,
		Name:              pkg.Name,
		Description:       pkg.Description,
		Discount:          discount,
		StartDiscountDate: pkg.StartDiscountDate,
		EndDiscountDate:   pkg.EndDiscountDate,
		DiscountActive:    pricing.IsDiscountActive(*pkg, asOf),
		PackageDetails:    details,
	}
}

func PackageToPromotion(pkg *entity.Package) model.PromotionResponse {
	return model.PromotionResponse{
		ID:                pkg.ID,
		Name:              pkg.Name,
		Description:       pkg.Description,
		Discount:          pkg.Discount.Decimal.InexactFloat64(),
		StartDiscountDate: pkg.StartDiscountDate,
		EndDiscountDate:   pkg.EndDiscountDate,
	}
}
