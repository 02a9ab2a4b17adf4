package converter

import (
	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/rating"
	"marketplace-service/src/pkg/utils"
)

func categories(in []entity.Category) []model.CategoryResponse {
	out := make([]model.CategoryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, model.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func RestaurantToResponse(r *entity.Restaurant, summary rating.Summary) *model.RestaurantResponse {
	images := make([]model.ImageResponse, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, model.ImageResponse{ID: img.ID, URL: img.URL})
	}
	return &model.RestaurantResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		UserID:          r.UserID,
		TaxID:           r.TaxID,
		SubLocation:     r.SubLocation,
		Location:        r.Location,
		CreatedAt:       utils.InLocation(r.CreatedAt),
		MainCategories:  categories(r.MainCategories),
		FoodCategories:  categories(r.FoodCategories),
		EventCategories: categories(r.EventCategories),
		Images:          images,
		AvgRating:       summary.AvgRating,
		TotalReview:     summary.TotalReview,
	}
}
