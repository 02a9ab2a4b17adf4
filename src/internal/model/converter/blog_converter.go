package converter

import (
	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/utils"
)

func BlogToResponse(b *entity.Blog) *model.BlogResponse {
	return &model.BlogResponse{
		ID:        b.ID,
		Timestamp: utils.InLocation(b.Timestamp),
		Title:     b.Title,
		Detail:    b.Detail,
		UserID:    b.UserID,
	}
}

func BlogsToResponse(blogs []entity.Blog) []model.BlogResponse {
	out := make([]model.BlogResponse, 0, len(blogs))
	for i := range blogs {
		out = append(out, *BlogToResponse(&blogs[i]))
	}
	return out
}
