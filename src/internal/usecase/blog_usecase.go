package usecase

import (
	"context"
	"fmt"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/model/converter"
	"marketplace-service/src/internal/repository"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"
)

type BlogUseCase struct {
	Log            log.Log
	BlogRepository repository.BlogRepository
}

func NewBlogUseCase(logger log.Log, blogRepository repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{
		Log:            logger,
		BlogRepository: blogRepository,
	}
}

func (c *BlogUseCase) ListBlogs(ctx context.Context, request *model.ListBlogRequest) utils.Result {
	var result utils.Result

	if err := request.Validate(); err != nil {
		result.Error = toHTTPError(err, "")
		return result
	}

	blogs, total, err := c.BlogRepository.List(ctx, request.SortBy, request.SortOrder,
		request.Limit, model.Offset(request.Page, request.Limit))
	if err != nil {
		c.Log.Error("ListBlogs-List", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "")
		return result
	}

	result.Data = model.NewSearchResult(converter.BlogsToResponse(blogs), request.Page, request.Limit, total)
	return result
}

func (c *BlogUseCase) GetBlog(ctx context.Context, request *model.GetBlogRequest) utils.Result {
	var result utils.Result

	if request.ID <= 0 {
		result.Error = badRequest("invalid blog id", model.ErrInvalidInput)
		return result
	}
	blog, err := c.BlogRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetBlog-FindByID", err.Error(), "blogID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "Blog not found")
		return result
	}
	result.Data = converter.BlogToResponse(blog)
	return result
}
