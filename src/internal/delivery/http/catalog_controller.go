package http

import (
	"strings"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/usecase"
	httpError "marketplace-service/src/pkg/http-error"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RestaurantController struct {
	Log     log.Log
	UseCase *usecase.RestaurantUseCase
}

func NewRestaurantController(useCase *usecase.RestaurantUseCase, logger log.Log) *RestaurantController {
	return &RestaurantController{
		Log:     logger,
		UseCase: useCase,
	}
}

// Search needs a query text or at least one category filter.
func (c *RestaurantController) Search(ctx *fiber.Ctx) error {
	request := &model.SearchRestaurantRequest{Query: strings.TrimSpace(ctx.Query("query"))}

	var err error
	if request.Page, err = queryInt(ctx, "page", model.DefaultPage, model.ErrInvalidPage); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.Limit, err = queryInt(ctx, "limit", model.DefaultLimit, model.ErrInvalidLimit); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.Filter.MainCategoryID, err = queryID(ctx, "main_category_id"); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.Filter.FoodCategoryID, err = queryID(ctx, "food_category_id"); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.Filter.EventCategoryID, err = queryID(ctx, "event_category_id"); err != nil {
		return utils.ResponseError(err, ctx)
	}

	if request.Query == "" && !request.Filter.HasAny() {
		errObj := httpError.NewBadRequest()
		errObj.Message = model.ErrInvalidQuery.Error()
		return utils.ResponseError(errObj.Wrap(model.ErrInvalidQuery), ctx)
	}

	result := c.UseCase.SearchRestaurants(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *RestaurantController) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetRestaurant(ctx.UserContext(), &model.GetRestaurantRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

type BlogController struct {
	Log     log.Log
	UseCase *usecase.BlogUseCase
}

func NewBlogController(useCase *usecase.BlogUseCase, logger log.Log) *BlogController {
	return &BlogController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *BlogController) List(ctx *fiber.Ctx) error {
	request := &model.ListBlogRequest{
		SortBy:    ctx.Query("sortBy", model.DefaultBlogSortBy),
		SortOrder: ctx.Query("sortOrder", model.DefaultBlogSortOrder),
	}

	var err error
	if request.Page, err = queryInt(ctx, "page", model.DefaultPage, model.ErrInvalidPage); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.Limit, err = queryInt(ctx, "limit", model.DefaultLimit, model.ErrInvalidLimit); err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ListBlogs(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *BlogController) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetBlog(ctx.UserContext(), &model.GetBlogRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

type PackageController struct {
	Log     log.Log
	UseCase *usecase.PackageUseCase
}

func NewPackageController(useCase *usecase.PackageUseCase, logger log.Log) *PackageController {
	return &PackageController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PackageController) List(ctx *fiber.Ctx) error {
	request := new(model.ListPackagesRequest)
	var err error
	if request.CategoryID, err = queryID(ctx, "category_id"); err != nil {
		return utils.ResponseError(err, ctx)
	}
	if request.RestaurantID, err = queryID(ctx, "restaurant_id"); err != nil {
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.ListPackages(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *PackageController) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetPackage(ctx.UserContext(), &model.GetPackageRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *PackageController) Promotions(ctx *fiber.Ctx) error {
	result := c.UseCase.GetPromotions(ctx.UserContext())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}
