package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/model/converter"
	"marketplace-service/src/internal/repository"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	promotionsKey   = "PACKAGE:PROMOTIONS"
	promotionsLimit = 5
)

type PackageUseCase struct {
	Log               log.Log
	PackageRepository repository.PackageRepository
	Redis             redis.UniversalClient
	Config            *viper.Viper
	Now               func() time.Time
}

func NewPackageUseCase(
	logger log.Log,
	packageRepository repository.PackageRepository,
	redisClient redis.UniversalClient,
	cfg *viper.Viper,
) *PackageUseCase {
	return &PackageUseCase{
		Log:               logger,
		PackageRepository: packageRepository,
		Redis:             redisClient,
		Config:            cfg,
		Now:               time.Now,
	}
}

func (c *PackageUseCase) GetPackage(ctx context.Context, request *model.GetPackageRequest) utils.Result {
	var result utils.Result

	if request.ID <= 0 {
		result.Error = badRequest("invalid package id", model.ErrInvalidInput)
		return result
	}
	pkg, err := c.PackageRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetPackage-FindByID", err.Error(), "packageID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "Package not found")
		return result
	}
	result.Data = converter.PackageToResponse(pkg, c.Now())
	return result
}

func (c *PackageUseCase) ListPackages(ctx context.Context, request *model.ListPackagesRequest) utils.Result {
	var result utils.Result

	packages, err := c.PackageRepository.List(ctx, *request)
	if err != nil {
		c.Log.Error("ListPackages-List", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "")
		return result
	}

	now := c.Now()
	data := make([]model.PackageResponse, 0, len(packages))
	for i := range packages {
		data = append(data, *converter.PackageToResponse(&packages[i], now))
	}
	result.Data = data
	return result
}

// GetPromotions serves the top discounted packages whose window is open now.
func (c *PackageUseCase) GetPromotions(ctx context.Context) utils.Result {
	var result utils.Result

	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, promotionsKey).Result()
		if err == nil {
			var promotions []model.PromotionResponse
			if json.Unmarshal([]byte(cached), &promotions) == nil {
				result.Data = promotions
				return result
			}
		} else if !errors.Is(err, redis.Nil) {
			c.Log.Warn("package-usecase", err.Error(), "GetPromotions", promotionsKey)
		}
	}

	packages, err := c.PackageRepository.FindActivePromotions(ctx, c.Now().UTC(), promotionsLimit)
	if err != nil {
		c.Log.Error("GetPromotions-FindActivePromotions", err.Error(), "promotions", "")
		result.Error = toHTTPError(err, "")
		return result
	}
	promotions := make([]model.PromotionResponse, 0, len(packages))
	for i := range packages {
		promotions = append(promotions, converter.PackageToPromotion(&packages[i]))
	}

	if c.Redis != nil {
		if payload, err := json.Marshal(promotions); err == nil {
			ttl := cacheTTL(c.Config, "cache.promotion_ttl", 5*time.Minute)
			if err := c.Redis.Set(ctx, promotionsKey, payload, ttl).Err(); err != nil {
				c.Log.Warn("package-usecase", err.Error(), "GetPromotions", promotionsKey)
			}
		}
	}
	result.Data = promotions
	return result
}
