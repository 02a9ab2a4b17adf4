package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/model/converter"
	"marketplace-service/src/internal/rating"
	"marketplace-service/src/internal/repository"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const restaurantRatingKey = "RESTAURANT:RATING:%d"

type RestaurantUseCase struct {
	Log                  log.Log
	Validate             *validator.Validate
	RestaurantRepository repository.RestaurantRepository
	ReviewRepository     repository.ReviewRepository
	Redis                redis.UniversalClient
	Config               *viper.Viper
}

func NewRestaurantUseCase(
	logger log.Log,
	validate *validator.Validate,
	restaurantRepository repository.RestaurantRepository,
	reviewRepository repository.ReviewRepository,
	redisClient redis.UniversalClient,
	cfg *viper.Viper,
) *RestaurantUseCase {
	return &RestaurantUseCase{
		Log:                  logger,
		Validate:             validate,
		RestaurantRepository: restaurantRepository,
		ReviewRepository:     reviewRepository,
		Redis:                redisClient,
		Config:               cfg,
	}
}

// SearchRestaurants pages server side. An empty query is fine as long as the caller
// already made sure at least one filter is present.
func (c *RestaurantUseCase) SearchRestaurants(ctx context.Context, request *model.SearchRestaurantRequest) utils.Result {
	var result utils.Result

	if err := model.ValidatePage(request.Page, request.Limit); err != nil {
		result.Error = toHTTPError(err, "")
		return result
	}

	restaurants, total, err := c.RestaurantRepository.Search(ctx, request.Query, request.Filter,
		request.Limit, model.Offset(request.Page, request.Limit))
	if err != nil {
		c.Log.Error("SearchRestaurants-Search", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "")
		return result
	}

	data := make([]model.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		data = append(data, *converter.RestaurantToResponse(&restaurants[i], rating.Aggregate(restaurants[i].Reviews)))
	}
	result.Data = model.NewSearchResult(data, request.Page, request.Limit, total)
	return result
}

func (c *RestaurantUseCase) GetRestaurant(ctx context.Context, request *model.GetRestaurantRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = badRequest("invalid restaurant id", model.ErrInvalidInput)
		return result
	}

	restaurant, err := c.RestaurantRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetRestaurant-FindByID", err.Error(), "restaurantID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "Restaurant not found")
		return result
	}

	summary, err := c.ratingSummary(ctx, restaurant.ID)
	if err != nil {
		c.Log.Error("GetRestaurant-ratingSummary", err.Error(), "restaurantID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "")
		return result
	}
	result.Data = converter.RestaurantToResponse(restaurant, summary)
	return result
}

// ratingSummary is cache-aside; a cache miss or cache failure falls back to the reviews table.
func (c *RestaurantUseCase) ratingSummary(ctx context.Context, restaurantID int64) (rating.Summary, error) {
	key := fmt.Sprintf(restaurantRatingKey, restaurantID)
	if c.Redis != nil {
		cached, err := c.Redis.Get(ctx, key).Result()
		if err == nil {
			var summary rating.Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return summary, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			c.Log.Warn("restaurant-usecase", err.Error(), "ratingSummary", key)
		}
	}

	reviews, err := c.ReviewRepository.FindByRestaurantIDs(ctx, []int64{restaurantID})
	if err != nil {
		return rating.Summary{}, err
	}
	summary := rating.Aggregate(reviews)

	if c.Redis != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := c.Redis.Set(ctx, key, payload, c.ttl("cache.rating_ttl", 5*time.Minute)).Err(); err != nil {
				c.Log.Warn("restaurant-usecase", err.Error(), "ratingSummary", key)
			}
		}
	}
	return summary, nil
}

func (c *RestaurantUseCase) ttl(key string, fallback time.Duration) time.Duration {
	return cacheTTL(c.Config, key, fallback)
}

func cacheTTL(cfg *viper.Viper, key string, fallback time.Duration) time.Duration {
	if cfg == nil {
		return fallback
	}
	if seconds := cfg.GetInt(key); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
