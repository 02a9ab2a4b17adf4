package config

import (
	"marketplace-service/src/internal/delivery/http"
	"marketplace-service/src/internal/delivery/http/middleware"
	"marketplace-service/src/internal/delivery/http/route"
	"marketplace-service/src/internal/gateway/messaging"
	"marketplace-service/src/internal/repository"
	"marketplace-service/src/internal/usecase"
	"marketplace-service/src/pkg/databases/sqldb"
	"marketplace-service/src/pkg/kafka"
	"marketplace-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       sqldb.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafka.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	orderRepository := repository.NewOrderRepository(config.DB)
	packageRepository := repository.NewPackageRepository(config.DB)
	reviewRepository := repository.NewReviewRepository(config.DB)
	restaurantRepository := repository.NewRestaurantRepository(config.DB, reviewRepository)
	blogRepository := repository.NewBlogRepository(config.DB)

	// setup producers
	orderProducer := messaging.NewOrderProducer(
		config.Producer,
		config.Config.GetString("kafka.topic.order_created"),
		config.Config.GetString("kafka.topic.order_status_changed"),
		config.Log,
	)

	// setup use cases
	orderUseCase := usecase.NewOrderUseCase(
		config.Log,
		config.Validate,
		orderRepository,
		orderProducer,
		config.Redis,
		config.Config,
	)
	restaurantUseCase := usecase.NewRestaurantUseCase(
		config.Log,
		config.Validate,
		restaurantRepository,
		reviewRepository,
		config.Redis,
		config.Config,
	)
	blogUseCase := usecase.NewBlogUseCase(config.Log, blogRepository)
	packageUseCase := usecase.NewPackageUseCase(config.Log, packageRepository, config.Redis, config.Config)

	// setup controller
	orderController := http.NewOrderController(orderUseCase, config.Log)
	restaurantController := http.NewRestaurantController(restaurantUseCase, config.Log)
	blogController := http.NewBlogController(blogUseCase, config.Log)
	packageController := http.NewPackageController(packageUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)

	routeConfig := route.RouteConfig{
		App:                  config.App,
		Log:                  config.Log,
		OrderController:      orderController,
		RestaurantController: restaurantController,
		BlogController:       blogController,
		PackageController:    packageController,
		AuthMiddleware:       authMiddleware,
	}
	routeConfig.Setup()
}
