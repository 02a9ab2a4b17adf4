package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace-service/src/internal/config"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"
)

func main() {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	if err := utils.SetLocation(viperConfig.GetString("app.timezone")); err != nil {
		logger.Warn("main", fmt.Sprintf("Unknown timezone, keeping UTC: %v", err), "main", "")
	}

	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis(logger)
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("main", "Server marketplace-service is shutting down...", "graceful", "")

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		if err := db.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing redis: %v", err), "graceful", "")
			}
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing kafka producer: %v", err), "graceful", "")
			}
		}
		close(done)
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
		os.Exit(1)
	}

	<-done
	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
