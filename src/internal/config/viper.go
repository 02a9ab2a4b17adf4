package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NewViper reads config.yaml from ., ./config or /etc/marketplace, then lets
// environment variables override any key (database.dsn -> DATABASE_DSN).
func NewViper() *viper.Viper {
	_ = godotenv.Load()

	config := viper.New()
	config.SetConfigName("config")
	config.SetConfigType("yaml")
	config.AddConfigPath(".")
	config.AddConfigPath("./config")
	config.AddConfigPath("/etc/marketplace")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	config.SetDefault("app.name", "MARKETPLACE_SERVICE")
	config.SetDefault("app.timezone", "Asia/Bangkok")
	config.SetDefault("app.base_url", "http://localhost:8080")
	config.SetDefault("log.level", "DEBUG")
	config.SetDefault("web.port", 8080)
	config.SetDefault("web.prefork", false)
	config.SetDefault("database.driver", "mysql")
	config.SetDefault("database.timeout", 5)
	config.SetDefault("cache.rating_ttl", "5m")
	config.SetDefault("cache.promotion_ttl", "5m")
	config.SetDefault("kafka.topic.order_created", "order.created")
	config.SetDefault("kafka.topic.order_status_changed", "order.status-changed")
	return config
}
