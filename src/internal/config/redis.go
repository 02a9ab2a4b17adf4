package config

import (
	"context"

	"marketplace-service/src/pkg/log"
	redisModule "marketplace-service/src/pkg/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

func LoadRedisConfig(viper *viper.Viper) {
	CfgRedis := &redisModule.CfgRedis{
		Enabled:              viper.GetBool("redis.enabled"),
		UseCluster:           viper.GetBool("redis.use_cluster"),
		EnableTLS:            viper.GetBool("redis.tls"),
		RedisHost:            viper.GetString("redis.host"),
		RedisPort:            viper.GetString("redis.port"),
		RedisPassword:        viper.GetString("redis.password"),
		RedisDB:              viper.GetInt("redis.db"),
		RedisClusterNode:     viper.GetString("redis.cluster.node"),
		RedisClusterPassword: viper.GetString("redis.cluster.password"),
	}
	redisModule.LoadConfig(CfgRedis)
}

// NewRedis returns nil when redis is disabled or unreachable; callers skip caching then.
func NewRedis(log log.Log) redis.UniversalClient {
	if err := redisModule.InitConnection(context.Background()); err != nil {
		log.Error("redis init", err.Error(), "config", "")
		return nil
	}
	return redisModule.GetClient()
}
