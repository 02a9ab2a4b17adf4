package redis

import (
	"strings"
)

type CfgRedis struct {
	Enabled              bool
	UseCluster           bool
	EnableTLS            bool
	RedisHost            string
	RedisPort            string
	RedisPassword        string
	RedisDB              int
	RedisClusterNode     string
	RedisClusterPassword string
}

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	EnableTLS bool
}

type RedisClusterConfig struct {
	Hosts     []string
	Password  string
	EnableTLS bool
}

var (
	enabled                bool
	useCluster             bool
	RedisConfigData        RedisConfig
	RedisClusterConfigData RedisClusterConfig
)

func LoadConfig(config *CfgRedis) {
	enabled = config.Enabled
	useCluster = config.UseCluster

	host := config.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}
	port := config.RedisPort
	if port == "" {
		port = "6379"
	}

	RedisConfigData = RedisConfig{
		Host:      host,
		Port:      port,
		Password:  config.RedisPassword,
		DB:        config.RedisDB,
		EnableTLS: config.EnableTLS,
	}

	var nodes []string
	for _, node := range strings.Split(config.RedisClusterNode, ";") {
		if node = strings.TrimSpace(node); node != "" {
			nodes = append(nodes, node)
		}
	}
	RedisClusterConfigData = RedisClusterConfig{
		Hosts:     nodes,
		Password:  config.RedisClusterPassword,
		EnableTLS: config.EnableTLS,
	}
}
