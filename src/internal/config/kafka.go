package config

import (
	"marketplace-service/src/pkg/kafka"
	"marketplace-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaConfig(viper *viper.Viper) kafka.KafkaConfig {
	configKafka := kafka.Cfg{
		KafkaUrl:      viper.GetString("kafka.bootstrap.servers"),
		KafkaUsername: viper.GetString("kafka.username"),
		KafkaPassword: viper.GetString("kafka.password"),
		AppName:       viper.GetString("kafka.app.name"),
		EnableTLS:     viper.GetBool("kafka.tls"),
	}
	return kafka.InitKafkaConfig(configKafka)
}

// NewKafkaProducer returns nil when publishing is disabled; messaging.Producer treats that as a no-op.
func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}
	kafkaProducer, err := kafka.NewProducer(NewKafkaConfig(config), log)
	if err != nil {
		panic(err)
	}

	return kafkaProducer
}
