package kafka

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer interface {
	Publish(message *sarama.ProducerMessage) error
	Close() error
}

type KafkaConfig struct {
	Brokers       []string
	Username      string
	Password      string
	SaslMechanism string
	AppName       string
	EnableTLS     bool
}

type Cfg struct {
	KafkaUrl      string
	KafkaUsername string
	KafkaPassword string
	AppName       string
	EnableTLS     bool
}

func InitKafkaConfig(cfg Cfg) KafkaConfig {
	var brokers []string
	for _, b := range strings.Split(cfg.KafkaUrl, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return KafkaConfig{
		Brokers:       brokers,
		Username:      cfg.KafkaUsername,
		Password:      cfg.KafkaPassword,
		AppName:       cfg.AppName,
		EnableTLS:     cfg.EnableTLS,
		SaslMechanism: sarama.SASLTypePlaintext,
	}
}

func (kc KafkaConfig) SaramaConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = kc.AppName
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 500 * time.Millisecond
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Net.DialTimeout = 5 * time.Second
	cfg.Net.WriteTimeout = 5 * time.Second

	if kc.Username != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.Mechanism = sarama.SASLMechanism(kc.SaslMechanism)
		cfg.Net.SASL.User = kc.Username
		cfg.Net.SASL.Password = kc.Password
	}
	if kc.EnableTLS {
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return cfg
}

type syncProducer struct {
	producer sarama.SyncProducer
	log      log.Log
}

func NewProducer(kc KafkaConfig, logger log.Log) (Producer, error) {
	if len(kc.Brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	p, err := sarama.NewSyncProducer(kc.Brokers, kc.SaramaConfig())
	if err != nil {
		return nil, err
	}
	return &syncProducer{producer: p, log: logger}, nil
}

// NewFromSarama is used when the caller already owns a sarama producer (tests use mocks.SyncProducer).
func NewFromSarama(p sarama.SyncProducer, logger log.Log) Producer {
	return &syncProducer{producer: p, log: logger}
}

func (p *syncProducer) Publish(message *sarama.ProducerMessage) error {
	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return err
	}
	p.log.Info("kafka-producer", fmt.Sprintf("delivered to %s[%d]@%d", message.Topic, partition, offset), "Publish", "")
	return nil
}

func (p *syncProducer) Close() error {
	return p.producer.Close()
}
