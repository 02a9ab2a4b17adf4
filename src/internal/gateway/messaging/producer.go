package messaging

import (
	"encoding/json"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/kafka"
	"marketplace-service/src/pkg/log"

	"github.com/IBM/sarama"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

// Send is a no-op when no kafka producer is configured.
func (p *Producer[T]) Send(event T) error {
	if p.Producer == nil {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	message := &sarama.ProducerMessage{
		Topic: p.Topic,
		Key:   sarama.StringEncoder(event.GetId()),
		Value: sarama.ByteEncoder(value),
	}

	if err = p.Producer.Publish(message); err != nil {
		p.Log.Error("send-event", "error send message", "Send", err.Error())
		return err
	}

	return nil
}
