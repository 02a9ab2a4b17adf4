package messaging

import (
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/kafka"
	"marketplace-service/src/pkg/log"
)

type OrderProducer struct {
	CreatedProducer       Producer[*model.OrderEvent]
	StatusChangedProducer Producer[*model.OrderEvent]
}

func NewOrderProducer(producer kafka.Producer, createdTopic, statusTopic string, log log.Log) *OrderProducer {
	if createdTopic == "" {
		createdTopic = model.EventOrderCreated
	}
	if statusTopic == "" {
		statusTopic = model.EventOrderStatusChanged
	}
	return &OrderProducer{
		CreatedProducer: Producer[*model.OrderEvent]{
			Producer: producer,
			Topic:    createdTopic,
			Log:      log,
		},
		StatusChangedProducer: Producer[*model.OrderEvent]{
			Producer: producer,
			Topic:    statusTopic,
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *OrderProducer) SendStatusChanged(event *model.OrderEvent) error {
	return p.StatusChangedProducer.Send(event)
}
