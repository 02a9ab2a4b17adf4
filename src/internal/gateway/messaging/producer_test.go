package messaging

import (
	"encoding/json"
	"testing"

	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/kafka"
	"marketplace-service/src/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProducer_SendOrderCreated(t *testing.T) {
	logger := log.NewDiscard("test")
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev model.OrderEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		assert.Equal(t, int64(42), ev.OrderID)
		assert.Equal(t, model.EventOrderCreated, ev.EventType)
		return nil
	})

	p := NewOrderProducer(kafka.NewFromSarama(mock, logger), "", "", logger)
	assert.Equal(t, model.EventOrderCreated, *p.CreatedProducer.GetTopic())
	assert.Equal(t, model.EventOrderStatusChanged, *p.StatusChangedProducer.GetTopic())

	err := p.SendOrderCreated(&model.OrderEvent{OrderID: 42, EventType: model.EventOrderCreated})
	require.NoError(t, err)
	require.NoError(t, mock.Close())
}

func TestOrderProducer_SendFailure(t *testing.T) {
	logger := log.NewDiscard("test")
	mock := mocks.NewSyncProducer(t, nil)
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewOrderProducer(kafka.NewFromSarama(mock, logger), "orders.created", "orders.status", logger)
	err := p.SendStatusChanged(&model.OrderEvent{OrderID: 1})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, mock.Close())
}

func TestOrderProducer_Disabled(t *testing.T) {
	p := NewOrderProducer(nil, "", "", log.NewDiscard("test"))
	assert.NoError(t, p.SendOrderCreated(&model.OrderEvent{OrderID: 1}))
}
