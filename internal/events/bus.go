package events

import (
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"storefront/internal/model"
)

const TopicOrderCreated = "order.created"

type OrderCreated struct {
	Order *model.Order
}

// Bus is the fire-and-forget handoff between the checkout transaction and
// its observers. Subscribers run asynchronously; a panicking subscriber is
// recovered and logged here so it can never reach the publisher.
type Bus struct {
	bus EventBus.Bus
	log *zap.Logger
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{
		bus: EventBus.New(),
		log: log,
	}
}

func (b *Bus) Subscribe(topic string, fn func(payload any)) error {
	return b.bus.SubscribeAsync(topic, func(payload any) {
		defer func() {
			if r := recover(); r != nil {
				b.log.Error("event subscriber panicked",
					zap.String("topic", topic),
					zap.Any("panic", r),
				)
			}
		}()
		fn(payload)
	}, false)
}

func (b *Bus) Publish(topic string, payload any) {
	b.bus.Publish(topic, payload)
}

// Wait blocks until all in-flight async subscribers finish. Used on
// shutdown and in tests.
func (b *Bus) Wait() {
	b.bus.WaitAsync()
}
