package notify

import (
	"time"

	"go.uber.org/zap"

	"storefront/internal/events"
)

// Notifier is a best-effort observer: it reacts to order events off the
// request path. The delay stands in for a real mail transport.
type Notifier struct {
	log   *zap.Logger
	delay time.Duration
}

func New(log *zap.Logger, delay time.Duration) *Notifier {
	return &Notifier{
		log:   log,
		delay: delay,
	}
}

func (n *Notifier) Register(bus *events.Bus) error {
	return bus.Subscribe(events.TopicOrderCreated, n.onOrderCreated)
}

func (n *Notifier) onOrderCreated(payload any) {
	evt, ok := payload.(events.OrderCreated)
	if !ok {
		n.log.Warn("unexpected order.created payload")
		return
	}

	n.log.Info("notifying customer",
		zap.Uint("order_id", evt.Order.ID),
		zap.Uint("customer_id", evt.Order.CustomerID),
	)
	time.Sleep(n.delay)
	n.log.Info("customer notified", zap.Uint("order_id", evt.Order.ID))
}
