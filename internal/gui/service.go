// Package gui implements the throttled price sink. Upstream price updates
// are voluminous; the GUI journal only absorbs one record per throttle
// interval.
package gui

import (
	"time"

	"main/internal/fabric"
	"main/internal/model"
)

// DefaultThrottle is the minimum wall-clock gap between forwarded records.
const DefaultThrottle = 300 * time.Millisecond

// Service forwards a price to its sink only when at least the throttle
// interval has passed since the last forwarded record. The first record is
// always forwarded.
type Service struct {
	fabric.Notifier[model.Price]
	store    *fabric.Store[string, model.Price]
	sink     fabric.Connector[model.Price]
	clock    func() time.Time
	throttle time.Duration
	lastEmit time.Time
}

// NewService creates a throttled service in front of sink. A nil clock
// means wall time.
func NewService(sink fabric.Connector[model.Price], throttle time.Duration, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	if throttle <= 0 {
		throttle = DefaultThrottle
	}
	return &Service{
		store:    fabric.NewStore[string, model.Price](),
		sink:     sink,
		clock:    clock,
		throttle: throttle,
	}
}

// GetData returns the last forwarded price for a product.
func (s *Service) GetData(productID string) (model.Price, error) {
	return s.store.Get(productID)
}

// OnMessage forwards the price when the throttle window has elapsed and
// does nothing otherwise. The timestamp advances only on forwarded
// records.
func (s *Service) OnMessage(price model.Price) {
	now := s.clock()
	if !s.lastEmit.IsZero() && now.Sub(s.lastEmit) < s.throttle {
		return
	}
	s.lastEmit = now
	s.store.Put(price.ProductID, price)
	s.NotifyAdd(price)
	_ = s.sink.Publish(price)
}
