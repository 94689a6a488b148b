// Package position maintains per-book signed positions for every product.
package position

import (
	"main/internal/fabric"
	"main/internal/model"
)

// Service applies booked trades to positions. It is constructed pre-seeded
// with a zero position per product, so additive updates always find their
// record.
type Service struct {
	fabric.Notifier[model.Position]
	store *fabric.Store[string, model.Position]
}

// NewService creates a service with zero positions for the given products.
func NewService(productIDs []string) *Service {
	s := &Service{store: fabric.NewStore[string, model.Position]()}
	for _, id := range productIDs {
		s.store.Put(id, model.NewPosition(id))
	}
	return s
}

// GetData returns the current position for a product.
func (s *Service) GetData(productID string) (model.Position, error) {
	pos, err := s.store.Get(productID)
	if err != nil {
		return model.Position{}, err
	}
	return pos.Clone(), nil
}

// OnMessage replaces the stored position wholesale and fans it out.
func (s *Service) OnMessage(pos model.Position) {
	s.store.Put(pos.ProductID, pos.Clone())
	s.NotifyAdd(pos)
}

// AddTrade applies a booked trade to the product's position in the trade's
// book and emits the mutated position.
func (s *Service) AddTrade(trade model.Trade) {
	pos, err := s.store.Get(trade.ProductID)
	if err != nil {
		// Unseeded product; upsert semantics keep the pipeline moving.
		pos = model.NewPosition(trade.ProductID)
	}
	pos.Quantities[trade.Book] += trade.SignedQuantity()
	s.store.Put(trade.ProductID, pos)
	s.NotifyAdd(pos.Clone())
}
