// Package execution stores the choice executions produced by the algo
// layer and routes them to a market.
package execution

import (
	"github.com/yanun0323/logs"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

// Service is keyed by product id.
type Service struct {
	fabric.Notifier[model.ExecutionOrder]
	store *fabric.Store[string, model.ExecutionOrder]
}

// NewService creates an empty execution service.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.ExecutionOrder]()}
}

// GetData returns the latest execution order for a product.
func (s *Service) GetData(productID string) (model.ExecutionOrder, error) {
	return s.store.Get(productID)
}

// OnMessage stores the order from the algo record and fans it out.
func (s *Service) OnMessage(order model.ExecutionOrder) {
	s.store.Put(order.ProductID, order)
	s.NotifyAdd(order)
}

// ExecuteOrder routes an order to a market and records it.
func (s *Service) ExecuteOrder(order model.ExecutionOrder, market enum.Market) {
	logs.Infof("execute order %s for %s on %s", order.OrderID, order.ProductID, market)
	s.OnMessage(order)
}
