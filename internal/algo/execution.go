// Package algo sits between the raw feeds and the outbound stages. Each
// service keeps one algo record per product: the first record for a key is
// constructed from the incoming record, later records mutate the existing
// one through the choosing step. All randomness is drawn from a seedable
// source so runs replay exactly.
package algo

import (
	"fmt"
	"math/rand"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

const baseQuantity = 1_000_000

// Execution wraps the execution order chosen from a product's book.
type Execution struct {
	Order model.ExecutionOrder
}

// ExecutionService picks the minimum-spread level of each incoming order
// book (target spread 1/128) and emits a choice execution for it. A
// monotonic counter drives the side (mod 2) and the order type cycle
// (mod 5) across updates.
type ExecutionService struct {
	fabric.Notifier[Execution]
	store   *fabric.Store[string, Execution]
	counter uint64
	rng     *rand.Rand
}

// NewExecutionService creates the service with a seeded quantity source.
func NewExecutionService(seed int64) *ExecutionService {
	return &ExecutionService{
		store: fabric.NewStore[string, Execution](),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GetData returns the current algo execution for a product.
func (s *ExecutionService) GetData(productID string) (Execution, error) {
	return s.store.Get(productID)
}

// OnMessage stores an externally produced record and fans it out.
func (s *ExecutionService) OnMessage(ex Execution) {
	s.store.Put(ex.Order.ProductID, ex)
	s.NotifyAdd(ex)
}

// AddOrderBook routes a book into the per-key entry behavior and emits the
// resulting record.
func (s *ExecutionService) AddOrderBook(book model.OrderBook) {
	ex, err := s.store.Get(book.ProductID)
	if err != nil {
		ex = s.initialExecution(book)
	} else {
		ex = s.orderChoosing(ex, book)
	}
	s.store.Put(book.ProductID, ex)
	s.NotifyAdd(ex)
}

// initialExecution builds the first record for a key: offer side, FOK,
// top-of-stack offer price, default quantities.
func (s *ExecutionService) initialExecution(book model.OrderBook) Execution {
	top := book.Offers[0]
	return Execution{Order: model.ExecutionOrder{
		ProductID:       book.ProductID,
		Side:            enum.PricingSideOffer,
		OrderID:         fmt.Sprintf("OrderID%d", s.counter),
		Type:            enum.OrderTypeForCounter(s.counter),
		Price:           top.Price,
		VisibleQuantity: baseQuantity,
		HiddenQuantity:  2 * baseQuantity,
		ParentOrderID:   fmt.Sprintf("ParentID%d", s.counter),
		IsChildOrder:    s.counter%2 == 0,
	}}
}

// orderChoosing mutates an existing record from a new book. A book bound
// to a different product id leaves the record untouched.
func (s *ExecutionService) orderChoosing(ex Execution, book model.OrderBook) Execution {
	if book.ProductID != ex.Order.ProductID {
		return ex
	}

	s.counter++
	side := enum.PricingSideOffer
	if s.counter%2 == 1 {
		side = enum.PricingSideBid
	}

	level := book.BestLevel()
	chosen := book.Offers[level]
	if side == enum.PricingSideBid {
		chosen = book.Bids[level]
	}

	visible := int64(1+s.rng.Intn(2)) * baseQuantity
	return Execution{Order: model.ExecutionOrder{
		ProductID:       book.ProductID,
		Side:            side,
		OrderID:         fmt.Sprintf("OrderID%d", s.counter),
		Type:            enum.OrderTypeForCounter(s.counter),
		Price:           chosen.Price,
		VisibleQuantity: visible,
		HiddenQuantity:  2 * visible,
		ParentOrderID:   fmt.Sprintf("ParentID%d", s.counter),
		IsChildOrder:    s.counter%2 == 0,
	}}
}
