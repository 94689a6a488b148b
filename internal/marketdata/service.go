// Package marketdata implements the order book depth stage, the source of
// the execution pipeline.
package marketdata

import (
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/refdata"
)

// Service stores the latest order book per product.
type Service struct {
	fabric.Notifier[model.OrderBook]
	store *fabric.Store[string, model.OrderBook]
}

// NewService creates an empty market data service.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.OrderBook]()}
}

// GetData returns the latest order book for a product.
func (s *Service) GetData(productID string) (model.OrderBook, error) {
	return s.store.Get(productID)
}

// OnMessage stores the book and notifies every listener.
func (s *Service) OnMessage(book model.OrderBook) {
	s.store.Put(book.ProductID, book)
	s.NotifyAdd(book)
}

// GetBestBidOffer returns the bid/offer pair at the minimum-spread level
// of the product's book, by value.
func (s *Service) GetBestBidOffer(productID string) (model.BidOffer, error) {
	book, err := s.store.Get(productID)
	if err != nil {
		return model.BidOffer{}, err
	}
	level := book.BestLevel()
	return model.BidOffer{Bid: book.Bids[level], Offer: book.Offers[level]}, nil
}

// AggregateDepth returns a copy of the product's full book, by value.
func (s *Service) AggregateDepth(productID string) (model.OrderBook, error) {
	book, err := s.store.Get(productID)
	if err != nil {
		return model.OrderBook{}, err
	}
	out := model.OrderBook{
		ProductID: book.ProductID,
		Bids:      make([]model.Order, len(book.Bids)),
		Offers:    make([]model.Order, len(book.Offers)),
	}
	copy(out.Bids, book.Bids)
	copy(out.Offers, book.Offers)
	return out, nil
}

// Connector drains the market data feed into the service. Source-only.
type Connector struct {
	svc     *Service
	catalog *refdata.Catalog
	path    string
	stats   *obs.Counters
}

// NewConnector creates a connector reading order books from path.
func NewConnector(svc *Service, catalog *refdata.Catalog, path string, stats *obs.Counters) *Connector {
	return &Connector{svc: svc, catalog: catalog, path: path, stats: stats}
}

// Publish is a no-op; this connector only sources.
func (c *Connector) Publish(model.OrderBook) error { return nil }

// Subscribe reads every depth row, skipping malformed ones.
func (c *Connector) Subscribe() error {
	return codec.EachRow(c.path, func(row []string) {
		book, err := codec.ParseOrderBook(row)
		if err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip market data row %v, err: %+v", row, err)
			return
		}
		if _, err := c.catalog.GetData(book.ProductID); err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip market data for unknown product %s", book.ProductID)
			return
		}
		c.stats.RecordRead()
		c.svc.OnMessage(book)
	})
}
