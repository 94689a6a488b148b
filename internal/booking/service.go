// Package booking implements the trade booking stage, the source of the
// position and risk pipelines.
package booking

import (
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/refdata"
)

// Service stores the most recent trade per product and fans bookings out.
type Service struct {
	fabric.Notifier[model.Trade]
	store *fabric.Store[string, model.Trade]
}

// NewService creates an empty trade booking service.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.Trade]()}
}

// GetData returns the latest trade booked for a product.
func (s *Service) GetData(productID string) (model.Trade, error) {
	return s.store.Get(productID)
}

// OnMessage books a trade: stores it and notifies every listener.
func (s *Service) OnMessage(trade model.Trade) {
	s.BookTrade(trade)
}

// BookTrade stores the trade under its product id and fans it out.
func (s *Service) BookTrade(trade model.Trade) {
	s.store.Put(trade.ProductID, trade)
	s.NotifyAdd(trade)
}

// Connector drains the trades feed into the service. Source-only.
type Connector struct {
	svc     *Service
	catalog *refdata.Catalog
	path    string
	stats   *obs.Counters
}

// NewConnector creates a connector reading trades from path.
func NewConnector(svc *Service, catalog *refdata.Catalog, path string, stats *obs.Counters) *Connector {
	return &Connector{svc: svc, catalog: catalog, path: path, stats: stats}
}

// Publish is a no-op; this connector only sources.
func (c *Connector) Publish(model.Trade) error { return nil }

// Subscribe reads every trade row, skipping malformed ones, and pushes the
// rest through OnMessage. Feed I/O errors abort the run.
func (c *Connector) Subscribe() error {
	return codec.EachRow(c.path, func(row []string) {
		trade, err := codec.ParseTrade(row)
		if err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip trade row %v, err: %+v", row, err)
			return
		}
		if _, err := c.catalog.GetData(trade.ProductID); err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip trade for unknown product %s", trade.ProductID)
			return
		}
		c.stats.RecordRead()
		c.svc.OnMessage(trade)
	})
}
