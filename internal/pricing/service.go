// Package pricing implements the mid/spread price stage, the source of the
// GUI and streaming pipelines.
package pricing

import (
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/obs"
	"main/internal/refdata"
)

// Service stores the latest price per product and fans updates out
// unchanged.
type Service struct {
	fabric.Notifier[model.Price]
	store *fabric.Store[string, model.Price]
}

// NewService creates an empty pricing service.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.Price]()}
}

// GetData returns the latest price for a product.
func (s *Service) GetData(productID string) (model.Price, error) {
	return s.store.Get(productID)
}

// OnMessage stores the price and notifies every listener.
func (s *Service) OnMessage(price model.Price) {
	s.store.Put(price.ProductID, price)
	s.NotifyAdd(price)
}

// Connector drains the prices feed into the service. Source-only.
type Connector struct {
	svc     *Service
	catalog *refdata.Catalog
	path    string
	stats   *obs.Counters
}

// NewConnector creates a connector reading prices from path.
func NewConnector(svc *Service, catalog *refdata.Catalog, path string, stats *obs.Counters) *Connector {
	return &Connector{svc: svc, catalog: catalog, path: path, stats: stats}
}

// Publish is a no-op; this connector only sources.
func (c *Connector) Publish(model.Price) error { return nil }

// Subscribe reads every price row, skipping malformed ones.
func (c *Connector) Subscribe() error {
	return codec.EachRow(c.path, func(row []string) {
		price, err := codec.ParsePrice(row)
		if err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip price row %v, err: %+v", row, err)
			return
		}
		if _, err := c.catalog.GetData(price.ProductID); err != nil {
			c.stats.RecordSkipped()
			logs.Warnf("skip price for unknown product %s", price.ProductID)
			return
		}
		c.stats.RecordRead()
		c.svc.OnMessage(price)
	})
}
