// Package streaming stores the two-sided price streams produced by the
// algo layer.
package streaming

import (
	"github.com/yanun0323/logs"

	"main/internal/fabric"
	"main/internal/model"
)

// Service is keyed by product id.
type Service struct {
	fabric.Notifier[model.PriceStream]
	store *fabric.Store[string, model.PriceStream]
}

// NewService creates an empty streaming service.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.PriceStream]()}
}

// GetData returns the latest price stream for a product.
func (s *Service) GetData(productID string) (model.PriceStream, error) {
	return s.store.Get(productID)
}

// OnMessage stores the stream from the algo record and fans it out.
func (s *Service) OnMessage(stream model.PriceStream) {
	s.store.Put(stream.ProductID, stream)
	s.NotifyAdd(stream)
}

// PublishPrice announces and records a stream.
func (s *Service) PublishPrice(stream model.PriceStream) {
	logs.Infof("publish price stream for %s, bid %s, offer %s",
		stream.ProductID, stream.Bid.Price, stream.Offer.Price)
	s.OnMessage(stream)
}
