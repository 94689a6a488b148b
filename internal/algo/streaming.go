package algo

import (
	"math/rand"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

// Stream wraps the price stream derived from a product's price.
type Stream struct {
	Stream model.PriceStream
}

// StreamingService turns mid/spread prices into two-sided price streams:
// bid = mid - spread/2, offer = mid + spread/2.
type StreamingService struct {
	fabric.Notifier[Stream]
	store *fabric.Store[string, Stream]
	rng   *rand.Rand
}

// NewStreamingService creates the service with a seeded quantity source.
func NewStreamingService(seed int64) *StreamingService {
	return &StreamingService{
		store: fabric.NewStore[string, Stream](),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// GetData returns the current algo stream for a product.
func (s *StreamingService) GetData(productID string) (Stream, error) {
	return s.store.Get(productID)
}

// OnMessage stores an externally produced record and fans it out.
func (s *StreamingService) OnMessage(st Stream) {
	s.store.Put(st.Stream.ProductID, st)
	s.NotifyAdd(st)
}

// AddPrice routes a price into the per-key entry behavior and emits the
// resulting record.
func (s *StreamingService) AddPrice(price model.Price) {
	st, err := s.store.Get(price.ProductID)
	if err != nil {
		st = s.priceStream(price, baseQuantity, baseQuantity)
	} else {
		st = s.priceChoosing(price)
	}
	s.store.Put(price.ProductID, st)
	s.NotifyAdd(st)
}

// priceChoosing rebuilds the stream with fresh quantities drawn per side.
func (s *StreamingService) priceChoosing(price model.Price) Stream {
	bidVisible := int64(1+s.rng.Intn(2)) * baseQuantity
	offerVisible := int64(1+s.rng.Intn(2)) * baseQuantity
	return s.priceStream(price, bidVisible, offerVisible)
}

func (s *StreamingService) priceStream(price model.Price, bidVisible, offerVisible int64) Stream {
	return Stream{Stream: model.PriceStream{
		ProductID: price.ProductID,
		Bid: model.PriceStreamOrder{
			Price:           price.Bid(),
			VisibleQuantity: bidVisible,
			HiddenQuantity:  2 * bidVisible,
			Side:            enum.PricingSideBid,
		},
		Offer: model.PriceStreamOrder{
			Price:           price.Offer(),
			VisibleQuantity: offerVisible,
			HiddenQuantity:  2 * offerVisible,
			Side:            enum.PricingSideOffer,
		},
	}}
}
