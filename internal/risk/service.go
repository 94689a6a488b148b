// Package risk maintains PV01 sensitivities per product and vends bucketed
// exposure per sector. The PV01 increment is a placeholder model, driven
// from a seedable source so runs replay exactly.
package risk

import (
	"math/rand"

	"github.com/shopspring/decimal"

	"main/internal/fabric"
	"main/internal/model"
)

// Service is keyed by product id and pre-seeded with one zero PV01 record
// per product.
type Service struct {
	fabric.Notifier[model.PV01]
	store *fabric.Store[string, model.PV01]
	rng   *rand.Rand
}

// NewService creates a service with zero PV01 records for the products.
func NewService(productIDs []string, seed int64) *Service {
	s := &Service{
		store: fabric.NewStore[string, model.PV01](),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for _, id := range productIDs {
		s.store.Put(id, model.PV01{ProductID: id})
	}
	return s
}

// GetData returns the current PV01 record for a product.
func (s *Service) GetData(productID string) (model.PV01, error) {
	return s.store.Get(productID)
}

// OnMessage replaces the stored record and fans it out.
func (s *Service) OnMessage(pv model.PV01) {
	s.store.Put(pv.ProductID, pv)
	s.NotifyAdd(pv)
}

// AddPosition updates PV01 by an additive placeholder delta, adds the
// aggregate position to the record's quantity and fans the record out.
func (s *Service) AddPosition(pos model.Position) {
	pv, err := s.store.Get(pos.ProductID)
	if err != nil {
		pv = model.PV01{ProductID: pos.ProductID}
	}
	pv.PV01 = pv.PV01.Add(decimal.NewFromFloat(s.rng.Float64() / 1e5))
	pv.Quantity += pos.Aggregate()
	s.store.Put(pos.ProductID, pv)
	s.NotifyAdd(pv)
}

// GetBucketedRisk returns the summed exposure over the sector's products.
// Products without a record contribute nothing.
func (s *Service) GetBucketedRisk(sector model.BucketedSector) decimal.Decimal {
	total := decimal.Zero
	for _, id := range sector.ProductIDs {
		pv, err := s.store.Get(id)
		if err != nil {
			continue
		}
		total = total.Add(pv.Exposure())
	}
	return total
}
