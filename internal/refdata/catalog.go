// Package refdata holds the bond reference catalog. It is populated at
// startup and read-only afterwards.
package refdata

import (
	"time"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

// Sector names for bucketed risk aggregation.
const (
	SectorFrontEnd = "FrontEnd"
	SectorBelly    = "Belly"
	SectorLongEnd  = "LongEnd"
)

// Catalog is the product reference service, keyed by CUSIP.
type Catalog struct {
	store *fabric.Store[string, model.Bond]
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{store: fabric.NewStore[string, model.Bond]()}
}

// Add registers a bond under its product id.
func (c *Catalog) Add(bond model.Bond) {
	if !c.store.Has(bond.ProductID) {
		c.order = append(c.order, bond.ProductID)
	}
	c.store.Put(bond.ProductID, bond)
}

// GetData returns the bond for a product id.
func (c *Catalog) GetData(productID string) (model.Bond, error) {
	return c.store.Get(productID)
}

// ProductIDs returns every product id in registration order.
func (c *Catalog) ProductIDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// BondsByTicker returns all bonds carrying the given ticker.
func (c *Catalog) BondsByTicker(ticker string) []model.Bond {
	var bonds []model.Bond
	for _, id := range c.order {
		bond, err := c.store.Get(id)
		if err == nil && bond.Ticker == ticker {
			bonds = append(bonds, bond)
		}
	}
	return bonds
}

// Treasuries returns the six on-the-run treasury bonds the feeds quote.
func Treasuries() []model.Bond {
	mk := func(cusip string, coupon float64, y int, m time.Month, d int) model.Bond {
		return model.Bond{
			ProductID: cusip,
			IDType:    enum.BondIDCUSIP,
			Ticker:    "T",
			Coupon:    coupon,
			Maturity:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		}
	}
	return []model.Bond{
		mk("912828F62", 0.0150, 2019, time.October, 31),  // 2Y
		mk("9128283G3", 0.0175, 2020, time.November, 15), // 3Y
		mk("9128283C2", 0.0200, 2022, time.October, 31),  // 5Y
		mk("9128283D0", 0.0225, 2024, time.November, 15), // 7Y
		mk("9128283F5", 0.0255, 2027, time.November, 15), // 10Y
		mk("912810RZ3", 0.0175, 2047, time.November, 15), // 30Y
	}
}

// DefaultCatalog returns a catalog pre-seeded with the treasuries.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, bond := range Treasuries() {
		c.Add(bond)
	}
	return c
}

// Sectors returns the bucketed sectors over the default treasuries:
// FrontEnd {2Y, 3Y}, Belly {5Y, 7Y, 10Y}, LongEnd {30Y}.
func Sectors() []model.BucketedSector {
	return []model.BucketedSector{
		{Name: SectorFrontEnd, ProductIDs: []string{"912828F62", "9128283G3"}},
		{Name: SectorBelly, ProductIDs: []string{"9128283C2", "9128283D0", "9128283F5"}},
		{Name: SectorLongEnd, ProductIDs: []string{"912810RZ3"}},
	}
}
