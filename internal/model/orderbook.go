package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

// Order is one priced level of an order book side.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     enum.PricingSide
}

// OrderBook is a product's bid and offer stacks. The stacks are aligned by
// level; a level's spread is offers[i].Price - bids[i].Price >= 0, and the
// level with the minimum spread is the top of book for selection.
type OrderBook struct {
	ProductID string
	Bids      []Order
	Offers    []Order
}

// BidOffer is a single bid/offer pair.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// Depth returns the number of aligned levels.
func (b OrderBook) Depth() int {
	if len(b.Bids) < len(b.Offers) {
		return len(b.Bids)
	}
	return len(b.Offers)
}

// SpreadAt returns the spread of level i.
func (b OrderBook) SpreadAt(i int) decimal.Decimal {
	return b.Offers[i].Price.Sub(b.Bids[i].Price)
}

// BestLevel returns the index of the level with the minimum spread. When
// several levels tie, the greatest index wins; that is the observable
// selection behavior the algo layer depends on.
func (b OrderBook) BestLevel() int {
	best := 0
	for i := 1; i < b.Depth(); i++ {
		if b.SpreadAt(i).Cmp(b.SpreadAt(best)) <= 0 {
			best = i
		}
	}
	return best
}
