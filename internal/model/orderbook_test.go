package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"main/internal/model/enum"
)

func bookFromSpreads(halves []int64) OrderBook {
	mid := decimal.NewFromInt(100)
	tick := decimal.New(390625, -8)
	b := OrderBook{ProductID: "912828F62"}
	for _, h := range halves {
		off := tick.Mul(decimal.NewFromInt(h))
		b.Bids = append(b.Bids, Order{Price: mid.Sub(off), Quantity: 1, Side: enum.PricingSideBid})
		b.Offers = append(b.Offers, Order{Price: mid.Add(off), Quantity: 1, Side: enum.PricingSideOffer})
	}
	return b
}

func TestBestLevel(t *testing.T) {
	testCases := []struct {
		desc   string
		halves []int64
		want   int
	}{
		{"strictly widening", []int64{1, 2, 3, 4, 5}, 0},
		{"tightest in middle", []int64{3, 2, 1, 4, 5}, 2},
		{"tightest last", []int64{5, 4, 3, 2, 1}, 4},
		{"tie takes last index", []int64{1, 2, 1, 3, 1}, 4},
		{"all equal takes last index", []int64{2, 2, 2, 2, 2}, 4},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, bookFromSpreads(tc.halves).BestLevel())
		})
	}
}

func TestPositionAggregateAndClone(t *testing.T) {
	p := NewPosition("912828F62")
	p.Quantities["TRSY1"] = 3_000_000
	p.Quantities["TRSY2"] = -1_000_000

	assert.Equal(t, int64(2_000_000), p.Aggregate())
	assert.Equal(t, int64(0), p.Quantity("TRSY3"))

	c := p.Clone()
	c.Quantities["TRSY1"] = 0
	assert.Equal(t, int64(3_000_000), p.Quantity("TRSY1"))
}

func TestTradeSignedQuantity(t *testing.T) {
	buy := Trade{Quantity: 5_000_000, Side: enum.SideBuy}
	sell := Trade{Quantity: 5_000_000, Side: enum.SideSell}

	assert.Equal(t, int64(5_000_000), buy.SignedQuantity())
	assert.Equal(t, int64(-5_000_000), sell.SignedQuantity())
}

func TestPriceBidOffer(t *testing.T) {
	p := Price{
		ProductID: "912828F62",
		Mid:       decimal.NewFromInt(100),
		Spread:    decimal.RequireFromString("0.0078125"), // 1/128
	}

	assert.Equal(t, "99.99609375", p.Bid().String())
	assert.Equal(t, "100.00390625", p.Offer().String())
}

func TestPV01Exposure(t *testing.T) {
	pv := PV01{PV01: decimal.RequireFromString("0.0001"), Quantity: -2_000_000}
	assert.Equal(t, "200", pv.Exposure().String())
}
