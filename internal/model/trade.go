package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

// Trade is a booked customer trade against a single book.
type Trade struct {
	ProductID string
	TradeID   string
	Book      string
	Price     decimal.Decimal
	Quantity  int64
	Side      enum.Side
}

// SignedQuantity returns the quantity signed by side: BUY positive,
// SELL negative.
func (t Trade) SignedQuantity() int64 {
	if t.Side == enum.SideSell {
		return -t.Quantity
	}
	return t.Quantity
}
