package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

var two = decimal.NewFromInt(2)

// Price is a mid/spread quote for one product. Invariant: spread >= 0.
type Price struct {
	ProductID string
	Mid       decimal.Decimal
	Spread    decimal.Decimal
}

// Bid returns mid - spread/2.
func (p Price) Bid() decimal.Decimal {
	return p.Mid.Sub(p.Spread.Div(two))
}

// Offer returns mid + spread/2.
func (p Price) Offer() decimal.Decimal {
	return p.Mid.Add(p.Spread.Div(two))
}

// PriceStreamOrder is one side of an outbound price stream.
type PriceStreamOrder struct {
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            enum.PricingSide
}

// PriceStream pairs one bid and one offer stream order for a product.
type PriceStream struct {
	ProductID string
	Bid       PriceStreamOrder
	Offer     PriceStreamOrder
}
