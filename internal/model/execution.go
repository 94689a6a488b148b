package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

// ExecutionOrder is a choice execution emitted by the algo layer.
type ExecutionOrder struct {
	ProductID       string
	Side            enum.PricingSide
	OrderID         string
	Type            enum.OrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}
