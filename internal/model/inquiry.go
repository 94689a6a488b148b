package model

import (
	"github.com/shopspring/decimal"

	"main/internal/model/enum"
)

// Inquiry is a customer request for a quote. The inquiry id is distinct
// from the product id; only State and Price mutate over the lifecycle.
type Inquiry struct {
	InquiryID string
	ProductID string
	Side      enum.Side
	Quantity  int64
	Price     decimal.Decimal
	State     enum.InquiryState
}
