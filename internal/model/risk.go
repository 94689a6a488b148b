package model

import "github.com/shopspring/decimal"

// PV01 is the risk sensitivity record for one product. Both fields mutate
// only through additive updates.
type PV01 struct {
	ProductID string
	PV01      decimal.Decimal
	Quantity  int64
}

// Exposure returns pv01 x (-quantity). BUY trades leave negative
// quantities downstream of the aggregation, so the flipped sign yields a
// positive bucketed exposure.
func (p PV01) Exposure() decimal.Decimal {
	return p.PV01.Mul(decimal.NewFromInt(-p.Quantity))
}

// BucketedSector is a named, immutable subset of products used to
// aggregate PV01 exposure.
type BucketedSector struct {
	Name       string
	ProductIDs []string
}
