// Package model defines the immutable records that flow through the
// pipelines. Services copy records into their stores on insertion;
// listeners observe the stored values.
package model

import (
	"time"

	"main/internal/model/enum"
)

// Bond is a treasury reference record, created once at startup and looked
// up read-only by product id thereafter.
type Bond struct {
	ProductID string
	IDType    enum.BondIDType
	Ticker    string
	Coupon    float64
	Maturity  time.Time
}
