package enum

import "github.com/yanun0323/errors"

// Side is the direction of a trade or inquiry.
type Side uint8

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

var ErrUnknownSide = errors.New("unknown side token")

// ParseSide maps a feed token to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	default:
		return SideUnknown, ErrUnknownSide
	}
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}
