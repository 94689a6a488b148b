package enum

// OrderType is the execution order type cycled by the algo layer.
type OrderType uint8

const (
	OrderTypeFOK OrderType = iota
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
	OrderTypeIOC
)

// OrderTypeForCounter maps a monotonic update counter onto the
// FOK/MARKET/LIMIT/STOP/IOC cycle.
func OrderTypeForCounter(counter uint64) OrderType {
	switch counter % 5 {
	case 0:
		return OrderTypeFOK
	case 1:
		return OrderTypeMarket
	case 2:
		return OrderTypeLimit
	case 3:
		return OrderTypeStop
	default:
		return OrderTypeIOC
	}
}

func (t OrderType) String() string {
	switch t {
	case OrderTypeFOK:
		return "FOK"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStop:
		return "STOP"
	case OrderTypeIOC:
		return "IOC"
	default:
		return "UNKNOWN"
	}
}
