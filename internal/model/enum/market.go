package enum

// Market is an execution venue.
type Market uint8

const (
	MarketBrokerTec Market = iota
	MarketESpeed
	MarketCME
)

func (m Market) String() string {
	switch m {
	case MarketBrokerTec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}
