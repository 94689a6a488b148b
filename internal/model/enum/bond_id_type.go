package enum

// BondIDType is the identifier scheme of a bond product id.
type BondIDType uint8

const (
	BondIDCUSIP BondIDType = iota
	BondIDISIN
)

func (t BondIDType) String() string {
	if t == BondIDCUSIP {
		return "CUSIP"
	}
	return "ISIN"
}
