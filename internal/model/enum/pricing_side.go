package enum

// PricingSide distinguishes the bid and offer halves of a book or stream.
type PricingSide uint8

const (
	PricingSideBid PricingSide = iota
	PricingSideOffer
)

func (s PricingSide) String() string {
	if s == PricingSideBid {
		return "BID"
	}
	return "OFFER"
}
