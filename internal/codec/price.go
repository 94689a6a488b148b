package codec

import (
	"main/internal/model"
	"main/internal/treasury"
)

// ParsePrice decodes one prices.txt row:
// CUSIP, Mid, Bid/Offer-Spread, both in fractional notation.
func ParsePrice(row []string) (model.Price, error) {
	if len(row) != 3 {
		return model.Price{}, ErrFieldCount
	}

	mid, err := treasury.Parse(row[1])
	if err != nil {
		return model.Price{}, err
	}
	spread, err := treasury.Parse(row[2])
	if err != nil {
		return model.Price{}, err
	}

	return model.Price{ProductID: row[0], Mid: mid, Spread: spread}, nil
}
