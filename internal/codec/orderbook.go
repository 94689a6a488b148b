package codec

import (
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/treasury"
)

// BookLevels is the fixed depth of the market data feed.
const BookLevels = 5

// ParseOrderBook decodes one marketdata.txt row: CUSIP followed by five
// (price, quantity) bid levels then five (price, quantity) offer levels.
func ParseOrderBook(row []string) (model.OrderBook, error) {
	if len(row) != 1+4*BookLevels {
		return model.OrderBook{}, ErrFieldCount
	}

	parseSide := func(fields []string, side enum.PricingSide) ([]model.Order, error) {
		orders := make([]model.Order, 0, BookLevels)
		for i := 0; i < BookLevels; i++ {
			price, err := treasury.Parse(fields[2*i])
			if err != nil {
				return nil, err
			}
			quantity, err := parseQuantity(fields[2*i+1])
			if err != nil {
				return nil, err
			}
			orders = append(orders, model.Order{Price: price, Quantity: quantity, Side: side})
		}
		return orders, nil
	}

	bids, err := parseSide(row[1:1+2*BookLevels], enum.PricingSideBid)
	if err != nil {
		return model.OrderBook{}, err
	}
	offers, err := parseSide(row[1+2*BookLevels:], enum.PricingSideOffer)
	if err != nil {
		return model.OrderBook{}, err
	}

	return model.OrderBook{ProductID: row[0], Bids: bids, Offers: offers}, nil
}
