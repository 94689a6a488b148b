package codec

import (
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/treasury"
)

// ParseTrade decodes one trades.txt row:
// CUSIP, TradeID, Book, Price, Quantity, Side.
func ParseTrade(row []string) (model.Trade, error) {
	if len(row) != 6 {
		return model.Trade{}, ErrFieldCount
	}

	price, err := treasury.Parse(row[3])
	if err != nil {
		return model.Trade{}, err
	}
	quantity, err := parseQuantity(row[4])
	if err != nil {
		return model.Trade{}, err
	}
	side, err := enum.ParseSide(row[5])
	if err != nil {
		return model.Trade{}, err
	}

	return model.Trade{
		ProductID: row[0],
		TradeID:   row[1],
		Book:      row[2],
		Price:     price,
		Quantity:  quantity,
		Side:      side,
	}, nil
}
