package codec

import (
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/treasury"
)

// ParseInquiry decodes one inquiries.txt row:
// CUSIP, Side, Quantity, Price, State. The inquiry id is assigned by the
// connector, not carried in the feed.
func ParseInquiry(row []string, inquiryID string) (model.Inquiry, error) {
	if len(row) != 5 {
		return model.Inquiry{}, ErrFieldCount
	}

	side, err := enum.ParseSide(row[1])
	if err != nil {
		return model.Inquiry{}, err
	}
	quantity, err := parseQuantity(row[2])
	if err != nil {
		return model.Inquiry{}, err
	}
	price, err := treasury.Parse(row[3])
	if err != nil {
		return model.Inquiry{}, err
	}
	state, err := enum.ParseInquiryState(row[4])
	if err != nil {
		return model.Inquiry{}, err
	}

	return model.Inquiry{
		InquiryID: inquiryID,
		ProductID: row[0],
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		State:     state,
	}, nil
}
