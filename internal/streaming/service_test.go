package streaming

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

func stream(productID string, bidTicks, offerTicks int64) model.PriceStream {
	tick := decimal.New(390625, -8)
	return model.PriceStream{
		ProductID: productID,
		Bid: model.PriceStreamOrder{
			Price:           tick.Mul(decimal.NewFromInt(bidTicks)),
			VisibleQuantity: 1_000_000,
			HiddenQuantity:  2_000_000,
			Side:            enum.PricingSideBid,
		},
		Offer: model.PriceStreamOrder{
			Price:           tick.Mul(decimal.NewFromInt(offerTicks)),
			VisibleQuantity: 1_000_000,
			HiddenQuantity:  2_000_000,
			Side:            enum.PricingSideOffer,
		},
	}
}

func TestPublishPriceStoresAndFansOut(t *testing.T) {
	svc := NewService()

	count := 0
	svc.AddListener(fabric.AddFunc[model.PriceStream](func(model.PriceStream) { count++ }))

	svc.PublishPrice(stream("9128283G3", 100*256-1, 100*256+1))
	svc.PublishPrice(stream("9128283G3", 100*256-2, 100*256+2))

	assert.Equal(t, 2, count)

	stored, err := svc.GetData("9128283G3")
	require.NoError(t, err)
	assert.True(t, stored.Bid.Price.Equal(stream("9128283G3", 100*256-2, 0).Bid.Price))
}
