package algo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

const cusip = "9128283F5"

func tickPrice(ticks int64) decimal.Decimal {
	return decimal.New(390625, -8).Mul(decimal.NewFromInt(ticks))
}

// book builds five aligned levels around 100-000 where the half-spread of
// level i is halves[i] ticks.
func book(halves ...int64) model.OrderBook {
	mid := int64(100 * 256)
	b := model.OrderBook{ProductID: cusip}
	for _, h := range halves {
		b.Bids = append(b.Bids, model.Order{Price: tickPrice(mid - h), Quantity: 10_000_000, Side: enum.PricingSideBid})
		b.Offers = append(b.Offers, model.Order{Price: tickPrice(mid + h), Quantity: 10_000_000, Side: enum.PricingSideOffer})
	}
	return b
}

func TestFirstBookYieldsInitialExecution(t *testing.T) {
	svc := NewExecutionService(1)
	svc.AddOrderBook(book(1, 2, 3, 4, 5))

	ex, err := svc.GetData(cusip)
	require.NoError(t, err)
	order := ex.Order

	assert.Equal(t, enum.PricingSideOffer, order.Side)
	assert.Equal(t, enum.OrderTypeFOK, order.Type)
	assert.Equal(t, "OrderID0", order.OrderID)
	assert.Equal(t, "ParentID0", order.ParentOrderID)
	assert.True(t, order.IsChildOrder)
	assert.True(t, order.Price.Equal(tickPrice(100*256+1)))
	assert.Equal(t, int64(1_000_000), order.VisibleQuantity)
	assert.Equal(t, int64(2_000_000), order.HiddenQuantity)
}

func TestSideAlternatesAndTypeCycles(t *testing.T) {
	svc := NewExecutionService(1)

	wantSides := []enum.PricingSide{
		enum.PricingSideOffer, // initial
		enum.PricingSideBid,
		enum.PricingSideOffer,
		enum.PricingSideBid,
		enum.PricingSideOffer,
		enum.PricingSideBid,
	}
	wantTypes := []enum.OrderType{
		enum.OrderTypeFOK,
		enum.OrderTypeMarket,
		enum.OrderTypeLimit,
		enum.OrderTypeStop,
		enum.OrderTypeIOC,
		enum.OrderTypeFOK,
	}

	for i := range wantSides {
		svc.AddOrderBook(book(1, 2, 3, 4, 5))
		ex, err := svc.GetData(cusip)
		require.NoError(t, err)
		assert.Equal(t, wantSides[i], ex.Order.Side, "side at update %d", i)
		assert.Equal(t, wantTypes[i], ex.Order.Type, "type at update %d", i)
	}
}

func TestChoosesLastTyingMinSpreadLevel(t *testing.T) {
	svc := NewExecutionService(1)
	svc.AddOrderBook(book(1, 2, 3, 4, 5))

	// Levels 0, 2 and 4 tie at the tightest spread; the last one wins.
	tied := book(1, 2, 1, 3, 1)
	svc.AddOrderBook(tied)

	ex, err := svc.GetData(cusip)
	require.NoError(t, err)
	require.Equal(t, enum.PricingSideBid, ex.Order.Side)
	assert.True(t, ex.Order.Price.Equal(tied.Bids[4].Price))
}

func TestQuantitiesDrawnFromSeededSource(t *testing.T) {
	svc := NewExecutionService(7)
	svc.AddOrderBook(book(1, 2, 3, 4, 5))

	for i := 0; i < 20; i++ {
		svc.AddOrderBook(book(1, 2, 3, 4, 5))
		ex, err := svc.GetData(cusip)
		require.NoError(t, err)
		assert.Contains(t, []int64{1_000_000, 2_000_000}, ex.Order.VisibleQuantity)
		assert.Equal(t, 2*ex.Order.VisibleQuantity, ex.Order.HiddenQuantity)
	}

	replay := NewExecutionService(7)
	replay.AddOrderBook(book(1, 2, 3, 4, 5))
	for i := 0; i < 20; i++ {
		replay.AddOrderBook(book(1, 2, 3, 4, 5))
	}
	want, err := svc.GetData(cusip)
	require.NoError(t, err)
	got, err := replay.GetData(cusip)
	require.NoError(t, err)
	assert.Equal(t, want.Order, got.Order)
}

func TestEachBookEmitsOneRecord(t *testing.T) {
	svc := NewExecutionService(1)

	count := 0
	svc.AddListener(fabric.AddFunc[Execution](func(Execution) { count++ }))

	for i := 0; i < 5; i++ {
		svc.AddOrderBook(book(1, 2, 3, 4, 5))
	}
	assert.Equal(t, 5, count)
}
