package execution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

func TestExecuteOrderStoresAndFansOut(t *testing.T) {
	svc := NewService()

	var seen []model.ExecutionOrder
	svc.AddListener(fabric.AddFunc[model.ExecutionOrder](func(o model.ExecutionOrder) { seen = append(seen, o) }))

	order := model.ExecutionOrder{
		ProductID:       "9128283D0",
		Side:            enum.PricingSideBid,
		OrderID:         "OrderID1",
		Type:            enum.OrderTypeMarket,
		Price:           decimal.NewFromInt(100),
		VisibleQuantity: 1_000_000,
		HiddenQuantity:  2_000_000,
		ParentOrderID:   "ParentID1",
	}
	svc.ExecuteOrder(order, enum.MarketBrokerTec)

	require.Len(t, seen, 1)
	assert.Equal(t, "OrderID1", seen[0].OrderID)

	stored, err := svc.GetData("9128283D0")
	require.NoError(t, err)
	assert.Equal(t, order.OrderID, stored.OrderID)
}

func TestLatestOrderWinsPerProduct(t *testing.T) {
	svc := NewService()
	svc.OnMessage(model.ExecutionOrder{ProductID: "9128283D0", OrderID: "OrderID1"})
	svc.OnMessage(model.ExecutionOrder{ProductID: "9128283D0", OrderID: "OrderID2"})

	stored, err := svc.GetData("9128283D0")
	require.NoError(t, err)
	assert.Equal(t, "OrderID2", stored.OrderID)
}
