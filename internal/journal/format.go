package journal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/obs"
	"main/internal/refdata"
	"main/internal/risk"
	"main/internal/treasury"
)

// frac renders a price in fractional notation, falling back to the plain
// decimal for values off the 1/256 grid.
func frac(d decimal.Decimal) string {
	s, err := treasury.Format(d)
	if err != nil {
		return d.String()
	}
	return s
}

// NewPositionJournal writes position.txt, one line per booked trade with
// every book quantity and the aggregate.
func NewPositionJournal(path string, stats *obs.Counters) *Historical[model.Position] {
	return NewHistorical(path,
		func(p model.Position) string { return p.ProductID },
		func(p model.Position) string {
			var b strings.Builder
			fmt.Fprintf(&b, "ProductId: %s", p.ProductID)
			for _, book := range model.Books {
				fmt.Fprintf(&b, ", %s: %d", book, p.Quantity(book))
			}
			fmt.Fprintf(&b, ", Aggregate: %d", p.Aggregate())
			return b.String()
		}, stats)
}

// NewRiskJournal writes risk.txt. Each line carries the product's PV01
// record plus the three bucketed sector exposures at the time of writing.
func NewRiskJournal(path string, risks *risk.Service, stats *obs.Counters) *Historical[model.PV01] {
	sectors := refdata.Sectors()
	return NewHistorical(path,
		func(pv model.PV01) string { return pv.ProductID },
		func(pv model.PV01) string {
			var b strings.Builder
			fmt.Fprintf(&b, "ProductId: %s, PV01: %s, Quantity: %d",
				pv.ProductID, pv.PV01.StringFixed(6), pv.Quantity)
			for _, sector := range sectors {
				fmt.Fprintf(&b, ", %s: %s", sector.Name, risks.GetBucketedRisk(sector).StringFixed(6))
			}
			return b.String()
		}, stats)
}

// NewExecutionJournal writes executions.txt.
func NewExecutionJournal(path string, stats *obs.Counters) *Historical[model.ExecutionOrder] {
	return NewHistorical(path,
		func(o model.ExecutionOrder) string { return o.ProductID },
		func(o model.ExecutionOrder) string {
			return fmt.Sprintf(
				"ProductId: %s, OrderId: %s, Side: %s, Type: %s, Price: %s, VisibleQuantity: %d, HiddenQuantity: %d, ParentOrderId: %s, IsChild: %t",
				o.ProductID, o.OrderID, o.Side, o.Type, frac(o.Price),
				o.VisibleQuantity, o.HiddenQuantity, o.ParentOrderID, o.IsChildOrder)
		}, stats)
}

// NewStreamingJournal writes streaming.txt, one line per published
// two-sided stream.
func NewStreamingJournal(path string, stats *obs.Counters) *Historical[model.PriceStream] {
	return NewHistorical(path,
		func(s model.PriceStream) string { return s.ProductID },
		func(s model.PriceStream) string {
			return fmt.Sprintf(
				"ProductId: %s, BidPrice: %s, BidVisibleQuantity: %d, BidHiddenQuantity: %d, OfferPrice: %s, OfferVisibleQuantity: %d, OfferHiddenQuantity: %d",
				s.ProductID,
				frac(s.Bid.Price), s.Bid.VisibleQuantity, s.Bid.HiddenQuantity,
				frac(s.Offer.Price), s.Offer.VisibleQuantity, s.Offer.HiddenQuantity)
		}, stats)
}

// NewInquiryJournal writes allinquiries.txt. The responded price prints
// with two decimals.
func NewInquiryJournal(path string, stats *obs.Counters) *Historical[model.Inquiry] {
	return NewHistorical(path,
		func(i model.Inquiry) string { return i.InquiryID },
		func(i model.Inquiry) string {
			return fmt.Sprintf(
				"InquiryId: %s, ProductId: %s, Side: %s, Quantity: %d, Price: %s, State: %s",
				i.InquiryID, i.ProductID, i.Side, i.Quantity, i.Price.StringFixed(2), i.State)
		}, stats)
}

// GuiSink is the connector behind the throttled GUI service. Publish
// persists a gui.txt line; it never sources.
type GuiSink struct {
	hist *Historical[model.Price]
}

// NewGuiSink creates a sink writing to path.
func NewGuiSink(path string, stats *obs.Counters) *GuiSink {
	return &GuiSink{hist: NewHistorical(path,
		func(p model.Price) string { return p.ProductID },
		func(p model.Price) string {
			return fmt.Sprintf("ProductId: %s, Mid: %s, Spread: %s",
				p.ProductID, frac(p.Mid), frac(p.Spread))
		}, stats)}
}

// GetData returns the last price written for a product.
func (g *GuiSink) GetData(productID string) (model.Price, error) {
	return g.hist.GetData(productID)
}

// Publish persists the throttled price.
func (g *GuiSink) Publish(price model.Price) error {
	g.hist.PersistData(price.ProductID, price)
	return nil
}

// Subscribe is a no-op; this connector only publishes.
func (g *GuiSink) Subscribe() error { return nil }
