// Package inquiry implements the customer inquiry workflow. The connector
// both sources the inquiry feed and publishes quotes back to it, so the
// service and the connector reference each other; the quoter side is set
// after construction to break the cycle.
//
// Unlike the source-only connectors, this one is a
// fabric.Connector[*model.Inquiry]: Publish mutates the in-flight record
// it is handed, which is how the dealer price and terminal state reach the
// service before the fan-out.
package inquiry

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/refdata"
)

// Quoter responds to a quoted inquiry by filling in the dealer price and
// moving it to its terminal state.
type Quoter interface {
	Publish(inq *model.Inquiry) error
}

// Service stores inquiries by inquiry id. An inquiry arriving in QUOTED
// state is handed to the quoter before it is stored and fanned out, so
// downstream listeners observe the post-quote record.
type Service struct {
	fabric.Notifier[model.Inquiry]
	store  *fabric.Store[string, model.Inquiry]
	quoter Quoter
}

// NewService creates an empty inquiry service with no quoter attached.
func NewService() *Service {
	return &Service{store: fabric.NewStore[string, model.Inquiry]()}
}

// SetQuoter attaches the publishing side of the connector.
func (s *Service) SetQuoter(q Quoter) { s.quoter = q }

// GetData returns the inquiry with the given inquiry id.
func (s *Service) GetData(inquiryID string) (model.Inquiry, error) {
	return s.store.Get(inquiryID)
}

// OnMessage runs the quote step for QUOTED inquiries, then stores the
// record and fans it out. Records in any other state pass through
// untouched.
func (s *Service) OnMessage(inq model.Inquiry) {
	if inq.State == enum.InquiryQuoted && s.quoter != nil {
		if err := s.quoter.Publish(&inq); err != nil {
			logs.Warnf("quote inquiry %s failed, err: %+v", inq.InquiryID, err)
		}
	}
	s.store.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
}

// SendQuote reprices a stored inquiry and re-enters it in QUOTED state.
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) error {
	inq, err := s.store.Get(inquiryID)
	if err != nil {
		return err
	}
	inq.Price = price
	inq.State = enum.InquiryQuoted
	s.OnMessage(inq)
	return nil
}

// RejectInquiry moves a stored inquiry to REJECTED and fans it out.
func (s *Service) RejectInquiry(inquiryID string) error {
	inq, err := s.store.Get(inquiryID)
	if err != nil {
		return err
	}
	inq.State = enum.InquiryRejected
	s.store.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
	return nil
}

// quotePrice is the flat dealer response applied to every quoted inquiry.
var quotePrice = decimal.NewFromInt(100)

var _ fabric.Connector[*model.Inquiry] = (*Connector)(nil)

// Connector sources the inquiry feed and answers quotes. Inquiry ids are
// assigned here, INQ1 upward in feed order.
type Connector struct {
	svc     *Service
	catalog *refdata.Catalog
	path    string
	stats   *obs.Counters
	nextID  int
}

// NewConnector creates the dual-role connector and attaches its quoting
// side to the service.
func NewConnector(svc *Service, catalog *refdata.Catalog, path string, stats *obs.Counters) *Connector {
	c := &Connector{svc: svc, catalog: catalog, path: path, stats: stats}
	svc.SetQuoter(c)
	return c
}

// Publish answers a quoted inquiry: price 100, state DONE.
func (c *Connector) Publish(inq *model.Inquiry) error {
	inq.Price = quotePrice
	inq.State = enum.InquiryDone
	return nil
}

// Subscribe reads every inquiry row, assigns an inquiry id, and moves
// freshly received inquiries to QUOTED before handing them to the service.
// Rows carrying any other state pass through as read.
func (c *Connector) Subscribe() error {
	return codec.EachRow(c.path, func(row []string) {
		c.nextID++
		inq, err := codec.ParseInquiry(row, fmt.Sprintf("INQ%d", c.nextID))
		if err != nil {
			c.nextID--
			c.stats.RecordSkipped()
			logs.Warnf("skip inquiry row %v, err: %+v", row, err)
			return
		}
		if _, err := c.catalog.GetData(inq.ProductID); err != nil {
			c.nextID--
			c.stats.RecordSkipped()
			logs.Warnf("skip inquiry for unknown product %s", inq.ProductID)
			return
		}
		if inq.State == enum.InquiryReceived {
			inq.State = enum.InquiryQuoted
		}
		c.stats.RecordRead()
		c.svc.OnMessage(inq)
	})
}
