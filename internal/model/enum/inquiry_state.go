package enum

import "github.com/yanun0323/errors"

// InquiryState is the lifecycle state of a customer inquiry.
type InquiryState uint8

const (
	InquiryReceived InquiryState = iota
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
)

var ErrUnknownInquiryState = errors.New("unknown inquiry state token")

// ParseInquiryState maps a feed token to an InquiryState.
func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return InquiryReceived, nil
	case "QUOTED":
		return InquiryQuoted, nil
	case "DONE":
		return InquiryDone, nil
	case "REJECTED":
		return InquiryRejected, nil
	case "CUSTOMER_REJECTED":
		return InquiryCustomerRejected, nil
	default:
		return InquiryReceived, ErrUnknownInquiryState
	}
}

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}
