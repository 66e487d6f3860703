package bus

import "main/internal/schema"

// Category classifies a queued message and decides its dispatch target.
// It is fixed at message creation.
type Category uint16

const (
	CategoryUnknown Category = iota
	CategoryCommand
	CategoryRequest
	CategoryResponse
	CategoryData
)

func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryRequest:
		return "REQUEST"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryData:
		return "DATA"
	default:
		return "UNKNOWN"
	}
}

// Message is the unit passed through the engine queue.
type Message interface {
	Category() Category
}

// Command is an imperative message. It expects a side effect and no reply.
type Command interface {
	Message
	command()
}

// SubmitOrder asks the execution handler to create and submit a new order.
type SubmitOrder struct {
	Init schema.OrderInitialized
}

func (SubmitOrder) Category() Category { return CategoryCommand }
func (SubmitOrder) command()           {}

// CancelOrder asks the execution handler to cancel a live order.
type CancelOrder struct {
	TraderID      schema.TraderID
	ClientOrderID schema.ClientOrderID
	TsInit        int64
}

func (CancelOrder) Category() Category { return CategoryCommand }
func (CancelOrder) command()           {}

// AmendOrder asks the execution handler to amend a live order. Quantity and
// Price follow OrderAmended semantics: zero means unchanged.
type AmendOrder struct {
	TraderID      schema.TraderID
	ClientOrderID schema.ClientOrderID
	Quantity      schema.Quantity
	Price         schema.Price
	TsInit        int64
}

func (AmendOrder) Category() Category { return CategoryCommand }
func (AmendOrder) command()           {}

// Request expects exactly one Response correlated by CorrelationID.
type Request struct {
	CorrelationID uint64
	Kind          string
	Payload       any
}

func (Request) Category() Category { return CategoryRequest }

// Response answers a prior Request with the same CorrelationID. Err is set
// when the request could not be answered; Payload is nil in that case.
type Response struct {
	CorrelationID uint64
	Payload       any
	Err           error
}

func (Response) Category() Category { return CategoryResponse }

// Data carries unsolicited market or reference data. No reply is expected.
type Data struct {
	Payload any
}

func (Data) Category() Category { return CategoryData }
