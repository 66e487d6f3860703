package schema

// OrderInitialized is the genesis event of every order. It seeds all
// immutable attributes and is retained for replay.
type OrderInitialized struct {
	TraderID      TraderID
	ClientOrderID ClientOrderID
	InstrumentID  InstrumentID
	Side          OrderSide
	OrderType     OrderType
	Quantity      Quantity
	TimeInForce   TimeInForce
	ExpireTime    int64
	Price         Price
	TriggerPrice  Price
	PostOnly      bool
	ReduceOnly    bool
	Hidden        bool
	TsEvent       int64
	TsInit        int64
}

func (e OrderInitialized) Type() EventType        { return EventOrderInitialized }
func (e OrderInitialized) EventTime() int64       { return e.TsEvent }
func (e OrderInitialized) InitTime() int64        { return e.TsInit }
func (e OrderInitialized) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderSubmitted marks the order as sent to the venue.
type OrderSubmitted struct {
	ClientOrderID ClientOrderID
	TsEvent       int64
	TsInit        int64
}

func (e OrderSubmitted) Type() EventType        { return EventOrderSubmitted }
func (e OrderSubmitted) EventTime() int64       { return e.TsEvent }
func (e OrderSubmitted) InitTime() int64        { return e.TsInit }
func (e OrderSubmitted) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderAccepted assigns the venue order id.
type OrderAccepted struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	TsEvent       int64
	TsInit        int64
}

func (e OrderAccepted) Type() EventType        { return EventOrderAccepted }
func (e OrderAccepted) EventTime() int64       { return e.TsEvent }
func (e OrderAccepted) InitTime() int64        { return e.TsInit }
func (e OrderAccepted) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderRejected is a terminal venue rejection.
type OrderRejected struct {
	ClientOrderID ClientOrderID
	Reason        string
	TsEvent       int64
	TsInit        int64
}

func (e OrderRejected) Type() EventType        { return EventOrderRejected }
func (e OrderRejected) EventTime() int64       { return e.TsEvent }
func (e OrderRejected) InitTime() int64        { return e.TsInit }
func (e OrderRejected) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderCanceled is a terminal cancellation.
type OrderCanceled struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	TsEvent       int64
	TsInit        int64
}

func (e OrderCanceled) Type() EventType        { return EventOrderCanceled }
func (e OrderCanceled) EventTime() int64       { return e.TsEvent }
func (e OrderCanceled) InitTime() int64        { return e.TsInit }
func (e OrderCanceled) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderExpired is a terminal time-in-force expiry.
type OrderExpired struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	TsEvent       int64
	TsInit        int64
}

func (e OrderExpired) Type() EventType        { return EventOrderExpired }
func (e OrderExpired) EventTime() int64       { return e.TsEvent }
func (e OrderExpired) InitTime() int64        { return e.TsInit }
func (e OrderExpired) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderTriggered converts a dormant stop-bearing order into an active one.
type OrderTriggered struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	TsEvent       int64
	TsInit        int64
}

func (e OrderTriggered) Type() EventType        { return EventOrderTriggered }
func (e OrderTriggered) EventTime() int64       { return e.TsEvent }
func (e OrderTriggered) InitTime() int64        { return e.TsInit }
func (e OrderTriggered) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderAmended updates venue order id, quantity, and at most one of the
// order's price levels. Which level Price lands on is decided by the
// variant's trigger state. A zero Price leaves both levels untouched.
type OrderAmended struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	Quantity      Quantity
	Price         Price
	TsEvent       int64
	TsInit        int64
}

func (e OrderAmended) Type() EventType        { return EventOrderAmended }
func (e OrderAmended) EventTime() int64       { return e.TsEvent }
func (e OrderAmended) InitTime() int64        { return e.TsInit }
func (e OrderAmended) OrderID() ClientOrderID { return e.ClientOrderID }

// OrderFilled reports one fill. Cumulative filled quantity decides whether
// the order ends up partially or fully filled.
type OrderFilled struct {
	ClientOrderID ClientOrderID
	VenueOrderID  VenueOrderID
	TradeID       string
	Side          OrderSide
	LastQty       Quantity
	LastPrice     Price
	Fee           Fee
	TsEvent       int64
	TsInit        int64
}

func (e OrderFilled) Type() EventType        { return EventOrderFilled }
func (e OrderFilled) EventTime() int64       { return e.TsEvent }
func (e OrderFilled) InitTime() int64        { return e.TsInit }
func (e OrderFilled) OrderID() ClientOrderID { return e.ClientOrderID }

// TradingStateChanged replaces the risk gate's trading state. Config is an
// opaque encoded sub-document decoded lazily by the gate.
type TradingStateChanged struct {
	TraderID TraderID
	State    TradingState
	Config   []byte
	TsEvent  int64
	TsInit   int64
}

func (e TradingStateChanged) Type() EventType  { return EventTradingStateChanged }
func (e TradingStateChanged) EventTime() int64 { return e.TsEvent }
func (e TradingStateChanged) InitTime() int64  { return e.TsInit }
