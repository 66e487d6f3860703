package schema

// SchemaVersion is the current event schema version.
const SchemaVersion uint16 = 1

// TraderID identifies the trader that owns orders and trading state.
type TraderID string

// ClientOrderID is the client-assigned order identifier, immutable once set.
type ClientOrderID string

// VenueOrderID is the venue-assigned order identifier, set on acceptance.
type VenueOrderID string

// InstrumentID identifies a tradable instrument.
type InstrumentID string

// Price is a scaled integer. The scale is defined by the instrument registry.
type Price int64

// Quantity is a scaled integer. The scale is defined by the instrument registry.
type Quantity int64

// Notional is a scaled integer. The scale is defined by the instrument registry.
type Notional int64

// Fee is a scaled integer. The scale is defined by the instrument registry.
type Fee int64

// EventType defines the kind of a domain event.
type EventType uint16

const (
	EventUnknown EventType = iota
	EventOrderInitialized
	EventOrderSubmitted
	EventOrderAccepted
	EventOrderRejected
	EventOrderCanceled
	EventOrderExpired
	EventOrderTriggered
	EventOrderAmended
	EventOrderFilled
	EventTradingStateChanged
)

var eventTypeNames = [...]string{
	EventUnknown:             "Unknown",
	EventOrderInitialized:    "OrderInitialized",
	EventOrderSubmitted:      "OrderSubmitted",
	EventOrderAccepted:       "OrderAccepted",
	EventOrderRejected:       "OrderRejected",
	EventOrderCanceled:       "OrderCanceled",
	EventOrderExpired:        "OrderExpired",
	EventOrderTriggered:      "OrderTriggered",
	EventOrderAmended:        "OrderAmended",
	EventOrderFilled:         "OrderFilled",
	EventTradingStateChanged: "TradingStateChanged",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// ParseEventType resolves an event type from its string form.
func ParseEventType(s string) (EventType, bool) {
	for i := 1; i < len(eventTypeNames); i++ {
		if eventTypeNames[i] == s {
			return EventType(i), true
		}
	}
	return EventUnknown, false
}

// Event is a domain event carrying nanosecond event and init timestamps.
type Event interface {
	Type() EventType
	EventTime() int64
	InitTime() int64
}

// OrderEvent is a domain event addressed to a single order.
type OrderEvent interface {
	Event
	OrderID() ClientOrderID
}
