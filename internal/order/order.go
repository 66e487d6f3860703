package order

import (
	"fmt"

	"main/internal/schema"
	"main/pkg/exception"
)

// Status tracks the lifecycle of an order.
type Status uint16

const (
	StatusUnknown Status = iota
	StatusInitialized
	StatusSubmitted
	StatusAccepted
	StatusTriggered
	StatusPartiallyFilled
	StatusFilled
	StatusRejected
	StatusCanceled
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "INITIALIZED"
	case StatusSubmitted:
		return "SUBMITTED"
	case StatusAccepted:
		return "ACCEPTED"
	case StatusTriggered:
		return "TRIGGERED"
	case StatusPartiallyFilled:
		return "PARTIALLY_FILLED"
	case StatusFilled:
		return "FILLED"
	case StatusRejected:
		return "REJECTED"
	case StatusCanceled:
		return "CANCELED"
	case StatusExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further transitions are accepted.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusFilled, StatusRejected, StatusCanceled, StatusExpired:
		return true
	default:
		return false
	}
}

// TransitionError names the rejected event and the state it was rejected in.
// It matches exception.ErrOrderInvalidTransition under errors.Is.
type TransitionError struct {
	Order   schema.ClientOrderID
	Current Status
	Event   schema.EventType
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("order: invalid state transition, event %s in state %s, order %s",
		e.Event, e.Current, e.Order)
}

func (e TransitionError) Is(target error) bool {
	return target == exception.ErrOrderInvalidTransition
}

// Order is one trading instruction and its lifecycle state machine. It is
// mutated only through Apply; external callers never write fields directly.
type Order interface {
	ClientOrderID() schema.ClientOrderID
	VenueOrderID() schema.VenueOrderID
	TraderID() schema.TraderID
	InstrumentID() schema.InstrumentID
	Side() schema.OrderSide
	OrderType() schema.OrderType
	TimeInForce() schema.TimeInForce
	Status() Status
	Quantity() schema.Quantity
	FilledQty() schema.Quantity
	LeavesQty() schema.Quantity
	IsTerminal() bool
	IsReduceOnly() bool
	InitEvent() schema.OrderInitialized

	// Apply is the single mutation entry point. A rejected event leaves the
	// order exactly as it was.
	Apply(ev schema.Event) error
}

type base struct {
	init schema.OrderInitialized

	clientOrderID schema.ClientOrderID
	venueOrderID  schema.VenueOrderID
	traderID      schema.TraderID
	instrumentID  schema.InstrumentID
	side          schema.OrderSide
	orderType     schema.OrderType
	timeInForce   schema.TimeInForce
	expireTime    int64
	quantity      schema.Quantity
	filledQty     schema.Quantity
	reduceOnly    bool
	status        Status
}

func newBase(init schema.OrderInitialized) base {
	return base{
		init:          init,
		clientOrderID: init.ClientOrderID,
		traderID:      init.TraderID,
		instrumentID:  init.InstrumentID,
		side:          init.Side,
		orderType:     init.OrderType,
		timeInForce:   init.TimeInForce,
		expireTime:    init.ExpireTime,
		quantity:      init.Quantity,
		reduceOnly:    init.ReduceOnly,
		status:        StatusInitialized,
	}
}

func (b *base) ClientOrderID() schema.ClientOrderID { return b.clientOrderID }
func (b *base) VenueOrderID() schema.VenueOrderID   { return b.venueOrderID }
func (b *base) TraderID() schema.TraderID           { return b.traderID }
func (b *base) InstrumentID() schema.InstrumentID   { return b.instrumentID }
func (b *base) Side() schema.OrderSide              { return b.side }
func (b *base) OrderType() schema.OrderType         { return b.orderType }
func (b *base) TimeInForce() schema.TimeInForce     { return b.timeInForce }
func (b *base) ExpireTime() int64                   { return b.expireTime }
func (b *base) Status() Status                      { return b.status }
func (b *base) Quantity() schema.Quantity           { return b.quantity }
func (b *base) FilledQty() schema.Quantity          { return b.filledQty }
func (b *base) IsTerminal() bool                    { return b.status.IsTerminal() }
func (b *base) IsReduceOnly() bool                  { return b.reduceOnly }
func (b *base) InitEvent() schema.OrderInitialized  { return b.init }

func (b *base) LeavesQty() schema.Quantity {
	return schema.Quantity(int64(b.quantity) - int64(b.filledQty))
}

// guard validates event addressing and the set of states the event is
// applicable from. Terminal states are never in the valid set.
func (b *base) guard(ev schema.OrderEvent, valid ...Status) error {
	if ev.OrderID() != b.clientOrderID {
		return exception.ErrOrderIDMismatch
	}
	for _, s := range valid {
		if b.status == s {
			return nil
		}
	}
	return TransitionError{Order: b.clientOrderID, Current: b.status, Event: ev.Type()}
}

func (b *base) setVenueOrderID(id schema.VenueOrderID) {
	if id != "" {
		b.venueOrderID = id
	}
}

func (b *base) applySubmitted(ev schema.OrderSubmitted) error {
	if err := b.guard(ev, StatusInitialized); err != nil {
		return err
	}
	b.status = StatusSubmitted
	return nil
}

func (b *base) applyAccepted(ev schema.OrderAccepted) error {
	if err := b.guard(ev, StatusSubmitted, StatusPartiallyFilled); err != nil {
		return err
	}
	b.setVenueOrderID(ev.VenueOrderID)
	b.status = StatusAccepted
	return nil
}

func (b *base) applyRejected(ev schema.OrderRejected) error {
	if err := b.guard(ev, StatusSubmitted, StatusAccepted, StatusTriggered); err != nil {
		return err
	}
	b.status = StatusRejected
	return nil
}

func (b *base) applyCanceled(ev schema.OrderCanceled) error {
	if err := b.guard(ev, StatusSubmitted, StatusAccepted, StatusTriggered, StatusPartiallyFilled); err != nil {
		return err
	}
	b.setVenueOrderID(ev.VenueOrderID)
	b.status = StatusCanceled
	return nil
}

func (b *base) applyExpired(ev schema.OrderExpired) error {
	if err := b.guard(ev, StatusSubmitted, StatusAccepted, StatusTriggered, StatusPartiallyFilled); err != nil {
		return err
	}
	b.setVenueOrderID(ev.VenueOrderID)
	b.status = StatusExpired
	return nil
}

func (b *base) applyFilled(ev schema.OrderFilled) error {
	if err := b.guard(ev, StatusSubmitted, StatusAccepted, StatusTriggered, StatusPartiallyFilled); err != nil {
		return err
	}
	if ev.LastQty <= 0 {
		return exception.ErrOrderInvalidFill
	}
	filled := schema.Quantity(int64(b.filledQty) + int64(ev.LastQty))
	if filled > b.quantity {
		return exception.ErrOrderInvalidFill
	}
	b.setVenueOrderID(ev.VenueOrderID)
	b.filledQty = filled
	if filled == b.quantity {
		b.status = StatusFilled
	} else {
		b.status = StatusPartiallyFilled
	}
	return nil
}

// applyAmended handles the variant-independent part of an amendment: venue
// order id and quantity. Price routing stays with the variant.
func (b *base) applyAmended(ev schema.OrderAmended) error {
	if err := b.guard(ev, StatusSubmitted, StatusAccepted, StatusTriggered, StatusPartiallyFilled); err != nil {
		return err
	}
	if ev.Quantity != 0 {
		if ev.Quantity <= b.filledQty {
			return exception.ErrOrderInvalidAmend
		}
		b.quantity = ev.Quantity
	}
	b.setVenueOrderID(ev.VenueOrderID)
	return nil
}
