package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// StopLimitOrder is dormant until its trigger price trades, then rests as a
// limit order. The one-shot triggered flag decides which price level an
// amendment moves: the trigger price while pending, the limit price once
// the stop has fired. This conditional routing is the variant's defining
// behavior.
type StopLimitOrder struct {
	base
	price     schema.Price
	trigger   schema.Price
	triggered bool
	postOnly  bool
	hidden    bool
}

// NewStopLimitOrder constructs a stop-limit order from its initialization event.
func NewStopLimitOrder(init schema.OrderInitialized) (*StopLimitOrder, error) {
	if err := validateInit(init, schema.OrderTypeStopLimit); err != nil {
		return nil, err
	}
	if init.Price <= 0 {
		return nil, exception.ErrOrderMissingPrice
	}
	if init.TriggerPrice <= 0 {
		return nil, exception.ErrOrderMissingTrigger
	}
	return &StopLimitOrder{
		base:     newBase(init),
		price:    init.Price,
		trigger:  init.TriggerPrice,
		postOnly: init.PostOnly,
		hidden:   init.Hidden,
	}, nil
}

// Price returns the current limit price.
func (o *StopLimitOrder) Price() schema.Price { return o.price }

// TriggerPrice returns the current trigger price.
func (o *StopLimitOrder) TriggerPrice() schema.Price { return o.trigger }

// Triggered reports whether the stop has fired.
func (o *StopLimitOrder) Triggered() bool { return o.triggered }

// IsPostOnly reports whether the order may only add liquidity.
func (o *StopLimitOrder) IsPostOnly() bool { return o.postOnly }

// IsHidden reports whether the order is hidden from the public book.
func (o *StopLimitOrder) IsHidden() bool { return o.hidden }

func (o *StopLimitOrder) Apply(ev schema.Event) error {
	switch ev := ev.(type) {
	case schema.OrderSubmitted:
		return o.applySubmitted(ev)
	case schema.OrderAccepted:
		return o.applyAccepted(ev)
	case schema.OrderRejected:
		return o.applyRejected(ev)
	case schema.OrderCanceled:
		return o.applyCanceled(ev)
	case schema.OrderExpired:
		return o.applyExpired(ev)
	case schema.OrderFilled:
		return o.applyFilled(ev)
	case schema.OrderTriggered:
		if o.triggered {
			return exception.ErrOrderAlreadyTriggered
		}
		if err := o.guard(ev, StatusSubmitted, StatusAccepted); err != nil {
			return err
		}
		o.setVenueOrderID(ev.VenueOrderID)
		o.triggered = true
		o.status = StatusTriggered
		return nil
	case schema.OrderAmended:
		if err := o.applyAmended(ev); err != nil {
			return err
		}
		if ev.Price != 0 {
			if o.triggered {
				o.price = ev.Price
			} else {
				o.trigger = ev.Price
			}
		}
		return nil
	default:
		return TransitionError{Order: o.clientOrderID, Current: o.status, Event: ev.Type()}
	}
}
