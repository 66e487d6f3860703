package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// StopMarketOrder is dormant until its trigger price trades, then executes
// as a market order. Pre-trigger amendments move the trigger price; after
// triggering there is no price level left to amend.
type StopMarketOrder struct {
	base
	trigger   schema.Price
	triggered bool
}

// NewStopMarketOrder constructs a stop-market order from its initialization event.
func NewStopMarketOrder(init schema.OrderInitialized) (*StopMarketOrder, error) {
	if err := validateInit(init, schema.OrderTypeStopMarket); err != nil {
		return nil, err
	}
	if init.TriggerPrice <= 0 {
		return nil, exception.ErrOrderMissingTrigger
	}
	return &StopMarketOrder{base: newBase(init), trigger: init.TriggerPrice}, nil
}

// TriggerPrice returns the current trigger price.
func (o *StopMarketOrder) TriggerPrice() schema.Price { return o.trigger }

// Triggered reports whether the stop has fired.
func (o *StopMarketOrder) Triggered() bool { return o.triggered }

func (o *StopMarketOrder) Apply(ev schema.Event) error {
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
		if ev.Price != 0 && o.triggered {
			return exception.ErrOrderInvalidAmend
		}
		if err := o.applyAmended(ev); err != nil {
			return err
		}
		if ev.Price != 0 {
			o.trigger = ev.Price
		}
		return nil
	default:
		return TransitionError{Order: o.clientOrderID, Current: o.status, Event: ev.Type()}
	}
}
