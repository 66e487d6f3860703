package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// LimitOrder rests at a limit price until filled or removed.
type LimitOrder struct {
	base
	price    schema.Price
	postOnly bool
	hidden   bool
}

// NewLimitOrder constructs a limit order from its initialization event.
func NewLimitOrder(init schema.OrderInitialized) (*LimitOrder, error) {
	if err := validateInit(init, schema.OrderTypeLimit); err != nil {
		return nil, err
	}
	if init.Price <= 0 {
		return nil, exception.ErrOrderMissingPrice
	}
	return &LimitOrder{
		base:     newBase(init),
		price:    init.Price,
		postOnly: init.PostOnly,
		hidden:   init.Hidden,
	}, nil
}

// Price returns the current limit price.
func (o *LimitOrder) Price() schema.Price { return o.price }

// IsPostOnly reports whether the order may only add liquidity.
func (o *LimitOrder) IsPostOnly() bool { return o.postOnly }

// IsHidden reports whether the order is hidden from the public book.
func (o *LimitOrder) IsHidden() bool { return o.hidden }

func (o *LimitOrder) Apply(ev schema.Event) error {
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
	case schema.OrderAmended:
		if err := o.applyAmended(ev); err != nil {
			return err
		}
		if ev.Price != 0 {
			o.price = ev.Price
		}
		return nil
	default:
		return TransitionError{Order: o.clientOrderID, Current: o.status, Event: ev.Type()}
	}
}
