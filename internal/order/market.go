package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// MarketOrder executes at the best available price. It carries no price
// levels, so an amendment may only change quantity.
type MarketOrder struct {
	base
}

// NewMarketOrder constructs a market order from its initialization event.
func NewMarketOrder(init schema.OrderInitialized) (*MarketOrder, error) {
	if err := validateInit(init, schema.OrderTypeMarket); err != nil {
		return nil, err
	}
	return &MarketOrder{base: newBase(init)}, nil
}

func (o *MarketOrder) Apply(ev schema.Event) error {
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
		if ev.Price != 0 {
			return exception.ErrOrderInvalidAmend
		}
		return o.applyAmended(ev)
	case schema.OrderTriggered:
		return TransitionError{Order: o.clientOrderID, Current: o.status, Event: ev.Type()}
	default:
		return TransitionError{Order: o.clientOrderID, Current: o.status, Event: ev.Type()}
	}
}
