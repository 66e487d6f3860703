package engine

import (
	"main/internal/order"
	"main/internal/schema"
)

type stopOrder interface {
	TriggerPrice() schema.Price
	Triggered() bool
}

// TriggerMonitor watches trade prints and fires dormant stop orders whose
// trigger price traded. It runs inside the engine's data handler, so it
// reads the order store without locking.
type TriggerMonitor struct {
	orders *order.Store
	fire   func(o order.Order) error
}

// NewTriggerMonitor creates a monitor firing stops through the given func,
// usually SimExecutor.Trigger.
func NewTriggerMonitor(orders *order.Store, fire func(o order.Order) error) *TriggerMonitor {
	return &TriggerMonitor{orders: orders, fire: fire}
}

// OnMarketData checks one tick against all dormant stops of its
// instrument. Fired stops are reported through the returned errors.
func (m *TriggerMonitor) OnMarketData(md schema.MarketData) []error {
	if md.Kind != schema.MarketDataTrade {
		return nil
	}

	var errs []error
	for _, o := range m.orders.Open() {
		if o.InstrumentID() != md.InstrumentID {
			continue
		}
		stop, ok := o.(stopOrder)
		if !ok || stop.Triggered() {
			continue
		}
		switch o.Status() {
		case order.StatusSubmitted, order.StatusAccepted:
		default:
			continue
		}
		if !crossed(o.Side(), md.Price, stop.TriggerPrice()) {
			continue
		}
		if err := m.fire(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// crossed reports whether a trade at price activates a stop at trigger.
// Buy stops arm above the market, sell stops below.
func crossed(side schema.OrderSide, price, trigger schema.Price) bool {
	if side == schema.OrderSideBuy {
		return price >= trigger
	}
	return price <= trigger
}
