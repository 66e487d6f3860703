package engine

import (
	"strconv"
	"time"

	"main/internal/bus"
	"main/internal/order"
	"main/internal/schema"
)

// SimExecutor is an in-process venue used for paper trading and tests. It
// acknowledges every admitted command immediately and feeds the resulting
// events back through the supplied apply func, usually Engine.ApplyEvent.
type SimExecutor struct {
	apply func(ev schema.Event) error
	clock func() int64

	nextVenueID uint64
}

// NewSimExecutor creates a simulated venue. A nil clock falls back to wall
// time in nanoseconds.
func NewSimExecutor(apply func(ev schema.Event) error, clock func() int64) *SimExecutor {
	if clock == nil {
		clock = func() int64 { return time.Now().UTC().UnixNano() }
	}
	return &SimExecutor{apply: apply, clock: clock}
}

// Submit acknowledges the order and assigns a venue order id.
func (x *SimExecutor) Submit(o order.Order) error {
	now := x.clock()
	init := o.InitEvent()
	if err := x.apply(schema.OrderSubmitted{
		ClientOrderID: o.ClientOrderID(),
		TsEvent:       now,
		TsInit:        init.TsInit,
	}); err != nil {
		return err
	}
	x.nextVenueID++
	return x.apply(schema.OrderAccepted{
		ClientOrderID: o.ClientOrderID(),
		VenueOrderID:  schema.VenueOrderID("SIM-" + strconv.FormatUint(x.nextVenueID, 10)),
		TsEvent:       x.clock(),
		TsInit:        init.TsInit,
	})
}

// Cancel acknowledges the cancellation.
func (x *SimExecutor) Cancel(o order.Order) error {
	return x.apply(schema.OrderCanceled{
		ClientOrderID: o.ClientOrderID(),
		VenueOrderID:  o.VenueOrderID(),
		TsEvent:       x.clock(),
		TsInit:        o.InitEvent().TsInit,
	})
}

// Amend acknowledges the amendment unchanged.
func (x *SimExecutor) Amend(o order.Order, cmd bus.AmendOrder) error {
	return x.apply(schema.OrderAmended{
		ClientOrderID: o.ClientOrderID(),
		VenueOrderID:  o.VenueOrderID(),
		Quantity:      cmd.Quantity,
		Price:         cmd.Price,
		TsEvent:       x.clock(),
		TsInit:        cmd.TsInit,
	})
}

// Fill injects a fill against a live order, as a real venue stream would.
func (x *SimExecutor) Fill(o order.Order, tradeID string, qty schema.Quantity, price schema.Price, fee schema.Fee) error {
	return x.apply(schema.OrderFilled{
		ClientOrderID: o.ClientOrderID(),
		VenueOrderID:  o.VenueOrderID(),
		TradeID:       tradeID,
		Side:          o.Side(),
		LastQty:       qty,
		LastPrice:     price,
		Fee:           fee,
		TsEvent:       x.clock(),
		TsInit:        o.InitEvent().TsInit,
	})
}

// Trigger injects a stop trigger against a live order.
func (x *SimExecutor) Trigger(o order.Order) error {
	return x.apply(schema.OrderTriggered{
		ClientOrderID: o.ClientOrderID(),
		VenueOrderID:  o.VenueOrderID(),
		TsEvent:       x.clock(),
		TsInit:        o.InitEvent().TsInit,
	})
}
