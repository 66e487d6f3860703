package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
	"main/pkg/exception"
)

func baseInit(orderType schema.OrderType) schema.OrderInitialized {
	init := schema.OrderInitialized{
		TraderID:      "TRADER-001",
		ClientOrderID: "O-1",
		InstrumentID:  "BTCUSDT.BINANCE",
		Side:          schema.OrderSideBuy,
		OrderType:     orderType,
		Quantity:      10,
		TimeInForce:   schema.TimeInForceGTC,
		TsEvent:       1,
		TsInit:        1,
	}
	switch orderType {
	case schema.OrderTypeLimit:
		init.Price = 99_00
	case schema.OrderTypeStopMarket:
		init.TriggerPrice = 100_00
	case schema.OrderTypeStopLimit:
		init.Price = 99_00
		init.TriggerPrice = 100_00
	}
	return init
}

func submitted(ev ...schema.Event) []schema.Event {
	out := []schema.Event{
		schema.OrderSubmitted{ClientOrderID: "O-1", TsEvent: 2, TsInit: 1},
	}
	return append(out, ev...)
}

func accepted(ev ...schema.Event) []schema.Event {
	out := submitted(schema.OrderAccepted{ClientOrderID: "O-1", VenueOrderID: "V-1", TsEvent: 3, TsInit: 1})
	return append(out, ev...)
}

func applyAll(t *testing.T, o Order, events []schema.Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, o.Apply(ev), "%s in %s", ev.Type(), o.Status())
	}
}

func TestLifecycleFill(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)
	assert.Equal(t, StatusInitialized, o.Status())

	applyAll(t, o, accepted())
	assert.Equal(t, StatusAccepted, o.Status())
	assert.Equal(t, schema.VenueOrderID("V-1"), o.VenueOrderID())

	require.NoError(t, o.Apply(schema.OrderFilled{
		ClientOrderID: "O-1", VenueOrderID: "V-1", TradeID: "T-1",
		Side: schema.OrderSideBuy, LastQty: 4, LastPrice: 99_00, TsEvent: 4, TsInit: 1,
	}))
	assert.Equal(t, StatusPartiallyFilled, o.Status())
	assert.Equal(t, schema.Quantity(4), o.FilledQty())
	assert.Equal(t, schema.Quantity(6), o.LeavesQty())

	// venue re-acknowledges a working partially filled order
	require.NoError(t, o.Apply(schema.OrderAccepted{ClientOrderID: "O-1", VenueOrderID: "V-1", TsEvent: 5, TsInit: 1}))
	assert.Equal(t, StatusAccepted, o.Status())

	require.NoError(t, o.Apply(schema.OrderFilled{
		ClientOrderID: "O-1", VenueOrderID: "V-1", TradeID: "T-2",
		Side: schema.OrderSideBuy, LastQty: 6, LastPrice: 99_00, TsEvent: 6, TsInit: 1,
	}))
	assert.Equal(t, StatusFilled, o.Status())
	assert.True(t, o.IsTerminal())
	assert.Zero(t, o.LeavesQty())
}

func TestTerminalStatesAbsorb(t *testing.T) {
	for name, terminal := range map[string]schema.Event{
		"canceled": schema.OrderCanceled{ClientOrderID: "O-1", TsEvent: 4, TsInit: 1},
		"expired":  schema.OrderExpired{ClientOrderID: "O-1", TsEvent: 4, TsInit: 1},
		"rejected": schema.OrderRejected{ClientOrderID: "O-1", Reason: "NO_MARGIN", TsEvent: 4, TsInit: 1},
	} {
		o, err := Create(baseInit(schema.OrderTypeLimit))
		require.NoError(t, err, name)
		applyAll(t, o, accepted())
		require.NoError(t, o.Apply(terminal), name)
		require.True(t, o.IsTerminal(), name)

		err = o.Apply(schema.OrderFilled{
			ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
			LastQty: 1, LastPrice: 1, TsEvent: 5, TsInit: 1,
		})
		require.ErrorIs(t, err, exception.ErrOrderInvalidTransition, name)
	}
}

func TestTransitionErrorNamesEventAndState(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)

	err = o.Apply(schema.OrderFilled{
		ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
		LastQty: 1, LastPrice: 1, TsEvent: 2, TsInit: 1,
	})
	require.ErrorIs(t, err, exception.ErrOrderInvalidTransition)
	assert.Contains(t, err.Error(), "OrderFilled")
	assert.Contains(t, err.Error(), "INITIALIZED")
	assert.Equal(t, StatusInitialized, o.Status())
}

func TestOrderIDMismatch(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)

	err = o.Apply(schema.OrderSubmitted{ClientOrderID: "O-OTHER", TsEvent: 2, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderIDMismatch)
	assert.Equal(t, StatusInitialized, o.Status())
}

func TestFillValidation(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	err = o.Apply(schema.OrderFilled{
		ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
		LastQty: 0, LastPrice: 99_00, TsEvent: 4, TsInit: 1,
	})
	require.ErrorIs(t, err, exception.ErrOrderInvalidFill)

	err = o.Apply(schema.OrderFilled{
		ClientOrderID: "O-1", TradeID: "T-2", Side: schema.OrderSideBuy,
		LastQty: 11, LastPrice: 99_00, TsEvent: 5, TsInit: 1,
	})
	require.ErrorIs(t, err, exception.ErrOrderInvalidFill)

	assert.Equal(t, StatusAccepted, o.Status())
	assert.Zero(t, o.FilledQty())
}

func TestMarketOrderRejectsPriceAmend(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeMarket))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	err = o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 5, Price: 98_00, TsEvent: 4, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderInvalidAmend)
	// rejected amendment leaves the order untouched
	assert.Equal(t, schema.Quantity(10), o.Quantity())

	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 5, TsEvent: 5, TsInit: 1}))
	assert.Equal(t, schema.Quantity(5), o.Quantity())
}

func TestMarketOrderNeverTriggers(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeMarket))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	err = o.Apply(schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 4, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderInvalidTransition)
}

func TestLimitOrderAmendMovesPrice(t *testing.T) {
	o, err := NewLimitOrder(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	require.NoError(t, o.Apply(schema.OrderAmended{
		ClientOrderID: "O-1", VenueOrderID: "V-2", Quantity: 8, Price: 98_50, TsEvent: 4, TsInit: 1,
	}))
	assert.Equal(t, schema.Price(98_50), o.Price())
	assert.Equal(t, schema.Quantity(8), o.Quantity())
	assert.Equal(t, schema.VenueOrderID("V-2"), o.VenueOrderID())

	// zero price leaves the level untouched
	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 9, TsEvent: 5, TsInit: 1}))
	assert.Equal(t, schema.Price(98_50), o.Price())
}

func TestAmendQuantityBelowFilledRejected(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted(schema.OrderFilled{
		ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
		LastQty: 4, LastPrice: 99_00, TsEvent: 4, TsInit: 1,
	}))

	err = o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 4, TsEvent: 5, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderInvalidAmend)
	assert.Equal(t, schema.Quantity(10), o.Quantity())
}

func TestStopMarketAmendMovesTriggerUntilFired(t *testing.T) {
	o, err := NewStopMarketOrder(baseInit(schema.OrderTypeStopMarket))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Price: 101_00, TsEvent: 4, TsInit: 1}))
	assert.Equal(t, schema.Price(101_00), o.TriggerPrice())

	require.NoError(t, o.Apply(schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 5, TsInit: 1}))
	assert.Equal(t, StatusTriggered, o.Status())
	assert.True(t, o.Triggered())

	// after firing there is no price level left to amend
	err = o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 5, Price: 102_00, TsEvent: 6, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderInvalidAmend)
	assert.Equal(t, schema.Quantity(10), o.Quantity())
	assert.Equal(t, schema.Price(101_00), o.TriggerPrice())

	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 5, TsEvent: 7, TsInit: 1}))
	assert.Equal(t, schema.Quantity(5), o.Quantity())
}

func TestStopLimitAmendRoutesOnTriggerState(t *testing.T) {
	// trigger 100.00, limit 99.00, qty 10
	o, err := NewStopLimitOrder(baseInit(schema.OrderTypeStopLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted())

	// pending stop: price amendment moves the trigger
	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Price: 100_50, TsEvent: 4, TsInit: 1}))
	assert.Equal(t, schema.Price(100_50), o.TriggerPrice())
	assert.Equal(t, schema.Price(99_00), o.Price())

	require.NoError(t, o.Apply(schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 5, TsInit: 1}))
	assert.Equal(t, StatusTriggered, o.Status())

	// fired stop: the same amendment shape now moves the limit price
	require.NoError(t, o.Apply(schema.OrderAmended{ClientOrderID: "O-1", Quantity: 5, Price: 98_00, TsEvent: 6, TsInit: 1}))
	assert.Equal(t, schema.Price(98_00), o.Price())
	assert.Equal(t, schema.Price(100_50), o.TriggerPrice())
	assert.Equal(t, schema.Quantity(5), o.Quantity())
}

func TestSecondTriggerIsHardFailure(t *testing.T) {
	o, err := NewStopLimitOrder(baseInit(schema.OrderTypeStopLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted(schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 4, TsInit: 1}))

	err = o.Apply(schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 5, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrOrderAlreadyTriggered)
	assert.Equal(t, StatusTriggered, o.Status())
}

func TestTriggeredStopFills(t *testing.T) {
	o, err := NewStopLimitOrder(baseInit(schema.OrderTypeStopLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted(
		schema.OrderTriggered{ClientOrderID: "O-1", TsEvent: 4, TsInit: 1},
		schema.OrderFilled{
			ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
			LastQty: 10, LastPrice: 99_00, TsEvent: 5, TsInit: 1,
		},
	))
	assert.Equal(t, StatusFilled, o.Status())
}

func TestCancelFromPartiallyFilled(t *testing.T) {
	o, err := Create(baseInit(schema.OrderTypeLimit))
	require.NoError(t, err)
	applyAll(t, o, accepted(
		schema.OrderFilled{
			ClientOrderID: "O-1", TradeID: "T-1", Side: schema.OrderSideBuy,
			LastQty: 4, LastPrice: 99_00, TsEvent: 4, TsInit: 1,
		},
		schema.OrderCanceled{ClientOrderID: "O-1", TsEvent: 5, TsInit: 1},
	))
	assert.Equal(t, StatusCanceled, o.Status())
	assert.Equal(t, schema.Quantity(4), o.FilledQty())
}
