package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
	"main/pkg/exception"
)

func TestCreateDispatchesVariant(t *testing.T) {
	for orderType, want := range map[schema.OrderType]any{
		schema.OrderTypeMarket:     &MarketOrder{},
		schema.OrderTypeLimit:      &LimitOrder{},
		schema.OrderTypeStopMarket: &StopMarketOrder{},
		schema.OrderTypeStopLimit:  &StopLimitOrder{},
	} {
		o, err := Create(baseInit(orderType))
		require.NoError(t, err, orderType)
		assert.IsType(t, want, o, orderType)
		assert.Equal(t, orderType, o.OrderType())
	}
}

func TestCreateValidation(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(*schema.OrderInitialized)
		want   error
	}{
		"unknown type": {
			mutate: func(init *schema.OrderInitialized) { init.OrderType = schema.OrderType(99) },
			want:   exception.ErrOrderUnknownType,
		},
		"missing client id": {
			mutate: func(init *schema.OrderInitialized) { init.ClientOrderID = "" },
			want:   exception.ErrOrderMissingClientID,
		},
		"missing instrument": {
			mutate: func(init *schema.OrderInitialized) { init.InstrumentID = "" },
			want:   exception.ErrOrderMissingInstrument,
		},
		"unknown side": {
			mutate: func(init *schema.OrderInitialized) { init.Side = schema.OrderSideUnknown },
			want:   exception.ErrOrderUnknownSide,
		},
		"zero quantity": {
			mutate: func(init *schema.OrderInitialized) { init.Quantity = 0 },
			want:   exception.ErrOrderInvalidQuantity,
		},
		"negative quantity": {
			mutate: func(init *schema.OrderInitialized) { init.Quantity = -1 },
			want:   exception.ErrOrderInvalidQuantity,
		},
		"unknown time in force": {
			mutate: func(init *schema.OrderInitialized) { init.TimeInForce = schema.TimeInForce(99) },
			want:   exception.ErrOrderUnknownTimeInForce,
		},
		"gtd without expire time": {
			mutate: func(init *schema.OrderInitialized) { init.TimeInForce = schema.TimeInForceGTD },
			want:   exception.ErrOrderMissingExpireTime,
		},
		"post only and hidden": {
			mutate: func(init *schema.OrderInitialized) { init.PostOnly, init.Hidden = true, true },
			want:   exception.ErrOrderPostOnlyHidden,
		},
	} {
		t.Run(name, func(t *testing.T) {
			init := baseInit(schema.OrderTypeLimit)
			tc.mutate(&init)
			_, err := Create(init)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateRequiresPriceLevels(t *testing.T) {
	limit := baseInit(schema.OrderTypeLimit)
	limit.Price = 0
	_, err := Create(limit)
	require.ErrorIs(t, err, exception.ErrOrderMissingPrice)

	stopMarket := baseInit(schema.OrderTypeStopMarket)
	stopMarket.TriggerPrice = 0
	_, err = Create(stopMarket)
	require.ErrorIs(t, err, exception.ErrOrderMissingTrigger)

	stopLimit := baseInit(schema.OrderTypeStopLimit)
	stopLimit.Price = 0
	_, err = Create(stopLimit)
	require.ErrorIs(t, err, exception.ErrOrderMissingPrice)

	stopLimit = baseInit(schema.OrderTypeStopLimit)
	stopLimit.TriggerPrice = 0
	_, err = Create(stopLimit)
	require.ErrorIs(t, err, exception.ErrOrderMissingTrigger)
}

func TestCreateRejectsTypeMismatch(t *testing.T) {
	init := baseInit(schema.OrderTypeMarket)
	_, err := NewLimitOrder(init)
	require.ErrorIs(t, err, exception.ErrOrderTypeMismatch)
}

func TestGTDCarriesExpireTime(t *testing.T) {
	init := baseInit(schema.OrderTypeLimit)
	init.TimeInForce = schema.TimeInForceGTD
	init.ExpireTime = 1_700_000_000_000_000_000

	o, err := NewLimitOrder(init)
	require.NoError(t, err)
	assert.Equal(t, schema.TimeInForceGTD, o.TimeInForce())
	assert.Equal(t, init.ExpireTime, o.ExpireTime())
}
