package order

import (
	"main/internal/schema"
	"main/pkg/exception"
)

// Create constructs the concrete order variant declared by the
// initialization event. Construction either yields a fully valid order or
// fails; an order never exists in an invalid form.
func Create(init schema.OrderInitialized) (Order, error) {
	switch init.OrderType {
	case schema.OrderTypeMarket:
		return NewMarketOrder(init)
	case schema.OrderTypeLimit:
		return NewLimitOrder(init)
	case schema.OrderTypeStopMarket:
		return NewStopMarketOrder(init)
	case schema.OrderTypeStopLimit:
		return NewStopLimitOrder(init)
	default:
		return nil, exception.ErrOrderUnknownType
	}
}

func validateInit(init schema.OrderInitialized, want schema.OrderType) error {
	if init.OrderType != want {
		return exception.ErrOrderTypeMismatch
	}
	if init.ClientOrderID == "" {
		return exception.ErrOrderMissingClientID
	}
	if init.InstrumentID == "" {
		return exception.ErrOrderMissingInstrument
	}
	switch init.Side {
	case schema.OrderSideBuy, schema.OrderSideSell:
	default:
		return exception.ErrOrderUnknownSide
	}
	if init.Quantity <= 0 {
		return exception.ErrOrderInvalidQuantity
	}
	switch init.TimeInForce {
	case schema.TimeInForceGTC, schema.TimeInForceIOC, schema.TimeInForceFOK,
		schema.TimeInForceGTD, schema.TimeInForceDay:
	default:
		return exception.ErrOrderUnknownTimeInForce
	}
	if init.TimeInForce == schema.TimeInForceGTD && init.ExpireTime <= 0 {
		return exception.ErrOrderMissingExpireTime
	}
	if init.PostOnly && init.Hidden {
		return exception.ErrOrderPostOnlyHidden
	}
	return nil
}
