package schema

// OrderSide describes order direction.
type OrderSide uint16

const (
	OrderSideUnknown OrderSide = iota
	OrderSideBuy
	OrderSideSell
)

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "BUY"
	case OrderSideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderSide resolves a side from its string form.
func ParseOrderSide(s string) (OrderSide, bool) {
	switch s {
	case "BUY":
		return OrderSideBuy, true
	case "SELL":
		return OrderSideSell, true
	default:
		return OrderSideUnknown, false
	}
}

// OrderType describes the order variant.
type OrderType uint16

const (
	OrderTypeUnknown OrderType = iota
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStopMarket
	OrderTypeStopLimit
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStopMarket:
		return "STOP_MARKET"
	case OrderTypeStopLimit:
		return "STOP_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// ParseOrderType resolves an order type from its string form.
func ParseOrderType(s string) (OrderType, bool) {
	switch s {
	case "MARKET":
		return OrderTypeMarket, true
	case "LIMIT":
		return OrderTypeLimit, true
	case "STOP_MARKET":
		return OrderTypeStopMarket, true
	case "STOP_LIMIT":
		return OrderTypeStopLimit, true
	default:
		return OrderTypeUnknown, false
	}
}

// IsStopBearing reports whether the variant carries a trigger price.
func (t OrderType) IsStopBearing() bool {
	return t == OrderTypeStopMarket || t == OrderTypeStopLimit
}

// IsLimitBearing reports whether the variant carries a limit price.
func (t OrderType) IsLimitBearing() bool {
	return t == OrderTypeLimit || t == OrderTypeStopLimit
}

// TimeInForce describes order time-in-force.
type TimeInForce uint16

const (
	TimeInForceUnknown TimeInForce = iota
	TimeInForceGTC
	TimeInForceIOC
	TimeInForceFOK
	TimeInForceGTD
	TimeInForceDay
)

func (t TimeInForce) String() string {
	switch t {
	case TimeInForceGTC:
		return "GTC"
	case TimeInForceIOC:
		return "IOC"
	case TimeInForceFOK:
		return "FOK"
	case TimeInForceGTD:
		return "GTD"
	case TimeInForceDay:
		return "DAY"
	default:
		return "UNKNOWN"
	}
}

// ParseTimeInForce resolves a time-in-force from its string form.
func ParseTimeInForce(s string) (TimeInForce, bool) {
	switch s {
	case "GTC":
		return TimeInForceGTC, true
	case "IOC":
		return TimeInForceIOC, true
	case "FOK":
		return TimeInForceFOK, true
	case "GTD":
		return TimeInForceGTD, true
	case "DAY":
		return TimeInForceDay, true
	default:
		return TimeInForceUnknown, false
	}
}

// TradingState is the process-wide risk restriction level.
type TradingState uint16

const (
	TradingStateUnknown TradingState = iota
	TradingStateActive
	TradingStateReducing
	TradingStateHalted
)

func (s TradingState) String() string {
	switch s {
	case TradingStateActive:
		return "ACTIVE"
	case TradingStateReducing:
		return "REDUCING"
	case TradingStateHalted:
		return "HALTED"
	default:
		return "UNKNOWN"
	}
}

// ParseTradingState resolves a trading state from its string form.
func ParseTradingState(s string) (TradingState, bool) {
	switch s {
	case "ACTIVE":
		return TradingStateActive, true
	case "REDUCING":
		return TradingStateReducing, true
	case "HALTED":
		return TradingStateHalted, true
	default:
		return TradingStateUnknown, false
	}
}
