package exception

import "errors"

var (
	ErrOrderTypeMismatch       = errors.New("order: event order type mismatch")
	ErrOrderInvalidQuantity    = errors.New("order: quantity must be positive")
	ErrOrderMissingExpireTime  = errors.New("order: GTD requires expire time")
	ErrOrderMissingPrice       = errors.New("order: missing limit price")
	ErrOrderMissingTrigger     = errors.New("order: missing trigger price")
	ErrOrderPostOnlyHidden     = errors.New("order: post-only and hidden are mutually exclusive")
	ErrOrderMissingClientID    = errors.New("order: missing client order id")
	ErrOrderMissingInstrument  = errors.New("order: missing instrument id")
	ErrOrderUnknownSide        = errors.New("order: unknown side")
	ErrOrderUnknownType        = errors.New("order: unknown order type")
	ErrOrderUnknownTimeInForce = errors.New("order: unknown time in force")
)

var (
	ErrOrderInvalidTransition = errors.New("order: invalid state transition")
	ErrOrderAlreadyTriggered  = errors.New("order: already triggered")
	ErrOrderInvalidFill       = errors.New("order: invalid fill quantity")
	ErrOrderInvalidAmend      = errors.New("order: invalid amendment")
	ErrOrderIDMismatch        = errors.New("order: event order id mismatch")
	ErrOrderDuplicate         = errors.New("order: order already exists")
	ErrOrderNotFound          = errors.New("order: order not found")
)
