// Package codec maps domain events to and from flat string-keyed records,
// the only on-wire/on-disk shape the engine commits to. Decoding an encoded
// event reproduces the original value exactly.
package codec

//go:generate go run main/libs/tool/recordkeys -schema ../schema -out ./keys_gen.go

import (
	"fmt"
	"strconv"

	"main/internal/schema"
	"main/pkg/exception"
)

// Record is the flat, versioned dictionary form of a domain event. The
// "type" key decides which decode path applies.
type Record map[string]string

// Encode converts a domain event into its record form.
func Encode(e schema.Event) (Record, error) {
	switch e := e.(type) {
	case schema.OrderInitialized:
		return encodeOrderInitialized(e), nil
	case schema.OrderSubmitted:
		return encodeOrderSubmitted(e), nil
	case schema.OrderAccepted:
		return encodeOrderAccepted(e), nil
	case schema.OrderRejected:
		return encodeOrderRejected(e), nil
	case schema.OrderCanceled:
		return encodeOrderCanceled(e), nil
	case schema.OrderExpired:
		return encodeOrderExpired(e), nil
	case schema.OrderTriggered:
		return encodeOrderTriggered(e), nil
	case schema.OrderAmended:
		return encodeOrderAmended(e), nil
	case schema.OrderFilled:
		return encodeOrderFilled(e), nil
	case schema.TradingStateChanged:
		return encodeTradingStateChanged(e), nil
	default:
		return nil, exception.ErrCodecUnknownType
	}
}

// Decode converts a record back into the domain event it encodes. A
// malformed record fails without partial application.
func Decode(rec Record) (schema.Event, error) {
	name, err := rec.require(KeyType)
	if err != nil {
		return nil, err
	}
	eventType, ok := schema.ParseEventType(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", exception.ErrCodecUnknownType, name)
	}
	switch eventType {
	case schema.EventOrderInitialized:
		return decodeOrderInitialized(rec)
	case schema.EventOrderSubmitted:
		return decodeOrderSubmitted(rec)
	case schema.EventOrderAccepted:
		return decodeOrderAccepted(rec)
	case schema.EventOrderRejected:
		return decodeOrderRejected(rec)
	case schema.EventOrderCanceled:
		return decodeOrderCanceled(rec)
	case schema.EventOrderExpired:
		return decodeOrderExpired(rec)
	case schema.EventOrderTriggered:
		return decodeOrderTriggered(rec)
	case schema.EventOrderAmended:
		return decodeOrderAmended(rec)
	case schema.EventOrderFilled:
		return decodeOrderFilled(rec)
	case schema.EventTradingStateChanged:
		return decodeTradingStateChanged(rec)
	default:
		return nil, fmt.Errorf("%w: %q", exception.ErrCodecUnknownType, name)
	}
}

func newRecord(eventType schema.EventType, tsEvent, tsInit int64) Record {
	return Record{
		KeyType:    eventType.String(),
		KeyTsEvent: strconv.FormatInt(tsEvent, 10),
		KeyTsInit:  strconv.FormatInt(tsInit, 10),
	}
}

func (r Record) require(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", exception.ErrCodecMissingKey, key)
	}
	return v, nil
}

func (r Record) int64Value(key string) (int64, error) {
	v, err := r.require(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return n, nil
}

func (r Record) boolValue(key string) (bool, error) {
	v, err := r.require(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return b, nil
}

func (r Record) priceValue(key string) (schema.Price, error) {
	n, err := r.int64Value(key)
	return schema.Price(n), err
}

func (r Record) qtyValue(key string) (schema.Quantity, error) {
	n, err := r.int64Value(key)
	return schema.Quantity(n), err
}

func (r Record) feeValue(key string) (schema.Fee, error) {
	n, err := r.int64Value(key)
	return schema.Fee(n), err
}

func (r Record) sideValue(key string) (schema.OrderSide, error) {
	v, err := r.require(key)
	if err != nil {
		return schema.OrderSideUnknown, err
	}
	side, ok := schema.ParseOrderSide(v)
	if !ok {
		return schema.OrderSideUnknown, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return side, nil
}

func (r Record) orderTypeValue(key string) (schema.OrderType, error) {
	v, err := r.require(key)
	if err != nil {
		return schema.OrderTypeUnknown, err
	}
	orderType, ok := schema.ParseOrderType(v)
	if !ok {
		return schema.OrderTypeUnknown, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return orderType, nil
}

func (r Record) tifValue(key string) (schema.TimeInForce, error) {
	v, err := r.require(key)
	if err != nil {
		return schema.TimeInForceUnknown, err
	}
	tif, ok := schema.ParseTimeInForce(v)
	if !ok {
		return schema.TimeInForceUnknown, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return tif, nil
}

func (r Record) tradingStateValue(key string) (schema.TradingState, error) {
	v, err := r.require(key)
	if err != nil {
		return schema.TradingStateUnknown, err
	}
	state, ok := schema.ParseTradingState(v)
	if !ok {
		return schema.TradingStateUnknown, fmt.Errorf("%w: key %q value %q", exception.ErrCodecInvalidValue, key, v)
	}
	return state, nil
}
