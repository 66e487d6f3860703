package codec

import (
	"strconv"

	"main/internal/schema"
)

func encodeOrderInitialized(e schema.OrderInitialized) Record {
	rec := newRecord(schema.EventOrderInitialized, e.TsEvent, e.TsInit)
	rec[KeyTraderID] = string(e.TraderID)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyInstrumentID] = string(e.InstrumentID)
	rec[KeySide] = e.Side.String()
	rec[KeyOrderType] = e.OrderType.String()
	rec[KeyQuantity] = strconv.FormatInt(int64(e.Quantity), 10)
	rec[KeyTimeInForce] = e.TimeInForce.String()
	rec[KeyExpireTime] = strconv.FormatInt(e.ExpireTime, 10)
	rec[KeyPrice] = strconv.FormatInt(int64(e.Price), 10)
	rec[KeyTriggerPrice] = strconv.FormatInt(int64(e.TriggerPrice), 10)
	rec[KeyPostOnly] = strconv.FormatBool(e.PostOnly)
	rec[KeyReduceOnly] = strconv.FormatBool(e.ReduceOnly)
	rec[KeyHidden] = strconv.FormatBool(e.Hidden)
	return rec
}

func decodeOrderInitialized(rec Record) (schema.OrderInitialized, error) {
	var (
		e   schema.OrderInitialized
		err error
	)
	trader, err := rec.require(KeyTraderID)
	if err != nil {
		return e, err
	}
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	instrument, err := rec.require(KeyInstrumentID)
	if err != nil {
		return e, err
	}
	e.TraderID = schema.TraderID(trader)
	e.ClientOrderID = schema.ClientOrderID(client)
	e.InstrumentID = schema.InstrumentID(instrument)
	if e.Side, err = rec.sideValue(KeySide); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.OrderType, err = rec.orderTypeValue(KeyOrderType); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.Quantity, err = rec.qtyValue(KeyQuantity); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.TimeInForce, err = rec.tifValue(KeyTimeInForce); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.ExpireTime, err = rec.int64Value(KeyExpireTime); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.Price, err = rec.priceValue(KeyPrice); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.TriggerPrice, err = rec.priceValue(KeyTriggerPrice); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.PostOnly, err = rec.boolValue(KeyPostOnly); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.ReduceOnly, err = rec.boolValue(KeyReduceOnly); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.Hidden, err = rec.boolValue(KeyHidden); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderInitialized{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderInitialized{}, err
	}
	return e, nil
}

func encodeOrderSubmitted(e schema.OrderSubmitted) Record {
	rec := newRecord(schema.EventOrderSubmitted, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	return rec
}

func decodeOrderSubmitted(rec Record) (schema.OrderSubmitted, error) {
	var e schema.OrderSubmitted
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderSubmitted{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderSubmitted{}, err
	}
	return e, nil
}

func encodeOrderAccepted(e schema.OrderAccepted) Record {
	rec := newRecord(schema.EventOrderAccepted, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	return rec
}

func decodeOrderAccepted(rec Record) (schema.OrderAccepted, error) {
	var e schema.OrderAccepted
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderAccepted{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderAccepted{}, err
	}
	return e, nil
}

func encodeOrderRejected(e schema.OrderRejected) Record {
	rec := newRecord(schema.EventOrderRejected, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyReason] = e.Reason
	return rec
}

func decodeOrderRejected(rec Record) (schema.OrderRejected, error) {
	var e schema.OrderRejected
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	reason, err := rec.require(KeyReason)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.Reason = reason
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderRejected{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderRejected{}, err
	}
	return e, nil
}

func encodeOrderCanceled(e schema.OrderCanceled) Record {
	rec := newRecord(schema.EventOrderCanceled, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	return rec
}

func decodeOrderCanceled(rec Record) (schema.OrderCanceled, error) {
	var e schema.OrderCanceled
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderCanceled{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderCanceled{}, err
	}
	return e, nil
}

func encodeOrderExpired(e schema.OrderExpired) Record {
	rec := newRecord(schema.EventOrderExpired, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	return rec
}

func decodeOrderExpired(rec Record) (schema.OrderExpired, error) {
	var e schema.OrderExpired
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderExpired{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderExpired{}, err
	}
	return e, nil
}

func encodeOrderTriggered(e schema.OrderTriggered) Record {
	rec := newRecord(schema.EventOrderTriggered, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	return rec
}

func decodeOrderTriggered(rec Record) (schema.OrderTriggered, error) {
	var e schema.OrderTriggered
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderTriggered{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderTriggered{}, err
	}
	return e, nil
}

func encodeOrderAmended(e schema.OrderAmended) Record {
	rec := newRecord(schema.EventOrderAmended, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	rec[KeyQuantity] = strconv.FormatInt(int64(e.Quantity), 10)
	rec[KeyPrice] = strconv.FormatInt(int64(e.Price), 10)
	return rec
}

func decodeOrderAmended(rec Record) (schema.OrderAmended, error) {
	var e schema.OrderAmended
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	if e.Quantity, err = rec.qtyValue(KeyQuantity); err != nil {
		return schema.OrderAmended{}, err
	}
	if e.Price, err = rec.priceValue(KeyPrice); err != nil {
		return schema.OrderAmended{}, err
	}
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderAmended{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderAmended{}, err
	}
	return e, nil
}

func encodeOrderFilled(e schema.OrderFilled) Record {
	rec := newRecord(schema.EventOrderFilled, e.TsEvent, e.TsInit)
	rec[KeyClientOrderID] = string(e.ClientOrderID)
	rec[KeyVenueOrderID] = string(e.VenueOrderID)
	rec[KeyTradeID] = e.TradeID
	rec[KeySide] = e.Side.String()
	rec[KeyLastQty] = strconv.FormatInt(int64(e.LastQty), 10)
	rec[KeyLastPrice] = strconv.FormatInt(int64(e.LastPrice), 10)
	rec[KeyFee] = strconv.FormatInt(int64(e.Fee), 10)
	return rec
}

func decodeOrderFilled(rec Record) (schema.OrderFilled, error) {
	var e schema.OrderFilled
	client, err := rec.require(KeyClientOrderID)
	if err != nil {
		return e, err
	}
	venue, err := rec.require(KeyVenueOrderID)
	if err != nil {
		return e, err
	}
	trade, err := rec.require(KeyTradeID)
	if err != nil {
		return e, err
	}
	e.ClientOrderID = schema.ClientOrderID(client)
	e.VenueOrderID = schema.VenueOrderID(venue)
	e.TradeID = trade
	if e.Side, err = rec.sideValue(KeySide); err != nil {
		return schema.OrderFilled{}, err
	}
	if e.LastQty, err = rec.qtyValue(KeyLastQty); err != nil {
		return schema.OrderFilled{}, err
	}
	if e.LastPrice, err = rec.priceValue(KeyLastPrice); err != nil {
		return schema.OrderFilled{}, err
	}
	if e.Fee, err = rec.feeValue(KeyFee); err != nil {
		return schema.OrderFilled{}, err
	}
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.OrderFilled{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.OrderFilled{}, err
	}
	return e, nil
}
