package codec

import (
	"main/internal/schema"
)

// TradingStateChanged carries its restriction config as an opaque encoded
// sub-document. The codec passes it through untouched; the risk gate
// decodes it lazily.

func encodeTradingStateChanged(e schema.TradingStateChanged) Record {
	rec := newRecord(schema.EventTradingStateChanged, e.TsEvent, e.TsInit)
	rec[KeyTraderID] = string(e.TraderID)
	rec[KeyState] = e.State.String()
	rec[KeyConfig] = string(e.Config)
	return rec
}

func decodeTradingStateChanged(rec Record) (schema.TradingStateChanged, error) {
	var e schema.TradingStateChanged
	trader, err := rec.require(KeyTraderID)
	if err != nil {
		return e, err
	}
	e.TraderID = schema.TraderID(trader)
	if e.State, err = rec.tradingStateValue(KeyState); err != nil {
		return schema.TradingStateChanged{}, err
	}
	config, err := rec.require(KeyConfig)
	if err != nil {
		return schema.TradingStateChanged{}, err
	}
	if config != "" {
		e.Config = []byte(config)
	}
	if e.TsEvent, err = rec.int64Value(KeyTsEvent); err != nil {
		return schema.TradingStateChanged{}, err
	}
	if e.TsInit, err = rec.int64Value(KeyTsInit); err != nil {
		return schema.TradingStateChanged{}, err
	}
	return e, nil
}
