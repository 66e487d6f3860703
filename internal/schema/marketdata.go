package schema

// MarketDataKind describes the meaning of a market data payload.
type MarketDataKind uint16

const (
	MarketDataUnknown MarketDataKind = iota
	MarketDataTrade
	MarketDataQuote
)

// MarketData is the payload carried by Data messages.
type MarketData struct {
	InstrumentID InstrumentID
	Kind         MarketDataKind
	Price        Price
	Size         Quantity
	BidPrice     Price
	BidSize      Quantity
	AskPrice     Price
	AskSize      Quantity
	TsEvent      int64
	TsRecv       int64
}
