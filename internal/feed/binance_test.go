package feed

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
	"main/pkg/exception"
)

func testFeed(t *testing.T, publish func(md schema.MarketData) error) *BinanceFeed {
	t.Helper()
	return &BinanceFeed{norm: testNormalizer(t), publish: publish}
}

func decodeTrade(t *testing.T, raw string) binanceTrade {
	t.Helper()
	var v binanceTrade
	require.NoError(t, sonic.Unmarshal([]byte(raw), &v))
	return v
}

func decodeQuote(t *testing.T, raw string) binanceBookTicker {
	t.Helper()
	var v binanceBookTicker
	require.NoError(t, sonic.Unmarshal([]byte(raw), &v))
	return v
}

func TestConsumeTradeTick(t *testing.T) {
	var got []schema.MarketData
	f := testFeed(t, func(md schema.MarketData) error {
		got = append(got, md)
		return nil
	})

	trade := decodeTrade(t, `{"e":"trade","E":1700000000001,"s":"BTCUSDT","p":"30000.10","q":"0.25","T":1700000000000}`)
	require.NoError(t, f.consume(trade, true, binanceBookTicker{}, false, binanceSubscribeResponse{}, false, 9))

	require.Len(t, got, 1)
	assert.Equal(t, schema.InstrumentID("BTCUSDT.BINANCE"), got[0].InstrumentID)
	assert.Equal(t, schema.MarketDataTrade, got[0].Kind)
	assert.Equal(t, schema.Price(3000010), got[0].Price)
	assert.Equal(t, schema.Quantity(25000), got[0].Size)
	assert.Equal(t, int64(9), got[0].TsRecv)
}

func TestConsumeQuoteTick(t *testing.T) {
	var got []schema.MarketData
	f := testFeed(t, func(md schema.MarketData) error {
		got = append(got, md)
		return nil
	})

	quote := decodeQuote(t, `{"u":400900217,"s":"BTCUSDT","b":"30000.10","B":"1","a":"30000.20","A":"2"}`)
	require.NoError(t, f.consume(binanceTrade{}, false, quote, true, binanceSubscribeResponse{}, false, 9))

	require.Len(t, got, 1)
	assert.Equal(t, schema.MarketDataQuote, got[0].Kind)
	assert.Equal(t, schema.Price(3000010), got[0].BidPrice)
	assert.Equal(t, schema.Quantity(100000), got[0].BidSize)
	assert.Equal(t, schema.Price(3000020), got[0].AskPrice)
	assert.Equal(t, schema.Quantity(200000), got[0].AskSize)
}

func TestConsumeIgnoresSubscribeAck(t *testing.T) {
	f := testFeed(t, func(md schema.MarketData) error {
		t.Fatal("subscribe ack must not publish a tick")
		return nil
	})

	ack := binanceSubscribeResponse{ID: 1}
	require.NoError(t, f.consume(binanceTrade{}, false, binanceBookTicker{}, false, ack, true, 9))
}

func TestConsumeReportsMalformedPayload(t *testing.T) {
	published := 0
	f := testFeed(t, func(md schema.MarketData) error {
		published++
		return nil
	})

	err := f.consume(binanceTrade{}, false, binanceBookTicker{}, false, binanceSubscribeResponse{}, false, 9)
	require.ErrorIs(t, err, exception.ErrFeedMalformedPayload)

	// a book ticker missing its update id is noise, not a tick
	quote := decodeQuote(t, `{"s":"BTCUSDT","b":"30000.10","B":"1","a":"30000.20","A":"2"}`)
	err = f.consume(binanceTrade{}, false, quote, true, binanceSubscribeResponse{}, false, 9)
	require.ErrorIs(t, err, exception.ErrFeedMalformedPayload)

	assert.Zero(t, published)
}
