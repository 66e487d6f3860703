package feed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yanun0323/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
	"github.com/yanun0323/pkg/ws"

	"main/internal/schema"
	"main/pkg/exception"
)

const binanceBaseWsUrl = "wss://stream.binance.com:9443/ws"

// BinanceFeed streams public trades and top-of-book quotes from Binance
// and forwards the normalized ticks into the engine.
type BinanceFeed struct {
	wss     *ws.WebSocket
	norm    *Normalizer
	publish func(md schema.MarketData) error
}

// NewBinanceFeed creates the feed. An empty endpoint falls back to the
// public stream host.
func NewBinanceFeed(ctx context.Context, endpoint string, norm *Normalizer, publish func(md schema.MarketData) error) *BinanceFeed {
	if endpoint == "" {
		endpoint = binanceBaseWsUrl
	}
	return &BinanceFeed{
		wss:     ws.New(ctx, endpoint),
		norm:    norm,
		publish: publish,
	}
}

// Start opens the websocket connection.
func (f *BinanceFeed) Start(ctx context.Context) error {
	if err := f.wss.Start(ctx); err != nil {
		return errors.Wrap(err, "start wss")
	}
	return nil
}

// Close tears the connection down.
func (f *BinanceFeed) Close() {
	f.wss.Close()
}

type binanceSubscribeRequest struct {
	Method string   `json:"method"`
	Params []string `json:"params"`
	ID     int64    `json:"id"`
}

type binanceSubscribeResponse struct {
	ID     int64 `json:"id"`
	Result any   `json:"result"`
}

func subscribeResponseParser(m ws.Message) (binanceSubscribeResponse, bool) {
	var resp binanceSubscribeResponse
	err := m.Unmarshal(&resp)
	return resp, err == nil
}

func (f *BinanceFeed) subscribe(ctx context.Context, id int64, streams ...string) error {
	appendIntoRegister := true
	if err := f.wss.SendAndWait(ctx, ws.Sidecar{
		Sender: func(ctx context.Context, ws *ws.WebSocket) error {
			payload := binanceSubscribeRequest{
				Method: "SUBSCRIBE",
				Params: streams,
				ID:     id,
			}
			if err := ws.WriteJSON(payload); err != nil {
				return errors.Wrap(err, "write subscribe payload").With("payload", payload)
			}
			return nil
		},
		Waiter: func(ctx context.Context, m ws.Message) (bool, error) {
			resp, ok := subscribeResponseParser(m)
			if !ok || resp.ID != id {
				return false, nil
			}
			if resp.Result != nil {
				return false, errors.Errorf("subscribe and wait, err: %+v", resp.Result)
			}
			return true, nil
		},
	}, appendIntoRegister); err != nil {
		return errors.Wrap(err, "send and wait")
	}
	return nil
}

// SubscribeTrades subscribes the raw trade stream of a symbol.
func (f *BinanceFeed) SubscribeTrades(ctx context.Context, symbol string) error {
	return f.subscribe(ctx, 1, fmt.Sprintf("%s@trade", strings.ToLower(symbol)))
}

// SubscribeQuotes subscribes the book ticker stream of a symbol.
func (f *BinanceFeed) SubscribeQuotes(ctx context.Context, symbol string) error {
	return f.subscribe(ctx, 2, fmt.Sprintf("%s@bookTicker", strings.ToLower(symbol)))
}

type binanceTrade struct {
	EventType string          `json:"e"`
	EventTime int64           `json:"E"`
	Symbol    string          `json:"s"`
	Price     decimal.Decimal `json:"p"`
	Quantity  decimal.Decimal `json:"q"`
	TradeTime int64           `json:"T"`
}

type binanceBookTicker struct {
	UpdateID int64           `json:"u"`
	Symbol   string          `json:"s"`
	BidPrice decimal.Decimal `json:"b"`
	BidQty   decimal.Decimal `json:"B"`
	AskPrice decimal.Decimal `json:"a"`
	AskQty   decimal.Decimal `json:"A"`
}

// Observe pumps incoming stream messages into the engine until the context
// ends or the connection closes.
func (f *BinanceFeed) Observe(ctx context.Context) (unsubscribe func()) {
	ch, cancel := f.wss.Subscribe()

	go func() {
		defer cancel()
		for {
			select {
			case <-sys.Shutdown():
				return
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				f.handle(m)
			}
		}
	}()

	return cancel
}

func (f *BinanceFeed) handle(m ws.Message) {
	recv := time.Now().UTC().UnixNano()
	trade, tradeOK := ws.ReadMessage[binanceTrade](m)
	quote, quoteOK := ws.ReadMessage[binanceBookTicker](m)
	ack, ackOK := subscribeResponseParser(m)

	if err := f.consume(trade, tradeOK, quote, quoteOK, ack, ackOK, recv); err != nil {
		logs.Errorf("consume stream message, err: %+v", err)
	}
}

// consume classifies a decoded stream message and forwards tick payloads
// into the engine. Anything that is neither a tick nor a subscribe ack is
// reported as malformed rather than dropped silently.
func (f *BinanceFeed) consume(
	trade binanceTrade, tradeOK bool,
	quote binanceBookTicker, quoteOK bool,
	ack binanceSubscribeResponse, ackOK bool,
	recv int64,
) error {
	switch {
	case tradeOK && trade.EventType == "trade":
		md, err := f.norm.Trade(trade.Symbol, trade.Price.String(), trade.Quantity.String(),
			trade.TradeTime*int64(time.Millisecond), recv)
		if err != nil {
			return errors.Wrap(err, "normalize trade tick")
		}
		if err := f.publish(md); err != nil {
			return errors.Wrap(err, "publish trade tick")
		}
		return nil

	case quoteOK && quote.UpdateID != 0 && quote.Symbol != "":
		md, err := f.norm.Quote(quote.Symbol,
			quote.BidPrice.String(), quote.BidQty.String(),
			quote.AskPrice.String(), quote.AskQty.String(),
			recv, recv)
		if err != nil {
			return errors.Wrap(err, "normalize quote tick")
		}
		if err := f.publish(md); err != nil {
			return errors.Wrap(err, "publish quote tick")
		}
		return nil

	case ackOK && ack.ID != 0:
		// subscribe acks are consumed by their waiters
		return nil

	default:
		return exception.ErrFeedMalformedPayload
	}
}
