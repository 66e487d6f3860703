package risk

import (
	"sync/atomic"

	"github.com/bytedance/sonic"

	"main/internal/schema"
	"main/pkg/exception"
)

// Exposure classifies what an order command does to open exposure. The
// engine derives it from the command and the addressed order before asking
// for admission.
type Exposure uint16

const (
	ExposureUnknown Exposure = iota
	ExposureIncreasing
	ExposureReducing
)

// Snapshot is a point-in-time view of the trading state and its decoded
// restriction config.
type Snapshot struct {
	TraderID schema.TraderID
	State    schema.TradingState
	Config   map[string]any
	TsEvent  int64
}

// Gate holds the process-wide trading state consulted before any
// order-affecting command is admitted. State is replaced by an atomic
// snapshot swap, so Current and Admit are safe for concurrent readers even
// when several routers share one gate.
type Gate struct {
	snap atomic.Value
}

// NewGate creates a gate owned by the given trader, starting in the given
// state with an empty config.
func NewGate(traderID schema.TraderID, state schema.TradingState) *Gate {
	g := &Gate{}
	g.snap.Store(Snapshot{
		TraderID: traderID,
		State:    state,
		Config:   map[string]any{},
	})
	return g
}

// Current returns the current snapshot.
func (g *Gate) Current() Snapshot {
	return g.snap.Load().(Snapshot)
}

// Apply atomically replaces the trading state and config. The gate only
// validates that the event carries a well-formed trader id and a decodable
// config payload; authorization is the risk authority's concern.
func (g *Gate) Apply(ev schema.TradingStateChanged) error {
	if ev.TraderID == "" {
		return exception.ErrRiskInvalidTrader
	}
	switch ev.State {
	case schema.TradingStateActive, schema.TradingStateReducing, schema.TradingStateHalted:
	default:
		return exception.ErrRiskUnknownState
	}

	config := map[string]any{}
	if len(ev.Config) > 0 {
		if err := sonic.Unmarshal(ev.Config, &config); err != nil {
			return exception.ErrRiskConfigDecode
		}
	}

	g.snap.Store(Snapshot{
		TraderID: ev.TraderID,
		State:    ev.State,
		Config:   config,
		TsEvent:  ev.TsEvent,
	})
	return nil
}

// Admit decides whether a command with the given exposure may proceed.
// Under HALTED everything is rejected; under REDUCING only exposure-reducing
// commands pass; under ACTIVE everything passes.
func (g *Gate) Admit(exp Exposure) error {
	switch g.Current().State {
	case schema.TradingStateActive:
		return nil
	case schema.TradingStateHalted:
		return exception.ErrRiskHalted
	case schema.TradingStateReducing:
		if exp == ExposureReducing {
			return nil
		}
		return exception.ErrRiskRestricted
	default:
		return exception.ErrRiskUnknownState
	}
}
