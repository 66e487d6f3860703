package risk

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
	"main/pkg/exception"
)

func TestGateStartsInGivenState(t *testing.T) {
	g := NewGate("TRADER-001", schema.TradingStateReducing)

	snap := g.Current()
	assert.Equal(t, schema.TraderID("TRADER-001"), snap.TraderID)
	assert.Equal(t, schema.TradingStateReducing, snap.State)
	assert.Empty(t, snap.Config)
}

func TestGateApplyReplacesSnapshot(t *testing.T) {
	g := NewGate("TRADER-001", schema.TradingStateActive)

	require.NoError(t, g.Apply(schema.TradingStateChanged{
		TraderID: "TRADER-001",
		State:    schema.TradingStateReducing,
		Config:   []byte(`{"max_notional":250000,"reason":"drawdown"}`),
		TsEvent:  42,
	}))

	snap := g.Current()
	assert.Equal(t, schema.TradingStateReducing, snap.State)
	assert.Equal(t, int64(42), snap.TsEvent)
	assert.Equal(t, float64(250000), snap.Config["max_notional"])
	assert.Equal(t, "drawdown", snap.Config["reason"])

	// config does not survive across state changes
	require.NoError(t, g.Apply(schema.TradingStateChanged{
		TraderID: "TRADER-001",
		State:    schema.TradingStateActive,
		TsEvent:  43,
	}))
	assert.Empty(t, g.Current().Config)
}

func TestGateApplyValidation(t *testing.T) {
	g := NewGate("TRADER-001", schema.TradingStateActive)

	err := g.Apply(schema.TradingStateChanged{State: schema.TradingStateHalted, TsEvent: 2})
	require.ErrorIs(t, err, exception.ErrRiskInvalidTrader)

	err = g.Apply(schema.TradingStateChanged{TraderID: "TRADER-001", State: schema.TradingState(99), TsEvent: 2})
	require.ErrorIs(t, err, exception.ErrRiskUnknownState)

	err = g.Apply(schema.TradingStateChanged{
		TraderID: "TRADER-001",
		State:    schema.TradingStateHalted,
		Config:   []byte(`{"max_notional":`),
		TsEvent:  2,
	})
	require.ErrorIs(t, err, exception.ErrRiskConfigDecode)

	// rejected events leave the snapshot untouched
	snap := g.Current()
	assert.Equal(t, schema.TradingStateActive, snap.State)
	assert.Zero(t, snap.TsEvent)
}

func TestGateAdmitMatrix(t *testing.T) {
	for _, tc := range []struct {
		state      schema.TradingState
		increasing error
		reducing   error
	}{
		{schema.TradingStateActive, nil, nil},
		{schema.TradingStateReducing, exception.ErrRiskRestricted, nil},
		{schema.TradingStateHalted, exception.ErrRiskHalted, exception.ErrRiskHalted},
	} {
		g := NewGate("TRADER-001", tc.state)
		assert.ErrorIs(t, g.Admit(ExposureIncreasing), tc.increasing, tc.state)
		assert.ErrorIs(t, g.Admit(ExposureReducing), tc.reducing, tc.state)
	}
}

func TestGateConcurrentReaders(t *testing.T) {
	g := NewGate("TRADER-001", schema.TradingStateActive)
	states := []schema.TradingState{
		schema.TradingStateActive,
		schema.TradingStateReducing,
		schema.TradingStateHalted,
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap := g.Current()
				assert.Contains(t, states, snap.State)
				_ = g.Admit(ExposureReducing)
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		assert.NoError(t, g.Apply(schema.TradingStateChanged{
			TraderID: "TRADER-001",
			State:    states[i%len(states)],
			TsEvent:  int64(i + 1),
		}))
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, int64(1000), g.Current().TsEvent)
}
