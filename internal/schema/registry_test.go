package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryAddAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(Instrument{ID: "BTCUSDT.BINANCE", Venue: "BINANCE", PriceScale: 2, SizeScale: 5}))
	require.NoError(t, r.Add(Instrument{ID: "ETHUSDT.BINANCE", Venue: "BINANCE", PriceScale: 2, SizeScale: 4}))

	inst, ok := r.Instrument("BTCUSDT.BINANCE")
	require.True(t, ok)
	assert.Equal(t, Scale(2), inst.PriceScale)
	assert.Equal(t, Scale(5), inst.SizeScale)

	_, ok = r.Instrument("SOLUSDT.BINANCE")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Count())

	// insertion order is preserved
	first, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, InstrumentID("BTCUSDT.BINANCE"), first.ID)
	_, ok = r.At(2)
	assert.False(t, ok)
}

func TestRegistryAddValidation(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Add(Instrument{Venue: "BINANCE"}))
	require.Error(t, r.Add(Instrument{ID: "BTCUSDT.BINANCE"}))
	require.Error(t, r.Add(Instrument{ID: "BTCUSDT.BINANCE", Venue: "BINANCE", PriceScale: -1}))

	require.NoError(t, r.Add(Instrument{ID: "BTCUSDT.BINANCE", Venue: "BINANCE", PriceScale: 2, SizeScale: 5}))
	require.Error(t, r.Add(Instrument{ID: "BTCUSDT.BINANCE", Venue: "BINANCE", PriceScale: 2, SizeScale: 5}))
	assert.Equal(t, 1, r.Count())
}
