package journal

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/schema"
	"main/pkg/exception"
)

func testEvents() []schema.Event {
	return []schema.Event{
		schema.OrderInitialized{
			TraderID:      "TRADER-001",
			ClientOrderID: "O-1",
			InstrumentID:  "BTCUSDT.BINANCE",
			Side:          schema.OrderSideBuy,
			OrderType:     schema.OrderTypeLimit,
			Quantity:      10,
			TimeInForce:   schema.TimeInForceGTC,
			Price:         100_00,
			TsEvent:       1,
			TsInit:        1,
		},
		schema.OrderSubmitted{ClientOrderID: "O-1", TsEvent: 2, TsInit: 1},
		schema.OrderAccepted{ClientOrderID: "O-1", VenueOrderID: "V-1", TsEvent: 3, TsInit: 1},
		schema.TradingStateChanged{
			TraderID: "TRADER-001",
			State:    schema.TradingStateReducing,
			Config:   []byte(`{"max_notional":"100"}`),
			TsEvent:  4,
			TsInit:   4,
		},
	}
}

func writeSegment(t *testing.T, dir string, events []schema.Event) string {
	t.Helper()
	w, err := NewWriter(DefaultConfig(dir))
	require.NoError(t, err)
	for i, ev := range events {
		seq, err := w.Append(ev)
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), seq)
	}
	require.NoError(t, w.Close())

	paths, err := filepath.Glob(filepath.Join(dir, "events-*.evj"))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	return paths[0]
}

func TestJournalRoundTrip(t *testing.T) {
	events := testEvents()
	path := writeSegment(t, t.TempDir(), events)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	r := NewReader(file, ReaderOptions{})
	for i, want := range events {
		entry, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), entry.Seq)
		assert.Equal(t, want.EventTime(), entry.TsEvent)
		assert.Equal(t, want, entry.Event)
	}
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestJournalChecksumMismatch(t *testing.T) {
	path := writeSegment(t, t.TempDir(), testEvents())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// flip one payload byte of the first frame
	raw[recordHeaderSize+2] ^= 0xFF
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	_, err = NewReader(file, ReaderOptions{}).Next()
	require.ErrorIs(t, err, exception.ErrJournalChecksum)
}

func TestJournalInvalidMagic(t *testing.T) {
	path := writeSegment(t, t.TempDir(), testEvents())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[0] = 'X'
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	_, err = NewReader(file, ReaderOptions{}).Next()
	require.ErrorIs(t, err, exception.ErrJournalInvalidMagic)
}

func TestJournalTruncatedFrame(t *testing.T) {
	path := writeSegment(t, t.TempDir(), testEvents())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw[:len(raw)-3], 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	r := NewReader(file, ReaderOptions{})
	var last error
	for {
		_, err := r.Next()
		if err != nil {
			last = err
			break
		}
	}
	require.ErrorIs(t, last, io.ErrUnexpectedEOF)
}

func TestJournalSegmentRotation(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.SegmentMaxBytes = 256

	w, err := NewWriter(cfg)
	require.NoError(t, err)
	events := testEvents()
	for _, ev := range events {
		_, err := w.Append(ev)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	paths, err := filepath.Glob(filepath.Join(dir, "events-*.evj"))
	require.NoError(t, err)
	require.Greater(t, len(paths), 1, "small segments must rotate")

	var got []schema.Event
	require.NoError(t, ReplayDir(dir, "", ReaderOptions{}, func(entry Entry) error {
		got = append(got, entry.Event)
		return nil
	}))
	assert.Equal(t, events, got)
}

func TestJournalAppendAfterClose(t *testing.T) {
	w, err := NewWriter(DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Append(schema.OrderSubmitted{ClientOrderID: "O-1", TsEvent: 1, TsInit: 1})
	require.ErrorIs(t, err, exception.ErrJournalClosed)
}
