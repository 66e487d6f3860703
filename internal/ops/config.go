// Package ops loads and validates the engine's file configuration.
package ops

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"main/internal/journal"
	"main/internal/schema"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Trader   TraderConfig   `json:"trader"`
	Registry RegistryConfig `json:"registry"`
	Journal  JournalConfig  `json:"journal"`
	Archive  ArchiveConfig  `json:"archive"`
	Feed     FeedConfig     `json:"feed"`
}

// TraderConfig identifies the owning trader and its boot trading state.
type TraderConfig struct {
	ID           string `json:"id"`
	InitialState string `json:"initialState"`
}

// RegistryConfig defines the tradable instruments.
type RegistryConfig struct {
	Instruments []InstrumentConfig `json:"instruments"`
}

// InstrumentConfig describes one instrument entry.
type InstrumentConfig struct {
	ID         string       `json:"id"`
	Venue      string       `json:"venue"`
	PriceScale schema.Scale `json:"priceScale"`
	SizeScale  schema.Scale `json:"sizeScale"`
}

// JournalConfig enables event journaling when Dir is set.
type JournalConfig struct {
	Dir             string `json:"dir"`
	SegmentMaxBytes int64  `json:"segmentMaxBytes"`
	FilePrefix      string `json:"filePrefix"`
}

// ArchiveConfig enables the Postgres event archive when DSN is set.
type ArchiveConfig struct {
	DSN string `json:"dsn"`
}

// FeedConfig wires the market data feed.
type FeedConfig struct {
	Endpoint string   `json:"endpoint"`
	Symbols  []string `json:"symbols"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Trader       schema.TraderID
	InitialState schema.TradingState
	Registry     *schema.Registry
	Journal      journal.Config
	Archive      ArchiveConfig
	Feed         FeedConfig
}

// JournalEnabled reports whether a journal directory was configured.
func (l Loaded) JournalEnabled() bool {
	return l.Journal.Dir != ""
}

// ArchiveEnabled reports whether an archive DSN was configured.
func (l Loaded) ArchiveEnabled() bool {
	return l.Archive.DSN != ""
}

// Load reads a JSON config file and resolves it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}

	if cfg.Trader.ID == "" {
		return Loaded{}, fmt.Errorf("trader id is empty")
	}
	state := schema.TradingStateActive
	if cfg.Trader.InitialState != "" {
		parsed, ok := schema.ParseTradingState(cfg.Trader.InitialState)
		if !ok {
			return Loaded{}, fmt.Errorf("unknown initial trading state: %s", cfg.Trader.InitialState)
		}
		state = parsed
	}

	registry, err := buildRegistry(cfg.Registry)
	if err != nil {
		return Loaded{}, err
	}

	return Loaded{
		Trader:       schema.TraderID(cfg.Trader.ID),
		InitialState: state,
		Registry:     registry,
		Journal: journal.Config{
			Dir:             cfg.Journal.Dir,
			SegmentMaxBytes: cfg.Journal.SegmentMaxBytes,
			FilePrefix:      cfg.Journal.FilePrefix,
		},
		Archive: cfg.Archive,
		Feed:    cfg.Feed,
	}, nil
}

func buildRegistry(cfg RegistryConfig) (*schema.Registry, error) {
	reg := schema.NewRegistry()
	for _, inst := range cfg.Instruments {
		err := reg.Add(schema.Instrument{
			ID:         schema.InstrumentID(inst.ID),
			Venue:      inst.Venue,
			PriceScale: inst.PriceScale,
			SizeScale:  inst.SizeScale,
		})
		if err != nil {
			return nil, err
		}
	}
	return reg, nil
}
