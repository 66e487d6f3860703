package main

import (
	"context"
	"flag"
	"log"
	"strings"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/bus"
	"main/internal/engine"
	"main/internal/feed"
	"main/internal/journal"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/risk"
	"main/internal/schema"
	"main/internal/store"
	"main/pkg/conn"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	ctx := context.Background()

	loaded, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "trading/engine",
			ServerAddress:   *pyroscopeAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	metrics := obs.NewMetrics()
	gate := risk.NewGate(loaded.Trader, loaded.InitialState)

	var journalWriter *journal.Writer
	if loaded.JournalEnabled() {
		journalWriter, err = journal.NewWriter(loaded.Journal)
		if err != nil {
			log.Fatalf("journal open failed: %v", err)
		}
	}

	var archive *store.Archive
	if loaded.ArchiveEnabled() {
		client, err := conn.New(conn.Option{ConnString: loaded.Archive.DSN})
		if err != nil {
			log.Fatalf("archive connect failed: %v", err)
		}
		defer func() {
			_ = client.Close()
		}()
		archive, err = store.NewArchive(client)
		if err != nil {
			log.Fatalf("archive init failed: %v", err)
		}
	}

	eng := engine.New(engine.Config{
		Gate:    gate,
		Metrics: metrics,
		EventSink: func(ev schema.Event) {
			var seq uint64
			if journalWriter != nil {
				s, err := journalWriter.Append(ev)
				if err != nil {
					logs.Errorf("journal append, err: %+v", err)
					return
				}
				seq = s
			}
			if archive != nil {
				if err := archive.Append(seq, ev); err != nil {
					logs.Errorf("archive append, err: %+v", err)
				}
			}
		},
		OnRiskReject: func(cmd bus.Command, err error) {
			logs.Infof("command denied by risk gate, state: %s, err: %+v", gate.Current().State, err)
		},
		OnError: func(msg bus.Message, err error) {
			logs.Errorf("dispatch %s, err: %+v", msg.Category(), err)
		},
	})

	exec := engine.NewSimExecutor(eng.ApplyEvent, nil)
	eng.SetExecutionHandler(exec)

	triggers := engine.NewTriggerMonitor(eng.Orders(), exec.Trigger)
	eng.SetDataHandler(func(d bus.Data) {
		md, ok := d.Payload.(schema.MarketData)
		if !ok {
			return
		}
		for _, err := range triggers.OnMarketData(md) {
			logs.Errorf("fire stop order, err: %+v", err)
		}
	})

	eng.HandleRequest("open_orders", func(req bus.Request) (any, error) {
		open := eng.Orders().Open()
		ids := make([]schema.ClientOrderID, 0, len(open))
		for _, o := range open {
			ids = append(ids, o.ClientOrderID())
		}
		return ids, nil
	})

	if err := eng.Start(ctx); err != nil {
		log.Fatalf("engine start failed: %v", err)
	}

	if loaded.Feed.Endpoint != "" && len(loaded.Feed.Symbols) > 0 {
		if err := startFeed(ctx, loaded, eng); err != nil {
			log.Fatalf("feed start failed: %v", err)
		}
	}

	logs.Infof("engine running, trader: %s, state: %s, instruments: %d",
		loaded.Trader, loaded.InitialState, loaded.Registry.Count())

	<-sys.Shutdown()
	logs.Info("shutting down")

	eng.Stop()
	if journalWriter != nil {
		if err := journalWriter.Close(); err != nil {
			logs.Errorf("journal close, err: %+v", err)
		}
	}

	snapshot := metrics.Snapshot()
	logs.Infof("metrics: categories=%v risk_rejects=%d errors=%d queue_high_water=%d dispatch=%+v",
		snapshot.CategoryCounts, snapshot.RiskRejects, snapshot.HandlerErrors,
		snapshot.QueueHighWater, snapshot.DispatchLatency)
}

func loadConfig(path string) (ops.Loaded, error) {
	if path == "" {
		return defaultLoaded()
	}
	return ops.Load(path)
}

func defaultLoaded() (ops.Loaded, error) {
	reg := schema.NewRegistry()
	err := reg.Add(schema.Instrument{
		ID:         "TESTUSD.SIM",
		Venue:      "SIM",
		PriceScale: 2,
		SizeScale:  5,
	})
	if err != nil {
		return ops.Loaded{}, err
	}
	return ops.Loaded{
		Trader:       "TRADER-001",
		InitialState: schema.TradingStateActive,
		Registry:     reg,
	}, nil
}

func startFeed(ctx context.Context, loaded ops.Loaded, eng *engine.Engine) error {
	symbols := make(map[string]schema.InstrumentID, loaded.Registry.Count())
	for i := 0; i < loaded.Registry.Count(); i++ {
		inst, ok := loaded.Registry.At(i)
		if !ok {
			continue
		}
		venueSymbol := string(inst.ID)
		if dot := strings.IndexByte(venueSymbol, '.'); dot >= 0 {
			venueSymbol = venueSymbol[:dot]
		}
		symbols[venueSymbol] = inst.ID
	}

	norm := feed.NewNormalizer(loaded.Registry, symbols)
	f := feed.NewBinanceFeed(ctx, loaded.Feed.Endpoint, norm, func(md schema.MarketData) error {
		return eng.Publish(bus.Data{Payload: md})
	})
	if err := f.Start(ctx); err != nil {
		return err
	}
	for _, symbol := range loaded.Feed.Symbols {
		if err := f.SubscribeTrades(ctx, symbol); err != nil {
			return err
		}
		if err := f.SubscribeQuotes(ctx, symbol); err != nil {
			return err
		}
	}
	f.Observe(ctx)
	return nil
}
