// replay rebuilds engine state from a journal directory and prints a
// summary, verifying that every journaled transition still applies
// cleanly.
package main

import (
	"flag"
	"log"

	"main/internal/journal"
	"main/internal/order"
	"main/internal/risk"
	"main/internal/schema"
)

func main() {
	dir := flag.String("dir", "", "journal directory")
	prefix := flag.String("prefix", "", "journal file prefix (default: events)")
	noChecksum := flag.Bool("no-checksum", false, "disable checksum validation")
	maxPayload := flag.Int("max-payload", 0, "max payload size in bytes (0=unlimited)")
	flag.Parse()

	if *dir == "" {
		log.Fatal("missing -dir")
	}

	opts := journal.ReaderOptions{
		DisableChecksum: *noChecksum,
		MaxPayloadSize:  *maxPayload,
	}

	orders := order.NewStore()
	gate := risk.NewGate("replay", schema.TradingStateActive)
	counts := make(map[schema.EventType]int)
	total := 0

	err := journal.ReplayDir(*dir, *prefix, opts, func(entry journal.Entry) error {
		total++
		counts[entry.Event.Type()]++
		return apply(orders, gate, entry.Event)
	})
	if err != nil {
		log.Fatalf("replay failed after %d events: %v", total, err)
	}

	log.Printf("replay completed: total=%d", total)
	for eventType, n := range counts {
		log.Printf("  %s=%d", eventType, n)
	}
	log.Printf("orders: tracked=%d open=%d", orders.Len(), len(orders.Open()))
	snap := gate.Current()
	log.Printf("trading state: trader=%s state=%s", snap.TraderID, snap.State)
}

func apply(orders *order.Store, gate *risk.Gate, ev schema.Event) error {
	switch v := ev.(type) {
	case schema.OrderInitialized:
		o, err := order.Create(v)
		if err != nil {
			return err
		}
		return orders.Add(o)
	case schema.TradingStateChanged:
		return gate.Apply(v)
	default:
		if oe, ok := ev.(schema.OrderEvent); ok {
			_, err := orders.Apply(oe)
			return err
		}
		return nil
	}
}
