// Command bench drives four synthetic order streams — add_resting,
// cancel, marketable_match, mixed_stream — against independent
// engine.Book instances and reports ns/op. Each worker owns its own
// Book: engine.Book is single-threaded by contract, so scaling out
// means N independent books, not N goroutines contending for one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/goovo/clob/engine"
)

func main() {
	scenario := flag.String("scenario", "mixed_stream", "add_resting | cancel | marketable_match | mixed_stream")
	workers := flag.Int("workers", 1, "number of independent Book instances to drive concurrently")
	ops := flag.Int("ops", 1_000_000, "operations per worker")
	maxOrders := flag.Uint("max-orders", 5_000_000, "arena capacity per Book")
	flag.Parse()

	runID := uuid.New().String()
	log := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("run_id", runID, "scenario", *scenario)

	run, ok := scenarios[*scenario]
	if !ok {
		log.Error("unknown scenario", "scenario", *scenario)
		os.Exit(1)
	}

	results := make([]result, *workers)
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < *workers; w++ {
		w := w
		g.Go(func() error {
			book := engine.NewBookDefault(uint32(*maxOrders))
			elapsed := run(book, *ops, uint32(w)*uint32(*ops))
			results[w] = result{worker: w, ops: *ops, elapsed: elapsed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("benchmark worker failed", "error", err)
		os.Exit(1)
	}

	var totalOps int
	var totalNs time.Duration
	for _, r := range results {
		nsPerOp := float64(r.elapsed) / float64(r.ops)
		log.Info("worker done", "worker", r.worker, "ops", r.ops, "ns_per_op", fmt.Sprintf("%.1f", nsPerOp))
		totalOps += r.ops
		totalNs += r.elapsed
	}
	log.Info("benchmark complete",
		"total_ops", totalOps,
		"avg_ns_per_op", fmt.Sprintf("%.1f", float64(totalNs)/float64(totalOps)),
		"ops_per_s", fmt.Sprintf("%.0f", float64(totalOps)/(float64(totalNs)/1e9)))
}

type result struct {
	worker  int
	ops     int
	elapsed time.Duration
}

type scenarioFunc func(book *engine.Book, ops int, idOffset uint32) time.Duration

var scenarios = map[string]scenarioFunc{
	"add_resting":      runAddResting,
	"cancel":           runCancel,
	"marketable_match": runMarketableMatch,
	"mixed_stream":     runMixedStream,
}

func lcg(s *uint32) uint32 {
	*s = 1664525*(*s) + 1013904223
	return *s
}

func runAddResting(book *engine.Book, ops int, idOffset uint32) time.Duration {
	var rng uint32 = 1
	id := engine.OrderID(idOffset) + 1

	t0 := time.Now()
	for i := 0; i < ops; i++ {
		r := lcg(&rng)
		side := engine.Buy
		if r&1 == 0 {
			side = engine.Sell
		}
		price := engine.PriceTicks(10000 + r%100)
		qty := engine.Qty(1 + r%10)
		book.AddLimit(id, qty, side, price)
		id++
	}
	return time.Since(t0)
}

func runCancel(book *engine.Book, ops int, idOffset uint32) time.Duration {
	var rng uint32 = 2
	id := engine.OrderID(idOffset) + 1
	live := make([]engine.OrderID, 0, ops)

	for i := 0; i < ops; i++ {
		r := lcg(&rng)
		side := engine.Buy
		if r&1 == 0 {
			side = engine.Sell
		}
		price := engine.PriceTicks(20000 + r%100)
		qty := engine.Qty(1 + r%10)
		book.AddLimit(id, qty, side, price)
		live = append(live, id)
		id++
	}

	t0 := time.Now()
	for _, victim := range live {
		book.Cancel(victim)
	}
	return time.Since(t0)
}

func runMarketableMatch(book *engine.Book, ops int, idOffset uint32) time.Duration {
	id := engine.OrderID(idOffset) + 1
	for i := 0; i < 1000; i++ {
		book.AddLimit(id, 1_000_000, engine.Sell, 10000)
		id++
	}

	t0 := time.Now()
	for i := 0; i < ops; i++ {
		book.AddLimit(id, 1, engine.Buy, 20000)
		id++
	}
	return time.Since(t0)
}

func runMixedStream(book *engine.Book, ops int, idOffset uint32) time.Duration {
	var rng uint32 = 42
	id := engine.OrderID(idOffset) + 1
	cancellable := make([]engine.OrderID, 0, ops*3)

	t0 := time.Now()
	for i := 0; i < ops; i++ {
		for k := 0; k < 3; k++ {
			r := lcg(&rng)
			side := engine.Buy
			if r&1 == 0 {
				side = engine.Sell
			}
			price := engine.PriceTicks(10000 + r%20)
			qty := engine.Qty(1 + r%5)
			book.AddLimit(id, qty, side, price)
			cancellable = append(cancellable, id)
			id++
		}

		if len(cancellable) > 0 {
			victim := cancellable[len(cancellable)-1]
			cancellable = cancellable[:len(cancellable)-1]
			book.Cancel(victim)
		}

		r2 := lcg(&rng)
		side := engine.Sell
		price := engine.PriceTicks(1)
		if r2&1 == 0 {
			side = engine.Buy
			price = 20000
		}
		book.AddLimit(id, 1, side, price)
		id++
	}
	return time.Since(t0)
}
