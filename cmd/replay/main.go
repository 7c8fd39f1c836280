// Command replay drives a fixed, documented order stream through a
// fresh Book and prints the resulting FNV-1a-64 event-stream hash. Two
// independent implementations of this design that print the same hash
// for the same stream agree on every observable side effect, without
// either having to compare full event logs.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/goovo/clob/engine"
)

func main() {
	verbose := flag.Bool("verbose", false, "log every event as it is emitted")
	flag.Parse()

	runID := uuid.New().String()
	log := slog.New(slog.NewTextHandler(os.Stdout, nil)).With("run_id", runID)

	book := engine.NewBookDefault(1_000_000)
	sink := engine.NewHashSink()

	var tee engine.EventSink = sink
	if *verbose {
		tee = &loggingSink{inner: sink, log: log}
	}
	book.SetSink(tee)

	book.AddLimit(1, 10, engine.Sell, 101)
	book.AddLimit(2, 10, engine.Sell, 101)
	book.AddLimit(3, 10, engine.Buy, 99)
	book.AddLimit(4, 5, engine.Buy, 101)

	book.Cancel(3)
	book.Cancel(999999)

	book.AddLimit(1, 1, engine.Buy, 200)

	book.AddLimit(5, 20, engine.Buy, 1000)
	book.AddLimit(6, 20, engine.Sell, 1000)

	log.Info("replay complete", "hash", sink.H, "events", sink.Count)
}

// loggingSink logs every event at slog.Info before forwarding it to
// inner, for -verbose runs.
type loggingSink struct {
	inner engine.EventSink
	log   *slog.Logger
}

func (s *loggingSink) OnAckAdd(e engine.AckAddEvent) {
	s.log.Info("ack_add", "order_id", e.OrderID)
	s.inner.OnAckAdd(e)
}

func (s *loggingSink) OnRejectAdd(e engine.RejectAddEvent) {
	s.log.Info("reject_add", "order_id", e.OrderID, "reason", e.Reason)
	s.inner.OnRejectAdd(e)
}

func (s *loggingSink) OnAckCancel(e engine.AckCancelEvent) {
	s.log.Info("ack_cancel", "order_id", e.OrderID)
	s.inner.OnAckCancel(e)
}

func (s *loggingSink) OnRejectCancel(e engine.RejectCancelEvent) {
	s.log.Info("reject_cancel", "order_id", e.OrderID, "reason", e.Reason)
	s.inner.OnRejectCancel(e)
}

func (s *loggingSink) OnTrade(e engine.TradeEvent) {
	s.log.Info("trade", "resting_id", e.RestingID, "incoming_id", e.IncomingID, "price_ticks", e.Price, "qty", e.Qty)
	s.inner.OnTrade(e)
}

func (s *loggingSink) OnDone(e engine.DoneEvent) {
	s.log.Info("done", "order_id", e.OrderID)
	s.inner.OnDone(e)
}
