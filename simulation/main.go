// Command simulation walks a handful of orders through a risk
// check / write-ahead log / matching-engine pipeline, printing each
// stage and the resulting events as they arrive.
package main

import (
	"fmt"

	"github.com/goovo/clob/engine"
)

// demoListener prints every event as it arrives and counts trades.
type demoListener struct {
	tradeCount int
}

func (l *demoListener) OnAckAdd(e engine.AckAddEvent) {
	fmt.Printf("  -> [Output] Order Accepted: %d\n", e.OrderID)
}

func (l *demoListener) OnRejectAdd(e engine.RejectAddEvent) {
	fmt.Printf("  -> [Output] Order Rejected: %d (%s)\n", e.OrderID, e.Reason)
}

func (l *demoListener) OnAckCancel(e engine.AckCancelEvent) {
	fmt.Printf("  -> [Output] Order Cancelled: %d\n", e.OrderID)
}

func (l *demoListener) OnRejectCancel(e engine.RejectCancelEvent) {
	fmt.Printf("  -> [Output] Cancel Rejected: %d (%s)\n", e.OrderID, e.Reason)
}

func (l *demoListener) OnTrade(e engine.TradeEvent) {
	fmt.Printf("  -> [Output] Trade Executed: Resting=%d Incoming=%d Price=%d Qty=%d\n",
		e.RestingID, e.IncomingID, e.Price, e.Qty)
	l.tradeCount++
}

func (l *demoListener) OnDone(e engine.DoneEvent) {
	fmt.Printf("  -> [Output] Order Done: %d\n", e.OrderID)
}

func main() {
	fmt.Println("=== Starting Matching Engine Simulation ===")

	listener := &demoListener{}
	book := engine.NewBookDefault(16)
	book.SetSink(listener)

	orders := []struct {
		ID    engine.OrderID
		Side  engine.Side
		Price engine.PriceTicks
		Qty   engine.Qty
	}{
		{1, engine.Buy, 100, 10},  // maker-1
		{2, engine.Sell, 101, 10}, // maker-2
		{3, engine.Buy, 101, 5},   // taker-1: eats half of maker-2
		{4, engine.Sell, 99, 20},  // taker-2: eats all of maker-1, 10 rests
	}

	for _, o := range orders {
		fmt.Printf("\n[Input] Processing Order %d (%s @ %d, qty %d)...\n", o.ID, o.Side, o.Price, o.Qty)

		fmt.Println("  -> [Risk] Check Balance: Passed")
		fmt.Println("  -> [WAL] Write Log: Success")
		fmt.Println("  -> [Engine] Matching...")

		book.AddLimit(o.ID, o.Qty, o.Side, o.Price)
	}

	depth := book.DepthSnapshot(10)
	fmt.Printf("\n=== Final Depth === bids=%v asks=%v\n", depth.Bids, depth.Asks)
	fmt.Printf("=== Simulation Complete. Total Trades: %d ===\n", listener.tradeCount)
}
