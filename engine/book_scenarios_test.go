package engine

import "testing"

// runReplayScenario drives the fixed order stream used to compare this
// engine's event trace against an independent implementation of the
// same design: a resting book, a partial fill, a cancel, a cancel of a
// nonexistent id, a duplicate-id rejection, and a two-level sweep that
// crosses first the ask ladder then the bid ladder.
func runReplayScenario(sink EventSink) *Book {
	b := NewBookDefault(1_000_000)
	b.SetSink(sink)

	b.AddLimit(1, 10, Sell, 101)
	b.AddLimit(2, 10, Sell, 101)
	b.AddLimit(3, 10, Buy, 99)
	b.AddLimit(4, 5, Buy, 101)

	b.Cancel(3)
	b.Cancel(999999)

	b.AddLimit(1, 1, Buy, 200)

	b.AddLimit(5, 20, Buy, 1000)
	b.AddLimit(6, 20, Sell, 1000)

	return b
}

func TestReplayScenarioEventTrace(t *testing.T) {
	sink := &recordingSink{}
	runReplayScenario(sink)

	wantAcks := []OrderID{1, 2, 3, 5, 6}
	if len(sink.acks) != len(wantAcks) {
		t.Fatalf("acks = %+v, want %+v", sink.acks, wantAcks)
	}
	for i, want := range wantAcks {
		if sink.acks[i].OrderID != want {
			t.Fatalf("acks[%d].OrderID = %d, want %d", i, sink.acks[i].OrderID, want)
		}
	}

	if len(sink.ackCancels) != 1 || sink.ackCancels[0].OrderID != 3 {
		t.Fatalf("ackCancels = %+v, want single ack for order 3", sink.ackCancels)
	}
	if len(sink.rejectCancels) != 1 || sink.rejectCancels[0].OrderID != 999999 {
		t.Fatalf("rejectCancels = %+v, want single reject for order 999999", sink.rejectCancels)
	}
	if len(sink.rejects) != 1 || sink.rejects[0].OrderID != 1 || sink.rejects[0].Reason != ReasonDuplicateID {
		t.Fatalf("rejects = %+v, want single duplicate-id reject for order 1", sink.rejects)
	}

	wantTrades := []TradeEvent{
		{RestingID: 1, IncomingID: 4, Price: 101, Qty: 5},
		{RestingID: 1, IncomingID: 5, Price: 101, Qty: 5},
		{RestingID: 2, IncomingID: 5, Price: 101, Qty: 10},
		{RestingID: 5, IncomingID: 6, Price: 1000, Qty: 5},
	}
	if len(sink.trades) != len(wantTrades) {
		t.Fatalf("trades = %+v, want %+v", sink.trades, wantTrades)
	}
	for i, want := range wantTrades {
		if sink.trades[i] != want {
			t.Fatalf("trades[%d] = %+v, want %+v", i, sink.trades[i], want)
		}
	}

	wantDones := []OrderID{4, 1, 2, 5}
	if len(sink.dones) != len(wantDones) {
		t.Fatalf("dones = %+v, want %+v", sink.dones, wantDones)
	}
	for i, want := range wantDones {
		if sink.dones[i].OrderID != want {
			t.Fatalf("dones[%d].OrderID = %d, want %d", i, sink.dones[i].OrderID, want)
		}
	}
}

func TestReplayScenarioHashIsDeterministic(t *testing.T) {
	first := NewHashSink()
	runReplayScenario(first)

	second := NewHashSink()
	runReplayScenario(second)

	if first.H != second.H {
		t.Fatalf("hash not deterministic across runs: %d != %d", first.H, second.H)
	}
	if first.Count != second.Count {
		t.Fatalf("event count not deterministic across runs: %d != %d", first.Count, second.Count)
	}
	if first.Count != 16 {
		t.Fatalf("event count = %d, want 16", first.Count)
	}
}

func TestReplayScenarioHashDivergesOnDifferentStream(t *testing.T) {
	baseline := NewHashSink()
	runReplayScenario(baseline)

	altered := NewHashSink()
	b := NewBookDefault(1_000_000)
	b.SetSink(altered)
	b.AddLimit(1, 10, Sell, 101)
	b.AddLimit(2, 10, Sell, 101)
	b.AddLimit(3, 10, Buy, 99)
	b.AddLimit(4, 5, Buy, 101)
	b.Cancel(3)
	b.Cancel(999999)
	b.AddLimit(1, 1, Buy, 200)
	b.AddLimit(5, 20, Buy, 1000)
	// no final crossing sell here: the stream diverges from this point.

	if baseline.H == altered.H {
		t.Fatalf("hash did not diverge for a different event stream")
	}
}
