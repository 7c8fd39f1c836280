package engine

import "testing"

func TestPriceLevelPushPopFIFO(t *testing.T) {
	a := newOrderArena(4)
	lvl := &priceLevel{priceTicks: 100, head: nullIndex, tail: nullIndex}

	var idxs []index
	for i, qty := range []Qty{10, 20, 30} {
		idx := a.allocate()
		o := a.get(idx)
		o.OrderID = OrderID(i + 1)
		o.QtyRemaining = qty
		lvl.pushBack(a, idx)
		idxs = append(idxs, idx)
	}

	if lvl.volume != 60 {
		t.Fatalf("volume = %d, want 60", lvl.volume)
	}
	if lvl.count != 3 {
		t.Fatalf("count = %d, want 3", lvl.count)
	}

	for i, want := range []OrderID{1, 2, 3} {
		idx := lvl.popFront(a)
		if idx == nullIndex {
			t.Fatalf("popFront[%d]: unexpected empty", i)
		}
		got := a.get(idx).OrderID
		if got != want {
			t.Fatalf("popFront[%d] = order %d, want %d", i, got, want)
		}
	}
	if !lvl.empty() {
		t.Fatalf("level not empty after draining all pushes")
	}
	if lvl.volume != 0 || lvl.count != 0 {
		t.Fatalf("volume/count after drain = %d/%d, want 0/0", lvl.volume, lvl.count)
	}
	if lvl.popFront(a) != nullIndex {
		t.Fatalf("popFront on empty level did not return nullIndex")
	}
}

func TestPriceLevelEraseInterior(t *testing.T) {
	a := newOrderArena(4)
	lvl := &priceLevel{priceTicks: 50, head: nullIndex, tail: nullIndex}

	idxA := a.allocate()
	a.get(idxA).QtyRemaining = 5
	lvl.pushBack(a, idxA)

	idxB := a.allocate()
	a.get(idxB).QtyRemaining = 7
	lvl.pushBack(a, idxB)

	idxC := a.allocate()
	a.get(idxC).QtyRemaining = 9
	lvl.pushBack(a, idxC)

	lvl.erase(a, idxB)
	if lvl.volume != 14 {
		t.Fatalf("volume after erasing interior order = %d, want 14", lvl.volume)
	}
	if lvl.count != 2 {
		t.Fatalf("count after erasing interior order = %d, want 2", lvl.count)
	}

	first := lvl.popFront(a)
	if first != idxA {
		t.Fatalf("head after erase = %v, want idxA", first)
	}
	second := lvl.popFront(a)
	if second != idxC {
		t.Fatalf("second after erase = %v, want idxC", second)
	}
	if !lvl.empty() {
		t.Fatalf("level should be empty")
	}
}

func TestPriceLevelEraseHeadAndTail(t *testing.T) {
	a := newOrderArena(2)
	lvl := &priceLevel{priceTicks: 1, head: nullIndex, tail: nullIndex}

	idxA := a.allocate()
	a.get(idxA).QtyRemaining = 1
	lvl.pushBack(a, idxA)

	lvl.erase(a, idxA)
	if !lvl.empty() {
		t.Fatalf("level should be empty after erasing its only order")
	}
	if lvl.head != nullIndex || lvl.tail != nullIndex {
		t.Fatalf("head/tail not reset: head=%v tail=%v", lvl.head, lvl.tail)
	}
}
