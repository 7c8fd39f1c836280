package engine

// AddResult is the synchronous outcome of AddLimit.
type AddResult struct {
	Accepted bool
	Reason   string // set iff !Accepted
}

// Book is the top-level coordinator: it validates inputs, drives
// matching, mutates the arena/id-index/price-level/ladder state in the
// correct order, and emits events through the sink. Book is not safe
// for concurrent use — it is single-threaded by contract, same as every
// other piece of this package.
type Book struct {
	pool    *orderArena
	ids     *orderIDIndex
	ladder  *ladder
	sink    EventSink
	nextSeq uint64
}

// NewBook constructs a book with room for maxOrders simultaneously
// resting orders and the given tick range. ids therefore range over
// [1, maxOrders]; id 0 can never be a valid order.
func NewBook(maxOrders uint32, cfg LadderConfig) *Book {
	return &Book{
		pool:    newOrderArena(int(maxOrders)),
		ids:     newOrderIDIndex(maxOrders),
		ladder:  newLadder(cfg),
		sink:    NoOpSink{},
		nextSeq: 1,
	}
}

// NewBookDefault constructs a book over the default tick range
// [0, 1_000_000].
func NewBookDefault(maxOrders uint32) *Book {
	return NewBook(maxOrders, DefaultLadderConfig())
}

// SetSink installs the event sink every subsequent operation drives.
func (b *Book) SetSink(sink EventSink) {
	if sink == nil {
		sink = NoOpSink{}
	}
	b.sink = sink
}

// MaxOrders returns the arena capacity the book was constructed with.
func (b *Book) MaxOrders() int { return b.pool.capacity() }

// FreeCount returns the number of order slots not currently in use.
func (b *Book) FreeCount() int { return b.pool.freeCount() }

func (b *Book) assignTimeSeq(o *Order) {
	o.TimeSeq = b.nextSeq
	b.nextSeq++
}

func minQty(a, b Qty) Qty {
	if a < b {
		return a
	}
	return b
}

// AddLimit submits a new limit order. Rejections are checked in the
// order: bad qty, invalid price, duplicate id. A marketable order
// matches against resting contra-side liquidity before any residual is
// parked; if the residual can't find room in the pool the placement
// itself is rejected, but trades already emitted during this call
// stand.
func (b *Book) AddLimit(orderID OrderID, qty Qty, side Side, price PriceTicks) AddResult {
	if qty <= 0 {
		b.sink.OnRejectAdd(RejectAddEvent{OrderID: orderID, Reason: ReasonBadQty})
		return AddResult{Accepted: false, Reason: ReasonBadQty}
	}
	if !b.ladder.isValidPrice(price) {
		b.sink.OnRejectAdd(RejectAddEvent{OrderID: orderID, Reason: ReasonInvalidPrice})
		return AddResult{Accepted: false, Reason: ReasonInvalidPrice}
	}
	if b.ids.exists(orderID) {
		b.sink.OnRejectAdd(RejectAddEvent{OrderID: orderID, Reason: ReasonDuplicateID})
		return AddResult{Accepted: false, Reason: ReasonDuplicateID}
	}

	remaining := qty
	if side == Buy {
		remaining = b.matchBuy(orderID, price, remaining)
	} else {
		remaining = b.matchSell(orderID, price, remaining)
	}

	if remaining == 0 {
		b.sink.OnDone(DoneEvent{OrderID: orderID})
		return AddResult{Accepted: true}
	}

	idx := b.pool.allocate()
	if idx == nullIndex {
		b.sink.OnRejectAdd(RejectAddEvent{OrderID: orderID, Reason: ReasonPoolFull})
		return AddResult{Accepted: false, Reason: ReasonPoolFull}
	}

	order := b.pool.get(idx)
	order.OrderID = orderID
	order.Side = side
	order.PriceTicks = price
	order.QtyRemaining = remaining
	b.assignTimeSeq(order)

	b.ids.set(orderID, idx)

	lvl := b.ladder.levelAt(price)
	wasEmpty := lvl.empty()
	lvl.pushBack(b.pool, idx)
	if wasEmpty {
		if side == Buy {
			b.ladder.onBidLevelBecameNonEmpty(lvl)
		} else {
			b.ladder.onAskLevelBecameNonEmpty(lvl)
		}
	}

	b.sink.OnAckAdd(AckAddEvent{OrderID: orderID})
	return AddResult{Accepted: true}
}

// matchBuy drains the ask side while it is marketable against
// limitPrice, returning the incoming quantity left after matching.
func (b *Book) matchBuy(incomingID OrderID, limitPrice PriceTicks, remaining Qty) Qty {
	for remaining > 0 {
		lvl := b.ladder.bestAskLevel()
		if lvl == nil || lvl.priceTicks > limitPrice {
			break
		}
		remaining = b.drainLevel(lvl, incomingID, remaining, Sell)
	}
	return remaining
}

// matchSell drains the bid side while it is marketable against
// limitPrice, returning the incoming quantity left after matching.
func (b *Book) matchSell(incomingID OrderID, limitPrice PriceTicks, remaining Qty) Qty {
	for remaining > 0 {
		lvl := b.ladder.bestBidLevel()
		if lvl == nil || lvl.priceTicks < limitPrice {
			break
		}
		remaining = b.drainLevel(lvl, incomingID, remaining, Buy)
	}
	return remaining
}

// drainLevel consumes resting orders at lvl, oldest first, until either
// remaining hits zero or the level empties. restingSide names which
// ladder list lvl belongs to, so the empty-transition notification goes
// to the right side exactly once, idempotently.
func (b *Book) drainLevel(lvl *priceLevel, incomingID OrderID, remaining Qty, restingSide Side) Qty {
	for remaining > 0 && !lvl.empty() {
		idx := lvl.head
		resting := b.pool.get(idx)

		t := minQty(remaining, resting.QtyRemaining)
		remaining -= t
		resting.QtyRemaining -= t
		lvl.volume -= t

		b.sink.OnTrade(TradeEvent{
			RestingID:  resting.OrderID,
			IncomingID: incomingID,
			Price:      resting.PriceTicks,
			Qty:        t,
		})

		if resting.QtyRemaining == 0 {
			restingID := resting.OrderID
			lvl.popFront(b.pool)
			b.ids.clear(restingID)
			b.pool.free(idx)
			b.sink.OnDone(DoneEvent{OrderID: restingID})
		}
	}

	if lvl.empty() {
		if restingSide == Buy {
			b.ladder.onBidLevelBecameEmpty(lvl)
		} else {
			b.ladder.onAskLevelBecameEmpty(lvl)
		}
	}
	return remaining
}

// Cancel removes a resting order. Returns false (plus a reject event)
// if the id is unknown; the book is unchanged in that case.
func (b *Book) Cancel(orderID OrderID) bool {
	idx := b.ids.get(orderID)
	if idx == nullIndex {
		b.sink.OnRejectCancel(RejectCancelEvent{OrderID: orderID, Reason: ReasonUnknownID})
		return false
	}

	order := b.pool.get(idx)
	lvl := b.ladder.levelAt(order.PriceTicks)
	side := order.Side

	lvl.erase(b.pool, idx)
	if lvl.empty() {
		if side == Buy {
			b.ladder.onBidLevelBecameEmpty(lvl)
		} else {
			b.ladder.onAskLevelBecameEmpty(lvl)
		}
	}

	b.ids.clear(orderID)
	b.pool.free(idx)

	b.sink.OnAckCancel(AckCancelEvent{OrderID: orderID})
	return true
}
