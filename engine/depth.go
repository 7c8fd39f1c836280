package engine

// DepthLevel is one price/aggregate-quantity pair in a depth snapshot.
type DepthLevel struct {
	PriceTicks PriceTicks
	Qty        Qty
}

// BookDepth is a read-only view of the book's touch and top levels.
// Never produced or consumed by AddLimit/Cancel — it exists purely for
// reporting (the demo HTTP endpoint, the simulation program) and does
// not participate in the allocation-free matching guarantee.
type BookDepth struct {
	Bids []DepthLevel
	Asks []DepthLevel
}

// BestBid returns the best bid price and true, or (0, false) if the bid
// side is empty.
func (b *Book) BestBid() (PriceTicks, bool) {
	lvl := b.ladder.bestBidLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.priceTicks, true
}

// BestAsk returns the best ask price and true, or (0, false) if the ask
// side is empty.
func (b *Book) BestAsk() (PriceTicks, bool) {
	lvl := b.ladder.bestAskLevel()
	if lvl == nil {
		return 0, false
	}
	return lvl.priceTicks, true
}

// DepthSnapshot walks at most limit occupied levels on each side,
// best-price first, and returns their aggregate resting quantity. The
// ladder's lists are already kept sorted on every mutation, so this is
// O(limit), not O(orders) — no search is needed.
func (b *Book) DepthSnapshot(limit int) BookDepth {
	var depth BookDepth

	for lvl, n := b.ladder.bestBidLevel(), 0; lvl != nil && n < limit; lvl, n = lvl.bidNext, n+1 {
		depth.Bids = append(depth.Bids, DepthLevel{PriceTicks: lvl.priceTicks, Qty: lvl.volume})
	}
	for lvl, n := b.ladder.bestAskLevel(), 0; lvl != nil && n < limit; lvl, n = lvl.askNext, n+1 {
		depth.Asks = append(depth.Asks, DepthLevel{PriceTicks: lvl.priceTicks, Qty: lvl.volume})
	}
	return depth
}
