package engine

// LadderConfig bounds the tick grid a Ladder reifies as a dense array.
type LadderConfig struct {
	MinPriceTicks PriceTicks
	MaxPriceTicks PriceTicks
}

// DefaultLadderConfig matches spec's default instrument configuration.
func DefaultLadderConfig() LadderConfig {
	return LadderConfig{MinPriceTicks: 0, MaxPriceTicks: 1_000_000}
}

// ladder owns the dense array of every price level in [min, max] plus
// the two sorted doubly-linked lists threading occupied levels: the bid
// ladder (descending price) and the ask ladder (ascending price). The
// head of each list is that side's best price. The array is dense
// because the tick grid is bounded and small; this makes levelAt a
// pointer-arithmetic operation and keeps level addresses stable for the
// life of the ladder, which in turn lets Book hold raw level pointers
// across calls.
type ladder struct {
	cfg    LadderConfig
	levels []priceLevel

	bestBid, bestAsk *priceLevel
}

func newLadder(cfg LadderConfig) *ladder {
	n := int(cfg.MaxPriceTicks-cfg.MinPriceTicks) + 1
	l := &ladder{cfg: cfg, levels: make([]priceLevel, n)}
	for i := range l.levels {
		l.levels[i] = priceLevel{
			priceTicks: cfg.MinPriceTicks + PriceTicks(i),
			head:       nullIndex,
			tail:       nullIndex,
		}
	}
	return l
}

func (l *ladder) isValidPrice(p PriceTicks) bool {
	return p >= l.cfg.MinPriceTicks && p <= l.cfg.MaxPriceTicks
}

func (l *ladder) minPriceTicks() PriceTicks { return l.cfg.MinPriceTicks }
func (l *ladder) maxPriceTicks() PriceTicks { return l.cfg.MaxPriceTicks }

// levelAt returns the level for price p. p must satisfy isValidPrice.
func (l *ladder) levelAt(p PriceTicks) *priceLevel {
	return &l.levels[p-l.cfg.MinPriceTicks]
}

func (l *ladder) bestBidLevel() *priceLevel { return l.bestBid }
func (l *ladder) bestAskLevel() *priceLevel { return l.bestAsk }

// onBidLevelBecameNonEmpty splices lvl into the bid ladder if it is not
// already a member. Idempotent.
func (l *ladder) onBidLevelBecameNonEmpty(lvl *priceLevel) {
	if lvl.inBid {
		return
	}
	lvl.inBid = true
	lvl.bidPrev, lvl.bidNext = nil, nil

	if l.bestBid == nil {
		l.bestBid = lvl
		return
	}
	if lvl.priceTicks > l.bestBid.priceTicks {
		lvl.bidNext = l.bestBid
		l.bestBid.bidPrev = lvl
		l.bestBid = lvl
		return
	}

	cur := l.bestBid
	for cur.bidNext != nil && cur.bidNext.priceTicks >= lvl.priceTicks {
		cur = cur.bidNext
	}
	lvl.bidNext = cur.bidNext
	lvl.bidPrev = cur
	if cur.bidNext != nil {
		cur.bidNext.bidPrev = lvl
	}
	cur.bidNext = lvl
}

// onBidLevelBecameEmpty removes lvl from the bid ladder if it is a
// member. Idempotent.
func (l *ladder) onBidLevelBecameEmpty(lvl *priceLevel) {
	if !lvl.inBid {
		return
	}
	if lvl.bidPrev != nil {
		lvl.bidPrev.bidNext = lvl.bidNext
	} else {
		l.bestBid = lvl.bidNext
	}
	if lvl.bidNext != nil {
		lvl.bidNext.bidPrev = lvl.bidPrev
	}
	lvl.bidPrev, lvl.bidNext = nil, nil
	lvl.inBid = false
}

// onAskLevelBecameNonEmpty splices lvl into the ask ladder if it is not
// already a member. Idempotent.
func (l *ladder) onAskLevelBecameNonEmpty(lvl *priceLevel) {
	if lvl.inAsk {
		return
	}
	lvl.inAsk = true
	lvl.askPrev, lvl.askNext = nil, nil

	if l.bestAsk == nil {
		l.bestAsk = lvl
		return
	}
	if lvl.priceTicks < l.bestAsk.priceTicks {
		lvl.askNext = l.bestAsk
		l.bestAsk.askPrev = lvl
		l.bestAsk = lvl
		return
	}

	cur := l.bestAsk
	for cur.askNext != nil && cur.askNext.priceTicks <= lvl.priceTicks {
		cur = cur.askNext
	}
	lvl.askNext = cur.askNext
	lvl.askPrev = cur
	if cur.askNext != nil {
		cur.askNext.askPrev = lvl
	}
	cur.askNext = lvl
}

// onAskLevelBecameEmpty removes lvl from the ask ladder if it is a
// member. Idempotent.
func (l *ladder) onAskLevelBecameEmpty(lvl *priceLevel) {
	if !lvl.inAsk {
		return
	}
	if lvl.askPrev != nil {
		lvl.askPrev.askNext = lvl.askNext
	} else {
		l.bestAsk = lvl.askNext
	}
	if lvl.askNext != nil {
		lvl.askNext.askPrev = lvl.askPrev
	}
	lvl.askPrev, lvl.askNext = nil, nil
	lvl.inAsk = false
}
