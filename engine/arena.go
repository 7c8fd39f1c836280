package engine

// orderArena is a fixed-capacity pool of Order records with a free list
// threaded through Order.next. It hands out and reclaims records in
// O(1) with no heap traffic once constructed. Capacity is fixed at
// construction and the arena never grows for the life of the book.
type orderArena struct {
	records  []Order
	freeHead index
	freeLen  int
}

func newOrderArena(capacity int) *orderArena {
	a := &orderArena{
		records:  make([]Order, capacity),
		freeHead: nullIndex,
	}
	// Thread every slot onto the free list, tail slot first so that
	// allocate() hands out index 0 first — makes test output stable.
	for i := capacity - 1; i >= 0; i-- {
		a.records[i].next = a.freeHead
		a.freeHead = index(i)
	}
	a.freeLen = capacity
	return a
}

// capacity returns the total number of slots the arena was built with.
func (a *orderArena) capacity() int { return len(a.records) }

// freeCount returns the number of slots currently unallocated.
func (a *orderArena) freeCount() int { return a.freeLen }

// allocate returns a fresh record with all linkage and quantity fields
// cleared, or nullIndex if the pool is exhausted. Never allocates from
// the heap.
func (a *orderArena) allocate() index {
	if a.freeHead == nullIndex {
		return nullIndex
	}
	idx := a.freeHead
	rec := &a.records[idx]
	a.freeHead = rec.next
	a.freeLen--

	*rec = Order{prev: nullIndex, next: nullIndex}
	return idx
}

// free returns idx to the free list. The caller guarantees the record
// is fully unlinked: not in any level FIFO, not in any ladder list, and
// not referenced by the id index.
func (a *orderArena) free(idx index) {
	rec := &a.records[idx]
	rec.QtyRemaining = 0
	rec.prev = nullIndex
	rec.next = a.freeHead
	a.freeHead = idx
	a.freeLen++
}

// get returns a pointer to the record at idx. idx must be a currently
// allocated index; this is the hot-path accessor and performs no bounds
// checks beyond what the slice itself enforces.
func (a *orderArena) get(idx index) *Order {
	return &a.records[idx]
}
