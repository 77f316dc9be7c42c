// Package tlb implements a direct-mapped translation lookaside buffer.
// Each page number maps to exactly one slot (page mod size); no probing,
// no collision chain. Pages that share a slot evict each other regardless
// of recency. A miss is always harmless: the caller re-resolves through
// the page table.
package tlb

type slot struct {
	page  uint8
	frame int
	valid bool
}

type TLB struct {
	slots []slot
}

// New allocates a cache with the given number of slots. Size must be
// positive; config validation enforces this before an engine is built.
func New(size int) *TLB {
	return &TLB{
		slots: make([]slot, size),
	}
}

func (t *TLB) index(page uint8) int {
	return int(page) % len(t.slots)
}

// Lookup reports the cached frame for page. A hit requires the slot to
// be valid and to hold this exact page; an empty slot or a colliding
// occupant is a miss. Frame zero in a fresh slot never false-hits
// because validity is tracked explicitly.
func (t *TLB) Lookup(page uint8) (int, bool) {
	s := t.slots[t.index(page)]
	if !s.valid || s.page != page {
		return 0, false
	}
	return s.frame, true
}

// Insert caches a page to frame mapping, unconditionally overwriting
// whatever the slot held before.
func (t *TLB) Insert(page uint8, frame int) {
	t.slots[t.index(page)] = slot{
		page:  page,
		frame: frame,
		valid: true,
	}
}

func (t *TLB) Size() int {
	return len(t.slots)
}
