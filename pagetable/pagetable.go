// Package pagetable maps page numbers to physical frame numbers.
package pagetable

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange reports a page number beyond the table's capacity.
var ErrPageOutOfRange = errors.New("Page number outside the page table")

type entry struct {
	frame  int
	mapped bool
}

// Table holds one entry per page. All entries start unmapped; a page is
// mapped on its first fault and the mapping is never removed. Mapped is
// an explicit flag so frame zero is an ordinary frame number, not a
// sentinel.
type Table struct {
	entries []entry
}

func New(pageCount int) *Table {
	return &Table{
		entries: make([]entry, pageCount),
	}
}

// Lookup reports the frame mapped for page. ok is false while the page
// has never been faulted in, or when the page lies outside the table.
func (t *Table) Lookup(page uint8) (int, bool) {
	if int(page) >= len(t.entries) {
		return 0, false
	}
	e := t.entries[page]
	if !e.mapped {
		return 0, false
	}
	return e.frame, true
}

// Insert maps page to frame. Re-inserting an already mapped page
// silently overwrites it; the engine only ever inserts on first fault.
func (t *Table) Insert(page uint8, frame int) error {
	if int(page) >= len(t.entries) {
		return fmt.Errorf("%w: page %d, table size %d", ErrPageOutOfRange, page, len(t.entries))
	}
	t.entries[page] = entry{
		frame:  frame,
		mapped: true,
	}
	return nil
}

func (t *Table) Len() int {
	return len(t.entries)
}
