// Package vmm simulates virtual memory address translation: a
// direct-mapped TLB in front of a page table, with page faults resolved
// from a backing store into a finite pool of physical frames.
package vmm

import (
	"fmt"
	"log/slog"

	"github.com/icsim/vmm/config"
	"github.com/icsim/vmm/frames"
	"github.com/icsim/vmm/pagetable"
	"github.com/icsim/vmm/store"
	"github.com/icsim/vmm/tlb"
)

// MMU owns the four translation subsystems and the running counters.
// One MMU is a self-contained simulation; build several for independent
// runs. Not safe for concurrent use.
type MMU struct {
	cache  *tlb.TLB
	table  *pagetable.Table
	pool   *frames.Pool
	disk   store.Store
	stats  Stats
	log    *slog.Logger
	config config.Config
}

// New validates the configuration, opens the backing store and
// allocates the pool, table and cache at their fixed sizes.
func New(cfg config.Config) (*MMU, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	disk, err := store.Open(cfg.BackingStorePath, cfg.PageSize)
	if err != nil {
		return nil, err
	}
	m := &MMU{
		cache:  tlb.New(cfg.TLBSize),
		table:  pagetable.New(cfg.PageCount),
		pool:   frames.NewPool(cfg.FrameCount, cfg.FrameSize),
		disk:   disk,
		log:    slog.Default(),
		config: cfg,
	}

	// An undersized store is not fatal here; the missing pages fail
	// individually at fetch time.
	expected := int64(cfg.PageCount) * int64(cfg.PageSize)
	if size, err := m.disk.Size(); err == nil && size < expected {
		m.log.Warn("Backing store smaller than the logical address space",
			"store", m.disk.Name(), "size", size, "expected", expected)
	}

	m.log.Info("MMU initialized",
		"store", m.disk.Name(),
		"pages", cfg.PageCount,
		"frames", cfg.FrameCount,
		"tlb_slots", cfg.TLBSize)
	return m, nil
}

// GetPhysical translates a logical address. The TLB answers the fast
// path; on a miss the page table is consulted; a page absent from both
// is a page fault and is fetched from the backing store into the next
// free frame. Every call counts one translation, a TLB hit counts one
// hit, and only the fetch path counts a fault: a TLB miss resolved by
// the page table increments neither.
func (m *MMU) GetPhysical(logical uint32) (uint32, error) {
	m.stats.Translated++
	page, offset := Decompose(logical)

	if frame, ok := m.cache.Lookup(page); ok {
		m.stats.TLBHits++
		m.log.Debug("TLB hit", "logical", logical, "page", page, "frame", frame)
		return m.pool.Base(frame) + uint32(offset), nil
	}

	if frame, ok := m.table.Lookup(page); ok {
		m.cache.Insert(page, frame)
		m.log.Debug("Page table hit", "logical", logical, "page", page, "frame", frame)
		return m.pool.Base(frame) + uint32(offset), nil
	}

	m.stats.PageFaults++
	frame, err := m.faultIn(page)
	if err != nil {
		return 0, fmt.Errorf("Page fault on page %d failed: %w", page, err)
	}
	m.log.Debug("Page fault", "logical", logical, "page", page, "frame", frame)
	return m.pool.Base(frame) + uint32(offset), nil
}

// faultIn loads a page image from the backing store into a fresh frame
// and records the mapping in the page table and the TLB. A page the
// table cannot hold is rejected before the fetch, so a failed
// translation never consumes a frame.
func (m *MMU) faultIn(page uint8) (int, error) {
	if int(page) >= m.table.Len() {
		return 0, fmt.Errorf("%w: page %d, table size %d", pagetable.ErrPageOutOfRange, page, m.table.Len())
	}
	data, err := m.disk.ReadPage(page)
	if err != nil {
		return 0, err
	}
	frame, err := m.pool.Insert(data)
	if err != nil {
		return 0, err
	}
	if err := m.table.Insert(page, frame); err != nil {
		return 0, err
	}
	m.cache.Insert(page, frame)
	return frame, nil
}

// GetValue reads the signed byte at a physical address. Pure read, no
// counters.
func (m *MMU) GetValue(physical uint32) (int8, error) {
	return m.pool.ValueAt(physical)
}

// Stats returns a copy of the counters accumulated so far.
func (m *MMU) Stats() Stats {
	return m.stats
}

// Close releases the backing store handle. The pool, table and cache
// are plain memory and go away with the MMU itself.
func (m *MMU) Close() error {
	m.log.Info("MMU shutting down",
		"store", m.config.BackingStorePath,
		"translated", m.stats.Translated,
		"page_faults", m.stats.PageFaults,
		"tlb_hits", m.stats.TLBHits)
	return m.disk.Close()
}
