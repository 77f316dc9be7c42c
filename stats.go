package vmm

// Stats is a snapshot of the counters one MMU has accumulated. Counters
// only reset by building a new MMU.
type Stats struct {
	Translated uint64
	PageFaults uint64
	TLBHits    uint64
}

// FaultRate is the percentage of translations that had to fetch from
// the backing store. Zero translations yields 0, not a division error.
func (s Stats) FaultRate() float64 {
	if s.Translated == 0 {
		return 0
	}
	return float64(s.PageFaults) / float64(s.Translated) * 100
}

// HitRate is the percentage of translations answered by the TLB.
func (s Stats) HitRate() float64 {
	if s.Translated == 0 {
		return 0
	}
	return float64(s.TLBHits) / float64(s.Translated) * 100
}
