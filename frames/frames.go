// Package frames owns the simulated physical memory: a fixed number of
// fixed-size frames inside one contiguous allocation.
package frames

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFreeFrames reports pool exhaustion. Frames are handed out
	// sequentially and never reclaimed, so once the cursor reaches the
	// end every further insert fails.
	ErrNoFreeFrames = errors.New("No free frames available")

	// ErrOutOfRange reports a physical address outside the pool.
	ErrOutOfRange = errors.New("Physical address out of range")
)

type Pool struct {
	mem        []byte
	frameCount int
	frameSize  int
	next       int // next frame index to hand out
}

func NewPool(frameCount, frameSize int) *Pool {
	return &Pool{
		mem:        make([]byte, frameCount*frameSize),
		frameCount: frameCount,
		frameSize:  frameSize,
	}
}

// Insert copies one page image into the next free frame and returns the
// frame's index.
func (p *Pool) Insert(data []byte) (int, error) {
	if p.next >= p.frameCount {
		return 0, ErrNoFreeFrames
	}
	if len(data) != p.frameSize {
		return 0, fmt.Errorf("Data size %d does not fit frame size %d", len(data), p.frameSize)
	}
	frame := p.next
	copy(p.mem[frame*p.frameSize:], data)
	p.next++
	return frame, nil
}

// Base returns the physical address of the first byte of frame.
func (p *Pool) Base(frame int) uint32 {
	return uint32(frame * p.frameSize)
}

// ValueAt reads the byte at an absolute physical address as a signed
// value.
func (p *Pool) ValueAt(addr uint32) (int8, error) {
	if addr >= uint32(len(p.mem)) {
		return 0, fmt.Errorf("%w: address %d, memory is %d bytes", ErrOutOfRange, addr, len(p.mem))
	}
	return int8(p.mem[addr]), nil
}

// Used reports how many frames have been allocated so far.
func (p *Pool) Used() int {
	return p.next
}

// Cap reports the total number of frames.
func (p *Pool) Cap() int {
	return p.frameCount
}
