package vmm

// The simulated logical address space is 64 KB: bits 8-15 of an address
// select the page, bits 0-7 the offset within it. Bits above 16 are
// ignored.
const (
	offsetBits = 8
	pageMask   = 0xFF
	offsetMask = 0xFF
)

// Decompose splits a logical address into its page number and page
// offset. Total over all 32-bit inputs; for every address,
// uint32(page)*256 + uint32(offset) == address & 0xFFFF.
func Decompose(logical uint32) (page, offset uint8) {
	page = uint8((logical >> offsetBits) & pageMask)
	offset = uint8(logical & offsetMask)
	return page, offset
}
