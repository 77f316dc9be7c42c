package vmm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	cases := []struct {
		logical uint32
		page    uint8
		offset  uint8
	}{
		{0, 0, 0},
		{255, 0, 255},
		{256, 1, 0},
		{300, 1, 44},
		{16916, 66, 20},
		{65535, 255, 255},
	}
	for _, c := range cases {
		page, offset := Decompose(c.logical)
		assert.Equal(t, c.page, page)
		assert.Equal(t, c.offset, offset)
	}
}

func TestDecomposeIgnoresHighBits(t *testing.T) {
	page, offset := Decompose(0x7FFF0000 | 300)
	assert.Equal(t, uint8(1), page)
	assert.Equal(t, uint8(44), offset)
}

func TestDecomposeInvariant(t *testing.T) {
	for logical := uint32(0); logical <= 0xFFFF; logical++ {
		page, offset := Decompose(logical)
		assert.Equal(t, logical&0xFFFF, uint32(page)*256+uint32(offset))
	}
}
