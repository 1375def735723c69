package msxgfx

import (
	"testing"

	"github.com/bodgit/msxgfx/asm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackRaster(t *testing.T) {
	tables := []struct {
		name     string
		mode     Mode
		px       []byte
		width    int
		height   int
		lines    [][]byte
		warnings []string
	}{
		{
			name:   "screen5 odd width",
			mode:   Screen5,
			px:     []byte{1, 2, 3, 4, 5, 6},
			width:  3,
			height: 2,
			lines:  [][]byte{{0x12, 0x30}, {0x45, 0x60}},
		},
		{
			name:   "screen7",
			mode:   Screen7,
			px:     []byte{15, 0, 10, 11},
			width:  4,
			height: 1,
			lines:  [][]byte{{0xf0, 0xab}},
		},
		{
			name:   "screen6",
			mode:   Screen6,
			px:     []byte{1, 2, 3, 0, 1},
			width:  5,
			height: 1,
			lines:  [][]byte{{0x6c, 0x40}},
		},
		{
			name:   "screen6 masks index 4",
			mode:   Screen6,
			px:     []byte{1, 4, 1, 4, 1, 4, 1, 4},
			width:  4,
			height: 2,
			lines:  [][]byte{{0x44}, {0x44}},
			warnings: []string{
				"palette index 4 at 1,0 does not fit in 2 bits, written as 0",
			},
		},
		{
			name:   "screen8",
			mode:   Screen8,
			px:     []byte{1, 15, 0, 7},
			width:  2,
			height: 2,
			lines:  [][]byte{{0x01, 0x0f}, {0x00, 0x07}},
		},
		{
			name:   "empty",
			mode:   Screen5,
			width:  0,
			height: 3,
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			l, warnings, err := table.mode.Pack(table.px, table.width, table.height)
			require.Nil(t, err)
			assert.Equal(t, table.warnings, warnings)
			require.Len(t, l.Blocks, 1)
			assert.Equal(t, asm.BitmapIndent, l.Blocks[0].Indent)
			assert.Equal(t, table.lines, l.Blocks[0].Lines)
		})
	}
}
