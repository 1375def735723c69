package msxgfx

import (
	"fmt"

	"github.com/bodgit/msxgfx/asm"
)

// packRaster packs each row of px separately, perByte pixels of bits each to
// a byte with the leftmost pixel in the most significant bits. A row that
// doesn't fill its last byte is padded with zero bits.
func packRaster(px []byte, width, height, perByte int) *asm.Listing {
	var l asm.Listing
	block := l.NewBlock("", asm.BitmapIndent)
	bits := 8 / perByte
	mask := byte(1)<<bits - 1
	for y := 0; width > 0 && y < height; y++ {
		row := px[y*width : (y+1)*width]
		line := make([]byte, 0, (width+perByte-1)/perByte)
		for x := 0; x < width; x += perByte {
			var b byte
			for k := 0; k < perByte; k++ {
				b <<= bits
				if x+k < width {
					b |= row[x+k] & mask
				}
			}
			line = append(line, b)
		}
		block.AddLine(line...)
	}
	return &l
}

func packNibbles(px []byte, width, height int) (*asm.Listing, []string, error) {
	return packRaster(px, width, height, 2), nil, nil
}

// Indices above 3 don't fit in two bits and are truncated, the first one is
// reported as a warning.
func packCrumbs(px []byte, width, height int) (*asm.Listing, []string, error) {
	var warnings []string
	for i, p := range px {
		if p > 3 {
			warnings = append(warnings, fmt.Sprintf("palette index %d at %d,%d does not fit in 2 bits, written as %d", p, i%width, i/width, p&3))
			break
		}
	}
	return packRaster(px, width, height, 4), warnings, nil
}

func packBytes(px []byte, width, height int) (*asm.Listing, []string, error) {
	return packRaster(px, width, height, 1), nil, nil
}
