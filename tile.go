package msxgfx

import (
	"bytes"

	"github.com/bodgit/msxgfx/asm"
)

const (
	blockSize  = 8
	blockHalf  = blockSize >> 1
	nibbleBits = 4
)

// One byte per line, leftmost pixel in the most significant bit. With six
// pixels per line the two low bits are always clear.
func packScreen0(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	line := make([]byte, 0, height)
	for y := 0; y < height; y++ {
		var b byte
		for x := 0; x < width; x++ {
			b = (b | px[y*width+x]) << 1
		}
		line = append(line, b<<1)
	}
	l.NewBlock("", asm.Indent).AddLine(line...)
	return &l, nil, nil
}

func packScreen1(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	line := make([]byte, 0, height)
	for y := 0; y < height; y++ {
		var b byte
		for x := 0; x < width; x++ {
			b = b<<1 | px[y*width+x]
		}
		line = append(line, b)
	}
	l.NewBlock("", asm.Indent).AddLine(line...)
	return &l, nil, nil
}

// Each line may use two colors, the first seen is the background and the
// second seen is the foreground. The pattern bit is set for the foreground
// and the color byte holds the foreground in the upper nibble.
func packLineColors(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	pattern := make([]byte, 0, height)
	colors := make([]byte, 0, height)
	for y := 0; y < height; y++ {
		var b byte
		seen := make([]byte, 0, 2)
		for x := 0; x < width; x++ {
			p := px[y*width+x]
			if bytes.IndexByte(seen, p) < 0 {
				if len(seen) == 2 {
					return nil, nil, &LineColorsError{Line: y, Column: x}
				}
				seen = append(seen, p)
			}
			b <<= 1
			if len(seen) == 2 && p == seen[1] {
				b |= 1
			}
		}
		if len(seen) == 1 {
			seen = append(seen, 0)
		}
		pattern = append(pattern, b)
		colors = append(colors, seen[1]<<nibbleBits|seen[0])
	}
	l.NewBlock("", asm.Indent).AddLine(pattern...)
	l.NewBlock("_colors", asm.Indent).AddLine(colors...)
	return &l, nil, nil
}

// Each 8x8 block holds four 4x4 colors sampled from the top-left pixel of
// each quarter, written as two bytes; top-left and top-right then
// bottom-left and bottom-right. One line per row of blocks.
func packScreen3(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	b := l.NewBlock("", asm.Indent)
	for by := 0; by < height/blockSize; by++ {
		line := make([]byte, 0, width/blockSize*2)
		for bx := 0; bx < width/blockSize; bx++ {
			p := bx*blockSize + by*blockSize*width
			line = append(line,
				px[p]<<nibbleBits|px[p+blockHalf],
				px[p+blockHalf*width]<<nibbleBits|px[p+blockHalf*(width+1)])
		}
		b.AddLine(line...)
	}
	return &l, nil, nil
}
