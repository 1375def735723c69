package msxgfx

import (
	"bytes"

	"github.com/bodgit/msxgfx/asm"
)

// spriteBlocks walks a sprite as 8x8 blocks, top-left, bottom-left,
// top-right then bottom-right, calling fn with the block number, the line
// within the block and the eight pixels of that line.
func spriteBlocks(px []byte, width, height int, fn func(block, line int, row []byte) error) error {
	for i := 0; i < width*height/(blockSize*blockSize); i++ {
		base := i%2*blockSize*width + i/2*blockSize
		for j := 0; j < blockSize; j++ {
			o := base + j*width
			if err := fn(i, j, px[o:o+blockSize]); err != nil {
				return err
			}
		}
	}
	return nil
}

func shape(row []byte) byte {
	var b byte
	for _, p := range row {
		b <<= 1
		if p != 0 {
			b |= 1
		}
	}
	return b
}

// A single color sprite is a mask plus one color for the whole sprite.
func packSprite1(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	pattern := l.NewBlock("", asm.Indent)

	var color byte
	line := make([]byte, 0, blockSize)
	if err := spriteBlocks(px, width, height, func(block, j int, row []byte) error {
		for _, p := range row {
			switch {
			case p == 0:
			case color == 0:
				color = p
			case p != color:
				return &SpriteColorsError{Colors: [2]byte{color, p}}
			}
		}
		line = append(line, shape(row))
		if j == blockSize-1 {
			pattern.AddLine(line...)
			line = make([]byte, 0, blockSize)
		}
		return nil
	}); err != nil {
		return nil, nil, err
	}

	if color == 0 {
		l.Terminated = true
		return &l, []string{"empty sprite"}, nil
	}

	l.NewBlock("_color", asm.Indent).AddLine(color)

	return &l, nil, nil
}

// A multicolor sprite is a mask plus a color for each line. On a 16x16 sprite
// the left and right blocks share the line colors so only the colors of the
// left blocks are written.
func packSprite2(px []byte, width, height int) (*asm.Listing, []string, error) {
	var l asm.Listing
	pattern := l.NewBlock("", asm.Indent)

	var shapes, colors [][]byte
	if err := spriteBlocks(px, width, height, func(block, j int, row []byte) error {
		var color byte
		for _, p := range row {
			switch {
			case p == 0:
			case color == 0:
				color = p
			case p != color:
				return &SpriteLineColorsError{Line: block%2*blockSize + j}
			}
		}
		if j == 0 {
			shapes = append(shapes, make([]byte, 0, blockSize))
			colors = append(colors, make([]byte, 0, blockSize))
		}
		shapes[block] = append(shapes[block], shape(row))
		colors[block] = append(colors[block], color)
		return nil
	}); err != nil {
		return nil, nil, err
	}

	for _, s := range shapes {
		pattern.AddLine(s...)
	}

	if len(colors) > 2 {
		for i := 0; i < 2; i++ {
			if bytes.Equal(colors[i], colors[i+2]) {
				continue
			}
			for j := range colors[i] {
				if colors[i][j] != colors[i+2][j] {
					return nil, nil, &SpriteLineColorsError{Line: i*blockSize + j}
				}
			}
		}
		colors = colors[:2]
	}

	c := l.NewBlock("_colors", asm.Indent)
	for _, line := range colors {
		c.AddLine(line...)
	}

	return &l, nil, nil
}
