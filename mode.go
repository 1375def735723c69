package msxgfx

import (
	"fmt"
	"strings"

	"github.com/bodgit/msxgfx/asm"
	"github.com/bodgit/msxgfx/palette"
)

// Mode is an output type, either a screen mode or a sprite mode.
type Mode int

// Supported modes.
const (
	Screen0 Mode = iota
	Screen1
	Screen2
	Screen3
	Screen4
	Screen5
	Screen6
	Screen7
	Screen8
	Sprite1
	Sprite2
	numModes
)

// A packer turns a classified image into an assembler listing, along with any
// warnings.
type packer func(px []byte, width, height int) (*asm.Listing, []string, error)

type modeInfo struct {
	name        string
	description string
	size        string
	check       func(width, height int) bool
	rule        palette.Rule
	table       palette.Table
	fallback    bool
	pack        packer
}

func exactly(w, h int) func(int, int) bool {
	return func(width, height int) bool {
		return width == w && height == h
	}
}

func blocks(width, height int) bool {
	return width > 0 && height > 0 && width%8 == 0 && height%8 == 0
}

func sprite(width, height int) bool {
	return width == height && (width == 8 || width == 16)
}

func anySize(int, int) bool {
	return true
}

var modes = [numModes]modeInfo{
	Screen0: {"screen0", "40 column text pattern, 1 bit per pixel", "6x8", exactly(6, 8), palette.Rule{Min: 1, Max: 1}, palette.Text1, true, packScreen0},
	Screen1: {"screen1", "32 column text pattern, 1 bit per pixel", "8x8", exactly(8, 8), palette.Rule{Min: 0, Max: 1}, palette.Text2, false, packScreen1},
	Screen2: {"screen2", "graphic tile, pattern and two colors per line", "8x8", exactly(8, 8), palette.Any, palette.Graphic16, false, packLineColors},
	Screen3: {"screen3", "multicolor blocks, 4x4 pixels per color", "a multiple of 8x8", blocks, palette.Any, palette.Graphic16, false, packScreen3},
	Screen4: {"screen4", "graphic tile, pattern and two colors per line", "8x8", exactly(8, 8), palette.Any, palette.Graphic16, false, packLineColors},
	Screen5: {"screen5", "bitmap, 4 bits per pixel", "", anySize, palette.Any, palette.Graphic16, false, packNibbles},
	Screen6: {"screen6", "bitmap, 2 bits per pixel", "", anySize, palette.Rule{Min: 0, Max: 4}, palette.Graphic4, false, packCrumbs},
	Screen7: {"screen7", "bitmap, 4 bits per pixel", "", anySize, palette.Any, palette.Graphic16, false, packNibbles},
	Screen8: {"screen8", "bitmap, 1 byte per pixel", "", anySize, palette.Any, palette.Graphic16, false, packBytes},
	Sprite1: {"sprite1", "sprite, one color", "8x8 or 16x16", sprite, palette.Any, palette.Graphic16, false, packSprite1},
	Sprite2: {"sprite2", "sprite, one color per line", "8x8 or 16x16", sprite, palette.Any, palette.Graphic16, false, packSprite2},
}

// Modes returns every supported mode in order.
func Modes() []Mode {
	m := make([]Mode, numModes)
	for i := range m {
		m[i] = Mode(i)
	}
	return m
}

// ParseMode returns the mode with the given name.
func ParseMode(s string) (Mode, error) {
	for i, info := range modes {
		if strings.EqualFold(s, info.name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output type %q", s)
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modes[m].name
}

// Description returns a short description of the encoding.
func (m Mode) Description() string {
	return modes[m].description
}

// Size describes the required image dimensions, or is empty if any size is
// accepted.
func (m Mode) Size() string {
	return modes[m].size
}

// Rule returns the palette indices the mode accepts.
func (m Mode) Rule() palette.Rule {
	return modes[m].rule
}

// DefaultTable returns the conversion table used when no palette file is
// given.
func (m Mode) DefaultTable() palette.Table {
	return modes[m].table
}

// Fallback reports whether colors missing from the table are treated as
// background rather than an error.
func (m Mode) Fallback() bool {
	return modes[m].fallback
}

// Validate checks the image dimensions are acceptable for the mode.
func (m Mode) Validate(width, height int) error {
	if height < 0 {
		height = -height
	}
	if !modes[m].check(width, height) {
		return &DimensionError{Mode: m, Width: width, Height: height}
	}
	return nil
}

// Pack encodes the classified pixels px of a width by height image as an
// assembler listing. Height must be the number of rows, not the signed BMP
// value.
func (m Mode) Pack(px []byte, width, height int) (*asm.Listing, []string, error) {
	if err := m.Validate(width, height); err != nil {
		return nil, nil, err
	}
	if len(px) != width*height {
		return nil, nil, errPixelCount
	}
	return modes[m].pack(px, width, height)
}

// Format is the output file format.
type Format int

// Supported formats.
const (
	ASM Format = iota
	SIF
)

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "asm":
		return ASM, nil
	case "sif":
		return SIF, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}

func (f Format) String() string {
	switch f {
	case ASM:
		return "asm"
	case SIF:
		return "sif"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}
