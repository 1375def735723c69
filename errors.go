package msxgfx

import (
	"errors"
	"fmt"

	"github.com/bodgit/msxgfx/palette"
)

var (
	errShortPixels = errors.New("msxgfx: not enough pixel data")
	errPixelCount  = errors.New("msxgfx: pixel count does not match dimensions")
)

// Exit codes used by the command line tool for each kind of failure.
const (
	ExitFailure = 1 + iota
	ExitInvalidDimensions
	ExitUnmappedColor
	ExitTooManyColorsPerLine
	ExitMultipleSpriteColors
	ExitMultipleColorsPerLine
	ExitInvalidPaletteEntry
	ExitInvalidPaletteIndex
)

// DimensionError is returned when an image has the wrong size for a mode.
type DimensionError struct {
	Mode          Mode
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s image needs to be %s, got %dx%d", e.Mode, e.Mode.Size(), e.Width, e.Height)
}

// UnmappedColorError is returned when a pixel color is not in the
// conversion table.
type UnmappedColorError struct {
	Color palette.RGB
	X, Y  int
}

func (e *UnmappedColorError) Error() string {
	return fmt.Sprintf("color from outside of palette found: %s at %d,%d", e.Color, e.X, e.Y)
}

// LineColorsError is returned when a line of a tile uses more than two
// colors.
type LineColorsError struct {
	Line, Column int
}

func (e *LineColorsError) Error() string {
	return fmt.Sprintf("tiles must have only two colors per line, third color on line %d at column %d", e.Line, e.Column)
}

// SpriteColorsError is returned when a single color sprite uses more than
// one non-zero color.
type SpriteColorsError struct {
	Colors [2]byte
}

func (e *SpriteColorsError) Error() string {
	return fmt.Sprintf("sprites must have only one color, found %d and %d", e.Colors[0], e.Colors[1])
}

// SpriteLineColorsError is returned when a line of a sprite uses more than
// one non-zero color.
type SpriteLineColorsError struct {
	Line int
}

func (e *SpriteLineColorsError) Error() string {
	return fmt.Sprintf("sprites must have only one color per line, line %d", e.Line)
}

// ExitCode returns the process exit code for err, zero if err is nil.
func ExitCode(err error) int {
	var (
		dimension  *DimensionError
		unmapped   *UnmappedColorError
		line       *LineColorsError
		sprite     *SpriteColorsError
		spriteLine *SpriteLineColorsError
		entry      *palette.EntryError
		index      *palette.IndexError
	)

	switch {
	case err == nil:
		return 0
	case errors.As(err, &dimension):
		return ExitInvalidDimensions
	case errors.As(err, &unmapped):
		return ExitUnmappedColor
	case errors.As(err, &line):
		return ExitTooManyColorsPerLine
	case errors.As(err, &sprite):
		return ExitMultipleSpriteColors
	case errors.As(err, &spriteLine):
		return ExitMultipleColorsPerLine
	case errors.As(err, &entry):
		return ExitInvalidPaletteEntry
	case errors.As(err, &index):
		return ExitInvalidPaletteIndex
	default:
		return ExitFailure
	}
}
