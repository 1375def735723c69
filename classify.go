package msxgfx

import (
	"github.com/bodgit/msxgfx/bitmap"
	"github.com/bodgit/msxgfx/palette"
)

// Classify maps every pixel of m to a palette index using table. The result
// is in top-to-bottom, left-to-right order regardless of how the rows are
// stored. A color missing from the table is an error unless fallback is set,
// in which case it becomes index 0.
func Classify(table palette.Table, m *bitmap.Image, fallback bool) ([]byte, error) {
	if !m.Complete() {
		return nil, errShortPixels
	}

	px := make([]byte, m.Len())
	for i := range px {
		c, ok := m.At(i)
		if !ok {
			return nil, errShortPixels
		}

		index, ok := table.Lookup(palette.RGB(c))
		if !ok {
			if !fallback {
				return nil, &UnmappedColorError{
					Color: palette.RGB(c),
					X:     i % m.Width,
					Y:     i / m.Width,
				}
			}
			index = 0
		}

		px[i] = byte(index)
	}
	return px, nil
}
