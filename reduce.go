package msxgfx

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/msxgfx/palette"
	"github.com/ericpauley/go-quantize/quantize"
)

var errColors = errors.New("msxgfx: colors must be between 2 and 16")

// Reduce quantizes m to at most colors colors. It returns an opaque copy of
// the image using only those colors and a conversion table assigning them
// indices from zero, so the copy can be converted without unmapped colors.
func Reduce(m image.Image, colors int) (*image.RGBA, palette.Table, error) {
	if colors < 2 || colors > palette.MaxIndex+1 {
		return nil, nil, errColors
	}

	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	table := make(palette.Table, 0, len(pm.Palette))
	for i, c := range pm.Palette {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		table = append(table, palette.Entry{
			Color: palette.RGB{rgba.R, rgba.G, rgba.B},
			Index: i,
		})
	}

	out := image.NewRGBA(b.Sub(b.Min))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := table[pm.ColorIndexAt(x, y)].Color
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{c[0], c[1], c[2], 0xff})
		}
	}

	return out, table, nil
}
