package msxgfx

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/msxgfx/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func gradient(width, height int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 0x80, 0xff})
		}
	}
	return m
}

func TestReduce(t *testing.T) {
	out, table, err := Reduce(gradient(16, 16), 8)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), out.Bounds())
	assert.True(t, out.Opaque())
	assert.True(t, len(table) > 0 && len(table) <= 8)

	for i, e := range table {
		assert.Equal(t, i, e.Index)
	}

	b := new(bytes.Buffer)
	require.Nil(t, bmp.Encode(b, out))

	m, err := bitmap.Decode(bytes.NewReader(b.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, 16, m.Width)

	px, err := Classify(table, m, false)
	require.Nil(t, err)
	assert.Len(t, px, 16*16)

	l, _, err := Screen5.Pack(px, m.Width, m.Rows())
	require.Nil(t, err)
	assert.Len(t, l.Blocks[0].Lines, 16)
}

func TestReduceOffset(t *testing.T) {
	m := gradient(8, 8).SubImage(image.Rect(2, 2, 6, 6))

	out, _, err := Reduce(m, 4)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
}

func TestReduceColors(t *testing.T) {
	for _, n := range []int{0, 1, 17} {
		_, _, err := Reduce(gradient(2, 2), n)
		assert.Equal(t, errColors, err, "%d colors", n)
	}
}
