package bitmap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build returns a 24-bit BMP of the given size where rgb holds the pixels in
// logical top-to-bottom order.
func build(width, height int, rgb [][3]byte) []byte {
	rows := height
	if rows < 0 {
		rows = -rows
	}
	stride := width*3 + Padding(width)

	b := new(bytes.Buffer)
	b.WriteString("BM")
	binary.Write(b, binary.LittleEndian, uint32(54+stride*rows))
	binary.Write(b, binary.LittleEndian, uint32(0))
	binary.Write(b, binary.LittleEndian, uint32(54))
	binary.Write(b, binary.LittleEndian, uint32(40))
	binary.Write(b, binary.LittleEndian, int32(width))
	binary.Write(b, binary.LittleEndian, int32(height))
	binary.Write(b, binary.LittleEndian, uint16(1))
	binary.Write(b, binary.LittleEndian, uint16(24))
	b.Write(make([]byte, 24))

	for r := 0; r < rows; r++ {
		y := r
		if height > 0 {
			y = rows - 1 - r
		}
		for x := 0; x < width; x++ {
			c := rgb[y*width+x]
			b.Write([]byte{c[2], c[1], c[0]})
		}
		b.Write(make([]byte, Padding(width)))
	}

	return b.Bytes()
}

func TestPadding(t *testing.T) {
	tables := []struct {
		width   int
		padding int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 0},
		{5, 1},
		{6, 2},
		{8, 0},
	}

	for _, table := range tables {
		assert.Equal(t, table.padding, Padding(table.width), "width %d", table.width)
	}
}

func TestDecode(t *testing.T) {
	pixels := [][3]byte{
		{0x11, 0x12, 0x13}, {0x21, 0x22, 0x23}, {0x31, 0x32, 0x33},
		{0x41, 0x42, 0x43}, {0x51, 0x52, 0x53}, {0x61, 0x62, 0x63},
	}

	for _, height := range []int{2, -2} {
		m, err := Decode(bytes.NewReader(build(3, height, pixels)))
		require.Nil(t, err)

		assert.Equal(t, 3, m.Width)
		assert.Equal(t, height, m.Height)
		assert.Equal(t, 2, m.Rows())
		assert.Equal(t, 6, m.Len())
		assert.Len(t, m.Pix, 2*(3*3+3))

		for i, want := range pixels {
			got, ok := m.At(i)
			require.True(t, ok)
			assert.Equal(t, want, got, "height %d pixel %d", height, i)
		}
	}
}

func TestOffset(t *testing.T) {
	// 5 pixels wide means 1 byte of padding per row
	m := &Image{Width: 5, Height: 2}
	assert.Equal(t, 16, m.Offset(0))
	assert.Equal(t, 28, m.Offset(4))
	assert.Equal(t, 0, m.Offset(5))

	m.Height = -2
	assert.Equal(t, 0, m.Offset(0))
	assert.Equal(t, 16, m.Offset(5))
}

func TestAtShortData(t *testing.T) {
	m := &Image{Width: 2, Height: -1, Pix: []byte{1, 2, 3, 4}}

	c, ok := m.At(0)
	assert.True(t, ok)
	assert.Equal(t, [3]byte{3, 2, 1}, c)

	_, ok = m.At(1)
	assert.False(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, 20)))
	assert.Equal(t, errNotEnough, err)

	b := build(1, 1, [][3]byte{{0, 0, 0}})
	binary.LittleEndian.PutUint32(b[offsetField:], uint32(len(b)+1))
	_, err = Decode(bytes.NewReader(b))
	assert.Equal(t, errBadOffset, err)
}

func TestComplete(t *testing.T) {
	tables := []struct {
		width, height int
		pix           int
		complete      bool
	}{
		{5, 2, 31, true},
		{5, 2, 30, false},
		{5, -2, 31, true},
		{4, 3, 36, true},
		{4, 3, 35, false},
		{0, 7, 0, true},
		{3, 0, 0, true},
		{1 << 16, 0x7fffffff, 6, false},
	}

	for _, table := range tables {
		m := &Image{Width: table.width, Height: table.height, Pix: make([]byte, table.pix)}
		assert.Equal(t, table.complete, m.Complete(), "%dx%d with %d bytes", table.width, table.height, table.pix)
	}
}

func TestDecodeHugeHeight(t *testing.T) {
	b := build(1, 1, [][3]byte{{0, 0, 0}})
	binary.LittleEndian.PutUint32(b[widthField:], 1<<16)
	binary.LittleEndian.PutUint32(b[heightField:], 0x7fffffff)

	m, err := Decode(bytes.NewReader(b))
	require.Nil(t, err)
	assert.False(t, m.Complete())
}
