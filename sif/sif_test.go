package sif

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayPalette() color.Palette {
	p := make(color.Palette, maxColors)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i * 17)}
	}
	return p
}

func TestEncode(t *testing.T) {
	tables := []struct {
		name   string
		px     []byte
		width  int
		height int
		want   []byte
	}{
		{
			name:   "even width",
			px:     []byte{1, 2, 3, 4},
			width:  4,
			height: 1,
			want:   []byte{'S', 'I', 'F', 4, 0, 1, 0, 0x12, 0x34},
		},
		{
			name:   "odd width rounds up",
			px:     []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
			width:  7,
			height: -2,
			want:   []byte{'S', 'I', 'F', 8, 0, 2, 0, 0x12, 0x34, 0x56, 0x70, 0x89, 0xab, 0xcd, 0xe0},
		},
		{
			name:   "first pixel always paired",
			px:     []byte{1, 2, 3},
			width:  1,
			height: 3,
			want:   []byte{'S', 'I', 'F', 2, 0, 3, 0, 0x12, 0x30},
		},
		{
			name:   "single pixel",
			px:     []byte{7},
			width:  1,
			height: 1,
			want:   []byte{'S', 'I', 'F', 2, 0, 1, 0, 0x70},
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			require.Nil(t, Encode(b, table.px, table.width, table.height))
			assert.Equal(t, table.want, b.Bytes())
		})
	}
}

func TestEncodeTooBig(t *testing.T) {
	assert.Equal(t, errTooBig, Encode(new(bytes.Buffer), nil, 1<<16, 1))
}

func TestRoundTrip(t *testing.T) {
	px := []byte{
		0, 1, 2, 3, 4, 5,
		6, 7, 8, 9, 10, 11,
		12, 13, 14, 15, 0, 1,
	}

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, px, 6, 3))

	config, err := DecodeConfig(bytes.NewReader(b.Bytes()))
	require.Nil(t, err)
	assert.Equal(t, 6, config.Width)
	assert.Equal(t, 3, config.Height)

	m, err := Decode(bytes.NewReader(b.Bytes()), grayPalette())
	require.Nil(t, err)
	assert.Equal(t, px, m.Pix)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{'S', 'I', 'F', 2, 0}), grayPalette())
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader([]byte{'B', 'M', 'P', 2, 0, 1, 0, 0x12}), grayPalette())
	assert.Equal(t, errBadMagic, err)

	_, err = Decode(bytes.NewReader([]byte{'S', 'I', 'F', 4, 0, 1, 0, 0x12}), grayPalette())
	assert.Equal(t, errNotEnough, err)

	_, err = Decode(bytes.NewReader([]byte{'S', 'I', 'F', 2, 0, 1, 0, 0x12, 0x34}), grayPalette())
	assert.Equal(t, errTooMuch, err)

	_, err = Decode(bytes.NewReader([]byte{'S', 'I', 'F', 2, 0, 1, 0, 0x12}), color.Palette{color.Black})
	assert.Equal(t, errPalette, err)
}

func TestDecodeLargeHeader(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{'S', 'I', 'F', 0xfe, 0xff, 0xff, 0xff, 0x12, 0x34}), grayPalette())
	assert.Equal(t, errNotEnough, err)
}
