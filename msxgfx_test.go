package msxgfx

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/bodgit/msxgfx/bitmap"
	"github.com/bodgit/msxgfx/palette"
	"github.com/stretchr/testify/require"
)

// buildBMP returns a bottom-up 24-bit BMP where px holds Graphic16 indices
// in top-to-bottom order.
func buildBMP(width, height int, px []byte) []byte {
	padding := bitmap.Padding(width)
	stride := width*3 + padding

	b := new(bytes.Buffer)
	b.WriteString("BM")
	binary.Write(b, binary.LittleEndian, uint32(54+stride*height))
	binary.Write(b, binary.LittleEndian, uint32(0))
	binary.Write(b, binary.LittleEndian, uint32(54))
	binary.Write(b, binary.LittleEndian, uint32(40))
	binary.Write(b, binary.LittleEndian, int32(width))
	binary.Write(b, binary.LittleEndian, int32(height))
	binary.Write(b, binary.LittleEndian, uint16(1))
	binary.Write(b, binary.LittleEndian, uint16(24))
	b.Write(make([]byte, 24))

	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			c, _ := palette.Graphic16.Color(int(px[y*width+x]))
			b.Write([]byte{c[2], c[1], c[0]})
		}
		b.Write(make([]byte, padding))
	}

	return b.Bytes()
}

func writeBMP(t *testing.T, dir, name string, width, height int, px []byte) string {
	file := filepath.Join(dir, name)
	require.Nil(t, ioutil.WriteFile(file, buildBMP(width, height, px), 0666))
	return file
}

func fill(n int, v byte) []byte {
	return bytes.Repeat([]byte{v}, n)
}
