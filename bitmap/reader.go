/*
Package bitmap implements a minimal reader for uncompressed 24-bit BMP files.

Only three header fields are used; the offset of the pixel array at byte 10,
the width at byte 18 and the signed height at byte 22, all little-endian. A
positive height means the rows are stored bottom-up, a negative height means
top-down. Every byte from the pixel array offset to the end of the file is
kept as-is, including the padding that rounds each row up to a multiple of
four bytes.
*/
package bitmap

import (
	"encoding/binary"
	"errors"
	"io"
	"io/ioutil"
	"os"
)

const (
	offsetField = 10
	widthField  = 18
	heightField = 22
	headerSize  = heightField + 4

	bytesPerPixel = 3
)

var (
	errNotEnough = errors.New("bitmap: not enough header data")
	errBadOffset = errors.New("bitmap: pixel data offset beyond end of file")
	errTooWide   = errors.New("bitmap: width out of range")
)

// Image holds the dimensions and raw pixel bytes of a bitmap.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Rows returns the number of pixel rows regardless of storage order.
func (m *Image) Rows() int {
	if m.Height < 0 {
		return -m.Height
	}
	return m.Height
}

// Len returns the number of pixels in the image.
func (m *Image) Len() int {
	return m.Width * m.Rows()
}

// Complete reports whether Pix holds every pixel the dimensions describe.
func (m *Image) Complete() bool {
	rows := int64(m.Rows())
	if m.Width <= 0 || rows == 0 {
		return true
	}
	stride := int64(m.Width*bytesPerPixel + Padding(m.Width))
	return int64(len(m.Pix)) >= (rows-1)*stride+int64(m.Width*bytesPerPixel)
}

// Padding returns the number of bytes appended to each row.
func Padding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// Offset returns the position in Pix of the pixel at logical index i, where
// logical order is top-to-bottom, left-to-right.
func (m *Image) Offset(i int) int {
	row, col := i/m.Width, i%m.Width
	if m.Height > 0 {
		row = m.Height - 1 - row
	}
	return (row*m.Width+col)*bytesPerPixel + row*Padding(m.Width)
}

// At returns the red, green and blue bytes of the pixel at logical index i.
// The bool is false if the pixel data is too short.
func (m *Image) At(i int) ([3]byte, bool) {
	o := m.Offset(i)
	if o < 0 || o+bytesPerPixel > len(m.Pix) {
		return [3]byte{}, false
	}
	// Stored as blue, green, red
	return [3]byte{m.Pix[o+2], m.Pix[o+1], m.Pix[o]}, true
}

// Decode reads a bitmap from r.
func Decode(r io.Reader) (*Image, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(b) < headerSize {
		return nil, errNotEnough
	}

	offset := binary.LittleEndian.Uint32(b[offsetField:])
	if uint64(offset) > uint64(len(b)) {
		return nil, errBadOffset
	}

	width := binary.LittleEndian.Uint32(b[widthField:])
	if width > 1<<16 {
		return nil, errTooWide
	}

	return &Image{
		Width:  int(width),
		Height: int(int32(binary.LittleEndian.Uint32(b[heightField:]))),
		Pix:    b[offset:],
	}, nil
}

// Open reads the named bitmap file.
func Open(file string) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
