package sif

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

var errTooBig = errors.New("sif: image is too big")

func header(width, height int) ([]byte, error) {
	if height < 0 {
		height = -height
	}
	width += width % 2
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return nil, errTooBig
	}

	b := make([]byte, headerSize)
	copy(b, magic)
	binary.LittleEndian.PutUint16(b[3:], uint16(width))
	binary.LittleEndian.PutUint16(b[5:], uint16(height))

	return b, nil
}

// Encode writes the palette indices in px, a width by height image in
// top-to-bottom order, to w in SIF format. A negative height is treated as
// its absolute value.
func Encode(w io.Writer, px []byte, width, height int) error {
	h, err := header(width, height)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(h); err != nil {
		return err
	}

	for i := 0; i < len(px); {
		hi, lo := px[i], byte(0)
		// The last pixel of a row is written on its own, the very first
		// pixel is always paired
		if i == 0 || (i+1)%width != 0 {
			if i+1 < len(px) {
				lo = px[i+1]
			}
			i++
		}
		i++

		// This is masking off any bits leaving a 0-15 value
		if err := bw.WriteByte(hi&0x0f<<4 | lo&0x0f); err != nil {
			return err
		}
	}

	return bw.Flush()
}
