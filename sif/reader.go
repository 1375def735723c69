package sif

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

var (
	errNotEnough = errors.New("sif: not enough image data")
	errTooMuch   = errors.New("sif: too much image data")
	errBadMagic  = errors.New("sif: invalid header")
	errPalette   = errors.New("sif: palette needs 16 colors")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int

	image *image.Paletted
	tmp   [headerSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}
	if string(d.tmp[:len(magic)]) != magic {
		return errBadMagic
	}
	d.width = int(binary.LittleEndian.Uint16(d.tmp[3:]))
	d.height = int(binary.LittleEndian.Uint16(d.tmp[5:]))
	return nil
}

func (d *decoder) decode(r io.Reader, p color.Palette, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if configOnly {
		return nil
	}

	// Allocation follows the data present, not the header
	want := int64(d.width>>1) * int64(d.height)
	pix, err := ioutil.ReadAll(io.LimitReader(d.r, want+1))
	if err != nil {
		return err
	}

	switch n := int64(len(pix)); {
	case n < want:
		return errNotEnough
	case n > want:
		return errTooMuch
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), p)

	for i, b := range pix {
		x, y := i%(d.width>>1)<<1, i/(d.width>>1)
		d.image.SetColorIndex(x+0, y, b>>4)
		d.image.SetColorIndex(x+1, y, b&0x0f)
	}

	return nil
}

// Decode reads a SIF image from r using the 16 color palette p and returns
// it as an image.Paletted.
func Decode(r io.Reader, p color.Palette) (*image.Paletted, error) {
	if len(p) < maxColors {
		return nil, errPalette
	}
	var d decoder
	if err := d.decode(r, p, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the dimensions of a SIF image without decoding the
// entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, nil, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		Width:  d.width,
		Height: d.height,
	}, nil
}
