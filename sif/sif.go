/*
Package sif implements a SIF image decoder and encoder.

A SIF file starts with a 7 byte header; the ASCII characters "SIF", the width
in pixels rounded up to an even number and the height in pixels, both as
16-bit little-endian values. The header is followed by the pixels as 4-bit
palette indices packed two to a byte with the leftmost pixel in the upper
nibble. Each row starts on a byte boundary so a row with an odd width ends
with a single pixel in the upper nibble of its last byte. There is no palette
and no compression.
*/
package sif

const (
	magic      = "SIF"
	headerSize = len(magic) + 2 + 2
	maxColors  = 16
)
