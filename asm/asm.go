/*
Package asm writes packed graphics as assembler data declarations.

A listing is made of one or more labelled blocks, each holding lines of bytes:

	hero:
	        db 0x3C,0x42,0x81
	hero_color:
	        db 0x0F

Bytes are written as upper-case hexadecimal with a 0x prefix. Blocks are
separated by a single newline and nothing follows the last byte unless the
listing is terminated.
*/
package asm

import (
	"bufio"
	"fmt"
	"io"
)

// Indentation used before each db directive.
const (
	Indent       = "        "
	BitmapIndent = "       "
)

// Block is a labelled run of data lines. The label written is the listing
// label followed by Suffix.
type Block struct {
	Suffix string
	Indent string
	Lines  [][]byte
}

// AddLine appends a line of bytes to the block.
func (b *Block) AddLine(line ...byte) {
	b.Lines = append(b.Lines, line)
}

// Listing is a complete assembler listing.
type Listing struct {
	Blocks []*Block

	// Terminated adds a newline after the last block
	Terminated bool
}

// NewBlock adds an empty block to the listing and returns it.
func (l *Listing) NewBlock(suffix, indent string) *Block {
	b := &Block{Suffix: suffix, Indent: indent}
	l.Blocks = append(l.Blocks, b)
	return b
}

// Encode writes the listing to w using label as the base label.
func (l *Listing) Encode(w io.Writer, label string) error {
	bw := bufio.NewWriter(w)

	for i, b := range l.Blocks {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.WriteString(label + b.Suffix + ":")
		for _, line := range b.Lines {
			bw.WriteString("\n" + b.Indent + "db ")
			for j, v := range line {
				if j > 0 {
					bw.WriteByte(',')
				}
				fmt.Fprintf(bw, "0x%02X", v)
			}
		}
	}

	if l.Terminated {
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
