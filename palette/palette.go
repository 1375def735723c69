/*
Package palette implements the conversion table used to classify the RGB
pixels of a bitmap into MSX palette indices.

A table is an ordered list of colors each mapped to an index between 0 and
15. Lookups scan the table in order and the first matching color wins, so the
order of entries matters when the same color appears more than once.

Tables are read from a plain text file, one entry per line:

	FFFFFF 15
	24DB24 2
*/
package palette

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxIndex is the highest palette index on any mode.
const MaxIndex = 15

// RGB is a 24-bit color in red, green, blue order.
type RGB [3]byte

func (c RGB) String() string {
	return fmt.Sprintf("%02X%02X%02X", c[0], c[1], c[2])
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c[0], c[1], c[2], 0xff}.RGBA()
}

// Entry maps a single color to a palette index.
type Entry struct {
	Color RGB
	Index int
}

// Table is an ordered conversion table.
type Table []Entry

// Lookup returns the index of the first entry matching c.
func (t Table) Lookup(c RGB) (int, bool) {
	for _, e := range t {
		if e.Color == c {
			return e.Index, true
		}
	}
	return 0, false
}

// Color returns the color of the first entry using index i.
func (t Table) Color(i int) (RGB, bool) {
	for _, e := range t {
		if e.Index == i {
			return e.Color, true
		}
	}
	return RGB{}, false
}

// Palette returns a 16 color palette suitable for an image.Paletted, any
// index without an entry is black.
func (t Table) Palette() color.Palette {
	p := make(color.Palette, MaxIndex+1)
	for i := range p {
		c, _ := t.Color(i)
		p[i] = color.RGBA{c[0], c[1], c[2], 0xff}
	}
	return p
}

// Rule is the inclusive range of indices a mode accepts.
type Rule struct {
	Min, Max int
}

// Permits reports whether i is a legal index under the rule.
func (r Rule) Permits(i int) bool {
	return i >= 0 && i <= MaxIndex && i >= r.Min && i <= r.Max
}

// Any accepts every index.
var Any = Rule{0, MaxIndex}

// EntryError is returned when a line does not hold a valid 3 byte color.
type EntryError struct {
	Line int
	Text string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("palette: invalid RGB value on line %d: %q", e.Line, e.Text)
}

// IndexError is returned when an index is out of range for the mode.
type IndexError struct {
	Line  int
	Index int
	Rule  Rule
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("palette: invalid color value %d on line %d, expected %d-%d", e.Index, e.Line, e.Rule.Min, e.Rule.Max)
}

// Parse reads a conversion table from r, validating each index against rule.
func Parse(r io.Reader, rule Rule) (Table, error) {
	var t Table

	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, &EntryError{Line: n, Text: s.Text()}
		}

		b, err := hex.DecodeString(fields[0])
		if err != nil || len(b) != len(RGB{}) {
			return nil, &EntryError{Line: n, Text: fields[0]}
		}

		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &EntryError{Line: n, Text: s.Text()}
		}
		if !rule.Permits(i) {
			return nil, &IndexError{Line: n, Index: i, Rule: rule}
		}

		var c RGB
		copy(c[:], b)
		t = append(t, Entry{Color: c, Index: i})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// Load reads a conversion table from the named file.
func Load(file string, rule Rule) (Table, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, rule)
}

// WriteTo writes the table in the same text format Parse reads.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range t {
		m, err := fmt.Fprintf(w, "%s %d\n", e.Color, e.Index)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func level(v byte) byte {
	return byte((int(v)*7 + 127) / 255)
}

// Registers returns the table as sixteen V9938 palette register pairs. Each
// color is packed as 0RRR0BBB followed by 00000GGG using the first entry for
// each index; unused indices are zero.
func (t Table) Registers() []byte {
	b := make([]byte, 0, (MaxIndex+1)*2)
	for i := 0; i <= MaxIndex; i++ {
		c, ok := t.Color(i)
		if !ok {
			b = append(b, 0x00, 0x00)
			continue
		}
		b = append(b, level(c[0])<<4|level(c[2]), level(c[1]))
	}
	return b
}
