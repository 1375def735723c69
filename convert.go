package msxgfx

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/msxgfx/asm"
	"github.com/bodgit/msxgfx/bitmap"
	"github.com/bodgit/msxgfx/palette"
	"github.com/bodgit/msxgfx/sif"
)

// Job describes a single conversion.
type Job struct {
	Input  string
	Output string // defaults to Input with the extension of Format
	Mode   Mode
	Format Format

	// Palette is the conversion table file, the mode default is used if empty
	Palette string

	// IncludePalette appends the V9938 palette registers to assembler output
	IncludePalette bool

	// Label defaults to the base name of Input without its extension
	Label string
}

// OutputFile returns the file the job writes to.
func (j *Job) OutputFile() string {
	if j.Output != "" {
		return j.Output
	}
	return strings.TrimSuffix(j.Input, filepath.Ext(j.Input)) + "." + j.Format.String()
}

func (j *Job) label() string {
	if j.Label != "" {
		return j.Label
	}
	base := filepath.Base(j.Input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Table returns the conversion table for the job.
func (j *Job) Table() (palette.Table, error) {
	if j.Palette == "" {
		return j.Mode.DefaultTable(), nil
	}
	return palette.Load(j.Palette, j.Mode.Rule())
}

func (j *Job) key(b []byte, table palette.Table) string {
	h := sha1.New()
	h.Write(b)
	fmt.Fprintf(h, "\x00%s\x00%s\x00%t\x00%s\x00", j.Mode, j.Format, j.IncludePalette, j.label())
	table.WriteTo(h)
	return fmt.Sprintf("%X", h.Sum(nil))
}

// Result describes a completed conversion.
type Result struct {
	Output   string
	Warnings []string
	Cached   bool
}

// Encode validates, classifies and packs m for the job and writes it to w,
// returning any warnings.
func Encode(w io.Writer, m *bitmap.Image, table palette.Table, job *Job) ([]string, error) {
	if err := job.Mode.Validate(m.Width, m.Height); err != nil {
		return nil, err
	}

	px, err := Classify(table, m, job.Mode.Fallback())
	if err != nil {
		return nil, err
	}

	if job.Format == SIF {
		var warnings []string
		if job.IncludePalette {
			warnings = append(warnings, "palette data is not included in SIF output")
		}
		return warnings, sif.Encode(w, px, m.Width, m.Height)
	}

	l, warnings, err := job.Mode.Pack(px, m.Width, m.Rows())
	if err != nil {
		return nil, err
	}
	if job.IncludePalette {
		l.NewBlock("_palette", asm.Indent).AddLine(table.Registers()...)
	}

	return warnings, l.Encode(w, job.label())
}

func writeFile(file string, b []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(b); err != nil {
		return err
	}

	return f.Close()
}

// Convert runs the job, writing the output file only if the conversion
// succeeds.
func (m *Converter) Convert(job *Job) (*Result, error) {
	table, err := job.Table()
	if err != nil {
		return nil, err
	}

	b, err := ioutil.ReadFile(job.Input)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output: job.OutputFile(),
	}

	var key string
	if m.cache != nil {
		key = job.key(b, table)
		out, warnings, err := m.cache.Find(key)
		if err != nil {
			return nil, err
		}
		if out != nil {
			m.logger.Printf("Using cached %s output for \"%s\"\n", job.Mode, job.Input)
			result.Warnings, result.Cached = warnings, true
			return m.finish(job, result, out)
		}
	}

	img, err := bitmap.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Input, err)
	}
	m.logger.Printf("Read \"%s\", %dx%d\n", job.Input, img.Width, img.Height)

	out := new(bytes.Buffer)
	if result.Warnings, err = Encode(out, img, table, job); err != nil {
		return nil, fmt.Errorf("%s: %w", job.Input, err)
	}

	if m.cache != nil {
		if err := m.cache.Add(key, job, out.Bytes(), result.Warnings); err != nil {
			return nil, err
		}
	}

	return m.finish(job, result, out.Bytes())
}

func (m *Converter) finish(job *Job, result *Result, b []byte) (*Result, error) {
	for _, w := range result.Warnings {
		m.warn.Printf("%s: %s\n", job.Input, w)
	}

	if err := writeFile(result.Output, b); err != nil {
		return nil, err
	}
	m.logger.Printf("Wrote %s output to \"%s\"\n", job.Format, result.Output)

	return result, nil
}
