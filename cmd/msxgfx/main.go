package main

import (
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/bodgit/msxgfx"
	"github.com/bodgit/msxgfx/palette"
	"github.com/bodgit/msxgfx/sif"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/bmp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*msxgfx.Converter, func(), error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	warn := log.New(os.Stderr, "warning: ", 0)

	if c.String("db") == "" {
		return msxgfx.New(nil, logger, warn), func() {}, nil
	}

	cache, err := msxgfx.OpenCache(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return msxgfx.New(cache, logger, warn), func() { cache.Close() }, nil
}

func exit(err error) error {
	if err == nil {
		return nil
	}
	return cli.NewExitError(err, msxgfx.ExitCode(err))
}

func convert(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowAppHelpAndExit(c, msxgfx.ExitFailure)
	}

	mode, err := msxgfx.ParseMode(c.Args().Get(1))
	if err != nil {
		return exit(err)
	}

	format, err := msxgfx.ParseFormat(c.Args().Get(2))
	if err != nil {
		return exit(err)
	}

	m, done, err := newConverter(c)
	if err != nil {
		return exit(err)
	}
	defer done()

	_, err = m.Convert(&msxgfx.Job{
		Input:          c.Args().Get(0),
		Output:         c.String("output"),
		Mode:           mode,
		Format:         format,
		Palette:        c.String("palette"),
		IncludePalette: c.Bool("ip"),
		Label:          c.String("label"),
	})

	return exit(err)
}

func batch(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), msxgfx.ExitFailure)
	}

	m, done, err := newConverter(c)
	if err != nil {
		return exit(err)
	}
	defer done()

	path := c.Args().First()
	info, err := os.Stat(path)
	if err != nil {
		return exit(err)
	}

	if !info.IsDir() {
		manifest, err := msxgfx.LoadManifest(path)
		if err != nil {
			return exit(err)
		}
		return exit(m.Run(manifest, c.Int("workers")))
	}

	mode, err := msxgfx.ParseMode(c.String("mode"))
	if err != nil {
		return exit(err)
	}

	format, err := msxgfx.ParseFormat(c.String("format"))
	if err != nil {
		return exit(err)
	}

	return exit(m.Scan(path, msxgfx.Job{
		Mode:           mode,
		Format:         format,
		Palette:        c.String("palette"),
		IncludePalette: c.Bool("ip"),
	}, c.Int("workers")))
}

func decodeBMP(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return bmp.Decode(f)
}

func encodeBMP(file string, m image.Image) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := bmp.Encode(f, m); err != nil {
		return err
	}

	return f.Close()
}

func reduce(c *cli.Context) error {
	if c.NArg() != 3 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), msxgfx.ExitFailure)
	}

	in, err := decodeBMP(c.Args().Get(0))
	if err != nil {
		return exit(err)
	}

	out, table, err := msxgfx.Reduce(in, c.Int("colors"))
	if err != nil {
		return exit(err)
	}

	if err := encodeBMP(c.Args().Get(1), out); err != nil {
		return exit(err)
	}

	f, err := os.Create(c.Args().Get(2))
	if err != nil {
		return exit(err)
	}
	defer f.Close()

	if _, err := table.WriteTo(f); err != nil {
		return exit(err)
	}

	return exit(f.Close())
}

func preview(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), msxgfx.ExitFailure)
	}

	mode, err := msxgfx.ParseMode(c.String("mode"))
	if err != nil {
		return exit(err)
	}

	job := msxgfx.Job{Mode: mode, Palette: c.String("palette")}
	table, err := job.Table()
	if err != nil {
		return exit(err)
	}

	f, err := os.Open(c.Args().Get(0))
	if err != nil {
		return exit(err)
	}
	defer f.Close()

	m, err := sif.Decode(f, table.Palette())
	if err != nil {
		return exit(err)
	}

	return exit(encodeBMP(c.Args().Get(1), m))
}

func listModes(c *cli.Context) error {
	for _, m := range msxgfx.Modes() {
		size := m.Size()
		if size == "" {
			size = "any size"
		}
		rule := m.Rule()
		fmt.Fprintf(c.App.Writer, "%-8s %-48s %-18s indices %d-%d\n", m, m.Description(), size, rule.Min, rule.Max)
	}
	return nil
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		EnvVars: []string{"MSXGFX_DB"},
		Usage:   "path to conversion cache database",
	}
}

func verboseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "verbose",
		Usage: "increase verbosity",
	}
}

func paletteFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "palette",
		Aliases: []string{"p"},
		Usage:   "palette file, one \"RRGGBB index\" entry per line",
	}
}

func includeFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "ip",
		Aliases: []string{"i"},
		Usage:   "include palette data in the output",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "msxgfx"
	app.Usage = "Convert BMP images into MSX screen and sprite data"
	app.UsageText = "msxgfx [options] <bmp_file> <output_type> <format>\n   msxgfx command [command options] [arguments...]"
	app.Description = "output_type is one of " + strings.Join(modeNames(), ", ") + " and format is one of asm, sif."
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		dbFlag(),
		verboseFlag(),
		paletteFlag(),
		includeFlag(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output file",
		},
		&cli.StringFlag{
			Name:  "label",
			Usage: "assembler label, defaults to the input file name",
		},
	}
	app.Action = convert

	app.Commands = []*cli.Command{
		{
			Name:      "batch",
			Usage:     "Run many conversions from a manifest or a directory",
			ArgsUsage: "MANIFEST|DIRECTORY",
			Flags: []cli.Flag{
				dbFlag(),
				verboseFlag(),
				paletteFlag(),
				includeFlag(),
				&cli.StringFlag{
					Name:  "mode",
					Usage: "output type used for a directory",
				},
				&cli.StringFlag{
					Name:  "format",
					Value: "asm",
					Usage: "format used for a directory",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "number of concurrent conversions",
				},
			},
			Action: batch,
		},
		{
			Name:      "reduce",
			Usage:     "Quantize a BMP and write a matching palette file",
			ArgsUsage: "INPUT OUTPUT PALETTE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Value: palette.MaxIndex + 1,
					Usage: "maximum number of colors",
				},
			},
			Action: reduce,
		},
		{
			Name:      "preview",
			Usage:     "Render a SIF file as a BMP",
			ArgsUsage: "INPUT OUTPUT",
			Flags: []cli.Flag{
				paletteFlag(),
				&cli.StringFlag{
					Name:  "mode",
					Value: msxgfx.Screen5.String(),
					Usage: "output type whose default palette is used",
				},
			},
			Action: preview,
		},
		{
			Name:   "modes",
			Usage:  "List the output types",
			Action: listModes,
		},
	}

	if err := app.Run(permute(app, os.Args)); err != nil {
		log.Fatal(err)
	}
}
