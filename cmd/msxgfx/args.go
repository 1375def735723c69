package main

import (
	"strings"

	"github.com/bodgit/msxgfx"
	"github.com/urfave/cli/v2"
)

func modeNames() []string {
	var names []string
	for _, m := range msxgfx.Modes() {
		names = append(names, m.String())
	}
	return names
}

func valueFlags(flags []cli.Flag) map[string]bool {
	m := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			m[name] = true
		}
	}
	return m
}

// permute moves any flags that follow the positional arguments in front of
// them so both "msxgfx -o out.asm in.bmp screen2 asm" and
// "msxgfx in.bmp screen2 asm -o out.asm" work. Root flags given before a
// command are left where they are.
func permute(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}

	start, flags := 1, app.Flags
	if i := commandIndex(app, args); i > 0 {
		start, flags = i+1, app.Command(args[i]).Flags
	}
	valued := valueFlags(flags)

	var options, positional []string
	for i := start; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			positional = append(positional, arg)
			continue
		}
		options = append(options, arg)
		if takesValue(valued, arg) && i+1 < len(args) {
			i++
			options = append(options, args[i])
		}
	}

	out := append([]string{}, args[:start]...)
	out = append(out, options...)
	if len(positional) > 0 {
		out = append(out, "--")
	}
	return append(out, positional...)
}

func takesValue(valued map[string]bool, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	return !strings.Contains(name, "=") && valued[name]
}

// commandIndex returns the position of the command name in args, skipping
// any root flags, or -1 if the first positional argument isn't a command.
func commandIndex(app *cli.App, args []string) int {
	valued := valueFlags(app.Flags)
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return -1
		case len(arg) < 2 || arg[0] != '-':
			if app.Command(arg) != nil {
				return i
			}
			return -1
		case takesValue(valued, arg):
			i++
		}
	}
	return -1
}
