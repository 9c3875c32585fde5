package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/zephyrtronium/mathtext"
)

func main() {
	app := &cli.App{
		Name:      "mathtext",
		Usage:     "typeset plaintext math as LaTeX markup or Unicode text",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "latex",
				Usage:   "output `FORMAT`, latex or unicode",
			},
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Usage:   "read expressions from `FILE`, one per line (- for stdin)",
			},
			&cli.StringSliceFlag{
				Name:  "func",
				Usage: "recognize `NAME` as an extra function name (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "no-default-funcs",
				Usage: "do not recognize the built-in function names",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "dump each parse tree to stderr before rendering it",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var format mathtext.Format
	switch c.String("format") {
	case "latex":
		format = mathtext.Latex
	case "unicode":
		format = mathtext.Unicode
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
	var opts []mathtext.ParseOption
	if c.Bool("no-default-funcs") {
		opts = append(opts, mathtext.DisableDefaultFuncs())
	}
	for _, name := range c.StringSlice("func") {
		opts = append(opts, mathtext.ParseFunc(name))
	}
	exprs := c.Args().Slice()
	if in := c.String("in"); in != "" || len(exprs) == 0 {
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		exprs = append(exprs, lines...)
	}
	for _, src := range exprs {
		n, err := mathtext.Parse(src, opts...)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", src, err)
		}
		if c.Bool("echo") {
			spew.Fdump(os.Stderr, n)
		}
		fmt.Println(mathtext.Render(n, format))
	}
	return nil
}

func readLines(name string) ([]string, error) {
	f := os.Stdin
	if name != "" && name != "-" {
		in, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
