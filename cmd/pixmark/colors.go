package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/pixmark/internal/palette"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	entries := palette.Default()
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "no colors available")
		return nil
	}
	defaultColor := c.root.drawDefaults().PenColor
	fmt.Fprintln(os.Stdout, "available palette colors (* marks the configured pen color):")
	for idx, entry := range entries {
		marker := " "
		if entry.Color == defaultColor {
			marker = "*"
		}
		hex := palette.Format(entry.Color)
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(os.Stdout, "%s %2d: %-12s %s %s\n", marker, idx, entry.Name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
