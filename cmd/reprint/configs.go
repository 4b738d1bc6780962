package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force colored output'"`
	NoColor bool `cli:"name=no-color desc='disable colored output'"`

	Main *cli.Command
}

// colorize decides whether diff output gets colored: forced on or off
// by flag, otherwise only when stdout is a terminal.
func (cfg *MainConfig) colorize() bool {
	if cfg.Color {
		return true
	}
	if cfg.NoColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

type ApplyConfig struct {
	*MainConfig
	Match string `cli:"name=match desc='only apply changes matching this expression'"`

	Apply *cli.Command
}

type PreviewConfig struct {
	*MainConfig
	Match string `cli:"name=match desc='only preview changes matching this expression'"`

	Preview *cli.Command
}

type GenConfig struct {
	*MainConfig

	Gen *cli.Command
}
