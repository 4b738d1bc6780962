package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reprint/textdiff"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: gen <old> <new>", cli.ErrUsage)
	}
	from, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	to, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	return writeChanges(cc.Out, textdiff.Changes(from, to))
}
