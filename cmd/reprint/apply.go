package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/reprint"
	"github.com/signadot/reprint/durable"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply <changeset> <file>", cli.ErrUsage)
	}
	set, err := loadChanges(args[0])
	if err != nil {
		return err
	}
	set, err = matchChanges(set, cfg.Match)
	if err != nil {
		return err
	}
	file := args[1]
	if err := reprint.Reprint(file, set); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "rewrote %s with %d changes, previous content at %s\n",
		file, len(set), durable.BackupPath(file))
	return nil
}
