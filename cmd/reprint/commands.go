package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "reprint").
		WithSynopsis("reprint [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rpMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			PreviewCommand(cfg),
			GenCommand(cfg))
}

const mainDescription = `reprint applies byte-range changesets to files.

A changeset file lists non-overlapping replacements against the current
content of one file, in yaml (json is accepted too):

  changes:
    - start: 7
      end: 12
      text: Rust

Offsets are byte positions in the file as it is now; they go stale if
the file changes. Applying a changeset keeps the previous content next
to the file with a .bk suffix.`

func rpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <changeset> <file>").
		WithDescription("apply a changeset to a file, keeping a .bk backup").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func PreviewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PreviewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Preview, "preview").
		WithAliases("p", "pre").
		WithSynopsis("preview [opts] <changeset> <file>").
		WithDescription("show the rewrite a changeset would make, without writing").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return preview(cfg, cc, args)
		})
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithAliases("g").
		WithSynopsis("gen <old> <new>").
		WithDescription("generate the changeset that rewrites old into new").
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}
