package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/reprint"
)

func preview(cfg *PreviewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Preview.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: preview <changeset> <file>", cli.ErrUsage)
	}
	set, err := loadChanges(args[0])
	if err != nil {
		return err
	}
	set, err = matchChanges(set, cfg.Match)
	if err != nil {
		return err
	}
	before, after, err := reprint.Preview(args[1], set)
	if err != nil {
		return err
	}
	if cfg.Color {
		// fatih/color turns itself off on non-terminals; -color wins
		color.NoColor = false
	}
	return renderDiff(cc.Out, before, after, cfg.colorize())
}

// renderDiff writes a character-level diff of before and after,
// deletions red and insertions green when colored, otherwise marked
// with [-..-] and [+..+].
func renderDiff(w io.Writer, before, after []byte, colored bool) error {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(before), string(after), false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		case diffpatch.DiffDelete:
			if colored {
				sb.WriteString(color.RedString("%s", diff.Text))
			} else {
				sb.WriteString("[-" + diff.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if colored {
				sb.WriteString(color.GreenString("%s", diff.Text))
			} else {
				sb.WriteString("[+" + diff.Text + "+]")
			}
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
