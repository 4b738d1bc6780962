package main

import (
	"fmt"
	"io"
	"os"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/reprint/change"
)

type changeFile struct {
	Changes []changeEntry `yaml:"changes"`
}

type changeEntry struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Text  string `yaml:"text"`
}

func loadChanges(path string) (change.Set, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cf := &changeFile{}
	if err := yaml.Unmarshal(d, cf); err != nil {
		return nil, fmt.Errorf("could not parse changeset %q: %w", path, err)
	}
	set := make(change.Set, 0, len(cf.Changes))
	for _, e := range cf.Changes {
		set = append(set, change.Change{Start: e.Start, End: e.End, Text: e.Text})
	}
	return set, nil
}

func writeChanges(w io.Writer, set change.Set) error {
	cf := &changeFile{Changes: make([]changeEntry, 0, len(set))}
	for _, c := range set {
		cf.Changes = append(cf.Changes, changeEntry{Start: c.Start, End: c.End, Text: c.Text})
	}
	d, err := yaml.Marshal(cf)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// matchChanges filters set by an expression over the fields of each
// change: start, end, text, and delta.
func matchChanges(set change.Set, src string) (change.Set, error) {
	if src == "" {
		return set, nil
	}
	prg, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: bad match expression: %v", cli.ErrUsage, err)
	}
	res := make(change.Set, 0, len(set))
	for _, c := range set {
		out, err := expr.Run(prg, map[string]any{
			"start": c.Start,
			"end":   c.End,
			"text":  c.Text,
			"delta": c.Delta(),
		})
		if err != nil {
			return nil, err
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("match expression gave %T, want bool", out)
		}
		if keep {
			res = append(res, c)
		}
	}
	return res, nil
}
