package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Jaxan/nlambda/smt"
)

func simplify(cfg *SimplifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Simplify.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: simplify expects one problem file", cli.ErrUsage)
	}
	l, f, err := LoadProblem(args[0])
	if err != nil {
		return err
	}
	g, err := smt.Simplify(l, f)
	if err != nil {
		return err
	}
	if !cfg.Diff {
		fmt.Fprintf(cc.Out, "%s\n", g)
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(f.String(), g.String(), false)
	if cfg.colored(cc.Out) {
		fmt.Fprintf(cc.Out, "%s\n", diffCfg.DiffPrettyText(diffs))
		return nil
	}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "[-%s]", diff.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "[+%s]", diff.Text)
		default:
			fmt.Fprintf(cc.Out, "%s", diff.Text)
		}
	}
	fmt.Fprintln(cc.Out)
	return nil
}
