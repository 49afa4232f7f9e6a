package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/Jaxan/nlambda/formula"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: eval expects one problem file", cli.ErrUsage)
	}
	_, f, err := LoadProblem(args[0])
	if err != nil {
		return err
	}
	res, err := formula.Eval(f, formula.Binding(cfg.Binding))
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%v\n", res)
	return nil
}
