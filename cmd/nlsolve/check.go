package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/Jaxan/nlambda/smt"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check expects one problem file", cli.ErrUsage)
	}
	l, f, err := LoadProblem(args[0])
	if err != nil {
		return err
	}
	valid, err := smt.IsTrue(l, f)
	if err != nil {
		return err
	}
	verdict, paint := "contingent", color.YellowString
	switch {
	case valid:
		verdict, paint = "valid", color.GreenString
	default:
		unsat, err := smt.IsFalse(l, f)
		if err != nil {
			return err
		}
		if unsat {
			verdict, paint = "unsatisfiable", color.RedString
		}
	}
	if cfg.colored(cc.Out) {
		verdict = paint("%s", verdict)
	}
	fmt.Fprintf(cc.Out, "%s\n", verdict)
	return nil
}
