package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/Jaxan/nlambda/smt/encode"
)

func script(cfg *ScriptConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Script.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: script expects one problem file", cli.ErrUsage)
	}
	l, f, err := LoadProblem(args[0])
	if err != nil {
		return err
	}
	kind := encode.CheckSat
	if cfg.Simplify {
		kind = encode.Simplify
	}
	s, err := encode.Script(l, f, kind)
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, s)
	return nil
}
