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
	return cli.NewCommandAt(&cfg.Main, "nlsolve").
		WithSynopsis("nlsolve [opts] command [opts]").
		WithDescription("nlsolve decides and simplifies relational constraint problems with z3.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nlMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			SimplifyCommand(cfg),
			EvalCommand(cfg),
			ScriptCommand(cfg))
}

func nlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [opts] <problem-file>").
		WithDescription("report whether a problem is valid, unsatisfiable, or contingent").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func SimplifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SimplifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("simplify").
		WithAliases("s", "si").
		WithSynopsis("simplify [opts] <problem-file>").
		WithDescription("print a logically equivalent simpler formula").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return simplify(cfg, cc, args)
		})
	cfg.Simplify = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Binding: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "bind a variable, e.g. -e x=3",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(bindOptTypeFunc(cfg.Binding)), "(var=val)"),
	})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e var=val [-e var2=val2]...] <problem-file>").
		WithDescription("evaluate a problem under a concrete variable binding").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func ScriptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ScriptConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("script").
		WithSynopsis("script [opts] <problem-file>").
		WithDescription("print the generated solver script without running it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return script(cfg, cc, args)
		})
	cfg.Script = cmd
	return cmd
}
