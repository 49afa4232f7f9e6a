package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// colored reports whether output to w should be colored: forced by -color,
// otherwise only when w is a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type SimplifyConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a diff from the input formula'"`

	Simplify *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Binding map[string]any

	Eval *cli.Command
}

type ScriptConfig struct {
	*MainConfig
	Simplify bool `cli:"name=s aliases=simplify desc='generate the simplify script'"`

	Script *cli.Command
}

func bindOptTypeFunc(binding map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		key, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: argument %q expected var=val", cli.ErrUsage, a)
		}
		var v any
		if err := yaml.Unmarshal([]byte(val), &v); err != nil {
			return nil, err
		}
		binding[key] = v
		return 0, nil
	}
}
