package z3

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/Jaxan/nlambda/debug"
)

const (
	// EnvCommand may hold a YAML document overriding the default solver
	// command, e.g. {name: z3-4.8, args: [-smt2, -in]}.  Omitted fields
	// keep their defaults.
	EnvCommand = "NLAMBDA_Z3"
)

// LoadCommand returns the solver command configured in the environment, or
// the default one.
func LoadCommand() (*Command, error) {
	cmd := DefaultCommand()
	envCmd := os.Getenv(EnvCommand)
	if envCmd == "" {
		return cmd, nil
	}
	if err := yaml.Unmarshal([]byte(envCmd), cmd); err != nil {
		return nil, fmt.Errorf("error decoding $%s: %w", EnvCommand, err)
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("error decoding $%s: empty command name", EnvCommand)
	}
	if debug.Solver() {
		debug.Logf("solver command from env: %s %v\n", cmd.Name, cmd.Args)
	}
	return cmd, nil
}
