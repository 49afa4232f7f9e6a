// Package z3 runs the external decision procedure as a one-shot subprocess.
// Every call creates a fresh process, writes the configuration preamble and
// the script to its input, and collects its entire output; there is no
// session reuse, batching, or retry.
package z3

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"github.com/Jaxan/nlambda/debug"
)

var ErrNotFound = errors.New("solver executable not found")

// Command describes how to invoke the solver.  The zero-value-adjacent
// DefaultCommand works for a stock z3 on $PATH.
type Command struct {
	// Name is resolved through the executable search path once, at first
	// use.
	Name string `yaml:"name"`
	// Args select script input mode and non-interactive behavior.
	Args []string `yaml:"args"`
	// Options are configuration directives written before every script.
	Options []string `yaml:"options"`

	resolve    sync.Once
	path       string
	resolveErr error
}

// DefaultCommand returns the stock z3 invocation: SMT-LIB2 scripts on
// standard input, auto-configuration and the model-based quantifier
// instantiation heuristic off, and output elision disabled so goals print
// in full.
func DefaultCommand() *Command {
	return &Command{
		Name: "z3",
		Args: []string{"-smt2", "-in"},
		Options: []string{
			"(set-option :auto-config false)",
			"(set-option :smt.mbqi false)",
			"(set-option :pp.max-depth 1000000)",
			"(set-option :pp.min-alias-size 1000000)",
		},
	}
}

// Path resolves the executable location, once.  Resolution failure is fatal
// and distinct from a nonzero exit.
func (c *Command) Path() (string, error) {
	c.resolve.Do(func() {
		p, err := exec.LookPath(c.Name)
		if err != nil {
			c.resolveErr = fmt.Errorf("%w: %q: %v", ErrNotFound, c.Name, err)
			return
		}
		c.path = p
	})
	return c.path, c.resolveErr
}

// RunError reports a solver process that exited nonzero, with everything
// needed to reproduce the failure.
type RunError struct {
	Path   string
	Code   int
	Input  string
	Stdout string
	Stderr string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s exited %d\ninput:\n%s\nstdout:\n%s\nstderr:\n%s",
		e.Path, e.Code, e.Input, e.Stdout, e.Stderr)
}

// Run invokes the solver once with the configuration options followed by the
// script on its input, and returns the captured standard output.
func (c *Command) Run(script string) (string, error) {
	path, err := c.Path()
	if err != nil {
		return "", err
	}
	input := strings.Join(c.Options, "\n") + "\n" + script
	if debug.Solver() {
		debug.Logf("z3 input:\n%s", input)
	}
	cmd := exec.Command(path, c.Args...)
	cmd.Stdin = strings.NewReader(input)
	stdout := bytes.NewBuffer(nil)
	stderr := bytes.NewBuffer(nil)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err = cmd.Run()
	if debug.Solver() {
		debug.Logf("z3 output:\n%s", stdout.String())
	}
	if err == nil {
		return stdout.String(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &RunError{
			Path:   path,
			Code:   exitErr.ExitCode(),
			Input:  input,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
		}
	}
	return "", fmt.Errorf("running %s: %w", path, err)
}
