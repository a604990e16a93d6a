// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interpreter implements Python interpreter detection and execution.
package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	binPython3 = "python3"
	binPython  = "python"
)

// Interpreter provides Python operations: checking availability, installing
// requirements through pip, and running scripts.
type Interpreter interface {
	// Name returns the interpreter binary name ("python3" or "python").
	Name() string

	// Available reports whether the binary exists on PATH and responds to
	// a version query.
	Available() bool

	// PipInstall installs every dependency listed in the manifest file into
	// the interpreter's environment. A non-zero pip exit is returned as an
	// error; installer output streams to stdout and stderr.
	PipInstall(manifestPath string, env []string, stdout, stderr io.Writer) error

	// RunScript executes the script at scriptPath with no arguments and
	// waits for it to finish. The child's exit status is deliberately not
	// inspected; only failures to start the process are reported.
	RunScript(scriptPath string, env []string, stdout, stderr io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunAttached(name string, args []string, env []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunAttached(name string, args []string, env []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// python implements Interpreter for a specific binary. python3 and python
// share the same logic; they differ only in binary name.
type python struct {
	bin  string
	exec executor
}

func (p *python) Name() string { return p.bin }

func (p *python) Available() bool {
	if _, err := p.exec.LookPath(p.bin); err != nil {
		return false
	}
	return p.exec.RunSilent(p.bin, "--version") == nil
}

func (p *python) PipInstall(manifestPath string, env []string, stdout, stderr io.Writer) error {
	args := []string{"-m", "pip", "install", "-r", manifestPath}
	if err := p.exec.RunAttached(p.bin, args, env, stdout, stderr); err != nil {
		return fmt.Errorf("pip install -r %s with %s: %w", manifestPath, p.bin, err)
	}
	return nil
}

func (p *python) RunScript(scriptPath string, env []string, stdout, stderr io.Writer) error {
	err := p.exec.RunAttached(p.bin, []string{scriptPath}, env, stdout, stderr)
	// A non-zero exit from the script is not an error for the caller; the
	// child already wrote whatever it had to say to the attached stdio.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("running %s with %s: %w", scriptPath, p.bin, err)
	}
	return nil
}

func newInterpreter(bin string, exec executor) *python {
	return &python{bin: bin, exec: exec}
}

var defaultExec = &osExecutor{}

// Detect tries python3 first, falls back to python. Returns an error if
// neither interpreter is available.
func Detect() (Interpreter, error) {
	return detect(defaultExec)
}

func detect(exec executor) (Interpreter, error) {
	py3 := newInterpreter(binPython3, exec)
	if py3.Available() {
		return py3, nil
	}

	py := newInterpreter(binPython, exec)
	if py.Available() {
		return py, nil
	}

	return nil, fmt.Errorf(
		"no Python interpreter available: neither %s nor %s found or operational",
		binPython3, binPython,
	)
}

// Select returns the interpreter for an explicitly requested binary,
// verifying that it is operational.
func Select(bin string) (Interpreter, error) {
	return sel(defaultExec, bin)
}

func sel(exec executor, bin string) (Interpreter, error) {
	py := newInterpreter(bin, exec)
	if !py.Available() {
		return nil, fmt.Errorf("requested interpreter %s not found or operational", bin)
	}
	return py, nil
}
