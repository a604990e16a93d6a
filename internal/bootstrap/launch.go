// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pyboot/internal/interpreter"
	"github.com/pdiddy/pyboot/pkg/types"
)

// TargetScript is the fixed filename of the sibling program the bootstrap
// launches after setup.
const TargetScript = "convert_images.py"

// executablePath locates the running binary. Tests override this to pin
// the resolution directory.
var executablePath = os.Executable

// ResolveTarget returns the target script path: TargetScript in the
// directory containing the pyboot executable. The result is independent of
// the process working directory.
func ResolveTarget() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), TargetScript), nil
}

// LaunchOptions controls a single launch step.
type LaunchOptions struct {
	// Target is the script to launch. Required; callers resolve it with
	// ResolveTarget when no override is configured.
	Target string

	// Strict turns a missing target into an error instead of a printed
	// message and a nil return.
	Strict bool

	// Env holds extra "KEY=value" entries for the child environment.
	Env []string

	Stdout io.Writer
	Stderr io.Writer
}

// Launch checks that the target script exists and runs it through the
// interpreter, waiting for completion. A missing target prints one line
// with the resolved path; by default that is not an error, so the overall
// process still exits zero. The child's own exit status is not inspected.
func Launch(py interpreter.Interpreter, opts LaunchOptions) (types.Outcome, error) {
	if _, err := os.Stat(opts.Target); err != nil {
		fmt.Fprintf(opts.Stdout, "Error: main script '%s' not found.\n", opts.Target)
		if opts.Strict {
			return types.OutcomeTargetMissing, fmt.Errorf("main script %s not found", opts.Target)
		}
		return types.OutcomeTargetMissing, nil
	}

	if err := py.RunScript(opts.Target, opts.Env, opts.Stdout, opts.Stderr); err != nil {
		return types.OutcomeLaunchFailed, fmt.Errorf("launching %s: %w", opts.Target, err)
	}
	return types.OutcomeCompleted, nil
}
